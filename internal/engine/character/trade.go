package character

import (
	"context"

	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// SellPrice is what a merchant pays: 70% of value, rounded down
func SellPrice(value int) int {
	if value <= 0 {
		return 0
	}
	return value * 7 / 10
}

// TradeResult is the outcome of a purchase or sale
type TradeResult struct {
	Item              ItemView
	Price             int
	Gold              int
	CounterpartyID    string
	SkillLevelsGained int
}

// Buy purchases an item from a merchant in the encounter set at full value
func (c *Character) Buy(ctx context.Context, itemName, merchantName string) (*TradeResult, error) {
	merchant, err := c.nearbyMerchant(merchantName)
	if err != nil {
		return nil, err
	}

	it, ok := merchant.inventory.Find(itemName)
	if !ok {
		return nil, errors.ItemNotFoundf("%s does not sell %s", merchant.name, itemName)
	}

	if err := transfer(c, merchant, it, it.Value()); err != nil {
		return nil, err
	}

	gained := c.AddSkillExperience(stats.SkillTrading, BuyTradingXP)
	c.publish(ctx, EventTradeCompleted, merchant)

	return &TradeResult{
		Item:              NewItemView(it),
		Price:             it.Value(),
		Gold:              c.gold,
		CounterpartyID:    merchant.id,
		SkillLevelsGained: gained,
	}, nil
}

// Sell sells an inventory item to a merchant in the encounter set
func (c *Character) Sell(ctx context.Context, itemName, merchantName string) (*TradeResult, error) {
	merchant, err := c.nearbyMerchant(merchantName)
	if err != nil {
		return nil, err
	}

	it, ok := c.inventory.Find(itemName)
	if !ok {
		return nil, errors.ItemNotFoundf("you do not have %s", itemName)
	}

	price := SellPrice(it.Value())
	if err := transfer(merchant, c, it, price); err != nil {
		return nil, err
	}

	gained := c.AddSkillExperience(stats.SkillTrading, SellTradingXP)
	c.publish(ctx, EventTradeCompleted, merchant)

	return &TradeResult{
		Item:              NewItemView(it),
		Price:             price,
		Gold:              c.gold,
		CounterpartyID:    merchant.id,
		SkillLevelsGained: gained,
	}, nil
}

// Exchange trades an item between two player characters. The caller must
// hold both characters exclusively; the gold and item move together or
// not at all.
func Exchange(ctx context.Context, buyer, seller *Character, itemName string, price int) (*TradeResult, error) {
	if buyer == nil || seller == nil {
		return nil, errors.InvalidArgument("buyer and seller are required")
	}
	if buyer == seller {
		return nil, errors.InvalidArgument("cannot trade with yourself")
	}
	if price < 0 {
		return nil, errors.InvalidArgumentf("price must not be negative, got %d", price)
	}

	it, ok := seller.inventory.Find(itemName)
	if !ok {
		return nil, errors.ItemNotFoundf("%s does not have %s", seller.name, itemName)
	}

	if err := transfer(buyer, seller, it, price); err != nil {
		return nil, err
	}

	gained := buyer.AddSkillExperience(stats.SkillTrading, BuyTradingXP)
	seller.AddSkillExperience(stats.SkillTrading, SellTradingXP)
	buyer.publish(ctx, EventTradeCompleted, seller)

	return &TradeResult{
		Item:              NewItemView(it),
		Price:             price,
		Gold:              buyer.gold,
		CounterpartyID:    seller.id,
		SkillLevelsGained: gained,
	}, nil
}

// transfer moves it from seller to buyer and price from buyer to seller.
// Every check runs before anything is mutated.
func transfer(buyer, seller *Character, it item.Item, price int) error {
	if buyer.gold < price {
		return errors.InsufficientFunds(price, buyer.gold).
			WithMeta("payer_id", buyer.id)
	}
	if !buyer.inventory.Fits(it) {
		return errors.CapacityExceeded("no room for "+it.Name()).
			WithMeta("receiver_id", buyer.id)
	}

	if err := seller.inventory.Remove(it); err != nil {
		return err
	}
	if err := buyer.inventory.Add(it); err != nil {
		_ = seller.inventory.Add(it)
		return err
	}

	buyer.gold -= price
	seller.gold += price
	return nil
}

func (c *Character) nearbyMerchant(name string) (*Character, error) {
	idx := findCharacter(c.nearby.NPCs, name)
	if idx < 0 {
		return nil, errors.WithReasonf(errors.ReasonNoMerchantNearby, "there is no merchant called %s nearby", name)
	}
	return c.nearby.NPCs[idx], nil
}
