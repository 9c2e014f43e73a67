package adventure

import (
	"context"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/character"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/services/adventure"
)

// Buy purchases from a nearby merchant
func (o *Orchestrator) Buy(ctx context.Context, input *adventure.BuyInput) (*adventure.BuyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("item_name", input.ItemName, vb)
	errors.ValidateRequired("merchant_name", input.MerchantName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &adventure.BuyOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		result, err := c.Buy(ctx, input.ItemName, input.MerchantName)
		out.Result = result
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Sell sells to a nearby merchant
func (o *Orchestrator) Sell(ctx context.Context, input *adventure.SellInput) (*adventure.SellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("item_name", input.ItemName, vb)
	errors.ValidateRequired("merchant_name", input.MerchantName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &adventure.SellOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		result, err := c.Sell(ctx, input.ItemName, input.MerchantName)
		out.Result = result
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// TradeWithPlayer moves an item from seller to buyer for price gold. Both
// players are locked together for the whole transfer.
func (o *Orchestrator) TradeWithPlayer(ctx context.Context, input *adventure.TradeWithPlayerInput) (*adventure.TradeWithPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("buyer_id", input.BuyerID, vb)
	errors.ValidateRequired("seller_id", input.SellerID, vb)
	errors.ValidateRequired("item_name", input.ItemName, vb)
	if input.Price < 0 {
		vb.InvalidField("price", "must not be negative")
	}
	if input.BuyerID != "" && input.BuyerID == input.SellerID {
		vb.InvalidField("seller_id", "cannot trade with yourself")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	release, err := o.locker.Acquire(ctx, playerKey(input.BuyerID), playerKey(input.SellerID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock trading players")
	}
	defer release()

	buyer, err := o.loadPlayer(ctx, input.BuyerID)
	if err != nil {
		return nil, err
	}
	seller, err := o.loadPlayer(ctx, input.SellerID)
	if err != nil {
		return nil, err
	}

	result, err := character.Exchange(ctx, buyer, seller, input.ItemName, input.Price)
	if err != nil {
		return nil, err
	}

	return &adventure.TradeWithPlayerOutput{Result: result}, nil
}
