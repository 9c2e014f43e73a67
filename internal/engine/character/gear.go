package character

import (
	"context"

	"github.com/KirkDiggler/rpg-adventure/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// UseResult is the outcome of consuming an item
type UseResult struct {
	Item   ItemView
	Vitals Vitals
}

// UseItem consumes a consumable from the inventory and applies its restores
func (c *Character) UseItem(_ context.Context, name string) (*UseResult, error) {
	it, ok := c.inventory.Find(name)
	if !ok {
		return nil, errors.ItemNotFoundf("you do not have %s", name)
	}

	consumable, ok := it.(*item.Consumable)
	if !ok {
		return nil, errors.WithReasonf(errors.ReasonItemNotUsable, "%s cannot be used", it.Name())
	}

	if err := c.inventory.Remove(it); err != nil {
		return nil, err
	}

	r := consumable.Restores()
	c.Heal(r.Health)
	c.RestoreStamina(r.Stamina)
	c.Eat(r.Hunger)
	c.Drink(r.Thirst)

	return &UseResult{Item: NewItemView(it), Vitals: c.vitals}, nil
}

// EquipResult is the outcome of equipping or unequipping
type EquipResult struct {
	Item ItemView
	Slot equipment.EquipmentSlot
}

// Equip moves an item from the inventory into its slot. An occupied slot
// is never swapped.
func (c *Character) Equip(_ context.Context, name string) (*EquipResult, error) {
	it, ok := c.inventory.Find(name)
	if !ok {
		return nil, errors.ItemNotFoundf("you do not have %s", name)
	}

	gear, ok := it.(equipment.Equippable)
	if !ok {
		return nil, errors.WithReasonf(errors.ReasonNotEquippable, "%s cannot be equipped", it.Name())
	}

	if err := c.equipment.Equip(gear); err != nil {
		return nil, err
	}
	if err := c.inventory.Remove(it); err != nil {
		_, _ = c.equipment.Unequip(gear.Slot())
		return nil, err
	}

	return &EquipResult{Item: NewItemView(it), Slot: gear.Slot()}, nil
}

// Unequip returns the item in a slot to the inventory. If it does not fit
// it stays equipped.
func (c *Character) Unequip(_ context.Context, slot equipment.EquipmentSlot) (*EquipResult, error) {
	gear := c.equipment.Get(slot)
	if gear == nil {
		return nil, errors.WithReasonf(errors.ReasonSlotEmpty, "nothing equipped in %s slot", slot)
	}

	it, ok := gear.(item.Item)
	if !ok {
		return nil, errors.Internalf("equipped %s is not an item", gear.Name())
	}
	if !c.inventory.Fits(it) {
		return nil, errors.CapacityExceeded("no room to unequip " + it.Name())
	}

	if _, err := c.equipment.Unequip(slot); err != nil {
		return nil, err
	}
	if err := c.inventory.Add(it); err != nil {
		return nil, err
	}

	return &EquipResult{Item: NewItemView(it), Slot: slot}, nil
}
