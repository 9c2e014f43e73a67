// Package inventory provides the weight-capacitated item container
package inventory

import (
	"math"

	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/names"
)

// DefaultMaxWeight is the carry capacity of a new character
const DefaultMaxWeight = 100.0

// weights are tracked in item.WeightScale units so repeated add/remove
// never drifts
const weightScale = item.WeightScale

// Inventory is an ordered collection of owned items bounded by total weight.
// Insertion order is kept for display only.
type Inventory struct {
	items     []item.Item
	maxWeight int64
	weight    int64
}

// New creates an empty inventory with the given capacity
func New(maxWeight float64) *Inventory {
	if maxWeight < 0 {
		maxWeight = 0
	}
	return &Inventory{maxWeight: toUnits(maxWeight)}
}

func toUnits(w float64) int64 {
	return int64(math.Round(w * weightScale))
}

func fromUnits(u int64) float64 {
	return float64(u) / weightScale
}

// Add appends the item if it fits. A failed add leaves the inventory unchanged.
func (inv *Inventory) Add(it item.Item) error {
	if it == nil {
		return errors.InvalidArgument("item is required")
	}

	units := toUnits(it.Weight())
	if inv.weight+units > inv.maxWeight {
		return errors.CapacityExceeded("inventory is too heavy").
			WithMeta("item", it.Name()).
			WithMeta("current_weight", inv.CurrentWeight()).
			WithMeta("max_weight", inv.MaxWeight())
	}

	inv.items = append(inv.items, it)
	inv.weight += units
	return nil
}

// Fits reports whether the item could be added
func (inv *Inventory) Fits(it item.Item) bool {
	return it != nil && inv.weight+toUnits(it.Weight()) <= inv.maxWeight
}

// Remove takes out the exact item instance
func (inv *Inventory) Remove(it item.Item) error {
	for i, held := range inv.items {
		if held == it {
			inv.removeAt(i)
			return nil
		}
	}

	name := "<nil>"
	if it != nil {
		name = it.Name()
	}
	return errors.ItemNotFoundf("%s is not in the inventory", name)
}

// RemoveOneByName takes out the first item whose name matches, ignoring case.
// Items sharing a name are interchangeable here.
func (inv *Inventory) RemoveOneByName(name string) (item.Item, error) {
	for i, held := range inv.items {
		if names.Equal(held.Name(), name) {
			inv.removeAt(i)
			return held, nil
		}
	}
	return nil, errors.ItemNotFoundf("no %s in the inventory", name)
}

// CountByName counts items whose name matches, ignoring case
func (inv *Inventory) CountByName(name string) int {
	count := 0
	for _, held := range inv.items {
		if names.Equal(held.Name(), name) {
			count++
		}
	}
	return count
}

// Find returns the first item whose name matches, ignoring case
func (inv *Inventory) Find(name string) (item.Item, bool) {
	for _, held := range inv.items {
		if names.Equal(held.Name(), name) {
			return held, true
		}
	}
	return nil, false
}

// Items returns the held items in insertion order
func (inv *Inventory) Items() []item.Item {
	out := make([]item.Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of held items
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// CurrentWeight returns the summed weight of every held item
func (inv *Inventory) CurrentWeight() float64 {
	return fromUnits(inv.weight)
}

// MaxWeight returns the capacity
func (inv *Inventory) MaxWeight() float64 {
	return fromUnits(inv.maxWeight)
}

func (inv *Inventory) removeAt(i int) {
	inv.weight -= toUnits(inv.items[i].Weight())
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
}
