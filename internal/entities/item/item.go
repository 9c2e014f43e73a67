// Package item defines the items a character can carry, equip and consume
package item

import "math"

// WeightScale is the number of weight units per 1.0 of weight. Item weights
// are rounded to the nearest unit on construction, so anything lighter than
// half a unit weighs exactly zero.
const WeightScale = 1000

// RoundWeight rounds w to the nearest 1/WeightScale
func RoundWeight(w float64) float64 {
	return math.Round(w*WeightScale) / WeightScale
}

// Kind identifies the concrete variant of an item
type Kind string

// Item kinds
const (
	KindWeapon     Kind = "weapon"
	KindArmor      Kind = "armor"
	KindConsumable Kind = "consumable"
	KindEquipment  Kind = "equipment"
	KindMaterial   Kind = "material"
)

// Item is the read-only view every variant exposes.
// Items are pointer values: an inventory owns an item instance, and two
// instances with the same name are still distinct items.
type Item interface {
	Name() string
	Description() string
	Weight() float64
	Value() int
	Stackable() bool
	Kind() Kind
}

// Base carries the fields shared by every variant
type Base struct {
	name        string
	description string
	weight      float64
	value       int
	stackable   bool
}

// BaseConfig describes the shared fields of a new item
type BaseConfig struct {
	Name        string
	Description string
	Weight      float64
	Value       int
	Stackable   bool
}

func newBase(cfg BaseConfig) Base {
	weight := RoundWeight(cfg.Weight)
	if weight < 0 {
		weight = 0
	}
	value := cfg.Value
	if value < 0 {
		value = 0
	}

	return Base{
		name:        cfg.Name,
		description: cfg.Description,
		weight:      weight,
		value:       value,
		stackable:   cfg.Stackable,
	}
}

// Name returns the display name
func (b *Base) Name() string { return b.name }

// Description returns the flavor text
func (b *Base) Description() string { return b.description }

// Weight returns the carry weight
func (b *Base) Weight() float64 { return b.weight }

// Value returns the price in gold
func (b *Base) Value() int { return b.value }

// Stackable reports whether the item is a stackable kind
func (b *Base) Stackable() bool { return b.stackable }

// Material is a plain crafting ingredient
type Material struct {
	Base
}

// NewMaterial creates a stackable crafting material
func NewMaterial(name, description string, weight float64, value int) *Material {
	return &Material{Base: newBase(BaseConfig{
		Name:        name,
		Description: description,
		Weight:      weight,
		Value:       value,
		Stackable:   true,
	})}
}

// Kind returns KindMaterial
func (m *Material) Kind() Kind { return KindMaterial }
