// Package equipment models the slot-keyed gear a character wears
package equipment

import (
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/names"
)

// EquipmentSlot represents the type of equipment slot
type EquipmentSlot string

// Define all available equipment slots
const (
	SlotWeapon EquipmentSlot = "weapon"
	SlotHead   EquipmentSlot = "head"
	SlotChest  EquipmentSlot = "chest"
	SlotLegs   EquipmentSlot = "legs"
	SlotFeet   EquipmentSlot = "feet"
	SlotShield EquipmentSlot = "shield"
)

// String returns the string representation of the equipment slot
func (s EquipmentSlot) String() string {
	return string(s)
}

// IsValid checks if the equipment slot is valid
func (s EquipmentSlot) IsValid() bool {
	switch s {
	case SlotWeapon, SlotHead, SlotChest, SlotLegs, SlotFeet, SlotShield:
		return true
	default:
		return false
	}
}

// AllEquipmentSlots returns a slice of all valid equipment slots
func AllEquipmentSlots() []EquipmentSlot {
	return []EquipmentSlot{
		SlotWeapon,
		SlotHead,
		SlotChest,
		SlotLegs,
		SlotFeet,
		SlotShield,
	}
}

// EquipmentSlotFromString converts a slot name, ignoring case
// Returns the slot and true if valid, empty slot and false if invalid
func EquipmentSlotFromString(s string) (EquipmentSlot, bool) {
	slot := EquipmentSlot(names.Fold(s))
	if slot.IsValid() {
		return slot, true
	}
	return "", false
}

// Bonuses are the stat modifiers an equipped item grants
type Bonuses struct {
	Attributes map[string]int
	Skills     map[stats.Skill]int
}

// Equippable is anything that can occupy a slot
type Equippable interface {
	Name() string
	Slot() EquipmentSlot
	Bonuses() Bonuses
}
