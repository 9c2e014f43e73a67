package item

import (
	"github.com/KirkDiggler/rpg-adventure/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
)

// EquipmentPiece is wearable gear that grants stat and skill bonuses
type EquipmentPiece struct {
	Base
	slot    equipment.EquipmentSlot
	bonuses equipment.Bonuses
}

// EquipmentPieceConfig describes a new piece of gear
type EquipmentPieceConfig struct {
	BaseConfig
	Slot       equipment.EquipmentSlot
	Attributes map[string]int
	SkillBonus map[stats.Skill]int
}

// NewEquipmentPiece creates a piece of gear
func NewEquipmentPiece(cfg EquipmentPieceConfig) *EquipmentPiece {
	bonuses := equipment.Bonuses{
		Attributes: make(map[string]int, len(cfg.Attributes)),
		Skills:     make(map[stats.Skill]int, len(cfg.SkillBonus)),
	}
	for k, v := range cfg.Attributes {
		bonuses.Attributes[k] = v
	}
	for k, v := range cfg.SkillBonus {
		bonuses.Skills[k] = v
	}

	return &EquipmentPiece{
		Base:    newBase(cfg.BaseConfig),
		slot:    cfg.Slot,
		bonuses: bonuses,
	}
}

// Kind returns KindEquipment
func (e *EquipmentPiece) Kind() Kind { return KindEquipment }

// Slot returns the slot the piece occupies
func (e *EquipmentPiece) Slot() equipment.EquipmentSlot { return e.slot }

// Bonuses returns the stat modifiers granted while equipped
func (e *EquipmentPiece) Bonuses() equipment.Bonuses { return e.bonuses }

// Slot returns the weapon slot
func (w *Weapon) Slot() equipment.EquipmentSlot { return equipment.SlotWeapon }

// Bonuses returns no stat modifiers; a weapon contributes damage instead
func (w *Weapon) Bonuses() equipment.Bonuses { return equipment.Bonuses{} }

// Slot maps the armor type onto its slot
func (a *Armor) Slot() equipment.EquipmentSlot {
	switch a.armorType {
	case ArmorTypeHead:
		return equipment.SlotHead
	case ArmorTypeChest:
		return equipment.SlotChest
	case ArmorTypeLegs:
		return equipment.SlotLegs
	case ArmorTypeFeet:
		return equipment.SlotFeet
	case ArmorTypeShield:
		return equipment.SlotShield
	default:
		return ""
	}
}

// Bonuses returns no stat modifiers; armor contributes defense instead
func (a *Armor) Bonuses() equipment.Bonuses { return equipment.Bonuses{} }

var (
	_ equipment.Equippable = (*EquipmentPiece)(nil)
	_ equipment.Equippable = (*Weapon)(nil)
	_ equipment.Equippable = (*Armor)(nil)
)
