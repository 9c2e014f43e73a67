package item

import (
	"github.com/KirkDiggler/rpg-adventure/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
)

// Catalog names
const (
	NameHealthPotion = "Health Potion"
	NameRustyKnife   = "Rusty Knife"
	NameWoodenSword  = "Wooden Sword"
	NameHerb         = "Herb"
	NameWater        = "Water"
	NameWood         = "Wood"
	NameString       = "String"
	NameTinkersApron = "Tinker's Apron"
)

// Factory builds a fresh item instance
type Factory func() Item

// HealthPotion restores 25 health
func HealthPotion() Item {
	return NewConsumable(NameHealthPotion, "Restores 25 health", 0.5, 10, Restores{Health: 25})
}

// RustyKnife is the basic starting weapon
func RustyKnife() Item {
	return NewWeapon(WeaponConfig{
		BaseConfig: BaseConfig{Name: NameRustyKnife, Description: "A basic weapon", Weight: 1.0, Value: 5},
		Damage:     10,
		Durability: 100,
		Type:       WeaponTypeMelee,
	})
}

// WoodenSword is a craftable training weapon
func WoodenSword() Item {
	return NewWeapon(WeaponConfig{
		BaseConfig: BaseConfig{Name: NameWoodenSword, Description: "A basic training weapon", Weight: 2.0, Value: 15},
		Damage:     8,
		Durability: 50,
		Type:       WeaponTypeMelee,
	})
}

// Herb is a healing plant used in potions
func Herb() Item {
	return NewMaterial(NameHerb, "A fragrant healing herb", 0.1, 2)
}

// Water is a flask of clean water
func Water() Item {
	return NewMaterial(NameWater, "A flask of clean water", 0.5, 1)
}

// Wood is a sturdy branch
func Wood() Item {
	return NewMaterial(NameWood, "A sturdy length of wood", 1.0, 2)
}

// String is a coil of twine
func String() Item {
	return NewMaterial(NameString, "A coil of twine", 0.1, 1)
}

// TinkersApron is chest gear granting +1 Crafting, enough to reach the
// recipe gate from a fresh character
func TinkersApron() Item {
	return NewEquipmentPiece(EquipmentPieceConfig{
		BaseConfig: BaseConfig{Name: NameTinkersApron, Description: "A leather apron full of tools", Weight: 1.5, Value: 30},
		Slot:       equipment.SlotChest,
		SkillBonus: map[stats.Skill]int{stats.SkillCrafting: 1},
	})
}

// StartingItems returns the kit every new character carries
func StartingItems() []Item {
	return []Item{HealthPotion(), RustyKnife()}
}

// Materials returns one of each crafting material
func Materials() []Factory {
	return []Factory{Herb, Water, Wood, String}
}

// CraftingLoot is the loot table used when crafting is enabled: a potion,
// every material, and the apron that unlocks the recipes
func CraftingLoot() []Factory {
	return append([]Factory{HealthPotion, TinkersApron}, Materials()...)
}
