package item_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-adventure/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
)

type ItemTestSuite struct {
	suite.Suite
}

func TestItemTestSuite(t *testing.T) {
	suite.Run(t, new(ItemTestSuite))
}

func (s *ItemTestSuite) TestStartingItems() {
	kit := item.StartingItems()
	s.Require().Len(kit, 2)

	weight := 0.0
	value := 0
	for _, it := range kit {
		weight += it.Weight()
		value += it.Value()
	}
	s.InDelta(1.5, weight, 1e-9)
	s.Equal(15, value)

	potion, ok := kit[0].(*item.Consumable)
	s.Require().True(ok)
	s.Equal(item.Restores{Health: 25}, potion.Restores())
	s.True(potion.Stackable())

	knife, ok := kit[1].(*item.Weapon)
	s.Require().True(ok)
	s.Equal(10.0, knife.Damage())
	s.Equal(100.0, knife.Durability())
	s.Equal(item.WeaponTypeMelee, knife.Type())
	s.False(knife.Stackable())
}

func (s *ItemTestSuite) TestFactoriesReturnDistinctInstances() {
	a := item.HealthPotion()
	b := item.HealthPotion()
	s.Equal(a.Name(), b.Name())
	s.NotSame(a, b)
}

func (s *ItemTestSuite) TestNegativeWeightAndValueFloorAtZero() {
	m := item.NewMaterial("Feather", "", -1, -3)
	s.Equal(0.0, m.Weight())
	s.Equal(0, m.Value())
	s.Equal(item.KindMaterial, m.Kind())
}

func (s *ItemTestSuite) TestWeaponDurability() {
	w := item.NewWeapon(item.WeaponConfig{
		BaseConfig: item.BaseConfig{Name: "Axe"},
		Durability: 30,
	})

	w.Wear(50)
	s.Equal(0.0, w.Durability())

	w.Repair(250)
	s.Equal(item.MaxDurability, w.Durability())

	w.Wear(12.5)
	s.Equal(87.5, w.Durability())
}

func (s *ItemTestSuite) TestArmorSlots() {
	testCases := []struct {
		armorType item.ArmorType
		slot      equipment.EquipmentSlot
	}{
		{item.ArmorTypeHead, equipment.SlotHead},
		{item.ArmorTypeChest, equipment.SlotChest},
		{item.ArmorTypeLegs, equipment.SlotLegs},
		{item.ArmorTypeFeet, equipment.SlotFeet},
		{item.ArmorTypeShield, equipment.SlotShield},
	}

	for _, tc := range testCases {
		s.Run(string(tc.armorType), func() {
			a := item.NewArmor(item.ArmorConfig{
				BaseConfig: item.BaseConfig{Name: "Plate"},
				Defense:    4,
				Durability: 200,
				Type:       tc.armorType,
			})
			s.Equal(tc.slot, a.Slot())
			s.Equal(item.MaxDurability, a.Durability())
		})
	}
}

func (s *ItemTestSuite) TestWeightsRoundToScale() {
	s.Equal(0.0, item.NewMaterial("Dust", "", 0.0004, 0).Weight())
	s.Equal(0.001, item.NewMaterial("Grain", "", 0.0006, 0).Weight())
	s.Equal(0.123, item.NewMaterial("Pebble", "", 0.12345, 0).Weight())
	s.Equal(0.5, item.HealthPotion().Weight())
}

func (s *ItemTestSuite) TestCraftingLoot() {
	loot := item.CraftingLoot()
	names := make([]string, 0, len(loot))
	for _, f := range loot {
		names = append(names, f().Name())
	}
	s.ElementsMatch([]string{
		item.NameHealthPotion, item.NameTinkersApron,
		item.NameHerb, item.NameWater, item.NameWood, item.NameString,
	}, names)

	apron, ok := item.TinkersApron().(*item.EquipmentPiece)
	s.Require().True(ok)
	s.Equal(equipment.SlotChest, apron.Slot())
	s.Equal(1, apron.Bonuses().Skills[stats.SkillCrafting])
}

func (s *ItemTestSuite) TestEquipmentPieceCopiesBonuses() {
	attrs := map[string]int{"strength": 2}
	piece := item.NewEquipmentPiece(item.EquipmentPieceConfig{
		BaseConfig: item.BaseConfig{Name: "Gauntlets", Weight: 1, Value: 20},
		Slot:       equipment.SlotChest,
		Attributes: attrs,
		SkillBonus: map[stats.Skill]int{stats.SkillCrafting: 1},
	})

	attrs["strength"] = 99
	s.Equal(2, piece.Bonuses().Attributes["strength"])
	s.Equal(1, piece.Bonuses().Skills[stats.SkillCrafting])
	s.Equal(equipment.SlotChest, piece.Slot())
	s.Equal(item.KindEquipment, piece.Kind())
}
