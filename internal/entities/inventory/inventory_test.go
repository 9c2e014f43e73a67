package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/rpg-adventure/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

type InventoryTestSuite struct {
	suite.Suite
	inv *inventory.Inventory
}

func TestInventoryTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryTestSuite))
}

func (s *InventoryTestSuite) SetupTest() {
	s.inv = inventory.New(inventory.DefaultMaxWeight)
}

func (s *InventoryTestSuite) TestAddTracksWeight() {
	s.Require().NoError(s.inv.Add(item.HealthPotion()))
	s.Require().NoError(s.inv.Add(item.RustyKnife()))

	s.Equal(1.5, s.inv.CurrentWeight())
	s.Equal(2, s.inv.Len())
	s.Equal(item.NameHealthPotion, s.inv.Items()[0].Name())
}

func (s *InventoryTestSuite) TestAddBeyondCapacityLeavesInventoryUnchanged() {
	inv := inventory.New(2.0)
	s.Require().NoError(inv.Add(item.RustyKnife()))

	err := inv.Add(item.WoodenSword())

	s.Require().Error(err)
	s.True(errors.HasReason(err, errors.ReasonCapacityExceeded))
	s.Equal(1, inv.Len())
	s.Equal(1.0, inv.CurrentWeight())
	s.False(inv.Fits(item.WoodenSword()))
	s.True(inv.Fits(item.RustyKnife()))
}

func (s *InventoryTestSuite) TestAddUpToExactCapacity() {
	inv := inventory.New(1.5)
	s.Require().NoError(inv.Add(item.HealthPotion()))
	s.Require().NoError(inv.Add(item.RustyKnife()))
	s.Equal(inv.MaxWeight(), inv.CurrentWeight())
}

func (s *InventoryTestSuite) TestRemoveByIdentity() {
	first := item.HealthPotion()
	second := item.HealthPotion()
	s.Require().NoError(s.inv.Add(first))
	s.Require().NoError(s.inv.Add(second))

	s.Require().NoError(s.inv.Remove(second))
	s.Require().Len(s.inv.Items(), 1)
	s.Same(first, s.inv.Items()[0])

	err := s.inv.Remove(second)
	s.True(errors.HasReason(err, errors.ReasonItemNotFound))
	s.Equal(0.5, s.inv.CurrentWeight())
}

func (s *InventoryTestSuite) TestNameOperationsTreatSameNameAsInterchangeable() {
	s.Require().NoError(s.inv.Add(item.Herb()))
	s.Require().NoError(s.inv.Add(item.Water()))
	s.Require().NoError(s.inv.Add(item.Herb()))

	s.Equal(2, s.inv.CountByName("herb"))

	removed, err := s.inv.RemoveOneByName("HERB")
	s.Require().NoError(err)
	s.Equal(item.NameHerb, removed.Name())
	s.Equal(1, s.inv.CountByName("Herb"))

	_, err = s.inv.RemoveOneByName("wood")
	s.True(errors.HasReason(err, errors.ReasonItemNotFound))
}

func (s *InventoryTestSuite) TestFindIsCaseInsensitiveExactMatch() {
	s.Require().NoError(s.inv.Add(item.HealthPotion()))

	found, ok := s.inv.Find("health POTION")
	s.True(ok)
	s.Equal(item.NameHealthPotion, found.Name())

	_, ok = s.inv.Find("health")
	s.False(ok)
}

func (s *InventoryTestSuite) TestItemsReturnsCopy() {
	s.Require().NoError(s.inv.Add(item.HealthPotion()))
	items := s.inv.Items()
	items[0] = nil
	s.NotNil(s.inv.Items()[0])
}

func (s *InventoryTestSuite) TestAddNil() {
	s.True(errors.IsInvalidArgument(s.inv.Add(nil)))
}

func (s *InventoryTestSuite) TestSubUnitWeightsCountAsZero() {
	dust := item.NewMaterial("Dust", "", 0.0004, 0)
	s.Require().NoError(s.inv.Add(dust))
	s.Require().NoError(s.inv.Add(item.Herb()))

	s.Equal(0.0, dust.Weight())
	s.Equal(dust.Weight()+item.Herb().Weight(), s.inv.CurrentWeight())
}

func TestArbitraryWeightsEqualSumOfItems(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		inv := inventory.New(inventory.DefaultMaxWeight)

		count := rapid.IntRange(1, 40).Draw(t, "count")
		for i := 0; i < count; i++ {
			w := rapid.Float64Range(0, 2).Draw(t, "weight")
			if err := inv.Add(item.NewMaterial("Pebble", "", w, 0)); err != nil {
				t.Fatalf("add %v: %v", w, err)
			}
		}

		sum := 0.0
		for _, held := range inv.Items() {
			sum += held.Weight()
		}
		if diff := sum - inv.CurrentWeight(); diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("weight %v != sum %v", inv.CurrentWeight(), sum)
		}
	})
}

func TestWeightAlwaysEqualsSumOfItems(t *testing.T) {
	factories := []item.Factory{item.HealthPotion, item.RustyKnife, item.WoodenSword, item.Herb, item.Water, item.Wood, item.String}

	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.Float64Range(0, 20).Draw(t, "capacity")
		inv := inventory.New(capacity)

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if inv.Len() > 0 && rapid.Bool().Draw(t, "remove") {
				held := inv.Items()
				victim := held[rapid.IntRange(0, len(held)-1).Draw(t, "victim")]
				if err := inv.Remove(victim); err != nil {
					t.Fatalf("remove held item: %v", err)
				}
			} else {
				next := rapid.SampledFrom(factories).Draw(t, "item")()
				before := inv.Items()
				beforeWeight := inv.CurrentWeight()
				if err := inv.Add(next); err != nil {
					if !errors.HasReason(err, errors.ReasonCapacityExceeded) {
						t.Fatalf("unexpected add error: %v", err)
					}
					if inv.Len() != len(before) || inv.CurrentWeight() != beforeWeight {
						t.Fatalf("failed add mutated inventory")
					}
				}
			}

			sum := 0.0
			for _, held := range inv.Items() {
				sum += held.Weight()
			}
			if diff := sum - inv.CurrentWeight(); diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("weight %v != sum %v", inv.CurrentWeight(), sum)
			}
			if inv.CurrentWeight() > inv.MaxWeight()+1e-9 {
				t.Fatalf("weight %v exceeds max %v", inv.CurrentWeight(), inv.MaxWeight())
			}
		}
	})
}
