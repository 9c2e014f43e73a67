package equipment

import (
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// Loadout maps each slot to at most one equipped item.
// It is the only record of what a character has equipped.
type Loadout struct {
	slots map[EquipmentSlot]Equippable
}

// NewLoadout creates an empty loadout
func NewLoadout() *Loadout {
	return &Loadout{slots: make(map[EquipmentSlot]Equippable)}
}

// Equip places the item in its slot. It fails with SLOT_OCCUPIED when the
// slot already holds an item; the occupant is never replaced.
func (l *Loadout) Equip(item Equippable) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}

	slot := item.Slot()
	if !slot.IsValid() {
		return errors.InvalidArgumentf("invalid slot %q", slot)
	}

	if current, ok := l.slots[slot]; ok {
		return errors.WithReasonf(errors.ReasonSlotOccupied, "%s slot already holds %s", slot, current.Name()).
			WithMeta("slot", slot.String())
	}

	l.slots[slot] = item
	return nil
}

// Unequip empties the slot and returns what was in it
func (l *Loadout) Unequip(slot EquipmentSlot) (Equippable, error) {
	item, ok := l.slots[slot]
	if !ok {
		return nil, errors.WithReasonf(errors.ReasonSlotEmpty, "nothing equipped in %s slot", slot).
			WithMeta("slot", slot.String())
	}

	delete(l.slots, slot)
	return item, nil
}

// Get returns the item in a slot, or nil
func (l *Loadout) Get(slot EquipmentSlot) Equippable {
	return l.slots[slot]
}

// All returns a copy of the slot map
func (l *Loadout) All() map[EquipmentSlot]Equippable {
	out := make(map[EquipmentSlot]Equippable, len(l.slots))
	for slot, item := range l.slots {
		out[slot] = item
	}
	return out
}

// Stats sums the attribute bonuses of every equipped item on a zero base.
// It does not modify the loadout.
func (l *Loadout) Stats() stats.Stats {
	var total stats.Stats
	for _, item := range l.slots {
		for attribute, amount := range item.Bonuses().Attributes {
			total.Increase(attribute, amount)
		}
	}
	return total
}

// SkillBonuses sums the skill bonuses of every equipped item
func (l *Loadout) SkillBonuses() map[stats.Skill]int {
	total := make(map[stats.Skill]int)
	for _, item := range l.slots {
		for skill, amount := range item.Bonuses().Skills {
			total[skill] += amount
		}
	}
	return total
}
