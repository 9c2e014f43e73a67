package character

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-adventure/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/quest"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/names"
)

// Direction is a compass step on the grid
type Direction string

// Directions
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// ParseDirection resolves a direction token, ignoring case
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(names.Fold(s)); d {
	case North, South, East, West:
		return d, nil
	default:
		return "", errors.WithReasonf(errors.ReasonInvalidDirection,
			"%q is not a direction, use north, south, east or west", s)
	}
}

// Step returns the position one tile away in the direction
func (p Position) Step(d Direction) Position {
	switch d {
	case North:
		p.Y++
	case South:
		p.Y--
	case East:
		p.X++
	case West:
		p.X--
	}
	return p
}

// Update applies one simulation tick: hunger and thirst decay, and an
// empty hunger or thirst meter costs health
func (c *Character) Update(_ context.Context) Vitals {
	c.vitals.Hunger = clampVital(c.vitals.Hunger - HungerDecay)
	c.vitals.Thirst = clampVital(c.vitals.Thirst - ThirstDecay)

	if c.vitals.Hunger <= 0 {
		c.TakeDamage(StarvationDamage)
	}
	if c.vitals.Thirst <= 0 {
		c.TakeDamage(DehydrationDamage)
	}

	return c.vitals
}

// MoveResult is the outcome of a successful move
type MoveResult struct {
	Position     Position
	StaminaSpent float64
	Encounter    EncounterView
	Report       Report
}

// Move validates the direction, spends stamina, steps one tile, replaces
// the encounter set and advances exploration quests. A failed move costs
// nothing.
func (c *Character) Move(ctx context.Context, direction string) (*MoveResult, error) {
	dir, err := ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	if err := c.UseStamina(MoveStaminaCost); err != nil {
		return nil, err
	}

	next := c.position.Step(dir)
	encounter, err := c.generateEncounter(next)
	if err != nil {
		c.RestoreStamina(MoveStaminaCost)
		return nil, err
	}

	c.position = next
	c.nearby = encounter

	return &MoveResult{
		Position:     c.position,
		StaminaSpent: MoveStaminaCost,
		Encounter:    c.LookAround(),
		Report:       c.advanceQuests(ctx, quest.TypeExploreAreas),
	}, nil
}

func (c *Character) generateEncounter(pos Position) (Encounter, error) {
	if c.encounters == nil {
		return Encounter{}, nil
	}

	generated, err := c.encounters.Generate(pos)
	if err != nil {
		return Encounter{}, errors.Wrap(err, "failed to generate encounter")
	}
	if generated == nil {
		return Encounter{}, nil
	}
	return *generated, nil
}

// TakeResult is the outcome of picking up an item
type TakeResult struct {
	Item   ItemView
	Report Report
}

// TakeItem moves a nearby item into the inventory. If it does not fit it
// stays where it is.
func (c *Character) TakeItem(ctx context.Context, name string) (*TakeResult, error) {
	idx := -1
	for i, it := range c.nearby.Items {
		if names.Equal(it.Name(), name) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.ItemNotFoundf("there is no %s here", name)
	}

	found := c.nearby.Items[idx]
	if err := c.inventory.Add(found); err != nil {
		return nil, err
	}
	c.nearby.Items = append(c.nearby.Items[:idx], c.nearby.Items[idx+1:]...)

	return &TakeResult{
		Item:   NewItemView(found),
		Report: c.advanceQuests(ctx, quest.TypeCollectItems),
	}, nil
}

// AttackResult is the outcome of one attack. WeaponName is empty for a
// bare-handed attack.
type AttackResult struct {
	TargetID         string
	TargetName       string
	Damage           float64
	TargetHealth     float64
	Defeated         bool
	WeaponName       string
	WeaponDurability float64
	Report           Report
}

// Attack strikes a nearby enemy with the equipped weapon, or bare-handed
// for BaseDamage. A defeated enemy leaves the encounter set and pays a
// flat KillExperience.
func (c *Character) Attack(ctx context.Context, name string) (*AttackResult, error) {
	idx := findCharacter(c.nearby.Enemies, name)
	if idx < 0 {
		return nil, errors.TargetNotFoundf("%s is not here", name)
	}
	target := c.nearby.Enemies[idx]

	if err := c.UseStamina(AttackStaminaCost); err != nil {
		return nil, err
	}

	result := &AttackResult{
		TargetID:   target.id,
		TargetName: target.name,
		Damage:     BaseDamage,
	}
	if weapon, ok := c.equipment.Get(equipment.SlotWeapon).(*item.Weapon); ok {
		result.Damage = weapon.Damage()
		weapon.Wear(WeaponWearPerHit)
		result.WeaponName = weapon.Name()
		result.WeaponDurability = weapon.Durability()
	}
	target.TakeDamage(result.Damage)
	result.TargetHealth = target.vitals.Health

	if target.IsDefeated() {
		c.nearby.Enemies = append(c.nearby.Enemies[:idx], c.nearby.Enemies[idx+1:]...)
		result.Defeated = true
		result.Report = c.AddExperience(ctx, KillExperience)
		c.publish(ctx, EventEnemyDefeated, target)
		result.Report.merge(c.advanceQuests(ctx, quest.TypeKillEnemies))
	}

	return result, nil
}

// TalkResult is the outcome of talking to an NPC
type TalkResult struct {
	NPCID    string
	NPCName  string
	Greeting string
	Report   Report
}

// TalkTo greets a nearby NPC
func (c *Character) TalkTo(ctx context.Context, name string) (*TalkResult, error) {
	idx := findCharacter(c.nearby.NPCs, name)
	if idx < 0 {
		return nil, errors.TargetNotFoundf("%s is not here", name)
	}
	npc := c.nearby.NPCs[idx]

	return &TalkResult{
		NPCID:    npc.id,
		NPCName:  npc.name,
		Greeting: fmt.Sprintf("Hello, %s! How can I help you today?", c.name),
		Report:   c.advanceQuests(ctx, quest.TypeTalkToNPCs),
	}, nil
}

func findCharacter(chars []*Character, name string) int {
	for i, ch := range chars {
		if names.Equal(ch.name, name) {
			return i
		}
	}
	return -1
}
