// Package character implements the character aggregate: vitals, leveling,
// inventory, equipment, skills, quests and every player-facing action.
//
// A Character is not safe for concurrent use. Callers serialize all actions
// for one character, and hold both characters exclusively for Exchange.
package character

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/crafting"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/quest"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/clock"
)

//go:generate mockgen -destination=mock/mock_sources.go -package=charactermock github.com/KirkDiggler/rpg-adventure/internal/engine/character EncounterGenerator,QuestSource

// Tuning constants
const (
	MaxVital          = 100.0
	StartingGold      = 100
	StartingLevel     = 1
	MaxActiveQuests   = 3
	MoveStaminaCost   = 5.0
	AttackStaminaCost = 10.0
	BaseDamage        = 5.0
	KillExperience    = 50
	HungerDecay       = 0.1
	ThirstDecay       = 0.2
	StarvationDamage  = 0.5
	DehydrationDamage = 1.0
	WeaponWearPerHit  = 1.0
	BuyTradingXP      = 10
	SellTradingXP     = 5
)

// Entity types
const (
	EntityTypePlayer = "character"
	EntityTypeNPC    = "npc"
)

// Position is a tile on the integer grid
type Position struct {
	X int
	Y int
}

// Vitals are the four clamped [0,100] resources
type Vitals struct {
	Health  float64
	Stamina float64
	Hunger  float64
	Thirst  float64
}

// Encounter is the transient set of things near a character
type Encounter struct {
	Items   []item.Item
	NPCs    []*Character
	Enemies []*Character
}

// EncounterGenerator produces the encounter set for a position
type EncounterGenerator interface {
	Generate(pos Position) (*Encounter, error)
}

// QuestSource hands out new quest instances
type QuestSource interface {
	Draw() (*quest.Quest, error)
}

// Config holds dependencies for a player character
type Config struct {
	ID         string
	Name       string
	MaxWeight  float64
	Encounters EncounterGenerator
	Quests     QuestSource
	Recipes    *crafting.Book
	EventBus   events.EventBus
	Clock      clock.Clock
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", c.ID, vb)
	errors.ValidateRequired("Name", c.Name, vb)
	if c.Encounters == nil {
		vb.RequiredField("Encounters")
	}
	if c.Quests == nil {
		vb.RequiredField("Quests")
	}
	if c.MaxWeight < 0 {
		vb.InvalidField("MaxWeight", "must not be negative")
	}
	return vb.Build()
}

// Character is the aggregate root of the simulation
type Character struct {
	id         string
	name       string
	entityType string
	createdAt  time.Time

	attributes stats.Stats
	skills     *stats.Skills
	inventory  *inventory.Inventory
	equipment  *equipment.Loadout

	vitals     Vitals
	level      int
	experience int
	gold       int
	position   Position
	nearby     Encounter

	activeQuests    []*quest.Quest
	completedQuests []*quest.Quest

	encounters EncounterGenerator
	quests     QuestSource
	recipes    *crafting.Book
	bus        events.EventBus
}

var _ core.Entity = (*Character)(nil)

// New creates a player character with full vitals, starting gold and the
// starting kit in the inventory
func New(cfg *Config) (*Character, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	maxWeight := cfg.MaxWeight
	if maxWeight == 0 {
		maxWeight = inventory.DefaultMaxWeight
	}
	recipes := cfg.Recipes
	if recipes == nil {
		recipes = crafting.DefaultBook()
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	c := newBase(cfg.ID, cfg.Name, EntityTypePlayer, maxWeight)
	c.createdAt = clk.Now()
	c.encounters = cfg.Encounters
	c.quests = cfg.Quests
	c.recipes = recipes
	c.bus = cfg.EventBus

	for _, it := range item.StartingItems() {
		if err := c.inventory.Add(it); err != nil {
			return nil, errors.Wrap(err, "starting kit does not fit")
		}
	}

	return c, nil
}

// NewNPC creates a disposable non-player character. NPCs carry the same
// starting kit and gold as players so they can trade, but only their
// health differs.
func NewNPC(id, name string, health float64) *Character {
	c := newBase(id, name, EntityTypeNPC, inventory.DefaultMaxWeight)
	c.vitals.Health = clampVital(health)
	for _, it := range item.StartingItems() {
		_ = c.inventory.Add(it)
	}
	return c
}

func newBase(id, name, entityType string, maxWeight float64) *Character {
	return &Character{
		id:         id,
		name:       name,
		entityType: entityType,
		attributes: stats.New(),
		skills:     stats.NewSkills(),
		inventory:  inventory.New(maxWeight),
		equipment:  equipment.NewLoadout(),
		vitals: Vitals{
			Health:  MaxVital,
			Stamina: MaxVital,
			Hunger:  MaxVital,
			Thirst:  MaxVital,
		},
		level: StartingLevel,
		gold:  StartingGold,
	}
}

// GetID returns the character id
func (c *Character) GetID() string { return c.id }

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string { return c.entityType }

// Name returns the display name
func (c *Character) Name() string { return c.name }

// CreatedAt returns when the character was created
func (c *Character) CreatedAt() time.Time { return c.createdAt }

// Vitals returns the current vitals
func (c *Character) Vitals() Vitals { return c.vitals }

// Health returns current health
func (c *Character) Health() float64 { return c.vitals.Health }

// Stamina returns current stamina
func (c *Character) Stamina() float64 { return c.vitals.Stamina }

// Level returns the character level
func (c *Character) Level() int { return c.level }

// Experience returns experience carried toward the next level
func (c *Character) Experience() int { return c.experience }

// Gold returns the purse
func (c *Character) Gold() int { return c.gold }

// Position returns the current tile
func (c *Character) Position() Position { return c.position }

// Inventory returns the owned inventory
func (c *Character) Inventory() *inventory.Inventory { return c.inventory }

// Equipment returns the loadout, the single record of equipped gear
func (c *Character) Equipment() *equipment.Loadout { return c.equipment }

// Skills returns the skill registry
func (c *Character) Skills() *stats.Skills { return c.skills }

// Stats returns base attributes plus equipment bonuses
func (c *Character) Stats() stats.Stats {
	return c.attributes.Plus(c.equipment.Stats())
}

// SkillLevel returns the trained level plus equipment bonuses
func (c *Character) SkillLevel(skill stats.Skill) int {
	return c.skills.Level(skill) + c.equipment.SkillBonuses()[skill]
}

// ActiveQuests returns the quests in progress
func (c *Character) ActiveQuests() []*quest.Quest {
	out := make([]*quest.Quest, len(c.activeQuests))
	copy(out, c.activeQuests)
	return out
}

// CompletedQuests returns the completed quests in completion order
func (c *Character) CompletedQuests() []*quest.Quest {
	out := make([]*quest.Quest, len(c.completedQuests))
	copy(out, c.completedQuests)
	return out
}

// Nearby returns a copy of the current encounter set
func (c *Character) Nearby() Encounter {
	return Encounter{
		Items:   append([]item.Item(nil), c.nearby.Items...),
		NPCs:    append([]*Character(nil), c.nearby.NPCs...),
		Enemies: append([]*Character(nil), c.nearby.Enemies...),
	}
}

// SetVitals overwrites vitals, clamping each to [0,100]
func (c *Character) SetVitals(v Vitals) {
	c.vitals = Vitals{
		Health:  clampVital(v.Health),
		Stamina: clampVital(v.Stamina),
		Hunger:  clampVital(v.Hunger),
		Thirst:  clampVital(v.Thirst),
	}
}

// TakeDamage lowers health, flooring at zero
func (c *Character) TakeDamage(amount float64) {
	c.vitals.Health = clampVital(c.vitals.Health - amount)
}

// Heal raises health, capped at 100
func (c *Character) Heal(amount float64) {
	c.vitals.Health = clampVital(c.vitals.Health + amount)
}

// RestoreStamina raises stamina, capped at 100
func (c *Character) RestoreStamina(amount float64) {
	c.vitals.Stamina = clampVital(c.vitals.Stamina + amount)
}

// Eat raises hunger, capped at 100
func (c *Character) Eat(amount float64) {
	c.vitals.Hunger = clampVital(c.vitals.Hunger + amount)
}

// Drink raises thirst, capped at 100
func (c *Character) Drink(amount float64) {
	c.vitals.Thirst = clampVital(c.vitals.Thirst + amount)
}

// AddGold changes the purse by delta. Spending more than is held fails
// with INSUFFICIENT_FUNDS and leaves the purse unchanged.
func (c *Character) AddGold(delta int) error {
	if c.gold+delta < 0 {
		return errors.InsufficientFunds(-delta, c.gold)
	}
	c.gold += delta
	return nil
}

// IsDefeated reports whether health has reached zero
func (c *Character) IsDefeated() bool {
	return c.vitals.Health <= 0
}

// UseStamina spends stamina if enough is available; otherwise nothing is
// deducted and INSUFFICIENT_STAMINA is returned
func (c *Character) UseStamina(amount float64) error {
	if c.vitals.Stamina < amount {
		return errors.InsufficientStamina(amount, c.vitals.Stamina)
	}
	c.vitals.Stamina = clampVital(c.vitals.Stamina - amount)
	return nil
}

func clampVital(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > MaxVital:
		return MaxVital
	default:
		return v
	}
}
