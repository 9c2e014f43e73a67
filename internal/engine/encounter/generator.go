// Package encounter generates the transient set of items, NPCs and enemies
// found on a tile after each move
package encounter

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/character"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/idgen"
)

// Percent chances on a d100, rolled independently per move
const (
	ItemChance   = 30
	NPCChance    = 20
	EnemyChance  = 15
	VillagerName = "Villager"
	BanditName   = "Bandit"
	VillagerHP   = 50.0
	BanditHP     = 75.0
)

// Config holds dependencies for the generator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
	// Loot is the table a found item is drawn from. Empty means Health
	// Potion only.
	Loot []item.Factory
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	for i, factory := range c.Loot {
		if factory == nil {
			vb.Fieldf("Loot", "entry %d is nil", i)
		}
	}
	return vb.Build()
}

// Generator rolls encounters. It implements character.EncounterGenerator.
type Generator struct {
	roller dice.Roller
	idGen  idgen.Generator
	loot   []item.Factory
}

var _ character.EncounterGenerator = (*Generator)(nil)

// New creates a generator
func New(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loot := cfg.Loot
	if len(loot) == 0 {
		loot = []item.Factory{item.HealthPotion}
	}

	return &Generator{
		roller: cfg.Roller,
		idGen:  cfg.IDGenerator,
		loot:   append([]item.Factory(nil), loot...),
	}, nil
}

// Generate rolls a fresh encounter for the tile. Position does not weight
// the rolls; every tile uses the same odds.
func (g *Generator) Generate(_ character.Position) (*character.Encounter, error) {
	enc := &character.Encounter{}

	found, err := g.chance(ItemChance)
	if err != nil {
		return nil, err
	}
	if found {
		it, err := g.drawLoot()
		if err != nil {
			return nil, err
		}
		enc.Items = append(enc.Items, it)
	}

	met, err := g.chance(NPCChance)
	if err != nil {
		return nil, err
	}
	if met {
		enc.NPCs = append(enc.NPCs, character.NewNPC(g.idGen.Generate(), VillagerName, VillagerHP))
	}

	ambushed, err := g.chance(EnemyChance)
	if err != nil {
		return nil, err
	}
	if ambushed {
		enc.Enemies = append(enc.Enemies, character.NewNPC(g.idGen.Generate(), BanditName, BanditHP))
	}

	return enc, nil
}

func (g *Generator) chance(percent int) (bool, error) {
	roll, err := g.roller.Roll(100)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll encounter chance")
	}
	return roll <= percent, nil
}

func (g *Generator) drawLoot() (item.Item, error) {
	if len(g.loot) == 1 {
		return g.loot[0](), nil
	}

	roll, err := g.roller.Roll(len(g.loot))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll loot")
	}
	if roll < 1 || roll > len(g.loot) {
		return nil, errors.Internalf("loot roll %d out of range 1-%d", roll, len(g.loot))
	}
	return g.loot[roll-1](), nil
}
