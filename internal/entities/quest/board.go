package quest

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/idgen"
)

// Template is the fixed definition a quest is instantiated from
type Template struct {
	Title            string
	Description      string
	ExperienceReward int
	Type             Type
	Target           int
}

// Templates returns the closed set of quest templates in type order
func Templates() []Template {
	return []Template{
		{
			Title:            "Bandit Hunt",
			Description:      "Defeat bandits terrorizing the area",
			ExperienceReward: 100,
			Type:             TypeKillEnemies,
			Target:           3,
		},
		{
			Title:            "Herb Gathering",
			Description:      "Collect healing herbs for the village healer",
			ExperienceReward: 75,
			Type:             TypeCollectItems,
			Target:           5,
		},
		{
			Title:            "Village Survey",
			Description:      "Talk to villagers about recent events",
			ExperienceReward: 50,
			Type:             TypeTalkToNPCs,
			Target:           3,
		},
		{
			Title:            "Area Exploration",
			Description:      "Explore new areas of the map",
			ExperienceReward: 150,
			Type:             TypeExploreAreas,
			Target:           4,
		},
	}
}

// BonusRewardChance is the d100 ceiling for attaching a bonus item
const BonusRewardChance = 50

// BoardConfig holds dependencies for the quest board
type BoardConfig struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are present
func (c *BoardConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Board draws new quest instances from the templates
type Board struct {
	roller dice.Roller
	idGen  idgen.Generator
}

// NewBoard creates a quest board
func NewBoard(cfg *BoardConfig) (*Board, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Board{roller: cfg.Roller, idGen: cfg.IDGenerator}, nil
}

// Draw picks a template uniformly at random and, on an independent roll,
// attaches a bonus Health Potion reward.
func (b *Board) Draw() (*Quest, error) {
	templates := Templates()

	pick, err := b.roller.Roll(len(templates))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll quest type")
	}
	if pick < 1 || pick > len(templates) {
		return nil, errors.Internalf("quest roll %d out of range", pick)
	}
	tmpl := templates[pick-1]

	q := New(Config{
		ID:               b.idGen.Generate(),
		Title:            tmpl.Title,
		Description:      tmpl.Description,
		ExperienceReward: tmpl.ExperienceReward,
		Type:             tmpl.Type,
		Target:           tmpl.Target,
	})

	bonus, err := b.roller.Roll(100)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll quest reward")
	}
	if bonus <= BonusRewardChance {
		q.AddItemReward(item.HealthPotion())
	}

	return q, nil
}
