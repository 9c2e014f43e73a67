// Package quest tracks quest progress toward completion
package quest

import (
	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
)

// Type is the action that advances a quest
type Type string

// Quest types
const (
	TypeKillEnemies  Type = "kill_enemies"
	TypeCollectItems Type = "collect_items"
	TypeTalkToNPCs   Type = "talk_to_npcs"
	TypeExploreAreas Type = "explore_areas"
)

// AllTypes returns the quest types in template order
func AllTypes() []Type {
	return []Type{TypeKillEnemies, TypeCollectItems, TypeTalkToNPCs, TypeExploreAreas}
}

// String returns the string representation of the type
func (t Type) String() string {
	return string(t)
}

// EntityType is the core.Entity type of a quest
const EntityType = "quest"

// Quest is a single-counter quest. Progress only grows, is capped at the
// target, and completion is a one-way latch.
type Quest struct {
	id               string
	title            string
	description      string
	experienceReward int
	itemRewards      []item.Item
	questType        Type
	target           int
	current          int
	completed        bool
}

// Config describes a new quest
type Config struct {
	ID               string
	Title            string
	Description      string
	ExperienceReward int
	Type             Type
	Target           int
}

// New creates an incomplete quest with no progress
func New(cfg Config) *Quest {
	return &Quest{
		id:               cfg.ID,
		title:            cfg.Title,
		description:      cfg.Description,
		experienceReward: cfg.ExperienceReward,
		questType:        cfg.Type,
		target:           cfg.Target,
	}
}

// GetID returns the quest instance id
func (q *Quest) GetID() string { return q.id }

// GetType returns the entity type for rpg-toolkit
func (q *Quest) GetType() string { return EntityType }

// Title returns the quest title
func (q *Quest) Title() string { return q.title }

// Description returns the quest text
func (q *Quest) Description() string { return q.description }

// ExperienceReward returns the experience paid on completion
func (q *Quest) ExperienceReward() int { return q.experienceReward }

// Type returns the action that advances the quest
func (q *Quest) Type() Type { return q.questType }

// Target returns the count needed to complete
func (q *Quest) Target() int { return q.target }

// Current returns the progress so far
func (q *Quest) Current() int { return q.current }

// IsCompleted reports whether the latch has flipped
func (q *Quest) IsCompleted() bool { return q.completed }

// AddItemReward attaches an item paid on completion
func (q *Quest) AddItemReward(it item.Item) {
	q.itemRewards = append(q.itemRewards, it)
}

// ItemRewards returns the items paid on completion
func (q *Quest) ItemRewards() []item.Item {
	out := make([]item.Item, len(q.itemRewards))
	copy(out, q.itemRewards)
	return out
}

// UpdateProgress advances the counter by amount, capped at the target.
// It returns true only on the call that completes the quest.
func (q *Quest) UpdateProgress(amount int) bool {
	if q.completed || amount <= 0 {
		return false
	}

	q.current += amount
	if q.current > q.target {
		q.current = q.target
	}
	if q.current >= q.target {
		q.completed = true
		return true
	}
	return false
}
