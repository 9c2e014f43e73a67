package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the character's event bus
const (
	EventLevelUp        = "adventure.character.level_up"
	EventQuestCompleted = "adventure.quest.completed"
	EventEnemyDefeated  = "adventure.combat.enemy_defeated"
	EventItemCrafted    = "adventure.crafting.item_crafted"
	EventTradeCompleted = "adventure.trade.completed"
)

// EventTypes lists every event type a character publishes
func EventTypes() []string {
	return []string{EventLevelUp, EventQuestCompleted, EventEnemyDefeated, EventItemCrafted, EventTradeCompleted}
}

// publish is best-effort: a failing subscriber never undoes an action
func (c *Character) publish(ctx context.Context, eventType string, target core.Entity) {
	if c.bus == nil {
		return
	}
	if target == nil {
		target = c
	}

	if err := c.bus.Publish(ctx, events.NewGameEvent(eventType, c, target)); err != nil {
		slog.Warn("event publish failed",
			"event", eventType,
			"character_id", c.id,
			"error", err)
	}
}
