package adventure

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// logEvent records domain events from every character
func logEvent(_ context.Context, e events.Event) error {
	attrs := []any{"event", e.Type()}
	if src := e.Source(); src != nil {
		attrs = append(attrs, "source_id", src.GetID())
	}
	if target := e.Target(); target != nil {
		attrs = append(attrs, "target_id", target.GetID(), "target_type", target.GetType())
	}

	slog.Info("adventure event", attrs...)
	return nil
}
