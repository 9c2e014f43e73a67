// Package adventure implements the adventure orchestrator. It owns the
// player store and serializes every action on a player through a Locker.
package adventure

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/character"
	"github.com/KirkDiggler/rpg-adventure/internal/engine/crafting"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/lock"
	"github.com/KirkDiggler/rpg-adventure/internal/repositories/player"
	"github.com/KirkDiggler/rpg-adventure/internal/services/adventure"
)

// Config holds the dependencies for the adventure orchestrator
type Config struct {
	PlayerRepo player.Repository
	Locker     lock.Locker
	Encounters character.EncounterGenerator
	Quests     character.QuestSource
	Recipes    *crafting.Book  // Optional, defaults to crafting.DefaultBook
	EventBus   events.EventBus // Optional
	Clock      clock.Clock     // Optional
	MaxWeight  float64         // Optional, carrying capacity of new characters
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Locker == nil {
		vb.RequiredField("Locker")
	}
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

// Orchestrator implements the adventure.Service interface
type Orchestrator struct {
	playerRepo player.Repository
	locker     lock.Locker
	encounters character.EncounterGenerator
	quests     character.QuestSource
	recipes    *crafting.Book
	eventBus   events.EventBus
	clock      clock.Clock
	maxWeight  float64
}

// New creates a new adventure orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		playerRepo: cfg.PlayerRepo,
		locker:     cfg.Locker,
		encounters: cfg.Encounters,
		quests:     cfg.Quests,
		recipes:    cfg.Recipes,
		eventBus:   cfg.EventBus,
		clock:      cfg.Clock,
		maxWeight:  cfg.MaxWeight,
	}

	if o.eventBus != nil {
		for _, eventType := range character.EventTypes() {
			o.eventBus.SubscribeFunc(eventType, 0, logEvent)
		}
	}

	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ adventure.Service = (*Orchestrator)(nil)

func playerKey(playerID string) string {
	return "player:" + playerID
}

// withPlayer runs fn holding the player's lock
func (o *Orchestrator) withPlayer(ctx context.Context, playerID string, fn func(*character.Character) error) error {
	release, err := o.locker.Acquire(ctx, playerKey(playerID))
	if err != nil {
		return errors.Wrapf(err, "failed to lock player %s", playerID)
	}
	defer release()

	char, err := o.loadPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	return fn(char)
}

// loadPlayer must be called with the player's lock held. Only Start creates
// characters, so a missing one is reported with ReasonCharacterNotFound.
func (o *Orchestrator) loadPlayer(ctx context.Context, playerID string) (*character.Character, error) {
	got, err := o.playerRepo.Get(ctx, &player.GetInput{PlayerID: playerID})
	if errors.IsNotFound(err) {
		return nil, errors.CharacterNotFound(playerID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}

	return got.Character, nil
}

// create must be called with the player's lock held
func (o *Orchestrator) create(ctx context.Context, playerID, name string) (*character.Character, error) {
	char, err := character.New(&character.Config{
		ID:         playerID,
		Name:       name,
		MaxWeight:  o.maxWeight,
		Encounters: o.encounters,
		Quests:     o.quests,
		Recipes:    o.recipes,
		EventBus:   o.eventBus,
		Clock:      o.clock,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	if _, err := o.playerRepo.Create(ctx, &player.CreateInput{Character: char}); err != nil {
		return nil, errors.Wrap(err, "failed to store character")
	}

	slog.Info("character created", "player_id", playerID, "name", name)
	return char, nil
}

func validatePlayerID(playerID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", playerID, vb)
	return vb.Build()
}

// Lifecycle

// Start creates the player's character, or returns the existing one. It is
// the only operation that creates characters.
func (o *Orchestrator) Start(ctx context.Context, input *adventure.StartInput) (*adventure.StartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateName("name", input.Name, false, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = input.PlayerID
	}

	release, err := o.locker.Acquire(ctx, playerKey(input.PlayerID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to lock player %s", input.PlayerID)
	}
	defer release()

	char, err := o.loadPlayer(ctx, input.PlayerID)
	if err == nil {
		return &adventure.StartOutput{Status: char.Status()}, nil
	}
	if !errors.HasReason(err, errors.ReasonCharacterNotFound) {
		return nil, err
	}

	char, err = o.create(ctx, input.PlayerID, name)
	if err != nil {
		return nil, err
	}

	return &adventure.StartOutput{Status: char.Status(), Created: true}, nil
}

// GetStatus returns the character sheet
func (o *Orchestrator) GetStatus(ctx context.Context, input *adventure.GetStatusInput) (*adventure.GetStatusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &adventure.GetStatusOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		out.Status = c.Status()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Tick applies one simulation tick to a character
func (o *Orchestrator) Tick(ctx context.Context, input *adventure.TickInput) (*adventure.TickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &adventure.TickOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		out.Vitals = c.Update(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// TickAll applies one simulation tick to every stored character. Each
// character is locked on its own; a character that cannot be locked before
// ctx is done is skipped.
func (o *Orchestrator) TickAll(ctx context.Context, _ *adventure.TickAllInput) (*adventure.TickAllOutput, error) {
	listed, err := o.playerRepo.List(ctx, &player.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list players")
	}

	out := &adventure.TickAllOutput{}
	for _, char := range listed.Characters {
		release, err := o.locker.Acquire(ctx, playerKey(char.GetID()))
		if err != nil {
			slog.Warn("skipping tick", "player_id", char.GetID(), "error", err)
			if ctx.Err() != nil {
				break
			}
			continue
		}

		wasDown := char.IsDefeated()
		char.Update(ctx)
		if !wasDown && char.IsDefeated() {
			slog.Warn("character collapsed from hunger or thirst", "player_id", char.GetID())
		}
		release()

		out.Ticked++
	}

	return out, nil
}
