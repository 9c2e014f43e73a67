// Package player stores the live character of every player for the life
// of the process
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/KirkDiggler/rpg-adventure/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/character"
)

// Repository defines the storage interface for player characters.
// Stored characters are live: callers mutate them in place under the
// player's lock, so there is no Update.
type Repository interface {
	// Create stores a new player character
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a player character by player ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns every stored character ordered by player ID
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// CreateInput defines the request for storing a character
type CreateInput struct {
	Character *character.Character
}

// CreateOutput defines the response for storing a character
type CreateOutput struct {
	Character *character.Character
}

// GetInput defines the request for retrieving a character
type GetInput struct {
	PlayerID string
}

// GetOutput defines the response for retrieving a character
type GetOutput struct {
	Character *character.Character
}

// ListInput defines the request for listing characters
type ListInput struct{}

// ListOutput defines the response for listing characters
type ListOutput struct {
	Characters []*character.Character
}
