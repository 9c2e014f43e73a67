package player

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/character"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
// Entries are never evicted.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*character.Character
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*character.Character),
	}
}

// Create stores a character under its ID
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	id := input.Character.GetID()
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[id]; exists {
		return nil, errors.AlreadyExistsf("player %s already has a character", id)
	}

	r.store[id] = input.Character

	return &CreateOutput{Character: input.Character}, nil
}

// Get retrieves a character by player ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.store[input.PlayerID]
	if !exists {
		return nil, errors.NotFoundf("player %s not found", input.PlayerID).
			WithMeta("player_id", input.PlayerID)
	}

	return &GetOutput{Character: char}, nil
}

// List returns every character ordered by player ID
func (r *InMemoryRepository) List(_ context.Context, _ *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := &ListOutput{}
	for _, id := range ids {
		out.Characters = append(out.Characters, r.store[id])
	}

	return out, nil
}
