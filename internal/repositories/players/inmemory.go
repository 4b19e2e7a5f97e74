package players

import (
	"context"
	"sync"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*arena.Gladiator
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*arena.Gladiator),
	}
}

// Get retrieves a copy of the stored gladiator
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	g, exists := r.store[input.PlayerID]
	if !exists {
		return nil, errors.NotFoundf("gladiator for player %s not found", input.PlayerID)
	}

	return &GetOutput{Gladiator: g.Clone()}, nil
}

// Save stores a copy of the gladiator
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Gladiator.PlayerID] = input.Gladiator.Clone()

	return &SaveOutput{Gladiator: input.Gladiator.Clone()}, nil
}

// Delete removes a gladiator
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.PlayerID]; !exists {
		return nil, errors.NotFoundf("gladiator for player %s not found", input.PlayerID)
	}
	delete(r.store, input.PlayerID)

	return &DeleteOutput{}, nil
}
