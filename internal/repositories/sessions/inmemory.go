package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/arena-api/internal/engine/combat"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/pkg/clock"
)

type storedSession struct {
	session   *combat.Session
	expiresAt time.Time
}

type activeSlot struct {
	sessionID string
	expiresAt time.Time
}

// InMemoryRepository implements Repository using in-memory storage. Expired
// entries are treated as missing and dropped on the next write.
type InMemoryRepository struct {
	mu       sync.RWMutex
	clock    clock.Clock
	sessions map[string]storedSession
	active   map[string]activeSlot
}

// NewInMemory creates a new in-memory repository. A nil clock uses real time.
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock:    clk,
		sessions: make(map[string]storedSession),
		active:   make(map[string]activeSlot),
	}
}

// Save stores a copy of the session
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.pruneLocked(now)
	r.sessions[input.Session.ID] = storedSession{
		session:   input.Session.Clone(),
		expiresAt: now.Add(ttlOrDefault(input.TTL)),
	}

	return &SaveOutput{}, nil
}

// Get returns a copy of the session
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.sessions[input.SessionID]
	if !ok || !r.clock.Now().Before(stored.expiresAt) {
		return nil, errors.NotFoundf("combat session %s not found", input.SessionID)
	}

	return &GetOutput{Session: stored.session.Clone()}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[input.SessionID]; !ok {
		return nil, errors.NotFoundf("combat session %s not found", input.SessionID)
	}
	delete(r.sessions, input.SessionID)

	return &DeleteOutput{}, nil
}

// SetActive replaces the player's slot
func (r *InMemoryRepository) SetActive(_ context.Context, input SetActiveInput) (*SetActiveOutput, error) {
	if err := validateSetActive(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	out := &SetActiveOutput{}
	if prev, ok := r.active[input.PlayerID]; ok && now.Before(prev.expiresAt) {
		out.PreviousSessionID = prev.sessionID
	}
	r.active[input.PlayerID] = activeSlot{
		sessionID: input.SessionID,
		expiresAt: now.Add(ttlOrDefault(input.TTL)),
	}

	return out, nil
}

// GetActive reads the player's slot
func (r *InMemoryRepository) GetActive(_ context.Context, input GetActiveInput) (*GetActiveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.active[input.PlayerID]
	if !ok || !r.clock.Now().Before(slot.expiresAt) {
		return nil, errors.NotFoundf(errActiveNotExists, input.PlayerID)
	}

	return &GetActiveOutput{SessionID: slot.sessionID}, nil
}

// ClearActive empties the slot when it still holds SessionID
func (r *InMemoryRepository) ClearActive(_ context.Context, input ClearActiveInput) (*ClearActiveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.active[input.PlayerID]
	if !ok || slot.sessionID != input.SessionID {
		return &ClearActiveOutput{}, nil
	}
	delete(r.active, input.PlayerID)

	return &ClearActiveOutput{Cleared: true}, nil
}

func (r *InMemoryRepository) pruneLocked(now time.Time) {
	for id, s := range r.sessions {
		if !now.Before(s.expiresAt) {
			delete(r.sessions, id)
		}
	}
	for id, a := range r.active {
		if !now.Before(a.expiresAt) {
			delete(r.active, id)
		}
	}
}
