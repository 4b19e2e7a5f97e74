package mailbox

import (
	"context"
	"sync"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.Mutex
	boxes map[string][]arena.Notification
}

// NewInMemory creates a new in-memory mailbox
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		boxes: make(map[string][]arena.Notification),
	}
}

// Push appends a copy of the notification
func (r *InMemoryRepository) Push(_ context.Context, input PushInput) (*PushOutput, error) {
	if err := validatePush(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.boxes[input.PlayerID] = append(r.boxes[input.PlayerID], *input.Notification)

	return &PushOutput{}, nil
}

// Drain empties the player's mailbox
func (r *InMemoryRepository) Drain(_ context.Context, input DrainInput) (*DrainOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	pending := r.boxes[input.PlayerID]
	delete(r.boxes, input.PlayerID)
	r.mu.Unlock()

	out := make([]*arena.Notification, 0, len(pending))
	for i := range pending {
		n := pending[i]
		n.Delivered = true
		out = append(out, &n)
	}

	return &DrainOutput{Notifications: out}, nil
}
