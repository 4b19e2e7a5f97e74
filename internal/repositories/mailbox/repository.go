// Package mailbox stores per-player notifications until the player polls.
// Drain is at-most-once: a notification returned by one drain is never
// returned again.
package mailbox

//go:generate mockgen -destination=mock/mock_repository.go -package=mailboxmock github.com/KirkDiggler/arena-api/internal/repositories/mailbox Repository

import (
	"context"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

// Repository is a per-player FIFO of notifications
type Repository interface {
	// Push appends a notification to a player's mailbox
	Push(ctx context.Context, input PushInput) (*PushOutput, error)

	// Drain removes and returns every pending notification, oldest first,
	// marked delivered
	Drain(ctx context.Context, input DrainInput) (*DrainOutput, error)
}

// PushInput defines the input for pushing a notification
type PushInput struct {
	PlayerID     string
	Notification *arena.Notification
}

// PushOutput defines the output for pushing a notification
type PushOutput struct{}

// DrainInput defines the input for draining a mailbox
type DrainInput struct {
	PlayerID string
}

// DrainOutput defines the output for draining a mailbox
type DrainOutput struct {
	Notifications []*arena.Notification
}

const (
	errPlayerIDEmpty   = "player ID cannot be empty"
	errNotificationNil = "notification cannot be nil"
)

func validatePush(input PushInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Notification == nil {
		return errors.InvalidArgument(errNotificationNil)
	}
	return nil
}
