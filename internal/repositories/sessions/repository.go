// Package sessions stores combat sessions by id plus each player's active
// session slot.
package sessions

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionsmock github.com/KirkDiggler/arena-api/internal/repositories/sessions Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/arena-api/internal/engine/combat"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

// DefaultTTL is applied when SaveInput leaves TTL unset.
const DefaultTTL = 24 * time.Hour

// Repository persists combat sessions between requests
type Repository interface {
	// Save creates or replaces a session
	// Returns errors.InvalidArgument for a nil session or empty ID
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a session by ID
	// Returns errors.NotFound if the session does not exist or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a session
	// Returns errors.NotFound if the session does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// SetActive points a player's active slot at a session, replacing any
	// previous one. The previous session id is returned so callers can
	// discard it.
	SetActive(ctx context.Context, input SetActiveInput) (*SetActiveOutput, error)

	// GetActive returns a player's active session id
	// Returns errors.NotFound if the player has no active session
	GetActive(ctx context.Context, input GetActiveInput) (*GetActiveOutput, error)

	// ClearActive empties a player's slot only if it still points at SessionID
	ClearActive(ctx context.Context, input ClearActiveInput) (*ClearActiveOutput, error)
}

// SaveInput defines the input for saving a session
type SaveInput struct {
	Session *combat.Session
	TTL     time.Duration
}

// SaveOutput defines the output for saving a session
type SaveOutput struct{}

// GetInput defines the input for getting a session
type GetInput struct {
	SessionID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *combat.Session
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	SessionID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct{}

// SetActiveInput defines the input for setting a player's active session
type SetActiveInput struct {
	PlayerID  string
	SessionID string
	TTL       time.Duration
}

// SetActiveOutput defines the output for setting a player's active session
type SetActiveOutput struct {
	// PreviousSessionID is empty when the slot was free
	PreviousSessionID string
}

// GetActiveInput defines the input for reading a player's active session
type GetActiveInput struct {
	PlayerID string
}

// GetActiveOutput defines the output for reading a player's active session
type GetActiveOutput struct {
	SessionID string
}

// ClearActiveInput defines the input for clearing a player's active session
type ClearActiveInput struct {
	PlayerID  string
	SessionID string
}

// ClearActiveOutput defines the output for clearing a player's active session
type ClearActiveOutput struct {
	Cleared bool
}

const (
	errSessionNil      = "session cannot be nil"
	errSessionIDEmpty  = "session ID cannot be empty"
	errPlayerIDEmpty   = "player ID cannot be empty"
	errActiveNotExists = "no active session for player %s"
)

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}

func validateSave(input SaveInput) error {
	if input.Session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return errors.InvalidArgument(errSessionIDEmpty)
	}
	return nil
}

func validateSetActive(input SetActiveInput) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("session_id", input.SessionID, vb)
	return vb.Build()
}
