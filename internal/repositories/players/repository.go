// Package players provides persistence for gladiator progression
package players

//go:generate mockgen -destination=mock/mock_repository.go -package=playersmock github.com/KirkDiggler/arena-api/internal/repositories/players Repository

import (
	"context"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

// Repository stores one gladiator per player
type Repository interface {
	// Get retrieves the gladiator for a player
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.NotFound if the player has no gladiator
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces the gladiator for a player
	// Returns errors.InvalidArgument for a nil gladiator or empty player ID
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the gladiator for a player
	// Returns errors.NotFound if the player has no gladiator
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a gladiator
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a gladiator
type GetOutput struct {
	Gladiator *arena.Gladiator
}

// SaveInput defines the input for saving a gladiator
type SaveInput struct {
	Gladiator *arena.Gladiator
}

// SaveOutput defines the output for saving a gladiator
type SaveOutput struct {
	Gladiator *arena.Gladiator
}

// DeleteInput defines the input for deleting a gladiator
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput defines the output for deleting a gladiator
type DeleteOutput struct{}

const (
	errPlayerIDEmpty = "player ID cannot be empty"
	errGladiatorNil  = "gladiator cannot be nil"
)

func validateSave(input SaveInput) error {
	if input.Gladiator == nil {
		return errors.InvalidArgument(errGladiatorNil)
	}
	if input.Gladiator.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return nil
}
