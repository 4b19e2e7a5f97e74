package combat

import (
	engine "github.com/KirkDiggler/arena-api/internal/engine/combat"
	"github.com/KirkDiggler/arena-api/internal/engine/rewards"
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

// StartCombatInput defines the request for starting a fight against the arena
type StartCombatInput struct {
	PlayerID string
	// EnemyID names a scripted enemy; empty picks a random race opponent
	EnemyID string
}

// StartCombatOutput defines the response for starting a fight
type StartCombatOutput struct {
	Session *engine.Session
	// Difficulty is set only for random race opponents
	Difficulty         arena.Difficulty
	DiscardedSessionID string
}

// AdvanceRoundInput defines the request for resolving one round
type AdvanceRoundInput struct {
	SessionID string
}

// AdvanceRoundOutput defines the response for resolving one round
type AdvanceRoundOutput struct {
	Outcome *engine.RoundOutcome
	Session *engine.Session
}

// GetCombatInput defines the request for reading a session. SessionID wins
// over PlayerID; PlayerID resolves the player's active session.
type GetCombatInput struct {
	SessionID string
	PlayerID  string
}

// GetCombatOutput defines the response for reading a session
type GetCombatOutput struct {
	Session *engine.Session
}

// FinishCombatInput defines the request for settling a finished fight
type FinishCombatInput struct {
	SessionID string
}

// FinishCombatOutput defines the response for settling a finished fight
type FinishCombatOutput struct {
	Reward    *rewards.Reward
	Session   *engine.Session
	Gladiator *arena.Gladiator
	// Log is the battle log plus the reward line
	Log []string
}

// Duelist is one side of a player-versus-player match
type Duelist struct {
	PlayerID string
	Name     string
	Stats    arena.EffectiveStatSheet
}

// StartDuelInput defines the request for creating a PvP session
type StartDuelInput struct {
	Challenger Duelist
	Opponent   Duelist
}

// StartDuelOutput defines the response for creating a PvP session
type StartDuelOutput struct {
	Session *engine.Session
}

// ResolveDuelInput defines the request for fighting out a PvP session
type ResolveDuelInput struct {
	SessionID string
}

// ResolveDuelOutput defines the response for fighting out a PvP session
type ResolveDuelOutput struct {
	Session *engine.Session
	// Rewards is indexed by side; nil when that player's gladiator is gone
	Rewards    [2]*rewards.Reward
	WinnerName string
	LoserName  string
}
