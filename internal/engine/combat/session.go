// Package combat holds the combat session state machine and the round
// resolver. Sessions are plain data so they can be stored as JSON between
// requests; all randomness comes from the dice.Roller passed to Advance.
package combat

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

// DefaultRoundCap bounds a session when no cap is configured.
const DefaultRoundCap = 50

// Sides of a session. The player (or PvP challenger) is always side 0.
const (
	SidePlayer   = 0
	SideOpponent = 1

	noWinner = -1
)

// State is the lifecycle state of a session.
type State string

// Session states. Finished is terminal.
const (
	StateActive   State = "active"
	StateFinished State = "finished"
)

// Source tells where a combatant came from.
type Source string

// Combatant sources.
const (
	SourcePlayer Source = "player"
	SourceEnemy  Source = "enemy"
)

// Mode separates scripted fights from player-versus-player matches.
type Mode string

// Session modes.
const (
	ModePvE Mode = "pve"
	ModePvP Mode = "pvp"
)

// Combatant is one side of a session. Stats are a snapshot taken at start.
type Combatant struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Source    Source                   `json:"source"`
	Stats     arena.EffectiveStatSheet `json:"stats"`
	Health    int                      `json:"health"`
	Stamina   int                      `json:"stamina"`
	Exhausted bool                     `json:"exhausted"`
}

var _ core.Entity = (*Combatant)(nil)

// GetID returns the player or enemy id
func (c *Combatant) GetID() string {
	return c.ID
}

// GetType returns the combatant source
func (c *Combatant) GetType() string {
	return string(c.Source)
}

// Alive reports whether the combatant still has health
func (c *Combatant) Alive() bool {
	return c.Health > 0
}

// NewCombatant snapshots a sheet into a fresh combatant at full health.
func NewCombatant(id, name string, source Source, sheet arena.EffectiveStatSheet) *Combatant {
	return &Combatant{
		ID:      id,
		Name:    name,
		Source:  source,
		Stats:   sheet,
		Health:  sheet.MaxHealth,
		Stamina: sheet.Stamina,
	}
}

// Session is one battle between two combatants.
type Session struct {
	ID         string        `json:"id"`
	Mode       Mode          `json:"mode"`
	Combatants [2]*Combatant `json:"combatants"`
	// FirstActor is fixed at start and never re-rolled.
	FirstActor  int       `json:"first_actor"`
	Round       int       `json:"round"`
	RoundCap    int       `json:"round_cap"`
	Log         []string  `json:"log"`
	State       State     `json:"state"`
	Winner      int       `json:"winner"`
	Coefficient float64   `json:"coefficient"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StartInput describes a new session.
type StartInput struct {
	ID          string
	Mode        Mode
	Player      *Combatant
	Opponent    *Combatant
	RoundCap    int
	Coefficient float64
	Now         time.Time
}

// Start creates an active session at round zero with both sides at full health.
func Start(input *StartInput) (*Session, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	if input.Player == nil {
		vb.RequiredField("player")
	} else {
		errors.ValidateRequired("player.name", input.Player.Name, vb)
	}
	if input.Opponent == nil {
		vb.RequiredField("opponent")
	} else {
		errors.ValidateRequired("opponent.name", input.Opponent.Name, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	roundCap := input.RoundCap
	if roundCap <= 0 {
		roundCap = DefaultRoundCap
	}
	mode := input.Mode
	if mode == "" {
		mode = ModePvE
	}
	coefficient := input.Coefficient
	if coefficient <= 0 {
		coefficient = 1.0
	}

	player := NewCombatant(input.Player.ID, input.Player.Name, input.Player.Source, input.Player.Stats)
	opponent := NewCombatant(input.Opponent.ID, input.Opponent.Name, input.Opponent.Source, input.Opponent.Stats)

	first := SidePlayer
	if opponent.Stats.Initiative > player.Stats.Initiative {
		first = SideOpponent
	}

	return &Session{
		ID:          input.ID,
		Mode:        mode,
		Combatants:  [2]*Combatant{player, opponent},
		FirstActor:  first,
		RoundCap:    roundCap,
		Log:         []string{},
		State:       StateActive,
		Winner:      noWinner,
		Coefficient: coefficient,
		CreatedAt:   input.Now,
		UpdatedAt:   input.Now,
	}, nil
}

// Player returns side 0
func (s *Session) Player() *Combatant {
	return s.Combatants[SidePlayer]
}

// Opponent returns side 1
func (s *Session) Opponent() *Combatant {
	return s.Combatants[SideOpponent]
}

// IsFinished reports whether the session reached its terminal state
func (s *Session) IsFinished() bool {
	return s.State == StateFinished
}

// WinnerSide returns the winning side, or -1 while active
func (s *Session) WinnerSide() int {
	if !s.IsFinished() {
		return noWinner
	}
	return s.Winner
}

// WinnerCombatant returns the winner, or nil while active
func (s *Session) WinnerCombatant() *Combatant {
	side := s.WinnerSide()
	if side == noWinner {
		return nil
	}
	return s.Combatants[side]
}

// LoserCombatant returns the loser, or nil while active
func (s *Session) LoserCombatant() *Combatant {
	side := s.WinnerSide()
	if side == noWinner {
		return nil
	}
	return s.Combatants[1-side]
}

// SideOf returns the side a combatant id fights on, or -1.
func (s *Session) SideOf(id string) int {
	for i, c := range s.Combatants {
		if c != nil && c.ID == id {
			return i
		}
	}
	return noWinner
}

// Summary is a one-line description of a finished battle.
func (s *Session) Summary() string {
	w, l := s.WinnerCombatant(), s.LoserCombatant()
	if w == nil || l == nil {
		return ""
	}
	return fmt.Sprintf("%s defeated %s in %d rounds", w.Name, l.Name, s.Round)
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	for i, c := range s.Combatants {
		if c != nil {
			cp := *c
			out.Combatants[i] = &cp
		}
	}
	if s.Log != nil {
		out.Log = make([]string, len(s.Log))
		copy(out.Log, s.Log)
	}
	return &out
}
