package combat

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/arena-api/internal/errors"
)

const (
	// CriticalChance is the percent chance that a landed hit is critical.
	CriticalChance = 5

	// DamageVariance is the +/- percent jitter applied to base damage.
	DamageVariance = 20

	// FatiguePercent is the share of damage dealt once stamina is spent.
	FatiguePercent = 50
)

// errRoundCapExceeded signals a stalemate. Advance consumes it and never
// returns it to callers.
var errRoundCapExceeded = errors.Internal("session round cap exceeded")

// ActionKind classifies a log entry produced during a round.
type ActionKind string

// Action kinds.
const (
	ActionHit       ActionKind = "hit"
	ActionMiss      ActionKind = "miss"
	ActionExhausted ActionKind = "exhausted"
	ActionNarration ActionKind = "narration"
)

// Action is one event of a round. Text is the line appended to the session log.
type Action struct {
	Kind     ActionKind `json:"kind"`
	Attacker int        `json:"attacker"`
	Defender int        `json:"defender"`
	Damage   int        `json:"damage,omitempty"`
	Critical bool       `json:"critical,omitempty"`
	Text     string     `json:"text"`
}

// RoundOutcome reports what happened in a single round.
type RoundOutcome struct {
	Round          int      `json:"round"`
	Actions        []Action `json:"actions"`
	PlayerHealth   int      `json:"player_health"`
	OpponentHealth int      `json:"opponent_health"`
	Finished       bool     `json:"finished"`
	// Winner is the winning side, -1 while the session is active.
	Winner     int    `json:"winner"`
	WinnerName string `json:"winner_name,omitempty"`
}

// roundContext works on copies of both combatants so a failed roll leaves the
// session exactly as it was.
type roundContext struct {
	s        *Session
	roller   dice.Roller
	round    int
	fighters [2]Combatant
	actions  []Action
	lines    []string
	finished bool
	winner   int
}

func newRoundContext(s *Session, roller dice.Roller) *roundContext {
	return &roundContext{
		s:        s,
		roller:   roller,
		round:    s.Round + 1,
		fighters: [2]Combatant{*s.Combatants[SidePlayer], *s.Combatants[SideOpponent]},
		winner:   noWinner,
	}
}

// Advance resolves exactly one round. It fails with NoActiveSession when the
// session is already finished and leaves the session untouched on any error.
func Advance(s *Session, roller dice.Roller) (*RoundOutcome, error) {
	if s == nil {
		return nil, errors.NoActiveSession("")
	}
	if s.State != StateActive {
		return nil, errors.NoActiveSession(s.ID)
	}
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}
	if s.Combatants[SidePlayer] == nil || s.Combatants[SideOpponent] == nil {
		return nil, errors.Internalf("session %s is missing a combatant", s.ID)
	}

	rc := newRoundContext(s, roller)
	if err := rc.resolve(); err != nil {
		return nil, errors.Wrapf(err, "failed to resolve round %d", rc.round)
	}

	return rc.commit(), nil
}

// RunToCompletion advances until the session finishes. The round cap bounds
// the loop.
func RunToCompletion(s *Session, roller dice.Roller) error {
	for s != nil && !s.IsFinished() {
		if _, err := Advance(s, roller); err != nil {
			return err
		}
	}
	return nil
}

func (rc *roundContext) resolve() error {
	rc.lines = append(rc.lines, fmt.Sprintf("Round %d", rc.round))

	first := rc.s.FirstActor
	for _, attacker := range [2]int{first, 1 - first} {
		if !rc.fighters[attacker].Alive() || !rc.fighters[1-attacker].Alive() {
			continue
		}
		if err := rc.attack(attacker); err != nil {
			return err
		}
	}

	rc.finalize()
	return nil
}

func (rc *roundContext) attack(attacker int) error {
	att := &rc.fighters[attacker]
	def := &rc.fighters[1-attacker]

	fatigued := att.Stamina <= 0
	if fatigued && !att.Exhausted {
		att.Exhausted = true
		rc.record(Action{
			Kind:     ActionExhausted,
			Attacker: attacker,
			Defender: 1 - attacker,
			Text:     fmt.Sprintf("%s is exhausted!", att.Name),
		})
	}
	if att.Stamina > 0 {
		att.Stamina--
	}

	// uniform in [0,100)
	roll, err := rc.roller.Roll(100)
	if err != nil {
		return errors.Wrap(err, "failed to roll hit")
	}
	if roll-1 < def.Stats.Dodge {
		rc.record(Action{
			Kind:     ActionMiss,
			Attacker: attacker,
			Defender: 1 - attacker,
			Text:     fmt.Sprintf("%s MISSES %s!", att.Name, def.Name),
		})
		return nil
	}

	jitter, err := rc.roller.Roll(2*DamageVariance + 1)
	if err != nil {
		return errors.Wrap(err, "failed to roll damage")
	}
	base := att.Stats.Strength + att.Stats.Weaponskill/2
	damage := base * (100 - DamageVariance + jitter - 1) / 100

	critRoll, err := rc.roller.Roll(100)
	if err != nil {
		return errors.Wrap(err, "failed to roll critical")
	}
	critical := critRoll <= CriticalChance
	if critical {
		damage = damage * 3 / 2
	}
	if fatigued {
		damage = damage * FatiguePercent / 100
	}

	def.Health -= damage
	if def.Health < 0 {
		def.Health = 0
	}

	text := fmt.Sprintf("%s hits %s for %d damage", att.Name, def.Name, damage)
	if critical {
		text += " (CRITICAL!)"
	}
	rc.record(Action{
		Kind:     ActionHit,
		Attacker: attacker,
		Defender: 1 - attacker,
		Damage:   damage,
		Critical: critical,
		Text:     text,
	})
	return nil
}

func (rc *roundContext) finalize() {
	player, opponent := &rc.fighters[SidePlayer], &rc.fighters[SideOpponent]

	switch {
	case !player.Alive() && !opponent.Alive():
		rc.finish(rc.s.FirstActor)
	case !player.Alive():
		rc.finish(SideOpponent)
	case !opponent.Alive():
		rc.finish(SidePlayer)
	default:
		if err := rc.checkRoundCap(); err == errRoundCapExceeded {
			rc.narrate("The crowd grows restless...")
			rc.finish(rc.stalemateWinner())
		}
	}

	if rc.finished {
		rc.narrate(fmt.Sprintf("%s is victorious!", rc.fighters[rc.winner].Name))
	}
}

func (rc *roundContext) checkRoundCap() error {
	if rc.round >= rc.s.RoundCap {
		return errRoundCapExceeded
	}
	return nil
}

// stalemateWinner prefers more health, then more stamina, then the first actor.
func (rc *roundContext) stalemateWinner() int {
	player, opponent := rc.fighters[SidePlayer], rc.fighters[SideOpponent]
	switch {
	case player.Health > opponent.Health:
		return SidePlayer
	case opponent.Health > player.Health:
		return SideOpponent
	case player.Stamina > opponent.Stamina:
		return SidePlayer
	case opponent.Stamina > player.Stamina:
		return SideOpponent
	}
	return rc.s.FirstActor
}

func (rc *roundContext) finish(winner int) {
	rc.finished = true
	rc.winner = winner
}

func (rc *roundContext) narrate(text string) {
	rc.record(Action{Kind: ActionNarration, Attacker: noWinner, Defender: noWinner, Text: text})
}

func (rc *roundContext) record(a Action) {
	rc.actions = append(rc.actions, a)
	rc.lines = append(rc.lines, a.Text)
}

func (rc *roundContext) commit() *RoundOutcome {
	s := rc.s
	for i := range rc.fighters {
		f := rc.fighters[i]
		s.Combatants[i] = &f
	}
	s.Round = rc.round
	s.Log = append(s.Log, rc.lines...)
	if rc.finished {
		s.State = StateFinished
		s.Winner = rc.winner
	}

	outcome := &RoundOutcome{
		Round:          rc.round,
		Actions:        rc.actions,
		PlayerHealth:   s.Player().Health,
		OpponentHealth: s.Opponent().Health,
		Finished:       rc.finished,
		Winner:         noWinner,
	}
	if rc.finished {
		outcome.Winner = rc.winner
		outcome.WinnerName = s.Combatants[rc.winner].Name
	}
	return outcome
}
