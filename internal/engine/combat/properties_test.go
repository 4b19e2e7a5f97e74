package combat_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/KirkDiggler/arena-api/internal/engine/combat"
	"github.com/KirkDiggler/arena-api/internal/engine/stats"
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/pkg/roller"
)

func sheetGen() *rapid.Generator[arena.EffectiveStatSheet] {
	return rapid.Custom(func(t *rapid.T) arena.EffectiveStatSheet {
		block := arena.StatBlock{
			Strength:    rapid.IntRange(0, 80).Draw(t, "strength"),
			Vitality:    rapid.IntRange(0, 120).Draw(t, "vitality"),
			Stamina:     rapid.IntRange(0, 40).Draw(t, "stamina"),
			Dodge:       rapid.IntRange(0, 100).Draw(t, "dodge"),
			Initiative:  rapid.IntRange(0, 30).Draw(t, "initiative"),
			Weaponskill: rapid.IntRange(0, 40).Draw(t, "weaponskill"),
		}
		return arena.EffectiveStatSheet{StatBlock: block, MaxHealth: stats.MaxHealth(block.Vitality)}
	})
}

func startRandom(t *rapid.T) *combat.Session {
	session, err := combat.Start(&combat.StartInput{
		ID:       "combat_prop",
		Player:   combat.NewCombatant("p1", "Player", combat.SourcePlayer, sheetGen().Draw(t, "player")),
		Opponent: combat.NewCombatant("p2", "Opponent", combat.SourcePlayer, sheetGen().Draw(t, "opponent")),
		RoundCap: rapid.IntRange(1, combat.DefaultRoundCap).Draw(t, "cap"),
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return session
}

func TestSessionAlwaysTerminatesWithinCap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		session := startRandom(t)
		r := roller.NewSeeded(rapid.Uint64().Draw(t, "seed"))

		for i := 0; i < session.RoundCap; i++ {
			if _, err := combat.Advance(session, r); err != nil {
				t.Fatalf("advance round %d: %v", i+1, err)
			}
			if session.IsFinished() {
				break
			}
		}

		if !session.IsFinished() {
			t.Fatalf("session still active after %d rounds", session.RoundCap)
		}
		if session.Round > session.RoundCap {
			t.Fatalf("round %d beyond cap %d", session.Round, session.RoundCap)
		}
		if session.WinnerCombatant() == nil {
			t.Fatalf("finished session without a winner")
		}
	})
}

func TestHealthLossMatchesLoggedDamage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		session := startRandom(t)
		r := roller.NewSeeded(rapid.Uint64().Draw(t, "seed"))

		var dealt [2]int
		for !session.IsFinished() {
			outcome, err := combat.Advance(session, r)
			if err != nil {
				t.Fatalf("advance: %v", err)
			}
			for _, a := range outcome.Actions {
				if a.Kind == combat.ActionHit {
					dealt[a.Defender] += a.Damage
				}
			}
		}

		for side, c := range session.Combatants {
			lost := c.Stats.MaxHealth - c.Health
			if lost > dealt[side] {
				t.Fatalf("side %d lost %d health but logged only %d damage", side, lost, dealt[side])
			}
			if c.Health < 0 {
				t.Fatalf("side %d health below zero: %d", side, c.Health)
			}
		}
	})
}

func TestSameSeedSameBattle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		session := startRandom(t)
		replay := session.Clone()
		seed := rapid.Uint64().Draw(t, "seed")

		if err := combat.RunToCompletion(session, roller.NewSeeded(seed)); err != nil {
			t.Fatalf("run: %v", err)
		}
		if err := combat.RunToCompletion(replay, roller.NewSeeded(seed)); err != nil {
			t.Fatalf("replay: %v", err)
		}

		if session.WinnerSide() != replay.WinnerSide() || session.Round != replay.Round {
			t.Fatalf("replay diverged: winner %d/%d rounds %d/%d",
				session.WinnerSide(), replay.WinnerSide(), session.Round, replay.Round)
		}
		if len(session.Log) != len(replay.Log) {
			t.Fatalf("log length %d vs %d", len(session.Log), len(replay.Log))
		}
		for i := range session.Log {
			if session.Log[i] != replay.Log[i] {
				t.Fatalf("log line %d differs: %q vs %q", i, session.Log[i], replay.Log[i])
			}
		}
	})
}

func TestHigherInitiativeAlwaysActsFirst(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		session := startRandom(t)
		p, o := session.Player().Stats.Initiative, session.Opponent().Stats.Initiative

		outcome, err := combat.Advance(session, roller.NewSeeded(rapid.Uint64().Draw(t, "seed")))
		if err != nil {
			t.Fatalf("advance: %v", err)
		}

		want := combat.SidePlayer
		if o > p {
			want = combat.SideOpponent
		}
		for _, a := range outcome.Actions {
			if a.Kind == combat.ActionNarration {
				continue
			}
			if a.Attacker != want {
				t.Fatalf("first action by side %d, want %d (init %d vs %d)", a.Attacker, want, p, o)
			}
			break
		}
	})
}
