// Package rewards settles finished combat sessions into gold, experience and
// level-up stat points.
//
// Experience is cumulative. A gladiator's level is always the highest level
// whose threshold is at or below its total experience.
package rewards

import (
	"math"

	"github.com/KirkDiggler/arena-api/internal/engine/combat"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

const (
	// BaseVictoryGold is the gold for beating a coefficient 1.0 opponent.
	BaseVictoryGold = 20

	// BaseVictoryExperience is the experience for beating a coefficient 1.0 opponent.
	BaseVictoryExperience = 45

	// ConsolationDivisor scales a victory reward down to the defeat reward.
	ConsolationDivisor = 4

	// DefaultStatPointsPerLevel is used when Rules leaves it unset.
	DefaultStatPointsPerLevel = 1

	xpCoefficient = 57.70789704047412
	xpExponent    = 1.466387695400268

	// maxLevel bounds threshold scans; nobody reaches it in practice.
	maxLevel = 1000
)

// Rules carries the tunable parts of settlement.
type Rules struct {
	StatPointsPerLevel int
}

func (r Rules) pointsPerLevel() int {
	if r.StatPointsPerLevel <= 0 {
		return DefaultStatPointsPerLevel
	}
	return r.StatPointsPerLevel
}

// Progress is the persisted progression a reward applies to.
type Progress struct {
	Level      int `json:"level"`
	Experience int `json:"experience"`
}

// Reward is the outcome of settling one side of a session.
type Reward struct {
	Victory       bool `json:"victory"`
	Gold          int  `json:"gold"`
	Experience    int  `json:"experience"`
	LeveledUp     bool `json:"leveled_up"`
	NewLevel      int  `json:"new_level"`
	NewStatPoints int  `json:"new_stat_points"`
}

// ExperienceToNext is the experience needed to go from level to level+1.
func ExperienceToNext(level int) int {
	if level < 1 {
		level = 1
	}
	xp := int(math.Round(xpCoefficient * math.Pow(float64(level), xpExponent)))
	if xp < 1 {
		return 1
	}
	return xp
}

// Threshold is the cumulative experience required to reach level.
func Threshold(level int) int {
	total := 0
	for l := 1; l < level && l < maxLevel; l++ {
		total += ExperienceToNext(l)
	}
	return total
}

// LevelForExperience returns the highest level reachable with xp.
func LevelForExperience(xp int) int {
	level, total := 1, 0
	for level < maxLevel {
		next := total + ExperienceToNext(level)
		if next > xp {
			break
		}
		total = next
		level++
	}
	return level
}

// Settle computes the reward for side of a finished session. It fails with
// NoActiveSession when the session is missing or still active and never
// mutates the session.
func Settle(s *combat.Session, side int, progress Progress, rules Rules) (*Reward, error) {
	if s == nil {
		return nil, errors.NoActiveSession("")
	}
	if !s.IsFinished() {
		return nil, errors.NoActiveSession(s.ID)
	}
	if side != combat.SidePlayer && side != combat.SideOpponent {
		return nil, errors.InvalidArgumentf("invalid side %d", side)
	}

	coefficient := s.Coefficient
	if coefficient <= 0 {
		coefficient = 1.0
	}
	gold := atLeastOne(math.Round(BaseVictoryGold * coefficient))
	xp := atLeastOne(math.Round(BaseVictoryExperience * coefficient))

	if s.WinnerSide() == side {
		reward := Grant(progress, xp, rules)
		reward.Victory = true
		reward.Gold = gold
		return &reward, nil
	}

	// A defeat never crosses a level boundary.
	consolation := max(1, xp/ConsolationDivisor)
	level := normalizeLevel(progress)
	if room := Threshold(level+1) - progress.Experience - 1; consolation > room {
		consolation = max(0, room)
	}

	return &Reward{
		Gold:       max(1, gold/ConsolationDivisor),
		Experience: consolation,
		NewLevel:   level,
	}, nil
}

// Grant applies xp to progress and reports any levels gained. Every level
// crossed grants StatPointsPerLevel points; multi-level jumps are not truncated.
func Grant(progress Progress, xp int, rules Rules) Reward {
	if xp < 0 {
		xp = 0
	}
	oldLevel := normalizeLevel(progress)
	newLevel := LevelForExperience(progress.Experience + xp)
	if newLevel < oldLevel {
		newLevel = oldLevel
	}

	gained := newLevel - oldLevel
	return Reward{
		Experience:    xp,
		LeveledUp:     gained > 0,
		NewLevel:      newLevel,
		NewStatPoints: gained * rules.pointsPerLevel(),
	}
}

func normalizeLevel(p Progress) int {
	if p.Level < 1 {
		return 1
	}
	return p.Level
}

func atLeastOne(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
