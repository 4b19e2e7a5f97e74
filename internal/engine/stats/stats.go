// Package stats derives effective combat stats from a race template, allocated
// points and equipment bonuses.
package stats

import (
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

const (
	// CreationPool is the number of points a new gladiator may allocate.
	CreationPool = 150

	// MaxDodge caps dodge, which is a direct percentage chance to avoid a hit.
	MaxDodge = 100
)

// Derive builds the effective sheet for one combatant. It never fails: a nil
// race contributes nothing and missing bonuses count as zero.
//
// Racial percentages apply to the race base only and are floored per stat
// before allocated points and equipment are added.
func Derive(race *arena.RaceTemplate, allocated arena.StatBlock, equipment []arena.StatBlock) arena.EffectiveStatSheet {
	var base arena.StatBlock
	if race != nil {
		base = race.Base
	}

	var bonus arena.StatBlock
	for _, eq := range equipment {
		bonus = bonus.Add(eq)
	}

	var sheet arena.EffectiveStatSheet
	for _, s := range arena.Stats {
		v := applyPercent(base.Get(s), race.BonusPercent(s)) + allocated.Get(s) + bonus.Get(s)
		if v < 0 {
			v = 0
		}
		if s == arena.StatDodge && v > MaxDodge {
			v = MaxDodge
		}
		sheet.Set(s, v)
	}
	sheet.MaxHealth = MaxHealth(sheet.Vitality)

	return sheet
}

// ItemBonuses extracts the stat bonus of each item.
func ItemBonuses(items []*arena.Item) []arena.StatBlock {
	out := make([]arena.StatBlock, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it.Bonus)
		}
	}
	return out
}

// MaxHealth is 1 + floor(vitality * 1.5).
func MaxHealth(vitality int) int {
	if vitality < 0 {
		vitality = 0
	}
	return 1 + vitality*3/2
}

// applyPercent returns floor(base * (100 + pct) / 100) using integer math.
func applyPercent(base, pct int) int {
	n := base * (100 + pct)
	if n >= 0 {
		return n / 100
	}
	// floor toward negative infinity for negative products
	return -((-n + 99) / 100)
}

// ValidateAllocation rejects allocations with unknown stats, negative values or
// a total above available. It returns an InvalidAllocation error.
func ValidateAllocation(alloc arena.Allocation, available int) error {
	total := 0
	for s, v := range alloc {
		if !s.Valid() {
			return errors.InvalidAllocationf("unknown stat %q", s)
		}
		if v < 0 {
			return errors.InvalidAllocationf("%s cannot be negative", s)
		}
		// Bounding each value before adding keeps total from wrapping.
		if v > available || total > available-v {
			return errors.InvalidAllocationf("allocation exceeds the %d points available", available)
		}
		total += v
	}

	return nil
}
