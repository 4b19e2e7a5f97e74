package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/arena-api/internal/engine/stats"
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

type StatsTestSuite struct {
	suite.Suite
	race *arena.RaceTemplate
}

func TestStatsSuite(t *testing.T) {
	suite.Run(t, new(StatsTestSuite))
}

func (s *StatsTestSuite) SetupTest() {
	s.race = &arena.RaceTemplate{
		ID:   "test",
		Name: "Test",
		Base: arena.StatBlock{Strength: 10, Vitality: 10, Stamina: 10, Dodge: 10, Initiative: 10, Weaponskill: 10},
		Bonuses: []arena.RacialBonus{
			{Stat: arena.StatStrength, Percent: 20},
			{Stat: arena.StatDodge, Percent: -15},
		},
	}
}

func (s *StatsTestSuite) TestDeriveWorkedExample() {
	sheet := stats.Derive(s.race,
		arena.StatBlock{Strength: 5},
		[]arena.StatBlock{{Strength: 3}},
	)

	// floor(10*1.2) + 5 + 3
	s.Equal(20, sheet.Strength)
}

func (s *StatsTestSuite) TestDeriveFloorsPercent() {
	sheet := stats.Derive(s.race, arena.StatBlock{}, nil)

	// floor(10 * 0.85) = 8
	s.Equal(8, sheet.Dodge)
	s.Equal(10, sheet.Vitality)
	s.Equal(16, sheet.MaxHealth)
}

func (s *StatsTestSuite) TestDeriveClamps() {
	testCases := []struct {
		name      string
		allocated arena.StatBlock
		equipment []arena.StatBlock
		check     func(sheet arena.EffectiveStatSheet)
	}{
		{
			name:      "negative totals clamp to zero",
			equipment: []arena.StatBlock{{Strength: -50, Vitality: -50}},
			check: func(sheet arena.EffectiveStatSheet) {
				s.Equal(0, sheet.Strength)
				s.Equal(0, sheet.Vitality)
				s.Equal(1, sheet.MaxHealth)
			},
		},
		{
			name:      "dodge caps at one hundred",
			allocated: arena.StatBlock{Dodge: 140},
			check: func(sheet arena.EffectiveStatSheet) {
				s.Equal(stats.MaxDodge, sheet.Dodge)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.check(stats.Derive(s.race, tc.allocated, tc.equipment))
		})
	}
}

func (s *StatsTestSuite) TestDeriveNilRace() {
	sheet := stats.Derive(nil, arena.StatBlock{Vitality: 4, Initiative: 2}, nil)

	s.Equal(4, sheet.Vitality)
	s.Equal(2, sheet.Initiative)
	s.Equal(7, sheet.MaxHealth)
}

func (s *StatsTestSuite) TestItemBonuses() {
	bonuses := stats.ItemBonuses([]*arena.Item{
		{ID: "a", Bonus: arena.StatBlock{Strength: 1}},
		nil,
		{ID: "b", Bonus: arena.StatBlock{Dodge: 2}},
	})
	s.Equal([]arena.StatBlock{{Strength: 1}, {Dodge: 2}}, bonuses)
}

func (s *StatsTestSuite) TestMaxHealth() {
	s.Equal(1, stats.MaxHealth(0))
	s.Equal(2, stats.MaxHealth(1))
	s.Equal(16, stats.MaxHealth(10))
	s.Equal(1, stats.MaxHealth(-3))
}

func (s *StatsTestSuite) TestValidateAllocation() {
	testCases := []struct {
		name      string
		alloc     arena.Allocation
		available int
		wantErr   bool
	}{
		{
			name:      "exactly the pool",
			alloc:     arena.Allocation{arena.StatStrength: 100, arena.StatVitality: 50},
			available: 150,
		},
		{
			name:      "empty allocation",
			alloc:     arena.Allocation{},
			available: 0,
		},
		{
			name:      "over the pool",
			alloc:     arena.Allocation{arena.StatStrength: 100, arena.StatVitality: 51},
			available: 150,
			wantErr:   true,
		},
		{
			name:      "negative value",
			alloc:     arena.Allocation{arena.StatStrength: -1},
			available: 150,
			wantErr:   true,
		},
		{
			name:      "sum wraps past max int",
			alloc:     arena.Allocation{arena.StatStrength: math.MaxInt, arena.StatVitality: 2},
			available: 150,
			wantErr:   true,
		},
		{
			name:      "single value above the pool",
			alloc:     arena.Allocation{arena.StatDodge: math.MaxInt},
			available: 150,
			wantErr:   true,
		},
		{
			name:      "unknown stat",
			alloc:     arena.Allocation{"charisma": 1},
			available: 150,
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := stats.ValidateAllocation(tc.alloc, tc.available)
			if tc.wantErr {
				s.Require().Error(err)
				s.True(errors.IsInvalidAllocation(err))
				return
			}
			s.NoError(err)
		})
	}
}

func statBlockGen() *rapid.Generator[arena.StatBlock] {
	return rapid.Custom(func(t *rapid.T) arena.StatBlock {
		return arena.StatBlock{
			Strength:    rapid.IntRange(-20, 200).Draw(t, "strength"),
			Vitality:    rapid.IntRange(-20, 200).Draw(t, "vitality"),
			Stamina:     rapid.IntRange(-20, 200).Draw(t, "stamina"),
			Dodge:       rapid.IntRange(-20, 200).Draw(t, "dodge"),
			Initiative:  rapid.IntRange(-20, 200).Draw(t, "initiative"),
			Weaponskill: rapid.IntRange(-20, 200).Draw(t, "weaponskill"),
		}
	})
}

func TestDeriveIsPureAndClamped(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		race := &arena.RaceTemplate{
			Base: statBlockGen().Draw(t, "base"),
			Bonuses: []arena.RacialBonus{{
				Stat:    rapid.SampledFrom(arena.Stats).Draw(t, "bonus_stat"),
				Percent: rapid.IntRange(-50, 50).Draw(t, "bonus_pct"),
			}},
		}
		allocated := statBlockGen().Draw(t, "allocated")
		equipment := []arena.StatBlock{statBlockGen().Draw(t, "equipment")}

		first := stats.Derive(race, allocated, equipment)
		second := stats.Derive(race, allocated, equipment)
		if first != second {
			t.Fatalf("derive is not deterministic: %+v vs %+v", first, second)
		}

		for _, s := range arena.Stats {
			if first.Get(s) < 0 {
				t.Fatalf("%s is negative: %d", s, first.Get(s))
			}
		}
		if first.Dodge > stats.MaxDodge {
			t.Fatalf("dodge above cap: %d", first.Dodge)
		}
		if first.MaxHealth != stats.MaxHealth(first.Vitality) {
			t.Fatalf("max health %d does not follow vitality %d", first.MaxHealth, first.Vitality)
		}
	})
}

func TestValidateAllocationMatchesPool(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		alloc := arena.Allocation{}
		for _, s := range arena.Stats {
			alloc[s] = rapid.IntRange(0, 60).Draw(t, string(s))
		}
		available := rapid.IntRange(0, 300).Draw(t, "available")

		err := stats.ValidateAllocation(alloc, available)
		if alloc.Total() <= available && err != nil {
			t.Fatalf("valid allocation rejected: %v", err)
		}
		if alloc.Total() > available && !errors.IsInvalidAllocation(err) {
			t.Fatalf("over-pool allocation accepted: total %d available %d", alloc.Total(), available)
		}
	})
}
