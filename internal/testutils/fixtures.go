package testutils

import (
	"time"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

// TestGladiatorName is the default gladiator name for test fixtures
const TestGladiatorName = "Maximus"

// FixedTime is a millisecond-precision instant that survives every storage backend.
var FixedTime = time.Date(2026, 4, 12, 9, 30, 0, 0, time.UTC)

// CreateTestGladiator creates a level 1 human gladiator with sensible defaults
func CreateTestGladiator(playerID string) *arena.Gladiator {
	return &arena.Gladiator{
		PlayerID: playerID,
		Name:     TestGladiatorName,
		RaceID:   "human",
		Points: arena.StatBlock{
			Strength:    40,
			Vitality:    40,
			Stamina:     20,
			Dodge:       10,
			Initiative:  20,
			Weaponskill: 20,
		},
		Level:     1,
		Gold:      100,
		Inventory: []string{},
		Equipped:  map[arena.Slot]string{},
		CreatedAt: FixedTime,
		UpdatedAt: FixedTime,
	}
}

// CreateTestGladiatorWithGear creates a gladiator owning an equipped wooden sword and an iron helmet
func CreateTestGladiatorWithGear(playerID string) *arena.Gladiator {
	g := CreateTestGladiator(playerID)
	g.Inventory = []string{"wooden_sword", "iron_helmet"}
	g.Equipped = map[arena.Slot]string{arena.SlotWeapon: "wooden_sword"}
	return g
}
