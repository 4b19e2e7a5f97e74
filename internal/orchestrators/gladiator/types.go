package gladiator

import (
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

// View is a gladiator with everything derived from it resolved.
type View struct {
	Gladiator        *arena.Gladiator
	Race             *arena.RaceTemplate
	Stats            arena.EffectiveStatSheet
	Inventory        []*arena.Item
	Equipped         map[arena.Slot]*arena.Item
	ExperienceToNext int
}

// CreateGladiatorInput defines the request for creating a gladiator
type CreateGladiatorInput struct {
	PlayerID   string
	Name       string
	RaceID     string
	Allocation arena.Allocation
}

// CreateGladiatorOutput defines the response for creating a gladiator
type CreateGladiatorOutput struct {
	View *View
}

// GetGladiatorInput defines the request for getting a gladiator
type GetGladiatorInput struct {
	PlayerID string
}

// GetGladiatorOutput defines the response for getting a gladiator
type GetGladiatorOutput struct {
	View *View
}

// AllocatePointsInput defines the request for spending level-up points
type AllocatePointsInput struct {
	PlayerID   string
	Allocation arena.Allocation
}

// AllocatePointsOutput defines the response for spending level-up points
type AllocatePointsOutput struct {
	View *View
}

// TrainInput defines the request for a training session
type TrainInput struct {
	PlayerID string
}

// TrainOutput defines the response for a training session
type TrainOutput struct {
	View          *View
	GoldSpent     int
	Experience    int
	LeveledUp     bool
	NewStatPoints int
}

// ListRacesInput defines the request for listing races
type ListRacesInput struct{}

// ListRacesOutput defines the response for listing races
type ListRacesOutput struct {
	Races []*arena.RaceTemplate
}

// ListEnemiesInput defines the request for listing enemies
type ListEnemiesInput struct {
	// Level filters to enemies unlocked at this level; zero lists all
	Level int
}

// ListEnemiesOutput defines the response for listing enemies
type ListEnemiesOutput struct {
	Enemies []*arena.EnemyTemplate
}

// ListEquipmentInput defines the request for listing the shop
type ListEquipmentInput struct{}

// ListEquipmentOutput defines the response for listing the shop
type ListEquipmentOutput struct {
	Items []*arena.Item
}

// PurchaseItemInput defines the request for buying an item
type PurchaseItemInput struct {
	PlayerID string
	ItemID   string
}

// PurchaseItemOutput defines the response for buying an item
type PurchaseItemOutput struct {
	View *View
	Item *arena.Item
}

// EquipItemInput defines the request for equipping an owned item
type EquipItemInput struct {
	PlayerID string
	Slot     arena.Slot
	ItemID   string
}

// EquipItemOutput defines the response for equipping an item
type EquipItemOutput struct {
	View *View
	// Replaced is the item previously in the slot, if any
	Replaced *arena.Item
}

// UnequipItemInput defines the request for emptying a slot
type UnequipItemInput struct {
	PlayerID string
	Slot     arena.Slot
}

// UnequipItemOutput defines the response for emptying a slot
type UnequipItemOutput struct {
	View    *View
	Removed *arena.Item
}

// DeriveStatsInput defines a stateless stat preview
type DeriveStatsInput struct {
	RaceID     string
	Allocation arena.Allocation
	ItemIDs    []string
	// Available is the point pool to validate against; zero uses the creation pool
	Available int
}

// DeriveStatsOutput defines the response for a stat preview
type DeriveStatsOutput struct {
	Stats arena.EffectiveStatSheet
}
