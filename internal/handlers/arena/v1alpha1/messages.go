package v1alpha1

import (
	"time"

	engine "github.com/KirkDiggler/arena-api/internal/engine/combat"
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

// Gladiator is the wire view of a gladiator with its derived sheet and
// resolved equipment.
type Gladiator struct {
	PlayerID         string                     `json:"player_id"`
	Name             string                     `json:"name"`
	Race             *arena.RaceTemplate        `json:"race"`
	Level            int                        `json:"level"`
	Experience       int                        `json:"experience"`
	ExperienceToNext int                        `json:"experience_to_next"`
	Gold             int                        `json:"gold"`
	UnspentPoints    int                        `json:"unspent_points"`
	Wins             int                        `json:"wins"`
	Losses           int                        `json:"losses"`
	Points           arena.StatBlock            `json:"points"`
	Stats            arena.EffectiveStatSheet   `json:"stats"`
	Inventory        []*arena.Item              `json:"inventory"`
	Equipped         map[arena.Slot]*arena.Item `json:"equipped"`
	CreatedAt        time.Time                  `json:"created_at"`
}

// CreateGladiatorRequest creates or replaces the caller's gladiator.
type CreateGladiatorRequest struct {
	PlayerID   string         `json:"player_id"`
	Name       string         `json:"name"`
	Race       string         `json:"race"`
	Allocation map[string]int `json:"allocation"`
}

// GladiatorResponse carries a single gladiator view.
type GladiatorResponse struct {
	Gladiator *Gladiator `json:"gladiator"`
}

type GetGladiatorRequest struct {
	PlayerID string `json:"player_id"`
}

type AllocatePointsRequest struct {
	PlayerID   string         `json:"player_id"`
	Allocation map[string]int `json:"allocation"`
}

type TrainRequest struct {
	PlayerID string `json:"player_id"`
}

type TrainResponse struct {
	Gladiator     *Gladiator `json:"gladiator"`
	GoldSpent     int        `json:"gold_spent"`
	Experience    int        `json:"experience"`
	LeveledUp     bool       `json:"leveled_up"`
	NewStatPoints int        `json:"new_stat_points"`
}

type ListRacesRequest struct{}

type ListRacesResponse struct {
	Races []*arena.RaceTemplate `json:"races"`
}

type ListEnemiesRequest struct {
	// Level limits the list to enemies unlocked at that level
	Level int `json:"level,omitempty"`
}

type ListEnemiesResponse struct {
	Enemies []*arena.EnemyTemplate `json:"enemies"`
}

type ListEquipmentRequest struct{}

type ListEquipmentResponse struct {
	Items []*arena.Item `json:"items"`
}

type PurchaseItemRequest struct {
	PlayerID string `json:"player_id"`
	ItemID   string `json:"item_id"`
}

type PurchaseItemResponse struct {
	Gladiator *Gladiator  `json:"gladiator"`
	Item      *arena.Item `json:"item"`
}

type EquipItemRequest struct {
	PlayerID string `json:"player_id"`
	Slot     string `json:"slot"`
	ItemID   string `json:"item_id"`
}

type EquipItemResponse struct {
	Gladiator *Gladiator  `json:"gladiator"`
	Replaced  *arena.Item `json:"replaced,omitempty"`
}

type UnequipItemRequest struct {
	PlayerID string `json:"player_id"`
	Slot     string `json:"slot"`
}

type UnequipItemResponse struct {
	Gladiator *Gladiator  `json:"gladiator"`
	Removed   *arena.Item `json:"removed,omitempty"`
}

// DeriveStatsRequest previews a sheet without touching any gladiator.
type DeriveStatsRequest struct {
	Race       string         `json:"race"`
	Allocation map[string]int `json:"allocation"`
	ItemIDs    []string       `json:"item_ids,omitempty"`
	Available  int            `json:"available,omitempty"`
}

type DeriveStatsResponse struct {
	Stats arena.EffectiveStatSheet `json:"stats"`
}

type StartCombatRequest struct {
	PlayerID string `json:"player_id"`
	// EnemyID picks a named enemy; empty rolls a random opponent
	EnemyID string `json:"enemy_id,omitempty"`
}

type StartCombatResponse struct {
	Session            *engine.Session `json:"session"`
	Difficulty         string          `json:"difficulty,omitempty"`
	DiscardedSessionID string          `json:"discarded_session_id,omitempty"`
	Message            string          `json:"message"`
}

type AdvanceRoundRequest struct {
	SessionID string `json:"session_id"`
}

type AdvanceRoundResponse struct {
	Outcome *engine.RoundOutcome `json:"outcome"`
	Session *engine.Session      `json:"session"`
}

type GetCombatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	PlayerID  string `json:"player_id,omitempty"`
}

type GetCombatResponse struct {
	Session *engine.Session `json:"session"`
}

type FinishCombatRequest struct {
	SessionID string `json:"session_id"`
}

type FinishCombatResponse struct {
	Result        string           `json:"result"`
	Gold          int              `json:"gold"`
	Experience    int              `json:"experience"`
	LeveledUp     bool             `json:"leveled_up"`
	NewLevel      int              `json:"new_level"`
	NewStatPoints int              `json:"new_stat_points"`
	Gladiator     *arena.Gladiator `json:"gladiator"`
	BattleLog     []string         `json:"battle_log"`
}

type JoinQueueRequest struct {
	PlayerID string `json:"player_id"`
}

type JoinQueueResponse struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

type LeaveQueueRequest struct {
	PlayerID string `json:"player_id"`
}

type LeaveQueueResponse struct {
	Removed bool `json:"removed"`
}

type PollNotificationsRequest struct {
	PlayerID string `json:"player_id"`
}

type PollNotificationsResponse struct {
	Notifications []*arena.Notification `json:"notifications"`
	Queued        bool                  `json:"queued"`
}
