// Package v1alpha1 handles the arena gRPC service interface
package v1alpha1

import (
	"context"
	"fmt"

	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/gladiator"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/matchmaking"
)

// PlayerIDHeader carries the caller's player id when a request leaves
// player_id empty. Identity is established upstream of this service.
const PlayerIDHeader = "x-player-id"

// HandlerConfig holds dependencies for the arena handler
type HandlerConfig struct {
	GladiatorService   gladiator.Service
	CombatService      combat.Service
	MatchmakingService matchmaking.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GladiatorService == nil {
		vb.RequiredField("GladiatorService")
	}
	if c.CombatService == nil {
		vb.RequiredField("CombatService")
	}
	if c.MatchmakingService == nil {
		vb.RequiredField("MatchmakingService")
	}

	return vb.Build()
}

// Handler implements the arena gRPC service
type Handler struct {
	UnimplementedArenaServiceServer
	gladiators  gladiator.Service
	combat      combat.Service
	matchmaking matchmaking.Service
}

var _ ArenaServiceServer = (*Handler)(nil)

// NewHandler creates a new arena handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gladiators:  cfg.GladiatorService,
		combat:      cfg.CombatService,
		matchmaking: cfg.MatchmakingService,
	}, nil
}

// playerID prefers the request field and falls back to the identity header.
func playerID(ctx context.Context, fromRequest string) (string, error) {
	if fromRequest != "" {
		return fromRequest, nil
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(PlayerIDHeader); len(values) > 0 && values[0] != "" {
			return values[0], nil
		}
	}
	return "", errors.InvalidArgument("player_id is required")
}

func toAllocation(in map[string]int) arena.Allocation {
	if in == nil {
		return nil
	}
	out := make(arena.Allocation, len(in))
	for stat, points := range in {
		out[arena.Stat(stat)] = points
	}
	return out
}

func toGladiator(v *gladiator.View) *Gladiator {
	if v == nil || v.Gladiator == nil {
		return nil
	}
	g := v.Gladiator
	return &Gladiator{
		PlayerID:         g.PlayerID,
		Name:             g.Name,
		Race:             v.Race,
		Level:            g.Level,
		Experience:       g.Experience,
		ExperienceToNext: v.ExperienceToNext,
		Gold:             g.Gold,
		UnspentPoints:    g.UnspentPoints,
		Wins:             g.Wins,
		Losses:           g.Losses,
		Points:           g.Points,
		Stats:            v.Stats,
		Inventory:        v.Inventory,
		Equipped:         v.Equipped,
		CreatedAt:        g.CreatedAt,
	}
}

// CreateGladiator creates or replaces the caller's gladiator
func (h *Handler) CreateGladiator(ctx context.Context, req *CreateGladiatorRequest) (*GladiatorResponse, error) {
	id, err := playerID(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}
	if req.Race == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("race is required"))
	}

	out, err := h.gladiators.CreateGladiator(ctx, &gladiator.CreateGladiatorInput{
		PlayerID:   id,
		Name:       req.Name,
		RaceID:     req.Race,
		Allocation: toAllocation(req.Allocation),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GladiatorResponse{Gladiator: toGladiator(out.View)}, nil
}

// GetGladiator returns the caller's gladiator
func (h *Handler) GetGladiator(ctx context.Context, req *GetGladiatorRequest) (*GladiatorResponse, error) {
	id, err := playerID(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gladiators.GetGladiator(ctx, &gladiator.GetGladiatorInput{PlayerID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GladiatorResponse{Gladiator: toGladiator(out.View)}, nil
}

// AllocatePoints spends unspent stat points
func (h *Handler) AllocatePoints(ctx context.Context, req *AllocatePointsRequest) (*GladiatorResponse, error) {
	id, err := playerID(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if len(req.Allocation) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("allocation is required"))
	}

	out, err := h.gladiators.AllocatePoints(ctx, &gladiator.AllocatePointsInput{
		PlayerID:   id,
		Allocation: toAllocation(req.Allocation),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GladiatorResponse{Gladiator: toGladiator(out.View)}, nil
}

// Train pays gold for a training session
func (h *Handler) Train(ctx context.Context, req *TrainRequest) (*TrainResponse, error) {
	id, err := playerID(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gladiators.Train(ctx, &gladiator.TrainInput{PlayerID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &TrainResponse{
		Gladiator:     toGladiator(out.View),
		GoldSpent:     out.GoldSpent,
		Experience:    out.Experience,
		LeveledUp:     out.LeveledUp,
		NewStatPoints: out.NewStatPoints,
	}, nil
}

// ListRaces returns every playable race
func (h *Handler) ListRaces(ctx context.Context, _ *ListRacesRequest) (*ListRacesResponse, error) {
	out, err := h.gladiators.ListRaces(ctx, &gladiator.ListRacesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ListRacesResponse{Races: out.Races}, nil
}

// ListEnemies returns the enemy roster
func (h *Handler) ListEnemies(ctx context.Context, req *ListEnemiesRequest) (*ListEnemiesResponse, error) {
	if req.Level < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("level must not be negative"))
	}

	out, err := h.gladiators.ListEnemies(ctx, &gladiator.ListEnemiesInput{Level: req.Level})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ListEnemiesResponse{Enemies: out.Enemies}, nil
}

// ListEquipment returns the shop
func (h *Handler) ListEquipment(ctx context.Context, _ *ListEquipmentRequest) (*ListEquipmentResponse, error) {
	out, err := h.gladiators.ListEquipment(ctx, &gladiator.ListEquipmentInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ListEquipmentResponse{Items: out.Items}, nil
}

// PurchaseItem buys an item into the inventory
func (h *Handler) PurchaseItem(ctx context.Context, req *PurchaseItemRequest) (*PurchaseItemResponse, error) {
	id, err := playerID(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.ItemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.gladiators.PurchaseItem(ctx, &gladiator.PurchaseItemInput{PlayerID: id, ItemID: req.ItemID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &PurchaseItemResponse{Gladiator: toGladiator(out.View), Item: out.Item}, nil
}

// EquipItem puts an owned item into a slot
func (h *Handler) EquipItem(ctx context.Context, req *EquipItemRequest) (*EquipItemResponse, error) {
	id, err := playerID(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.ItemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.gladiators.EquipItem(ctx, &gladiator.EquipItemInput{
		PlayerID: id,
		Slot:     arena.Slot(req.Slot),
		ItemID:   req.ItemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EquipItemResponse{Gladiator: toGladiator(out.View), Replaced: out.Replaced}, nil
}

// UnequipItem empties a slot
func (h *Handler) UnequipItem(ctx context.Context, req *UnequipItemRequest) (*UnequipItemResponse, error) {
	id, err := playerID(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.Slot == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("slot is required"))
	}

	out, err := h.gladiators.UnequipItem(ctx, &gladiator.UnequipItemInput{PlayerID: id, Slot: arena.Slot(req.Slot)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UnequipItemResponse{Gladiator: toGladiator(out.View), Removed: out.Removed}, nil
}

// DeriveStats previews an effective stat sheet
func (h *Handler) DeriveStats(ctx context.Context, req *DeriveStatsRequest) (*DeriveStatsResponse, error) {
	if req.Race == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("race is required"))
	}

	out, err := h.gladiators.DeriveStats(ctx, &gladiator.DeriveStatsInput{
		RaceID:     req.Race,
		Allocation: toAllocation(req.Allocation),
		ItemIDs:    req.ItemIDs,
		Available:  req.Available,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeriveStatsResponse{Stats: out.Stats}, nil
}

// StartCombat opens a PvE session against a named or random opponent
func (h *Handler) StartCombat(ctx context.Context, req *StartCombatRequest) (*StartCombatResponse, error) {
	id, err := playerID(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.combat.StartCombat(ctx, &combat.StartCombatInput{PlayerID: id, EnemyID: req.EnemyID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StartCombatResponse{
		Session:            out.Session,
		Difficulty:         string(out.Difficulty),
		DiscardedSessionID: out.DiscardedSessionID,
		Message:            fmt.Sprintf("Combat started! Fighting %s", out.Session.Opponent().Name),
	}, nil
}

// AdvanceRound resolves one round of a session
func (h *Handler) AdvanceRound(ctx context.Context, req *AdvanceRoundRequest) (*AdvanceRoundResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.combat.AdvanceRound(ctx, &combat.AdvanceRoundInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AdvanceRoundResponse{Outcome: out.Outcome, Session: out.Session}, nil
}

// GetCombat returns a session snapshot by id or the caller's active session
func (h *Handler) GetCombat(ctx context.Context, req *GetCombatRequest) (*GetCombatResponse, error) {
	input := &combat.GetCombatInput{SessionID: req.SessionID}
	if input.SessionID == "" {
		id, err := playerID(ctx, req.PlayerID)
		if err != nil {
			return nil, errors.ToGRPCError(errors.InvalidArgument("session_id or player_id is required"))
		}
		input.PlayerID = id
	}

	out, err := h.combat.GetCombat(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetCombatResponse{Session: out.Session}, nil
}

// FinishCombat settles a finished PvE session
func (h *Handler) FinishCombat(ctx context.Context, req *FinishCombatRequest) (*FinishCombatResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.combat.FinishCombat(ctx, &combat.FinishCombatInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	result := "defeat"
	if out.Reward.Victory {
		result = "victory"
	}

	return &FinishCombatResponse{
		Result:        result,
		Gold:          out.Reward.Gold,
		Experience:    out.Reward.Experience,
		LeveledUp:     out.Reward.LeveledUp,
		NewLevel:      out.Reward.NewLevel,
		NewStatPoints: out.Reward.NewStatPoints,
		Gladiator:     out.Gladiator,
		BattleLog:     out.Log,
	}, nil
}

// JoinQueue enters the random battle queue
func (h *Handler) JoinQueue(ctx context.Context, req *JoinQueueRequest) (*JoinQueueResponse, error) {
	id, err := playerID(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.matchmaking.JoinQueue(ctx, &matchmaking.JoinQueueInput{PlayerID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &JoinQueueResponse{
		Status:    string(out.Status),
		SessionID: out.SessionID,
		Message:   out.Message,
	}, nil
}

// LeaveQueue withdraws from the random battle queue
func (h *Handler) LeaveQueue(ctx context.Context, req *LeaveQueueRequest) (*LeaveQueueResponse, error) {
	id, err := playerID(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.matchmaking.LeaveQueue(ctx, &matchmaking.LeaveQueueInput{PlayerID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LeaveQueueResponse{Removed: out.Removed}, nil
}

// PollNotifications drains the caller's mailbox
func (h *Handler) PollNotifications(ctx context.Context, req *PollNotificationsRequest) (*PollNotificationsResponse, error) {
	id, err := playerID(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.matchmaking.PollNotifications(ctx, &matchmaking.PollNotificationsInput{PlayerID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	notifications := out.Notifications
	if notifications == nil {
		notifications = []*arena.Notification{}
	}
	return &PollNotificationsResponse{Notifications: notifications, Queued: out.Queued}, nil
}
