// Package matchmaking implements the random battle queue. Pairing happens
// eagerly at join time; both players learn about the match through their
// mailbox on their next poll.
package matchmaking

//go:generate mockgen -destination=mock/mock_service.go -package=matchmakingmock github.com/KirkDiggler/arena-api/internal/orchestrators/matchmaking Service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/arena-api/internal/catalog"
	engine "github.com/KirkDiggler/arena-api/internal/engine/matchmaking"
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/gladiator"
	"github.com/KirkDiggler/arena-api/internal/pkg/clock"
	"github.com/KirkDiggler/arena-api/internal/pkg/idgen"
	"github.com/KirkDiggler/arena-api/internal/repositories/mailbox"
	"github.com/KirkDiggler/arena-api/internal/repositories/players"
)

// Service defines the interface for random battle operations
type Service interface {
	// JoinQueue pairs the player with the oldest waiting player, or queues them.
	// Joining while already queued is a no-op that reports queued.
	JoinQueue(ctx context.Context, input *JoinQueueInput) (*JoinQueueOutput, error)

	// LeaveQueue withdraws a waiting player
	LeaveQueue(ctx context.Context, input *LeaveQueueInput) (*LeaveQueueOutput, error)

	// PollNotifications drains the player's mailbox
	PollNotifications(ctx context.Context, input *PollNotificationsInput) (*PollNotificationsOutput, error)
}

// Config holds the dependencies for the matchmaking orchestrator
type Config struct {
	PlayerRepo  players.Repository
	Mailbox     mailbox.Repository
	Catalog     catalog.Catalog
	Combat      combat.Service
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Mailbox == nil {
		vb.RequiredField("Mailbox")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Combat == nil {
		vb.RequiredField("Combat")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo players.Repository
	mailbox    mailbox.Repository
	catalog    catalog.Catalog
	combat     combat.Service
	idGen      idgen.Generator
	clock      clock.Clock

	// mu covers the pool and every mailbox write, so a poll never sees a
	// half-applied pairing.
	mu   sync.Mutex
	pool *engine.Pool
}

// NewOrchestrator creates a new matchmaking orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		mailbox:    cfg.Mailbox,
		catalog:    cfg.Catalog,
		combat:     cfg.Combat,
		idGen:      cfg.IDGenerator,
		clock:      cfg.Clock,
		pool:       engine.NewPool(),
	}, nil
}

func (o *orchestrator) JoinQueue(ctx context.Context, input *JoinQueueInput) (*JoinQueueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	out, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	sheet, err := gladiator.EffectiveStats(o.catalog, out.Gladiator)
	if err != nil {
		return nil, err
	}
	entry := &engine.Entry{
		PlayerID:   input.PlayerID,
		Name:       out.Gladiator.Name,
		Stats:      sheet,
		EnqueuedAt: o.clock.Now(),
	}

	sessionID, opponent, err := o.pair(ctx, entry)
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		return &JoinQueueOutput{Status: StatusQueued, Message: "Joined queue. Waiting for opponent."}, nil
	}

	message := o.resolve(ctx, sessionID, entry.PlayerID, opponent.PlayerID)
	return &JoinQueueOutput{Status: StatusMatched, SessionID: sessionID, Message: message}, nil
}

// pair runs the whole join-or-pair step under the queue lock. It returns an
// empty session id when the player ended up waiting.
func (o *orchestrator) pair(ctx context.Context, entry *engine.Entry) (string, *engine.Entry, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.pool.Contains(entry.PlayerID) {
		slog.Info("Player already queued", "player_id", entry.PlayerID, "reason", "already_queued")
		return "", nil, nil
	}

	opponent := o.pool.PopOldestExcept(entry.PlayerID)
	if opponent == nil {
		o.pool.Push(entry)
		slog.Info("Player queued for random battle", "player_id", entry.PlayerID, "waiting", o.pool.Len())
		return "", nil, nil
	}

	duel, err := o.combat.StartDuel(ctx, &combat.StartDuelInput{
		Challenger: combat.Duelist{PlayerID: entry.PlayerID, Name: entry.Name, Stats: entry.Stats},
		Opponent:   combat.Duelist{PlayerID: opponent.PlayerID, Name: opponent.Name, Stats: opponent.Stats},
	})
	if err != nil {
		o.pool.PushFront(opponent)
		return "", nil, errors.Wrap(err, "failed to start random battle")
	}
	sessionID := duel.Session.ID

	o.notifyLocked(ctx, entry.PlayerID, arena.NotificationMatchFound,
		fmt.Sprintf("Match found! You are fighting %s.", opponent.Name), sessionID)
	o.notifyLocked(ctx, opponent.PlayerID, arena.NotificationMatchFound,
		fmt.Sprintf("Match found! You are fighting %s.", entry.Name), sessionID)

	slog.Info("Random battle paired",
		"session_id", sessionID,
		"challenger_id", entry.PlayerID,
		"opponent_id", opponent.PlayerID,
		"waited", entry.EnqueuedAt.Sub(opponent.EnqueuedAt),
	)

	return sessionID, opponent, nil
}

// resolve fights the paired session outside the queue lock and reports the
// result to both players.
func (o *orchestrator) resolve(ctx context.Context, sessionID, challengerID, opponentID string) string {
	result, err := o.combat.ResolveDuel(ctx, &combat.ResolveDuelInput{SessionID: sessionID})
	if err != nil {
		slog.Error("Failed to resolve random battle", "session_id", sessionID, "error", err)
		return "Match found. The battle could not be resolved."
	}

	message := fmt.Sprintf("Random battle complete: %s defeated %s in %d rounds.",
		result.WinnerName, result.LoserName, result.Session.Round)

	o.mu.Lock()
	o.notifyLocked(ctx, challengerID, arena.NotificationBattleResolved, message, sessionID)
	o.notifyLocked(ctx, opponentID, arena.NotificationBattleResolved, message, sessionID)
	o.mu.Unlock()

	return message
}

func (o *orchestrator) notifyLocked(ctx context.Context, playerID string, kind arena.NotificationKind, message, sessionID string) {
	_, err := o.mailbox.Push(ctx, mailbox.PushInput{
		PlayerID: playerID,
		Notification: &arena.Notification{
			ID:        o.idGen.Generate(),
			Kind:      kind,
			Message:   message,
			SessionID: sessionID,
			CreatedAt: o.clock.Now(),
		},
	})
	if err != nil {
		slog.Error("Failed to deliver notification",
			"player_id", playerID,
			"kind", kind,
			"session_id", sessionID,
			"error", err,
		)
	}
}

func (o *orchestrator) LeaveQueue(_ context.Context, input *LeaveQueueInput) (*LeaveQueueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	o.mu.Lock()
	removed := o.pool.Remove(input.PlayerID)
	o.mu.Unlock()

	if removed {
		slog.Info("Player left random battle queue", "player_id", input.PlayerID)
	}
	return &LeaveQueueOutput{Removed: removed}, nil
}

func (o *orchestrator) PollNotifications(ctx context.Context, input *PollNotificationsInput) (*PollNotificationsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	out, err := o.mailbox.Drain(ctx, mailbox.DrainInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to drain mailbox for player %s", input.PlayerID)
	}

	slog.Debug("Notifications polled", "player_id", input.PlayerID, "count", len(out.Notifications))

	return &PollNotificationsOutput{
		Notifications: out.Notifications,
		Queued:        o.pool.Contains(input.PlayerID),
	}, nil
}
