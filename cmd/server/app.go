package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/arena-api/internal/catalog"
	"github.com/KirkDiggler/arena-api/internal/config"
	"github.com/KirkDiggler/arena-api/internal/handlers/arena/v1alpha1"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/gladiator"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/matchmaking"
	"github.com/KirkDiggler/arena-api/internal/pkg/clock"
	"github.com/KirkDiggler/arena-api/internal/pkg/idgen"
	"github.com/KirkDiggler/arena-api/internal/pkg/keylock"
	"github.com/KirkDiggler/arena-api/internal/pkg/roller"
	redisclient "github.com/KirkDiggler/arena-api/internal/redis"
	"github.com/KirkDiggler/arena-api/internal/repositories/mailbox"
	"github.com/KirkDiggler/arena-api/internal/repositories/players"
	"github.com/KirkDiggler/arena-api/internal/repositories/sessions"
)

const redisPingTimeout = 5 * time.Second

// app holds the wired handler and whatever must be closed on shutdown.
type app struct {
	handler *v1alpha1.Handler
	closers []func() error
}

type stores struct {
	players  players.Repository
	sessions sessions.Repository
	mailbox  mailbox.Repository
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}
	clk := clock.New()
	cat := catalog.New()

	st, err := a.openStores(ctx, cfg, clk)
	if err != nil {
		a.Close()
		return nil, err
	}

	bus := events.NewBus()
	subscribeAudit(bus)

	// Shared so gladiator edits and combat rewards never interleave per player.
	playerLocks := keylock.New()

	gladiators, err := gladiator.NewOrchestrator(&gladiator.Config{
		PlayerRepo:         st.players,
		Catalog:            cat,
		Clock:              clk,
		Locks:              playerLocks,
		CreationPool:       cfg.CreationPool,
		StatPointsPerLevel: cfg.StatPointsPerLevel,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create gladiator orchestrator: %w", err)
	}

	combatOrch, err := combat.NewOrchestrator(&combat.Config{
		PlayerRepo:         st.players,
		SessionRepo:        st.sessions,
		Catalog:            cat,
		Roller:             roller.New(cfg.Seed),
		IDGenerator:        idgen.NewUUID("combat"),
		Clock:              clk,
		EventBus:           bus,
		PlayerLocks:        playerLocks,
		SessionTTL:         cfg.SessionTTL,
		RoundCap:           cfg.RoundCap,
		StatPointsPerLevel: cfg.StatPointsPerLevel,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create combat orchestrator: %w", err)
	}

	matchmakingOrch, err := matchmaking.NewOrchestrator(&matchmaking.Config{
		PlayerRepo:  st.players,
		Mailbox:     st.mailbox,
		Catalog:     cat,
		Combat:      combatOrch,
		IDGenerator: idgen.NewUUID("note"),
		Clock:       clk,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create matchmaking orchestrator: %w", err)
	}

	a.handler, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		GladiatorService:   gladiators,
		CombatService:      combatOrch,
		MatchmakingService: matchmakingOrch,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create arena handler: %w", err)
	}

	return a, nil
}

func (a *app) openStores(ctx context.Context, cfg *config.Config, clk clock.Clock) (*stores, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
			return nil, fmt.Errorf("redis at %s is unreachable: %w", cfg.RedisAddr, err)
		}

		playerRepo, err := players.NewRedis(&players.RedisConfig{Client: client})
		if err != nil {
			return nil, err
		}
		sessionRepo, err := sessions.NewRedis(&sessions.RedisConfig{Client: client})
		if err != nil {
			return nil, err
		}
		mailboxRepo, err := mailbox.NewRedis(&mailbox.RedisConfig{Client: client})
		if err != nil {
			return nil, err
		}
		return &stores{players: playerRepo, sessions: sessionRepo, mailbox: mailboxRepo}, nil

	case config.BackendSQLite:
		playerRepo, err := players.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, playerRepo.Close)
		return &stores{
			players:  playerRepo,
			sessions: sessions.NewInMemory(clk),
			mailbox:  mailbox.NewInMemory(),
		}, nil

	default:
		return &stores{
			players:  players.NewInMemory(),
			sessions: sessions.NewInMemory(clk),
			mailbox:  mailbox.NewInMemory(),
		}, nil
	}
}

// Close releases backend connections in reverse order of opening.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("Failed to close backend", "error", err)
		}
	}
	a.closers = nil
}

// subscribeAudit logs every settled combat session.
func subscribeAudit(bus events.EventBus) {
	bus.SubscribeFunc(combat.EventCombatFinished, 100, func(ctx context.Context, e events.Event) error {
		sessionID, _ := e.Context().Get(combat.EventKeySessionID)
		mode, _ := e.Context().Get(combat.EventKeyMode)
		winner, _ := e.Context().Get(combat.EventKeyWinner)
		rounds, _ := e.Context().Get(combat.EventKeyRounds)

		slog.InfoContext(ctx, "Combat finished",
			"session_id", sessionID,
			"mode", mode,
			"winner_side", winner,
			"rounds", rounds,
		)
		return nil
	})
}
