// Package combat implements the combat orchestrator. It owns the per-player
// active session slot, drives rounds through the engine and settles rewards
// into the player's stored progression.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/arena-api/internal/orchestrators/combat Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/arena-api/internal/catalog"
	engine "github.com/KirkDiggler/arena-api/internal/engine/combat"
	"github.com/KirkDiggler/arena-api/internal/engine/rewards"
	"github.com/KirkDiggler/arena-api/internal/engine/stats"
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/gladiator"
	"github.com/KirkDiggler/arena-api/internal/pkg/clock"
	"github.com/KirkDiggler/arena-api/internal/pkg/idgen"
	"github.com/KirkDiggler/arena-api/internal/pkg/keylock"
	"github.com/KirkDiggler/arena-api/internal/repositories/players"
	"github.com/KirkDiggler/arena-api/internal/repositories/sessions"
)

// EventCombatFinished is published on the event bus after a session is settled.
const EventCombatFinished = "arena.combat.finished"

// Event context keys carried by EventCombatFinished.
const (
	EventKeySessionID = "session_id"
	EventKeyMode      = "mode"
	EventKeyWinner    = "winner"
	EventKeyRounds    = "rounds"
)

const tracerName = "github.com/KirkDiggler/arena-api/internal/orchestrators/combat"

// Service defines the interface for combat operations
type Service interface {
	// StartCombat opens a fight for a player and replaces their active session
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)

	// AdvanceRound resolves exactly one round
	// Returns NoActiveSession if the session is missing or finished
	AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error)

	// GetCombat returns a session snapshot
	GetCombat(ctx context.Context, input *GetCombatInput) (*GetCombatOutput, error)

	// FinishCombat settles a finished fight into the player's progression
	// Returns NoActiveSession if the session is missing or still active
	FinishCombat(ctx context.Context, input *FinishCombatInput) (*FinishCombatOutput, error)

	// StartDuel creates a PvP session between two queued players
	StartDuel(ctx context.Context, input *StartDuelInput) (*StartDuelOutput, error)

	// ResolveDuel fights a PvP session to the end and settles both sides
	ResolveDuel(ctx context.Context, input *ResolveDuelInput) (*ResolveDuelOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	PlayerRepo  players.Repository
	SessionRepo sessions.Repository
	Catalog     catalog.Catalog
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// EventBus is optional; finished fights are published when set
	EventBus events.EventBus
	// PlayerLocks must be shared with the gladiator orchestrator
	PlayerLocks *keylock.Locker

	SessionTTL         time.Duration
	RoundCap           int
	StatPointsPerLevel int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.RoundCap < 0 {
		vb.InvalidField("RoundCap", "must not be negative")
	}
	if c.SessionTTL < 0 {
		vb.InvalidField("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo  players.Repository
	sessionRepo sessions.Repository
	catalog     catalog.Catalog
	roller      dice.Roller
	idGen       idgen.Generator
	clock       clock.Clock
	eventBus    events.EventBus
	tracer      trace.Tracer

	// lock order is always session then player
	sessionLocks *keylock.Locker
	playerLocks  *keylock.Locker

	sessionTTL time.Duration
	roundCap   int
	rules      rewards.Rules
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		playerRepo:   cfg.PlayerRepo,
		sessionRepo:  cfg.SessionRepo,
		catalog:      cfg.Catalog,
		roller:       cfg.Roller,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		eventBus:     cfg.EventBus,
		tracer:       otel.Tracer(tracerName),
		sessionLocks: keylock.New(),
		playerLocks:  cfg.PlayerLocks,
		sessionTTL:   cfg.SessionTTL,
		roundCap:     cfg.RoundCap,
		rules:        rewards.Rules{StatPointsPerLevel: cfg.StatPointsPerLevel},
	}
	if o.playerLocks == nil {
		o.playerLocks = keylock.New()
	}
	if o.sessionTTL == 0 {
		o.sessionTTL = sessions.DefaultTTL
	}
	if o.roundCap == 0 {
		o.roundCap = engine.DefaultRoundCap
	}

	return o, nil
}

func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	ctx, span := o.tracer.Start(ctx, "combat.StartCombat",
		trace.WithAttributes(attribute.String("player_id", input.PlayerID)))
	defer span.End()

	unlock := o.playerLocks.Lock(input.PlayerID)
	defer unlock()

	out, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, fail(span, err)
	}
	g := out.Gladiator

	sheet, err := gladiator.EffectiveStats(o.catalog, g)
	if err != nil {
		return nil, fail(span, err)
	}

	opponent, coefficient, difficulty, err := o.pickOpponent(g, input.EnemyID)
	if err != nil {
		return nil, fail(span, err)
	}

	session, err := engine.Start(&engine.StartInput{
		ID:          o.idGen.Generate(),
		Mode:        engine.ModePvE,
		Player:      engine.NewCombatant(g.PlayerID, g.Name, engine.SourcePlayer, sheet),
		Opponent:    opponent,
		RoundCap:    o.roundCap,
		Coefficient: coefficient,
		Now:         o.clock.Now(),
	})
	if err != nil {
		return nil, fail(span, errors.Wrap(err, "failed to start session"))
	}

	if _, err := o.sessionRepo.Save(ctx, sessions.SaveInput{Session: session, TTL: o.sessionTTL}); err != nil {
		return nil, fail(span, errors.Wrapf(err, "failed to save session %s", session.ID))
	}

	active, err := o.sessionRepo.SetActive(ctx, sessions.SetActiveInput{
		PlayerID:  g.PlayerID,
		SessionID: session.ID,
		TTL:       o.sessionTTL,
	})
	if err != nil {
		return nil, fail(span, errors.Wrapf(err, "failed to set active session for player %s", g.PlayerID))
	}

	// The active slot now points at the new session, so FinishCombat already
	// refuses prev. Deleting it only frees storage early.
	discarded := ""
	if prev := active.PreviousSessionID; prev != "" && prev != session.ID {
		_, err := o.sessionRepo.Delete(ctx, sessions.DeleteInput{SessionID: prev})
		switch {
		case err == nil:
			discarded = prev
		case !errors.IsNotFound(err):
			slog.Warn("Failed to discard abandoned session",
				"player_id", g.PlayerID,
				"session_id", prev,
				"error", err,
			)
		}
	}

	span.SetAttributes(attribute.String("session_id", session.ID))
	slog.Info("Combat started",
		"session_id", session.ID,
		"player_id", g.PlayerID,
		"opponent", opponent.Name,
		"first_actor", session.FirstActor,
		"discarded_session_id", discarded,
	)

	return &StartCombatOutput{
		Session:            session,
		Difficulty:         difficulty,
		DiscardedSessionID: discarded,
	}, nil
}

// pickOpponent resolves a scripted enemy, or rolls a random race opponent
// when enemyID is empty.
func (o *orchestrator) pickOpponent(g *arena.Gladiator, enemyID string) (*engine.Combatant, float64, arena.Difficulty, error) {
	if enemyID != "" {
		enemy, err := o.catalog.GetEnemy(enemyID)
		if err != nil {
			return nil, 0, "", err
		}
		if g.Level < enemy.MinLevel {
			return nil, 0, "", errors.LevelTooLow(g.Level, enemy.MinLevel)
		}
		sheet := stats.Derive(nil, enemy.Stats, nil)
		return engine.NewCombatant(enemy.ID, enemy.Name, engine.SourceEnemy, sheet), enemy.Coefficient, "", nil
	}

	races := o.catalog.ListRaces()
	if len(races) == 0 {
		return nil, 0, "", errors.Internal("no races available for opponent selection")
	}
	raceRoll, err := o.roller.Roll(len(races))
	if err != nil {
		return nil, 0, "", errors.Wrap(err, "failed to roll opponent race")
	}
	diffRoll, err := o.roller.Roll(len(arena.Difficulties))
	if err != nil {
		return nil, 0, "", errors.Wrap(err, "failed to roll opponent difficulty")
	}
	race := races[raceRoll-1]
	difficulty := arena.Difficulties[diffRoll-1]

	opponent := engine.NewCombatant(race.ID, fmt.Sprintf("%s %s", difficulty, race.Name), engine.SourceEnemy,
		scaleForDifficulty(stats.Derive(race, arena.StatBlock{}, nil), difficulty))
	return opponent, difficulty.Coefficient(), difficulty, nil
}

// scaleForDifficulty scales strength and dodge by the difficulty multiplier
// and max health by half of it.
func scaleForDifficulty(sheet arena.EffectiveStatSheet, d arena.Difficulty) arena.EffectiveStatSheet {
	pct := d.Multiplier()
	sheet.Strength = sheet.Strength * pct / 100
	sheet.Dodge = min(sheet.Dodge*pct/100, stats.MaxDodge)
	sheet.MaxHealth = max(1, sheet.MaxHealth*(100+(pct-100)/2)/100)
	return sheet
}

func (o *orchestrator) AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session_id is required")
	}

	ctx, span := o.tracer.Start(ctx, "combat.AdvanceRound",
		trace.WithAttributes(attribute.String("session_id", input.SessionID)))
	defer span.End()

	unlock := o.sessionLocks.Lock(input.SessionID)
	defer unlock()

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, fail(span, err)
	}

	outcome, err := engine.Advance(session, o.roller)
	if err != nil {
		return nil, fail(span, err)
	}
	session.UpdatedAt = o.clock.Now()

	if _, err := o.sessionRepo.Save(ctx, sessions.SaveInput{Session: session, TTL: o.sessionTTL}); err != nil {
		return nil, fail(span, errors.Wrapf(err, "failed to save session %s", session.ID))
	}

	span.SetAttributes(attribute.Int("round", outcome.Round), attribute.Bool("finished", outcome.Finished))
	slog.Debug("Combat round resolved",
		"session_id", session.ID,
		"round", outcome.Round,
		"player_health", outcome.PlayerHealth,
		"opponent_health", outcome.OpponentHealth,
		"finished", outcome.Finished,
	)

	return &AdvanceRoundOutput{Outcome: outcome, Session: session}, nil
}

func (o *orchestrator) GetCombat(ctx context.Context, input *GetCombatInput) (*GetCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sessionID := input.SessionID
	if sessionID == "" {
		if input.PlayerID == "" {
			return nil, errors.InvalidArgument("session_id or player_id is required")
		}
		active, err := o.sessionRepo.GetActive(ctx, sessions.GetActiveInput{PlayerID: input.PlayerID})
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.NoActiveSession("")
			}
			return nil, err
		}
		sessionID = active.SessionID
	}

	out, err := o.sessionRepo.Get(ctx, sessions.GetInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	return &GetCombatOutput{Session: out.Session}, nil
}

func (o *orchestrator) FinishCombat(ctx context.Context, input *FinishCombatInput) (*FinishCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session_id is required")
	}

	ctx, span := o.tracer.Start(ctx, "combat.FinishCombat",
		trace.WithAttributes(attribute.String("session_id", input.SessionID)))
	defer span.End()

	unlock := o.sessionLocks.Lock(input.SessionID)
	defer unlock()

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, fail(span, err)
	}
	if !session.IsFinished() {
		return nil, fail(span, errors.NoActiveSession(session.ID))
	}
	if session.Mode != engine.ModePvE {
		return nil, fail(span, errors.FailedPreconditionf("session %s is settled by matchmaking", session.ID))
	}

	playerID := session.Player().ID
	unlockPlayer := o.playerLocks.Lock(playerID)
	defer unlockPlayer()

	if err := o.requireActive(ctx, playerID, session.ID); err != nil {
		return nil, fail(span, err)
	}

	out, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, fail(span, err)
	}
	g := out.Gladiator

	reward, err := rewards.Settle(session, engine.SidePlayer, rewards.Progress{Level: g.Level, Experience: g.Experience}, o.rules)
	if err != nil {
		return nil, fail(span, err)
	}

	// Removing the session first keeps a retry from settling twice.
	if _, err := o.sessionRepo.Delete(ctx, sessions.DeleteInput{SessionID: session.ID}); err != nil {
		if errors.IsNotFound(err) {
			return nil, fail(span, errors.NoActiveSession(session.ID))
		}
		return nil, fail(span, errors.Wrapf(err, "failed to delete session %s", session.ID))
	}

	applyReward(g, reward)
	g.UpdatedAt = o.clock.Now()

	if _, err := o.playerRepo.Save(ctx, players.SaveInput{Gladiator: g}); err != nil {
		if _, restoreErr := o.sessionRepo.Save(ctx, sessions.SaveInput{Session: session, TTL: o.sessionTTL}); restoreErr != nil {
			slog.Error("Failed to restore session after settle failure",
				"session_id", session.ID,
				"error", restoreErr,
			)
		}
		return nil, fail(span, errors.Wrapf(err, "failed to save gladiator for player %s", playerID))
	}

	if _, err := o.sessionRepo.ClearActive(ctx, sessions.ClearActiveInput{PlayerID: playerID, SessionID: session.ID}); err != nil {
		slog.Warn("Failed to clear active session", "player_id", playerID, "session_id", session.ID, "error", err)
	}

	log := make([]string, len(session.Log), len(session.Log)+1)
	copy(log, session.Log)
	log = append(log, fmt.Sprintf("You earned %d gold and %d experience!", reward.Gold, reward.Experience))

	o.publishFinished(ctx, session)

	span.SetAttributes(attribute.Bool("victory", reward.Victory))
	slog.Info("Combat finished",
		"session_id", session.ID,
		"player_id", playerID,
		"victory", reward.Victory,
		"gold", reward.Gold,
		"experience", reward.Experience,
		"leveled_up", reward.LeveledUp,
	)

	return &FinishCombatOutput{
		Reward:    reward,
		Session:   session,
		Gladiator: g,
		Log:       log,
	}, nil
}

func (o *orchestrator) StartDuel(ctx context.Context, input *StartDuelInput) (*StartDuelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("challenger.player_id", input.Challenger.PlayerID, vb)
	errors.ValidateRequired("opponent.player_id", input.Opponent.PlayerID, vb)
	if input.Challenger.PlayerID != "" && input.Challenger.PlayerID == input.Opponent.PlayerID {
		vb.InvalidField("opponent.player_id", "a player cannot duel themselves")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session, err := engine.Start(&engine.StartInput{
		ID:          o.idGen.Generate(),
		Mode:        engine.ModePvP,
		Player:      engine.NewCombatant(input.Challenger.PlayerID, input.Challenger.Name, engine.SourcePlayer, input.Challenger.Stats),
		Opponent:    engine.NewCombatant(input.Opponent.PlayerID, input.Opponent.Name, engine.SourcePlayer, input.Opponent.Stats),
		RoundCap:    o.roundCap,
		Coefficient: 1.0,
		Now:         o.clock.Now(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start duel")
	}

	if _, err := o.sessionRepo.Save(ctx, sessions.SaveInput{Session: session, TTL: o.sessionTTL}); err != nil {
		return nil, errors.Wrapf(err, "failed to save session %s", session.ID)
	}

	slog.Info("Duel started",
		"session_id", session.ID,
		"challenger_id", input.Challenger.PlayerID,
		"opponent_id", input.Opponent.PlayerID,
	)

	return &StartDuelOutput{Session: session}, nil
}

func (o *orchestrator) ResolveDuel(ctx context.Context, input *ResolveDuelInput) (*ResolveDuelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session_id is required")
	}

	ctx, span := o.tracer.Start(ctx, "combat.ResolveDuel",
		trace.WithAttributes(attribute.String("session_id", input.SessionID)))
	defer span.End()

	unlock := o.sessionLocks.Lock(input.SessionID)
	defer unlock()

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, fail(span, err)
	}
	if session.Mode != engine.ModePvP {
		return nil, fail(span, errors.FailedPreconditionf("session %s is not a duel", session.ID))
	}
	if session.IsFinished() {
		return nil, fail(span, errors.NoActiveSession(session.ID))
	}

	if err := engine.RunToCompletion(session, o.roller); err != nil {
		return nil, fail(span, errors.Wrapf(err, "failed to resolve duel %s", session.ID))
	}
	session.UpdatedAt = o.clock.Now()

	if _, err := o.sessionRepo.Save(ctx, sessions.SaveInput{Session: session, TTL: o.sessionTTL}); err != nil {
		return nil, fail(span, errors.Wrapf(err, "failed to save session %s", session.ID))
	}

	result := &ResolveDuelOutput{
		Session:    session,
		WinnerName: session.WinnerCombatant().Name,
		LoserName:  session.LoserCombatant().Name,
	}
	for side := range session.Combatants {
		reward, err := o.settleDuelist(ctx, session, side)
		if err != nil {
			for settled := range side {
				o.revertDuelist(ctx, session, settled, result.Rewards[settled])
			}
			return nil, fail(span, err)
		}
		result.Rewards[side] = reward
	}

	o.publishFinished(ctx, session)

	slog.Info("Duel resolved",
		"session_id", session.ID,
		"winner", result.WinnerName,
		"loser", result.LoserName,
		"rounds", session.Round,
	)

	return result, nil
}

// settleDuelist applies one side's reward under that player's lock. A player
// whose gladiator vanished mid-match is skipped.
func (o *orchestrator) settleDuelist(ctx context.Context, session *engine.Session, side int) (*rewards.Reward, error) {
	playerID := session.Combatants[side].ID

	unlock := o.playerLocks.Lock(playerID)
	defer unlock()

	out, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: playerID})
	if err != nil {
		if errors.IsNotFound(err) {
			slog.Warn("Duelist has no gladiator, skipping reward", "session_id", session.ID, "player_id", playerID)
			return nil, nil
		}
		return nil, err
	}
	g := out.Gladiator

	reward, err := rewards.Settle(session, side, rewards.Progress{Level: g.Level, Experience: g.Experience}, o.rules)
	if err != nil {
		return nil, err
	}

	applyReward(g, reward)
	g.UpdatedAt = o.clock.Now()

	if _, err := o.playerRepo.Save(ctx, players.SaveInput{Gladiator: g}); err != nil {
		return nil, errors.Wrapf(err, "failed to save gladiator for player %s", playerID)
	}
	return reward, nil
}

// revertDuelist takes back a reward already paid to one side of a duel whose
// other side could not be settled. A nil reward means nothing was paid.
func (o *orchestrator) revertDuelist(ctx context.Context, session *engine.Session, side int, reward *rewards.Reward) {
	if reward == nil {
		return
	}
	playerID := session.Combatants[side].ID

	unlock := o.playerLocks.Lock(playerID)
	defer unlock()

	out, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: playerID})
	if err == nil {
		revertReward(out.Gladiator, reward)
		out.Gladiator.UpdatedAt = o.clock.Now()
		_, err = o.playerRepo.Save(ctx, players.SaveInput{Gladiator: out.Gladiator})
	}
	if err != nil {
		slog.Error("Failed to revert duel reward",
			"session_id", session.ID,
			"player_id", playerID,
			"error", err,
		)
	}
}

// requireActive fails with NoActiveSession unless sessionID is the player's
// active session.
func (o *orchestrator) requireActive(ctx context.Context, playerID, sessionID string) error {
	active, err := o.sessionRepo.GetActive(ctx, sessions.GetActiveInput{PlayerID: playerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.NoActiveSession(sessionID)
		}
		return errors.Wrapf(err, "failed to load active session for player %s", playerID)
	}
	if active.SessionID != sessionID {
		return errors.NoActiveSession(sessionID)
	}
	return nil
}

func (o *orchestrator) loadSession(ctx context.Context, sessionID string) (*engine.Session, error) {
	out, err := o.sessionRepo.Get(ctx, sessions.GetInput{SessionID: sessionID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NoActiveSession(sessionID)
		}
		return nil, errors.Wrapf(err, "failed to load session %s", sessionID)
	}
	return out.Session, nil
}

func (o *orchestrator) publishFinished(ctx context.Context, session *engine.Session) {
	if o.eventBus == nil {
		return
	}

	event := events.NewGameEvent(EventCombatFinished, session.Player(), session.Opponent())
	event.Context().Set(EventKeySessionID, session.ID)
	event.Context().Set(EventKeyMode, string(session.Mode))
	event.Context().Set(EventKeyWinner, session.WinnerSide())
	event.Context().Set(EventKeyRounds, session.Round)

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish combat event", "session_id", session.ID, "error", err)
	}
}

func applyReward(g *arena.Gladiator, reward *rewards.Reward) {
	g.Gold += reward.Gold
	g.Experience += reward.Experience
	g.Level = reward.NewLevel
	g.UnspentPoints += reward.NewStatPoints
	if reward.Victory {
		g.Wins++
	} else {
		g.Losses++
	}
}

func revertReward(g *arena.Gladiator, reward *rewards.Reward) {
	g.Gold -= reward.Gold
	g.Experience -= reward.Experience
	if reward.LeveledUp {
		g.Level = rewards.LevelForExperience(g.Experience)
	}
	g.UnspentPoints = max(0, g.UnspentPoints-reward.NewStatPoints)
	if reward.Victory {
		g.Wins--
	} else {
		g.Losses--
	}
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
