package combat_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/arena-api/internal/catalog"
	engine "github.com/KirkDiggler/arena-api/internal/engine/combat"
	"github.com/KirkDiggler/arena-api/internal/engine/rewards"
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/gladiator"
	"github.com/KirkDiggler/arena-api/internal/pkg/clock"
	"github.com/KirkDiggler/arena-api/internal/pkg/idgen"
	"github.com/KirkDiggler/arena-api/internal/pkg/roller"
	"github.com/KirkDiggler/arena-api/internal/repositories/players"
	playersmock "github.com/KirkDiggler/arena-api/internal/repositories/players/mock"
	"github.com/KirkDiggler/arena-api/internal/repositories/sessions"
	"github.com/KirkDiggler/arena-api/internal/testutils"
)

// Rolls for one landed, non-critical hit at exactly base damage.
var plainHit = []int{100, 21, 100}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx         context.Context
	playerRepo  *players.InMemoryRepository
	sessionRepo *sessions.InMemoryRepository
	bus         events.EventBus

	mu       sync.Mutex
	finished []string
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.playerRepo = players.NewInMemory()
	s.sessionRepo = sessions.NewInMemory(&clock.Fixed{At: testutils.FixedTime})
	s.bus = events.NewBus()
	s.finished = nil

	s.bus.SubscribeFunc(combat.EventCombatFinished, 0, func(_ context.Context, e events.Event) error {
		id, _ := e.Context().Get(combat.EventKeySessionID)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.finished = append(s.finished, id.(string))
		return nil
	})
}

func (s *OrchestratorTestSuite) orchestrator(r dice.Roller) combat.Service {
	return s.orchestratorWith(r, s.playerRepo, s.sessionRepo)
}

func (s *OrchestratorTestSuite) orchestratorWith(r dice.Roller, playerRepo players.Repository, sessionRepo sessions.Repository) combat.Service {
	orch, err := combat.NewOrchestrator(&combat.Config{
		PlayerRepo:  playerRepo,
		SessionRepo: sessionRepo,
		Catalog:     catalog.New(),
		Roller:      r,
		IDGenerator: idgen.NewSequential("combat"),
		Clock:       &clock.Fixed{At: testutils.FixedTime},
		EventBus:    s.bus,
	})
	s.Require().NoError(err)
	return orch
}

func (s *OrchestratorTestSuite) store(g *arena.Gladiator) {
	_, err := s.playerRepo.Save(s.ctx, players.SaveInput{Gladiator: g})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) gladiator(playerID string) *arena.Gladiator {
	out, err := s.playerRepo.Get(s.ctx, players.GetInput{PlayerID: playerID})
	s.Require().NoError(err)
	return out.Gladiator
}

// failingDeletes fails the next n session deletes.
type failingDeletes struct {
	sessions.Repository
	n int
}

func (f *failingDeletes) Delete(ctx context.Context, input sessions.DeleteInput) (*sessions.DeleteOutput, error) {
	if f.n > 0 {
		f.n--
		return nil, errors.Unavailable("redis unreachable")
	}
	return f.Repository.Delete(ctx, input)
}

// failingSaves rejects gladiator saves for one player.
type failingSaves struct {
	players.Repository
	playerID string
}

func (f *failingSaves) Save(ctx context.Context, input players.SaveInput) (*players.SaveOutput, error) {
	if input.Gladiator != nil && input.Gladiator.PlayerID == f.playerID {
		return nil, errors.Internal("disk full")
	}
	return f.Repository.Save(ctx, input)
}

func rolls(parts ...[]int) []int {
	var out []int
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := combat.NewOrchestrator(&combat.Config{RoundCap: -1})
	s.Require().Error(err)
	s.Contains(err.Error(), "SessionRepo")
	s.Contains(err.Error(), "RoundCap")
}

func (s *OrchestratorTestSuite) TestStartAgainstEnemy() {
	s.store(testutils.CreateTestGladiator("player_1"))
	orch := s.orchestrator(roller.NewSeeded(1))

	out, err := orch.StartCombat(s.ctx, &combat.StartCombatInput{PlayerID: "player_1", EnemyID: "Slime"})
	s.Require().NoError(err)

	session := out.Session
	s.Equal("combat_1", session.ID)
	s.Equal(engine.StateActive, session.State)
	s.Equal(0, session.Round)
	s.Equal(0.5, session.Coefficient)
	s.Equal(engine.SidePlayer, session.FirstActor)
	s.Equal(76, session.Player().Health)
	s.Equal(76, session.Opponent().Health)
	s.Equal("Slime", session.Opponent().Name)
	s.Empty(out.DiscardedSessionID)

	active, err := s.sessionRepo.GetActive(s.ctx, sessions.GetActiveInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Equal(session.ID, active.SessionID)
}

func (s *OrchestratorTestSuite) TestStartRandomOpponent() {
	s.store(testutils.CreateTestGladiator("player_1"))
	r := roller.NewScripted(2, 3)
	orch := s.orchestrator(r)

	out, err := orch.StartCombat(s.ctx, &combat.StartCombatInput{PlayerID: "player_1"})
	s.Require().NoError(err)

	opponent := out.Session.Opponent()
	s.Equal(arena.DifficultyStrong, out.Difficulty)
	s.Equal("Strong Orc", opponent.Name)
	s.Equal(1.5, out.Session.Coefficient)
	s.Equal(14, opponent.Stats.Strength)
	s.Equal(2, opponent.Stats.Dodge)
	s.Equal(22, opponent.Health)
	s.Equal([]int{4, 3}, r.Sizes())
}

func (s *OrchestratorTestSuite) TestStartRejections() {
	s.store(testutils.CreateTestGladiator("player_1"))
	orch := s.orchestrator(roller.NewSeeded(1))

	_, err := orch.StartCombat(s.ctx, &combat.StartCombatInput{PlayerID: "player_1", EnemyID: "minotaur"})
	s.Equal(errors.ReasonLevelTooLow, errors.Reason(err))

	_, err = orch.StartCombat(s.ctx, &combat.StartCombatInput{PlayerID: "player_1", EnemyID: "dragon"})
	s.True(errors.IsNotFound(err))

	_, err = orch.StartCombat(s.ctx, &combat.StartCombatInput{PlayerID: "ghost"})
	s.True(errors.IsNotFound(err))

	_, err = orch.StartCombat(s.ctx, &combat.StartCombatInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.sessionRepo.GetActive(s.ctx, sessions.GetActiveInput{PlayerID: "player_1"})
	s.True(errors.IsNotFound(err), "rejected starts leave no active session")
}

func (s *OrchestratorTestSuite) TestStartDiscardsAbandonedSession() {
	s.store(testutils.CreateTestGladiator("player_1"))
	orch := s.orchestrator(roller.NewSeeded(7))

	first, err := orch.StartCombat(s.ctx, &combat.StartCombatInput{PlayerID: "player_1", EnemyID: "slime"})
	s.Require().NoError(err)
	second, err := orch.StartCombat(s.ctx, &combat.StartCombatInput{PlayerID: "player_1", EnemyID: "goblin"})
	s.Require().NoError(err)

	s.Equal(first.Session.ID, second.DiscardedSessionID)

	_, err = s.sessionRepo.Get(s.ctx, sessions.GetInput{SessionID: first.Session.ID})
	s.True(errors.IsNotFound(err))

	current, err := orch.GetCombat(s.ctx, &combat.GetCombatInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Equal(second.Session.ID, current.Session.ID)

	_, err = orch.AdvanceRound(s.ctx, &combat.AdvanceRoundInput{SessionID: first.Session.ID})
	s.True(errors.IsNoActiveSession(err))

	s.Equal(100, s.gladiator("player_1").Gold, "an abandoned session is never scored")
}

func (s *OrchestratorTestSuite) TestSupersededSessionIsNeverScored() {
	s.store(testutils.CreateTestGladiator("player_1"))
	sessionRepo := &failingDeletes{Repository: s.sessionRepo, n: 1}
	orch := s.orchestratorWith(roller.NewScripted(rolls(plainHit, []int{1}, plainHit)...), s.playerRepo, sessionRepo)

	first, err := orch.StartCombat(s.ctx, &combat.StartCombatInput{PlayerID: "player_1", EnemyID: "slime"})
	s.Require().NoError(err)
	for range 2 {
		_, err = orch.AdvanceRound(s.ctx, &combat.AdvanceRoundInput{SessionID: first.Session.ID})
		s.Require().NoError(err)
	}

	second, err := orch.StartCombat(s.ctx, &combat.StartCombatInput{PlayerID: "player_1", EnemyID: "goblin"})
	s.Require().NoError(err)
	s.Empty(second.DiscardedSessionID, "a session that could not be deleted is not reported as discarded")

	_, err = s.sessionRepo.Get(s.ctx, sessions.GetInput{SessionID: first.Session.ID})
	s.Require().NoError(err, "the failed delete left the old session stored")

	_, err = orch.FinishCombat(s.ctx, &combat.FinishCombatInput{SessionID: first.Session.ID})
	s.True(errors.IsNoActiveSession(err), "unexpected error: %v", err)

	stored := s.gladiator("player_1")
	s.Equal(100, stored.Gold)
	s.Equal(0, stored.Experience)
	s.Equal(0, stored.Wins)

	current, err := orch.GetCombat(s.ctx, &combat.GetCombatInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Equal(second.Session.ID, current.Session.ID)
	s.Empty(s.finished)
}

func (s *OrchestratorTestSuite) TestVictoryFlow() {
	s.store(testutils.CreateTestGladiator("player_1"))
	// round 1: player hits for 60, slime misses; round 2: player finishes it
	orch := s.orchestrator(roller.NewScripted(rolls(plainHit, []int{1}, plainHit)...))

	start, err := orch.StartCombat(s.ctx, &combat.StartCombatInput{PlayerID: "player_1", EnemyID: "slime"})
	s.Require().NoError(err)
	id := start.Session.ID

	_, err = orch.FinishCombat(s.ctx, &combat.FinishCombatInput{SessionID: id})
	s.True(errors.IsNoActiveSession(err), "an active session cannot be finished")
	s.Equal(100, s.gladiator("player_1").Gold)

	round1, err := orch.AdvanceRound(s.ctx, &combat.AdvanceRoundInput{SessionID: id})
	s.Require().NoError(err)
	s.Equal(1, round1.Outcome.Round)
	s.Equal(16, round1.Outcome.OpponentHealth)
	s.Equal(76, round1.Outcome.PlayerHealth)
	s.False(round1.Outcome.Finished)

	round2, err := orch.AdvanceRound(s.ctx, &combat.AdvanceRoundInput{SessionID: id})
	s.Require().NoError(err)
	s.True(round2.Outcome.Finished)
	s.Equal(engine.SidePlayer, round2.Outcome.Winner)

	_, err = orch.AdvanceRound(s.ctx, &combat.AdvanceRoundInput{SessionID: id})
	s.True(errors.IsNoActiveSession(err))

	out, err := orch.FinishCombat(s.ctx, &combat.FinishCombatInput{SessionID: id})
	s.Require().NoError(err)

	s.True(out.Reward.Victory)
	s.Equal(10, out.Reward.Gold)
	s.Equal(23, out.Reward.Experience)
	s.Equal([]string{
		"Round 1",
		"Maximus hits Slime for 60 damage",
		"Slime MISSES Maximus!",
		"Round 2",
		"Maximus hits Slime for 60 damage",
		"Maximus is victorious!",
		"You earned 10 gold and 23 experience!",
	}, out.Log)

	stored := s.gladiator("player_1")
	s.Equal(110, stored.Gold)
	s.Equal(23, stored.Experience)
	s.Equal(1, stored.Wins)
	s.Equal(0, stored.Losses)

	_, err = s.sessionRepo.GetActive(s.ctx, sessions.GetActiveInput{PlayerID: "player_1"})
	s.True(errors.IsNotFound(err))

	_, err = orch.FinishCombat(s.ctx, &combat.FinishCombatInput{SessionID: id})
	s.True(errors.IsNoActiveSession(err), "a session settles once")
	s.Equal(110, s.gladiator("player_1").Gold)

	s.Equal([]string{id}, s.finished)
}

func (s *OrchestratorTestSuite) TestDefeatPaysConsolation() {
	g := testutils.CreateTestGladiator("player_1")
	g.Level = 7
	g.Experience = rewards.Threshold(7)
	s.store(g)

	// player always misses; minotaur crits for 30 three times
	round := []int{1, 100, 41, 1}
	orch := s.orchestrator(roller.NewScripted(rolls(round, round, round)...))

	start, err := orch.StartCombat(s.ctx, &combat.StartCombatInput{PlayerID: "player_1", EnemyID: "minotaur"})
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		_, err := orch.AdvanceRound(s.ctx, &combat.AdvanceRoundInput{SessionID: start.Session.ID})
		s.Require().NoError(err)
	}

	out, err := orch.FinishCombat(s.ctx, &combat.FinishCombatInput{SessionID: start.Session.ID})
	s.Require().NoError(err)

	s.False(out.Reward.Victory)
	s.Equal(8, out.Reward.Gold)
	s.Equal(18, out.Reward.Experience)
	s.Zero(out.Reward.NewStatPoints)
	s.Equal("You earned 8 gold and 18 experience!", out.Log[len(out.Log)-1])

	stored := s.gladiator("player_1")
	s.Equal(108, stored.Gold)
	s.Equal(7, stored.Level)
	s.Equal(1, stored.Losses)
}

func (s *OrchestratorTestSuite) TestFailedRollLeavesSessionUntouched() {
	s.store(testutils.CreateTestGladiator("player_1"))
	// only the first attack's hit roll is scripted
	orch := s.orchestrator(roller.NewScripted(100))

	start, err := orch.StartCombat(s.ctx, &combat.StartCombatInput{PlayerID: "player_1", EnemyID: "slime"})
	s.Require().NoError(err)

	_, err = orch.AdvanceRound(s.ctx, &combat.AdvanceRoundInput{SessionID: start.Session.ID})
	s.Require().Error(err)

	stored, err := orch.GetCombat(s.ctx, &combat.GetCombatInput{SessionID: start.Session.ID})
	s.Require().NoError(err)
	s.Equal(0, stored.Session.Round)
	s.Empty(stored.Session.Log)
	s.Equal(76, stored.Session.Opponent().Health)
}

func (s *OrchestratorTestSuite) TestDuel() {
	s.store(testutils.CreateTestGladiator("player_1"))
	strong := testutils.CreateTestGladiatorWithGear("player_2")
	strong.Name = "Spartacus"
	s.store(strong)

	orch := s.orchestrator(roller.NewSeeded(42))
	cat := catalog.New()
	sheet1, err := gladiator.EffectiveStats(cat, s.gladiator("player_1"))
	s.Require().NoError(err)
	sheet2, err := gladiator.EffectiveStats(cat, strong)
	s.Require().NoError(err)

	started, err := orch.StartDuel(s.ctx, &combat.StartDuelInput{
		Challenger: combat.Duelist{PlayerID: "player_1", Name: "Maximus", Stats: sheet1},
		Opponent:   combat.Duelist{PlayerID: "player_2", Name: "Spartacus", Stats: sheet2},
	})
	s.Require().NoError(err)
	s.Equal(engine.ModePvP, started.Session.Mode)

	out, err := orch.ResolveDuel(s.ctx, &combat.ResolveDuelInput{SessionID: started.Session.ID})
	s.Require().NoError(err)
	s.True(out.Session.IsFinished())
	s.NotEqual(out.WinnerName, out.LoserName)

	winner := out.Session.WinnerSide()
	s.True(out.Rewards[winner].Victory)
	s.False(out.Rewards[1-winner].Victory)

	wins, losses := 0, 0
	for _, id := range []string{"player_1", "player_2"} {
		g := s.gladiator(id)
		wins += g.Wins
		losses += g.Losses
	}
	s.Equal(1, wins)
	s.Equal(1, losses)

	_, err = orch.ResolveDuel(s.ctx, &combat.ResolveDuelInput{SessionID: started.Session.ID})
	s.True(errors.IsNoActiveSession(err), "a duel resolves once")

	_, err = orch.FinishCombat(s.ctx, &combat.FinishCombatInput{SessionID: started.Session.ID})
	s.True(errors.IsFailedPrecondition(err))

	s.Equal([]string{started.Session.ID}, s.finished)
}

func (s *OrchestratorTestSuite) TestDuelRevertsWhenOneSideFails() {
	s.store(testutils.CreateTestGladiator("player_1"))
	other := testutils.CreateTestGladiator("player_2")
	other.Name = "Spartacus"
	s.store(other)
	before := s.gladiator("player_1")

	playerRepo := &failingSaves{Repository: s.playerRepo, playerID: "player_2"}
	orch := s.orchestratorWith(roller.NewSeeded(42), playerRepo, s.sessionRepo)

	sheet, err := gladiator.EffectiveStats(catalog.New(), before)
	s.Require().NoError(err)
	started, err := orch.StartDuel(s.ctx, &combat.StartDuelInput{
		Challenger: combat.Duelist{PlayerID: "player_1", Name: "Maximus", Stats: sheet},
		Opponent:   combat.Duelist{PlayerID: "player_2", Name: "Spartacus", Stats: sheet},
	})
	s.Require().NoError(err)

	_, err = orch.ResolveDuel(s.ctx, &combat.ResolveDuelInput{SessionID: started.Session.ID})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))

	after := s.gladiator("player_1")
	s.Equal(before.Gold, after.Gold)
	s.Equal(before.Experience, after.Experience)
	s.Equal(before.Level, after.Level)
	s.Equal(before.UnspentPoints, after.UnspentPoints)
	s.Equal(0, after.Wins+after.Losses, "neither side of a failed duel is scored")

	untouched := s.gladiator("player_2")
	s.Equal(0, untouched.Wins+untouched.Losses)
	s.Empty(s.finished)
}

func (s *OrchestratorTestSuite) TestDuelRejectsSelf() {
	orch := s.orchestrator(roller.NewSeeded(1))
	_, err := orch.StartDuel(s.ctx, &combat.StartDuelInput{
		Challenger: combat.Duelist{PlayerID: "player_1", Name: "A"},
		Opponent:   combat.Duelist{PlayerID: "player_1", Name: "A"},
	})
	s.True(errors.IsInvalidArgument(err))
}

type FinishFailureTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockPlayers *playersmock.MockRepository
	sessionRepo *sessions.InMemoryRepository
	orch        combat.Service
	ctx         context.Context
}

func TestFinishFailureSuite(t *testing.T) {
	suite.Run(t, new(FinishFailureTestSuite))
}

func (s *FinishFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayers = playersmock.NewMockRepository(s.ctrl)
	s.sessionRepo = sessions.NewInMemory(&clock.Fixed{At: testutils.FixedTime})
	s.ctx = context.Background()

	orch, err := combat.NewOrchestrator(&combat.Config{
		PlayerRepo:  s.mockPlayers,
		SessionRepo: s.sessionRepo,
		Catalog:     catalog.New(),
		Roller:      roller.NewSeeded(3),
		IDGenerator: idgen.NewSequential("combat"),
		Clock:       &clock.Fixed{At: testutils.FixedTime},
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *FinishFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FinishFailureTestSuite) finishedSession(active bool) *engine.Session {
	sheet := arena.EffectiveStatSheet{
		StatBlock: arena.StatBlock{Strength: 20, Vitality: 10, Stamina: 10, Weaponskill: 10},
		MaxHealth: 16,
	}
	session, err := engine.Start(&engine.StartInput{
		ID:       "session_1",
		Player:   engine.NewCombatant("player_1", "Maximus", engine.SourcePlayer, sheet),
		Opponent: engine.NewCombatant("slime", "Slime", engine.SourceEnemy, sheet),
		Now:      testutils.FixedTime,
	})
	s.Require().NoError(err)
	s.Require().NoError(engine.RunToCompletion(session, roller.NewSeeded(9)))

	_, err = s.sessionRepo.Save(s.ctx, sessions.SaveInput{Session: session})
	s.Require().NoError(err)
	if active {
		_, err = s.sessionRepo.SetActive(s.ctx, sessions.SetActiveInput{PlayerID: "player_1", SessionID: session.ID})
		s.Require().NoError(err)
	}
	return session
}

func (s *FinishFailureTestSuite) TestSaveFailureRestoresSession() {
	session := s.finishedSession(true)

	s.mockPlayers.EXPECT().
		Get(gomock.Any(), players.GetInput{PlayerID: "player_1"}).
		Return(&players.GetOutput{Gladiator: testutils.CreateTestGladiator("player_1")}, nil)
	s.mockPlayers.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("disk full"))

	_, err := s.orch.FinishCombat(s.ctx, &combat.FinishCombatInput{SessionID: session.ID})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))

	restored, err := s.sessionRepo.Get(s.ctx, sessions.GetInput{SessionID: session.ID})
	s.Require().NoError(err)
	s.True(restored.Session.IsFinished())

	active, err := s.sessionRepo.GetActive(s.ctx, sessions.GetActiveInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Equal(session.ID, active.SessionID)
}

func (s *FinishFailureTestSuite) TestMissingGladiator() {
	session := s.finishedSession(true)

	s.mockPlayers.EXPECT().
		Get(gomock.Any(), players.GetInput{PlayerID: "player_1"}).
		Return(nil, errors.NotFound("gladiator not found"))

	_, err := s.orch.FinishCombat(s.ctx, &combat.FinishCombatInput{SessionID: session.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.sessionRepo.Get(s.ctx, sessions.GetInput{SessionID: session.ID})
	s.NoError(err, "a rejected finish keeps the session")
}

func (s *FinishFailureTestSuite) TestSessionNotInActiveSlot() {
	session := s.finishedSession(false)

	_, err := s.orch.FinishCombat(s.ctx, &combat.FinishCombatInput{SessionID: session.ID})
	s.True(errors.IsNoActiveSession(err))

	_, err = s.sessionRepo.Get(s.ctx, sessions.GetInput{SessionID: session.ID})
	s.NoError(err)
}
