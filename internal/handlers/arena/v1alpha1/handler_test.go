package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	engine "github.com/KirkDiggler/arena-api/internal/engine/combat"
	"github.com/KirkDiggler/arena-api/internal/engine/rewards"
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/handlers/arena/v1alpha1"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/combat"
	combatmock "github.com/KirkDiggler/arena-api/internal/orchestrators/combat/mock"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/gladiator"
	gladiatormock "github.com/KirkDiggler/arena-api/internal/orchestrators/gladiator/mock"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/matchmaking"
	matchmakingmock "github.com/KirkDiggler/arena-api/internal/orchestrators/matchmaking/mock"
	"github.com/KirkDiggler/arena-api/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockGladiators  *gladiatormock.MockService
	mockCombat      *combatmock.MockService
	mockMatchmaking *matchmakingmock.MockService

	server *grpc.Server
	conn   *grpc.ClientConn
	client *v1alpha1.ArenaServiceClient
	ctx    context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGladiators = gladiatormock.NewMockService(s.ctrl)
	s.mockCombat = combatmock.NewMockService(s.ctrl)
	s.mockMatchmaking = matchmakingmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		GladiatorService:   s.mockGladiators,
		CombatService:      s.mockCombat,
		MatchmakingService: s.mockMatchmaking,
	})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterArenaServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewArenaServiceClient(s.conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func testView(playerID string) *gladiator.View {
	return &gladiator.View{
		Gladiator:        testutils.CreateTestGladiator(playerID),
		Race:             &arena.RaceTemplate{ID: "human", Name: "Human"},
		Stats:            arena.EffectiveStatSheet{StatBlock: arena.StatBlock{Strength: 48, Vitality: 50}, MaxHealth: 76},
		Inventory:        []*arena.Item{},
		Equipped:         map[arena.Slot]*arena.Item{},
		ExperienceToNext: 58,
	}
}

func testSession() *engine.Session {
	return &engine.Session{
		ID:   "combat_1",
		Mode: engine.ModePvE,
		Combatants: [2]*engine.Combatant{
			{ID: "p1", Name: testutils.TestGladiatorName, Health: 76},
			{ID: "slime", Name: "Slime", Health: 76},
		},
		Round:    0,
		RoundCap: engine.DefaultRoundCap,
		Log:      []string{},
		Winner:   -1,
	}
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{GladiatorService: s.mockGladiators})
	s.Require().Error(err)
	s.Contains(err.Error(), "CombatService")
	s.Contains(err.Error(), "MatchmakingService")
}

func (s *HandlerTestSuite) TestCreateGladiator() {
	s.mockGladiators.EXPECT().
		CreateGladiator(gomock.Any(), &gladiator.CreateGladiatorInput{
			PlayerID:   "p1",
			Name:       "Maximus",
			RaceID:     "human",
			Allocation: arena.Allocation{arena.StatStrength: 40, arena.StatVitality: 40},
		}).
		Return(&gladiator.CreateGladiatorOutput{View: testView("p1")}, nil)

	resp, err := s.client.CreateGladiator(s.ctx, &v1alpha1.CreateGladiatorRequest{
		PlayerID:   "p1",
		Name:       "Maximus",
		Race:       "human",
		Allocation: map[string]int{"strength": 40, "vitality": 40},
	})
	s.Require().NoError(err)
	s.Require().NotNil(resp.Gladiator)
	s.Equal("p1", resp.Gladiator.PlayerID)
	s.Equal("Human", resp.Gladiator.Race.Name)
	s.Equal(76, resp.Gladiator.Stats.MaxHealth)
	s.Equal(48, resp.Gladiator.Stats.Strength)
	s.Equal(58, resp.Gladiator.ExperienceToNext)
	s.Equal(100, resp.Gladiator.Gold)
	s.True(testutils.FixedTime.Equal(resp.Gladiator.CreatedAt))
}

func (s *HandlerTestSuite) TestCreateGladiatorRequiresFields() {
	testCases := []struct {
		name string
		req  *v1alpha1.CreateGladiatorRequest
	}{
		{name: "missing player", req: &v1alpha1.CreateGladiatorRequest{Name: "Maximus", Race: "human"}},
		{name: "missing name", req: &v1alpha1.CreateGladiatorRequest{PlayerID: "p1", Race: "human"}},
		{name: "missing race", req: &v1alpha1.CreateGladiatorRequest{PlayerID: "p1", Name: "Maximus"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.client.CreateGladiator(s.ctx, tc.req)
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestPlayerIDFromMetadata() {
	s.mockGladiators.EXPECT().
		GetGladiator(gomock.Any(), &gladiator.GetGladiatorInput{PlayerID: "p9"}).
		Return(&gladiator.GetGladiatorOutput{View: testView("p9")}, nil)

	ctx := metadata.AppendToOutgoingContext(s.ctx, v1alpha1.PlayerIDHeader, "p9")
	resp, err := s.client.GetGladiator(ctx, &v1alpha1.GetGladiatorRequest{})
	s.Require().NoError(err)
	s.Equal("p9", resp.Gladiator.PlayerID)
}

func (s *HandlerTestSuite) TestGetGladiatorNotFound() {
	s.mockGladiators.EXPECT().
		GetGladiator(gomock.Any(), &gladiator.GetGladiatorInput{PlayerID: "ghost"}).
		Return(nil, errors.NotFound("gladiator not found"))

	_, err := s.client.GetGladiator(s.ctx, &v1alpha1.GetGladiatorRequest{PlayerID: "ghost"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestAllocationErrorCarriesReason() {
	s.mockGladiators.EXPECT().
		AllocatePoints(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidAllocation("allocation exceeds 1 available points"))

	_, err := s.client.AllocatePoints(s.ctx, &v1alpha1.AllocatePointsRequest{
		PlayerID:   "p1",
		Allocation: map[string]int{"strength": 5},
	})
	s.Equal(codes.InvalidArgument, status.Code(err))

	restored := errors.FromGRPCError(err)
	s.True(errors.IsInvalidAllocation(restored))
}

func (s *HandlerTestSuite) TestTrain() {
	s.mockGladiators.EXPECT().
		Train(gomock.Any(), &gladiator.TrainInput{PlayerID: "p1"}).
		Return(&gladiator.TrainOutput{View: testView("p1"), GoldSpent: 10, Experience: 10}, nil)

	resp, err := s.client.Train(s.ctx, &v1alpha1.TrainRequest{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(10, resp.GoldSpent)
	s.Equal(10, resp.Experience)
	s.False(resp.LeveledUp)
}

func (s *HandlerTestSuite) TestEquipItemPassesSlot() {
	sword := &arena.Item{ID: "wooden_sword", Name: "Wooden Sword", Slot: arena.SlotWeapon}
	s.mockGladiators.EXPECT().
		EquipItem(gomock.Any(), &gladiator.EquipItemInput{PlayerID: "p1", Slot: arena.SlotWeapon, ItemID: "wooden_sword"}).
		Return(&gladiator.EquipItemOutput{View: testView("p1")}, nil)
	s.mockGladiators.EXPECT().
		UnequipItem(gomock.Any(), &gladiator.UnequipItemInput{PlayerID: "p1", Slot: arena.SlotWeapon}).
		Return(&gladiator.UnequipItemOutput{View: testView("p1"), Removed: sword}, nil)

	equipped, err := s.client.EquipItem(s.ctx, &v1alpha1.EquipItemRequest{PlayerID: "p1", Slot: "weapon", ItemID: "wooden_sword"})
	s.Require().NoError(err)
	s.Nil(equipped.Replaced)

	removed, err := s.client.UnequipItem(s.ctx, &v1alpha1.UnequipItemRequest{PlayerID: "p1", Slot: "weapon"})
	s.Require().NoError(err)
	s.Require().NotNil(removed.Removed)
	s.Equal("wooden_sword", removed.Removed.ID)
}

func (s *HandlerTestSuite) TestDeriveStats() {
	s.mockGladiators.EXPECT().
		DeriveStats(gomock.Any(), &gladiator.DeriveStatsInput{
			RaceID:     "orc",
			Allocation: arena.Allocation{arena.StatStrength: 10},
			ItemIDs:    []string{"wooden_sword"},
		}).
		Return(&gladiator.DeriveStatsOutput{Stats: arena.EffectiveStatSheet{MaxHealth: 31}}, nil)

	resp, err := s.client.DeriveStats(s.ctx, &v1alpha1.DeriveStatsRequest{
		Race:       "orc",
		Allocation: map[string]int{"strength": 10},
		ItemIDs:    []string{"wooden_sword"},
	})
	s.Require().NoError(err)
	s.Equal(31, resp.Stats.MaxHealth)
}

func (s *HandlerTestSuite) TestListCatalog() {
	s.mockGladiators.EXPECT().
		ListRaces(gomock.Any(), gomock.Any()).
		Return(&gladiator.ListRacesOutput{Races: []*arena.RaceTemplate{{ID: "human"}, {ID: "orc"}}}, nil)
	s.mockGladiators.EXPECT().
		ListEnemies(gomock.Any(), &gladiator.ListEnemiesInput{Level: 2}).
		Return(&gladiator.ListEnemiesOutput{Enemies: []*arena.EnemyTemplate{{ID: "slime"}}}, nil)

	races, err := s.client.ListRaces(s.ctx, &v1alpha1.ListRacesRequest{})
	s.Require().NoError(err)
	s.Len(races.Races, 2)

	enemies, err := s.client.ListEnemies(s.ctx, &v1alpha1.ListEnemiesRequest{Level: 2})
	s.Require().NoError(err)
	s.Len(enemies.Enemies, 1)

	_, err = s.client.ListEnemies(s.ctx, &v1alpha1.ListEnemiesRequest{Level: -1})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestStartCombat() {
	s.mockCombat.EXPECT().
		StartCombat(gomock.Any(), &combat.StartCombatInput{PlayerID: "p1", EnemyID: "slime"}).
		Return(&combat.StartCombatOutput{Session: testSession()}, nil)

	resp, err := s.client.StartCombat(s.ctx, &v1alpha1.StartCombatRequest{PlayerID: "p1", EnemyID: "slime"})
	s.Require().NoError(err)
	s.Equal("Combat started! Fighting Slime", resp.Message)
	s.Equal("combat_1", resp.Session.ID)
	s.Equal(-1, resp.Session.Winner)
	s.Equal(76, resp.Session.Combatants[1].Health)
}

func (s *HandlerTestSuite) TestAdvanceRoundRequiresSession() {
	_, err := s.client.AdvanceRound(s.ctx, &v1alpha1.AdvanceRoundRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetCombatByPlayer() {
	s.mockCombat.EXPECT().
		GetCombat(gomock.Any(), &combat.GetCombatInput{PlayerID: "p1"}).
		Return(&combat.GetCombatOutput{Session: testSession()}, nil)

	resp, err := s.client.GetCombat(s.ctx, &v1alpha1.GetCombatRequest{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal("combat_1", resp.Session.ID)

	_, err = s.client.GetCombat(s.ctx, &v1alpha1.GetCombatRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestFinishCombatVictory() {
	g := testutils.CreateTestGladiator("p1")
	g.Gold = 110
	s.mockCombat.EXPECT().
		FinishCombat(gomock.Any(), &combat.FinishCombatInput{SessionID: "combat_1"}).
		Return(&combat.FinishCombatOutput{
			Reward:    &rewards.Reward{Victory: true, Gold: 10, Experience: 23, NewLevel: 1},
			Gladiator: g,
			Log:       []string{"Round 1", "You earned 10 gold and 23 experience!"},
		}, nil)

	resp, err := s.client.FinishCombat(s.ctx, &v1alpha1.FinishCombatRequest{SessionID: "combat_1"})
	s.Require().NoError(err)
	s.Equal("victory", resp.Result)
	s.Equal(10, resp.Gold)
	s.Equal(23, resp.Experience)
	s.Equal(110, resp.Gladiator.Gold)
	s.Equal("You earned 10 gold and 23 experience!", resp.BattleLog[len(resp.BattleLog)-1])
}

func (s *HandlerTestSuite) TestFinishCombatWithoutSession() {
	s.mockCombat.EXPECT().
		FinishCombat(gomock.Any(), gomock.Any()).
		Return(nil, errors.NoActiveSession("combat_1"))

	_, err := s.client.FinishCombat(s.ctx, &v1alpha1.FinishCombatRequest{SessionID: "combat_1"})
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.True(errors.IsNoActiveSession(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestJoinQueue() {
	s.mockMatchmaking.EXPECT().
		JoinQueue(gomock.Any(), &matchmaking.JoinQueueInput{PlayerID: "p1"}).
		Return(&matchmaking.JoinQueueOutput{Status: matchmaking.StatusQueued, Message: "Joined queue. Waiting for opponent."}, nil)

	resp, err := s.client.JoinQueue(s.ctx, &v1alpha1.JoinQueueRequest{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal("queued", resp.Status)
	s.Empty(resp.SessionID)
}

func (s *HandlerTestSuite) TestLeaveQueue() {
	s.mockMatchmaking.EXPECT().
		LeaveQueue(gomock.Any(), &matchmaking.LeaveQueueInput{PlayerID: "p1"}).
		Return(&matchmaking.LeaveQueueOutput{Removed: true}, nil)

	resp, err := s.client.LeaveQueue(s.ctx, &v1alpha1.LeaveQueueRequest{PlayerID: "p1"})
	s.Require().NoError(err)
	s.True(resp.Removed)
}

func (s *HandlerTestSuite) TestPollNotificationsEmpty() {
	s.mockMatchmaking.EXPECT().
		PollNotifications(gomock.Any(), &matchmaking.PollNotificationsInput{PlayerID: "p1"}).
		Return(&matchmaking.PollNotificationsOutput{Queued: true}, nil)

	resp, err := s.client.PollNotifications(s.ctx, &v1alpha1.PollNotificationsRequest{PlayerID: "p1"})
	s.Require().NoError(err)
	s.NotNil(resp.Notifications)
	s.Empty(resp.Notifications)
	s.True(resp.Queued)
}
