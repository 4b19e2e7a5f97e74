package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/arena-api/internal/config"
	"github.com/KirkDiggler/arena-api/internal/handlers/arena/v1alpha1"
)

type ServerTestSuite struct {
	suite.Suite
	ctx    context.Context
	app    *app
	server *grpc.Server
	conn   *grpc.ClientConn
	client *v1alpha1.ArenaServiceClient
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.ctx = context.Background()

	cfg, err := config.LoadFrom(map[string]string{"ARENA_SEED": "7"})
	s.Require().NoError(err)

	s.app, err = newApp(s.ctx, cfg)
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = newGRPCServer(s.app.handler, slog.New(slog.NewTextHandler(io.Discard, nil)))
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

func (s *ServerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.app.Close()
}

func (s *ServerTestSuite) createGladiator(playerID, name string) {
	_, err := s.client.CreateGladiator(s.ctx, &v1alpha1.CreateGladiatorRequest{
		PlayerID: playerID,
		Name:     name,
		Race:     "human",
		Allocation: map[string]int{
			"strength": 40, "vitality": 40, "stamina": 20,
			"dodge": 10, "initiative": 20, "weaponskill": 20,
		},
	})
	s.Require().NoError(err)
}

func (s *ServerTestSuite) TestHealth() {
	resp, err := grpc_health_v1.NewHealthClient(s.conn).Check(s.ctx, &grpc_health_v1.HealthCheckRequest{
		Service: v1alpha1.ServiceName,
	})
	s.Require().NoError(err)
	s.Equal(grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)
}

func (s *ServerTestSuite) TestFightAgainstEnemy() {
	s.createGladiator("p1", "Maximus")

	started, err := s.client.StartCombat(s.ctx, &v1alpha1.StartCombatRequest{PlayerID: "p1", EnemyID: "slime"})
	s.Require().NoError(err)
	s.Equal("Combat started! Fighting Slime", started.Message)

	finished := false
	for i := 0; i < 100 && !finished; i++ {
		advanced, err := s.client.AdvanceRound(s.ctx, &v1alpha1.AdvanceRoundRequest{SessionID: started.Session.ID})
		s.Require().NoError(err)
		finished = advanced.Outcome.Finished
	}
	s.Require().True(finished)

	result, err := s.client.FinishCombat(s.ctx, &v1alpha1.FinishCombatRequest{SessionID: started.Session.ID})
	s.Require().NoError(err)
	s.Contains([]string{"victory", "defeat"}, result.Result)
	s.NotEmpty(result.BattleLog)

	got, err := s.client.GetGladiator(s.ctx, &v1alpha1.GetGladiatorRequest{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(1, got.Gladiator.Wins+got.Gladiator.Losses)
	s.Equal(100+result.Gold, got.Gladiator.Gold)

	_, err = s.client.FinishCombat(s.ctx, &v1alpha1.FinishCombatRequest{SessionID: started.Session.ID})
	s.Require().Error(err)
}

func (s *ServerTestSuite) TestRandomBattle() {
	s.createGladiator("p1", "Maximus")
	s.createGladiator("p2", "Crixus")

	queued, err := s.client.JoinQueue(s.ctx, &v1alpha1.JoinQueueRequest{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal("queued", queued.Status)

	matched, err := s.client.JoinQueue(s.ctx, &v1alpha1.JoinQueueRequest{PlayerID: "p2"})
	s.Require().NoError(err)
	s.Equal("matched", matched.Status)

	polled, err := s.client.PollNotifications(s.ctx, &v1alpha1.PollNotificationsRequest{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Len(polled.Notifications, 2)
	s.False(polled.Queued)
}
