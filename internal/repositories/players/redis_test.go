package players_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/arena-api/internal/repositories/players"
	"github.com/KirkDiggler/arena-api/internal/testutils"
)

type RedisKeysTestSuite struct {
	suite.Suite
}

func TestRedisKeysSuite(t *testing.T) {
	suite.Run(t, new(RedisKeysTestSuite))
}

func (s *RedisKeysTestSuite) TestNewRedisValidation() {
	_, err := players.NewRedis(nil)
	s.ErrorContains(err, "config cannot be nil")

	_, err = players.NewRedis(&players.RedisConfig{})
	s.ErrorContains(err, "client cannot be nil")
}

func (s *RedisKeysTestSuite) TestStoresJSONUnderPlayerKey() {
	client, mr, cleanup := testutils.CreateTestRedis(s.T())
	defer cleanup()

	repo, err := players.NewRedis(&players.RedisConfig{Client: client})
	s.Require().NoError(err)

	_, err = repo.Save(context.Background(), players.SaveInput{Gladiator: testutils.CreateTestGladiator("player_9")})
	s.Require().NoError(err)

	s.Equal("gladiator:player:player_9", players.GetKey("player_9"))
	s.True(mr.Exists(players.GetKey("player_9")))

	raw, err := mr.Get(players.GetKey("player_9"))
	s.Require().NoError(err)
	s.Contains(raw, `"name":"Maximus"`)
	s.Zero(mr.TTL(players.GetKey("player_9")), "progression never expires")
}
