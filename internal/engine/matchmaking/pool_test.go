package matchmaking_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/arena-api/internal/engine/matchmaking"
)

type PoolTestSuite struct {
	suite.Suite
	pool *matchmaking.Pool
	now  time.Time
}

func TestPoolSuite(t *testing.T) {
	suite.Run(t, new(PoolTestSuite))
}

func (s *PoolTestSuite) SetupTest() {
	s.pool = matchmaking.NewPool()
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *PoolTestSuite) entry(id string) *matchmaking.Entry {
	return &matchmaking.Entry{PlayerID: id, Name: id, EnqueuedAt: s.now}
}

func (s *PoolTestSuite) TestPushIsIdempotentPerPlayer() {
	s.True(s.pool.Push(s.entry("p1")))
	s.False(s.pool.Push(s.entry("p1")))
	s.Equal(1, s.pool.Len())
	s.True(s.pool.Contains("p1"))
	s.False(s.pool.Push(nil))
}

func (s *PoolTestSuite) TestPopOldestIsFIFO() {
	s.pool.Push(s.entry("p1"))
	s.pool.Push(s.entry("p2"))
	s.pool.Push(s.entry("p3"))

	s.Equal("p1", s.pool.PopOldestExcept("p9").PlayerID)
	s.Equal("p2", s.pool.PopOldestExcept("p9").PlayerID)
	s.Equal(1, s.pool.Len())
}

func (s *PoolTestSuite) TestPopSkipsSelf() {
	s.pool.Push(s.entry("p1"))
	s.Nil(s.pool.PopOldestExcept("p1"))
	s.Equal(1, s.pool.Len())

	s.pool.Push(s.entry("p2"))
	s.Equal("p2", s.pool.PopOldestExcept("p1").PlayerID)
	s.True(s.pool.Contains("p1"))
}

func (s *PoolTestSuite) TestPushFrontRestoresOrder() {
	s.pool.Push(s.entry("p1"))
	s.pool.Push(s.entry("p2"))

	popped := s.pool.PopOldestExcept("")
	s.True(s.pool.PushFront(popped))
	s.False(s.pool.PushFront(s.entry("p2")))

	entries := s.pool.Entries()
	s.Require().Len(entries, 2)
	s.Equal("p1", entries[0].PlayerID)
	s.Equal("p2", entries[1].PlayerID)
}

func (s *PoolTestSuite) TestRemove() {
	s.pool.Push(s.entry("p1"))
	s.pool.Push(s.entry("p2"))
	s.pool.Push(s.entry("p3"))

	s.True(s.pool.Remove("p2"))
	s.False(s.pool.Remove("p2"))

	entries := s.pool.Entries()
	s.Require().Len(entries, 2)
	s.Equal("p1", entries[0].PlayerID)
	s.Equal("p3", entries[1].PlayerID)
}

func TestPoolNeverHoldsDuplicates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pool := matchmaking.NewPool()
		ops := rapid.SliceOfN(rapid.IntRange(0, 2), 1, 60).Draw(t, "ops")
		for i, op := range ops {
			id := fmt.Sprintf("p%d", rapid.IntRange(0, 5).Draw(t, fmt.Sprintf("player%d", i)))
			switch op {
			case 0:
				pool.Push(&matchmaking.Entry{PlayerID: id})
			case 1:
				pool.Remove(id)
			case 2:
				if e := pool.PopOldestExcept(id); e != nil && e.PlayerID == id {
					t.Fatalf("popped the excluded player %s", id)
				}
			}

			seen := map[string]bool{}
			for _, e := range pool.Entries() {
				if seen[e.PlayerID] {
					t.Fatalf("duplicate entry for %s", e.PlayerID)
				}
				seen[e.PlayerID] = true
			}
		}
	})
}
