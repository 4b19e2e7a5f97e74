package roller

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/arena-api/internal/errors"
)

// Scripted replays a fixed list of results. Values larger than the requested
// die size are clamped to it. Once the script runs out every roll fails.
type Scripted struct {
	mu     sync.Mutex
	values []int
	calls  []int
}

var _ dice.Roller = (*Scripted)(nil)

// NewScripted creates a roller that returns values in order.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

// Roll returns the next scripted value.
func (s *Scripted) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("invalid die size: %d", size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 0, errors.Internal("scripted roller exhausted")
	}

	v := s.values[0]
	s.values = s.values[1:]
	s.calls = append(s.calls, size)

	switch {
	case v < 1:
		v = 1
	case v > size:
		v = size
	}
	return v, nil
}

// RollN returns the next count scripted values.
func (s *Scripted) RollN(count, size int) ([]int, error) {
	results := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// Sizes reports the die size of every roll served so far.
func (s *Scripted) Sizes() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, len(s.calls))
	copy(out, s.calls)
	return out
}

// Remaining reports how many scripted values are left.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.values)
}
