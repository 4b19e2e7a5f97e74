// Package roller provides dice.Roller implementations with an explicit random
// source, so combat can be replayed from a seed.
package roller

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/arena-api/internal/errors"
)

// Seeded is a dice.Roller backed by a PCG source. It is safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ dice.Roller = (*Seeded)(nil)

// NewSeeded returns a roller whose sequence is fully determined by seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// New returns a seeded roller when seed is non-zero and the toolkit's
// crypto-backed default roller otherwise.
func New(seed uint64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	return NewSeeded(seed)
}

// Roll returns a value in [1, size].
func (r *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("invalid die size: %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size.
func (r *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("invalid dice count: %d", count)
	}
	if size <= 0 {
		return nil, errors.InvalidArgumentf("invalid die size: %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]int, count)
	for i := range results {
		results[i] = r.rng.IntN(size) + 1
	}
	return results, nil
}
