// Package matchmaking holds the waiting pool for random battles. The pool is
// plain FIFO state with no locking of its own; the owner serializes access.
package matchmaking

import (
	"time"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

// Entry is one player waiting for an opponent.
type Entry struct {
	PlayerID   string                   `json:"player_id"`
	Name       string                   `json:"name"`
	Stats      arena.EffectiveStatSheet `json:"stats"`
	EnqueuedAt time.Time                `json:"enqueued_at"`
}

// Pool is a FIFO of waiting entries with at most one entry per player.
type Pool struct {
	entries []*Entry
}

// NewPool returns an empty pool
func NewPool() *Pool {
	return &Pool{}
}

// Len returns the number of waiting players
func (p *Pool) Len() int {
	return len(p.entries)
}

// Contains reports whether playerID is waiting.
func (p *Pool) Contains(playerID string) bool {
	return p.indexOf(playerID) >= 0
}

// Push appends an entry. It returns false and changes nothing when the player
// is already waiting.
func (p *Pool) Push(e *Entry) bool {
	if e == nil || p.Contains(e.PlayerID) {
		return false
	}
	p.entries = append(p.entries, e)
	return true
}

// PushFront puts an entry back at the head, used to undo a pop when pairing
// fails after the fact.
func (p *Pool) PushFront(e *Entry) bool {
	if e == nil || p.Contains(e.PlayerID) {
		return false
	}
	p.entries = append([]*Entry{e}, p.entries...)
	return true
}

// PopOldestExcept removes and returns the oldest entry not belonging to
// playerID, or nil when there is none.
func (p *Pool) PopOldestExcept(playerID string) *Entry {
	for i, e := range p.entries {
		if e.PlayerID == playerID {
			continue
		}
		p.removeAt(i)
		return e
	}
	return nil
}

// Remove withdraws playerID. It reports whether an entry was removed.
func (p *Pool) Remove(playerID string) bool {
	i := p.indexOf(playerID)
	if i < 0 {
		return false
	}
	p.removeAt(i)
	return true
}

// Entries returns a snapshot in queue order.
func (p *Pool) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	for i, e := range p.entries {
		out[i] = *e
	}
	return out
}

func (p *Pool) indexOf(playerID string) int {
	for i, e := range p.entries {
		if e.PlayerID == playerID {
			return i
		}
	}
	return -1
}

func (p *Pool) removeAt(i int) {
	copy(p.entries[i:], p.entries[i+1:])
	p.entries[len(p.entries)-1] = nil
	p.entries = p.entries[:len(p.entries)-1]
}
