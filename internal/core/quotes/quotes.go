// Package quotes holds the motivational messages shown when a work session
// starts.
package quotes

import (
	"math/rand"
	"sync"
	"time"
)

// Default is the built-in catalog of messages.
var Default = []string{
	"The secret of getting ahead is getting started.",
	"Don't watch the clock; do what it does. Keep going.",
	"The only way to do great work is to love what you do.",
	"Focus on being productive instead of busy.",
	"You are capable of more than you know.",
	"A little progress each day adds up to big results.",
	"Believe you can and you're halfway there.",
	"The future depends on what you do today.",
}

// Catalog picks messages at random from a fixed list.
type Catalog struct {
	mu      sync.Mutex
	entries []string
	rng     *rand.Rand
}

// New creates a catalog over entries. A nil rng is seeded from the clock.
func New(entries []string, rng *rand.Rand) *Catalog {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Catalog{
		entries: append([]string(nil), entries...),
		rng:     rng,
	}
}

// PickRandom returns one entry, or "" for an empty catalog.
func (catalog *Catalog) PickRandom() string {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	if len(catalog.entries) == 0 {
		return ""
	}
	return catalog.entries[catalog.rng.Intn(len(catalog.entries))]
}

// Fixed always returns the same message.
type Fixed string

// PickRandom returns the fixed message.
func (fixed Fixed) PickRandom() string {
	return string(fixed)
}
