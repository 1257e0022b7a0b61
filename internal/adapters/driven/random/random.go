// Package random provides the Randomizer used to draw study entries.
package random

import (
	"math/rand/v2"
	"sync"

	"github.com/custodia-labs/rote-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.Randomizer = (*Source)(nil)

// Source is a Randomizer backed by math/rand/v2.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source seeded from the runtime's random state.
func New() *Source {
	return &Source{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a deterministic Source.
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform int in [0, n). Panics if n <= 0.
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
