package sampler

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is a seedable pseudorandom source safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSource returns a source producing a reproducible sequence for seed.
func NewSource(seed uint64) *Source {
	return &Source{rnd: rand.New(rand.NewPCG(seed, seed))}
}

var defaultSource = NewSource(uint64(time.Now().UnixNano()))

// Default returns the process-wide source shared by generators created
// without WithSource.
func Default() *Source {
	return defaultSource
}

// Seed reseeds the process-wide source.
func Seed(seed uint64) {
	defaultSource.Seed(seed)
}

// Seed resets the source to the sequence identified by seed.
func (s *Source) Seed(seed uint64) {
	s.mu.Lock()
	s.rnd = rand.New(rand.NewPCG(seed, seed))
	s.mu.Unlock()
}

// IntN returns a uniform int in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// Uint64N returns a uniform uint64 in [0, n). It panics if n == 0.
func (s *Source) Uint64N(n uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Uint64N(n)
}

// Float64 returns a uniform float64 in [0.0, 1.0).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Shuffle(n, swap)
}
