// Package rng provides the injected randomness capability used by the
// genetic operators and the evolutionary engine. A Source is safe for
// concurrent use so that scoring functions (and, later, parallel
// generation) can share one without coordination.
package rng

import (
	"math/rand/v2"
	"sync"
)

// Source is a thread-safe pseudo-random generator backed by PCG.
type Source struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a Source seeded from seed. A zero seed picks a random one.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Source{r: rand.New(rand.NewPCG(seed, seed))}
}

// Int returns a non-negative pseudo-random int.
func (s *Source) Int() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Int()
}

// IntN returns a pseudo-random int in [0, n).
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// Float64 returns a pseudo-random float64 in [0, 1).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Bool returns a pseudo-random boolean with equal probability.
func (s *Source) Bool() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(2) == 0
}

// Pick returns a uniformly chosen element of xs. It panics on an empty
// slice, matching the contract of rand.IntN.
func Pick[T any](s *Source, xs []T) T {
	return xs[s.IntN(len(xs))]
}
