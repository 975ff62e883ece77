// internal/utils/prng.go
package utils

import (
	"math/rand"
)

// PRNGService wraps a seeded generator so that every random decision in the
// arena (map layout, spawn points) is reproducible from a single seed.
// It is not safe for concurrent use.
type PRNGService struct {
	seed uint64
	rng  *rand.Rand
}

// NewPRNGService creates a service with the given seed. The same seed always
// yields the same sequence, zero included.
func NewPRNGService(seed uint64) *PRNGService {
	source := rand.NewSource(int64(seed))
	return &PRNGService{
		seed: seed,
		rng:  rand.New(source),
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() uint64 {
	return s.seed
}

// Intn returns a random int in [0, n). It panics if n <= 0, like rand.Intn.
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntRange returns a random int in [lo, hi], both ends included.
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
