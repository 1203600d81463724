// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// maxAutoSeed bounds clock-derived seeds so they stay short enough to show
// in the seed label and in file names.
const maxAutoSeed = 1_000_000

// PRNGService wraps a seeded generator. Every random decision of a sketch goes
// through one instance, so a seed reproduces both the scene and its animation.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed is replaced by one derived from the current time.
func NewPRNGService(seed int64) *PRNGService {
	s := &PRNGService{}
	s.Reseed(seed)
	return s
}

// RandomSeed returns a fresh non-zero seed derived from the clock.
func RandomSeed() int64 {
	return time.Now().UnixNano()%(maxAutoSeed-1) + 1
}

// Reseed restarts the stream. Reseeding with the same value replays it.
func (s *PRNGService) Reseed(seed int64) {
	if seed == 0 {
		seed = RandomSeed()
	}
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed the current stream started from.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Value returns a uniform float in [0.0, 1.0).
func (s *PRNGService) Value() float64 {
	return s.rng.Float64()
}

// Range returns lo + u*(hi-lo) for a uniform u in [0, 1).
// With lo > hi the result falls between hi and lo.
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Pick returns a uniform index into a collection of length n.
// It panics if n <= 0, like rand.Intn.
func (s *PRNGService) Pick(n int) int {
	return s.rng.Intn(n)
}

// Chance reports true with probability p, consuming exactly one value.
func (s *PRNGService) Chance(p float64) bool {
	return s.Value() > 1-p
}
