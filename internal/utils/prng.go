// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService is the one random source of a session. Spawn delays and path
// jitter draw from it, so a fixed seed replays a level exactly.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService seeds a source. Seed 0 picks one from the clock; Seed()
// reports it so the run can be replayed.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 returns a value in [0, 1).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a value in [lo, hi); lo when the range is empty.
func (s *PRNGService) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
