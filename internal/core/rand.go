package core

import (
	"math/rand/v2"
	"time"
)

// RNG is the randomness source consumed by the visualizers.
type RNG interface {
	// Chance returns true with probability p.
	Chance(p float64) bool

	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// seededRNG wraps a PCG generator.
type seededRNG struct {
	r *rand.Rand
}

// NewRNG returns a deterministic RNG for the given seed.
// A zero seed is replaced by the current time.
func NewRNG(seed int64) RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &seededRNG{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

func (s *seededRNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

func (s *seededRNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}
