package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeRNG seeds an RNG from the wall clock. A zero seed means "pick one".
func NewTimeRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRNG(seed)
}

// Bool returns a random boolean value with probability 0.5.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}
