package util

import (
	"math/rand"
	"time"
)

// Source yields random column positions. *RNG implements it; tests may
// substitute a deterministic stub.
type Source interface {
	Intn(n int) int
}

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// NewTimeRNG creates a new RNG seeded from the wall clock.
func NewTimeRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a uniformly random int in [0, n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}
