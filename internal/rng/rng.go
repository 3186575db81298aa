// Package rng provides the seeded pseudo-random generator threaded through
// loading, splitting and batch shuffling. Passing the generator explicitly
// keeps random repair and splits reproducible under test, instead of relying
// on ambient global state.
package rng

import "math/rand"

// RNG encapsulates a random number generator and its seed.
// Not safe for concurrent use; each loader goroutine derives its own.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// New creates an RNG with the specified seed.
func New(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Int63 returns a non-negative pseudo-random int64.
func (r *RNG) Int63() int64 {
	return r.rand.Int63()
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	return r.rand.Perm(n)
}

// Shuffle pseudo-randomizes the order of elements via the swap function.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.rand.Shuffle(n, swap)
}

// Pick returns a uniformly random character from symbols.
func (r *RNG) Pick(symbols string) byte {
	return symbols[r.rand.Intn(len(symbols))]
}
