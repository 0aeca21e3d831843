package systems

import "math/rand/v2"

// Rand is the uniform random source consumed by grid sampling and behaviors.
// *rand.Rand from math/rand/v2 satisfies it; tests substitute scripted sources.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

var _ Rand = (*rand.Rand)(nil)

// NewRand returns a deterministic PCG-backed source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// pick returns a uniformly chosen element of a non-empty slice.
func pick[T any](rng Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
