package core

import "math/rand"

// Random is the source of randomness handed to procedural generators.
// *rand.Rand satisfies it; tests can pass scripted sources.
type Random interface {
	Float64() float64
}

// NewRandom returns a seeded source for deterministic simulation.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Uniform returns a value uniformly distributed in [lo, hi).
// When hi <= lo it returns lo without consuming randomness.
func Uniform(r Random, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}
