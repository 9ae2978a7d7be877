package util

import (
	"math/rand"
)

// Rand is the random source used for every draw in a show. *rand.Rand
// satisfies it; tests substitute fixed sequences.
type Rand interface {
	Float64() float64
}

// NewRand creates a seeded random source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomRange draws uniformly from [min, max).
func RandomRange(rng Rand, min float64, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// Jitter draws uniformly from [-amplitude, amplitude).
func Jitter(rng Rand, amplitude float64) float64 {
	return (rng.Float64() - 0.5) * 2 * amplitude
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Sequence is a Rand that replays fixed values, wrapping around at the end.
// An empty Sequence always returns 0.
type Sequence struct {
	Values []float64
	next   int
}

// Float64 returns the next value of the sequence.
func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
