package surf

import "math/rand"

// RandomSource supplies uniform draws in [0, 1) for hazard placement.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded pseudo-random source.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
