package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Digit returns a uniformly distributed value in [1, max].
func (r *RNG) Digit(max uint8) uint8 {
	if max == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(max))) + 1
}

// FillDigits fills the buffer with independent values in [1, max].
func FillDigits(r *RNG, buf []uint8, max uint8) {
	for i := range buf {
		buf[i] = r.Digit(max)
	}
}
