// Package core implements the maze domain logic: a deterministic RNG,
// the grid model, the recursive-backtracker generator, a BFS solver and
// the player walker. It has no dependencies outside the standard library
// so the same maze can be generated and verified on any host.
package core

// 16-bit linear congruential recurrence. The multiplier is the low word
// of the classic 1103515245; with 16-bit state the product wraps, so the
// low word is all that ever contributes.
const (
	lcgMul uint16 = 0x4E6D
	lcgInc uint16 = 12345
)

// RNG is a deterministic 16-bit linear congruential generator.
// The same seed always yields the identical stream, which is what makes
// a level regenerable from its seed.
type RNG struct {
	state uint16
}

// NewRNG creates a generator seeded with the given value.
func NewRNG(seed uint16) *RNG {
	return &RNG{state: seed}
}

// Seed resets the generator state.
func (r *RNG) Seed(v uint16) {
	r.state = v
}

// Next advances the state and returns the next pseudo-random value.
// The state is shifted right before masking to decorrelate the low bits
// of consecutive draws; results lie in [0, 255].
func (r *RNG) Next() uint16 {
	r.state = r.state*lcgMul + lcgInc
	return (r.state >> 8) & 0x7FFF
}

// Intn returns a value in [0, n). Intended for the small n the generator
// needs (direction counts); n above 256 would truncate the range.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next()) % n
}
