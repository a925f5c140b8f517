// ABOUTME: Linear congruential generator for deterministic noise
// ABOUTME: Produces a repeatable uniform sequence from a 31-bit register
package rng

import "math/rand/v2"

const (
	multiplier = 1103515245
	increment  = 12345
	modMask    = 0x7FFFFFFF // 2^31 - 1
)

// Source produces uniform values for synthesizers
type Source interface {
	// Next returns the next value in [0, 1]
	Next() float64
}

// LCG is a linear congruential generator with a 31-bit state register.
// It is not safe for concurrent use; give each goroutine its own LCG.
type LCG struct {
	state uint32
}

// New creates a generator from a seed. Negative seeds are taken in
// two's complement, which leaves the low 31 bits (and so the sequence)
// well defined.
func New(seed int32) *LCG {
	return &LCG{state: uint32(seed)}
}

// NewFromOptional creates a generator from seed, or from an unpredictable
// seed when seed is nil.
func NewFromOptional(seed *int32) *LCG {
	if seed == nil {
		return New(int32(rand.Uint32()))
	}
	return New(*seed)
}

// SeedValue returns a pointer to v for use in option structs
func SeedValue(v int32) *int32 {
	return &v
}

// Next advances the register and returns state / (2^31 - 1)
func (g *LCG) Next() float64 {
	// uint32 arithmetic wraps mod 2^32; masking keeps the exact mod 2^31 result
	g.state = (g.state*multiplier + increment) & modMask
	return float64(g.state) / modMask
}

// State returns the current register value
func (g *LCG) State() uint32 {
	return g.state
}
