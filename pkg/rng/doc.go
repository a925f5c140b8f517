// ABOUTME: Deterministic pseudo-random package for reproducible synthesis
// ABOUTME: Provides the Source interface and the LCG implementation
// Package rng provides the seeded pseudo-random generator used by every
// synthesizer in this module.
//
// All randomness flows through the Source interface. The only
// implementation, LCG, reproduces a fixed linear congruential sequence so
// that renders made with the same seed are bit-for-bit identical across
// runs and machines.
//
// Example:
//
//	src := rng.New(42)
//	v := src.Next() // uniform in [0, 1]
package rng
