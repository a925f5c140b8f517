// ABOUTME: Colored noise synthesis package
// ABOUTME: Generates white, pink and brown noise buffers from a seeded source
// Package noise synthesizes colored noise.
//
// Supports: white (flat spectrum), pink (1/f, Kellett filter) and brown
// (1/f², leaky integrator).
//
// Every generator draws from an rng.Source and keeps its filter memory
// local to a single Generate call, so independent buffers can be produced
// concurrently.
//
// Example:
//
//	samples, err := noise.Generate(noise.Pink, 30, 44100, rng.SeedValue(42))
package noise
