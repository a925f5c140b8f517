// ABOUTME: Ambient texture synthesis package
// ABOUTME: Generates rain, bird and running water layers keyed off a base noise
// Package ambient synthesizes ambient texture layers to mix over base noise.
//
// Each synthesizer walks the base signal sample by sample and uses its
// instantaneous amplitude to modulate the probability of an event
// (a raindrop, a bird call, a bubble). Triggered events are stamped
// additively into a zeroed buffer of the same length as the base.
//
// Layers draw all randomness from their own rng.LCG seeded from
// Options.Seed. Omitting the seed makes the layer non-reproducible.
//
// Example:
//
//	opts := ambient.Options{Intensity: 0.6, Variation: 0.3, Seed: rng.SeedValue(7)}
//	rain := ambient.GenerateRain(base, 44100, opts)
//	birds := ambient.GenerateBirds(base, 44100, opts)
package ambient
