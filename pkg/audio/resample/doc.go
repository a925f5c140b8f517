// ABOUTME: Audio resampling package using linear interpolation
// ABOUTME: Converts float sample buffers between sample rates
// Package resample provides sample rate conversion for float audio.
//
// External layer files rarely match the render rate, so decoded audio is
// passed through Convert before it is looped into the mix.
//
// Example:
//
//	out := resample.Convert(samples, 48000, 44100, 1)
package resample
