// ABOUTME: Envelope shaping and channel expansion package
// ABOUTME: Applies linear fades and expands mono buffers to interleaved stereo
// Package envelope shapes rendered buffers before encoding.
//
// Apply adds linear fade-in and fade-out ramps. ConvertToStereo and
// Expand turn a mono buffer into interleaved multi-channel samples.
//
// Example:
//
//	shaped := envelope.Apply(mixed, 2.0, 3.0, 44100)
//	stereo := envelope.ConvertToStereo(shaped, 0)
package envelope
