// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and sample conversion functions
// Package audio provides fundamental audio types and utilities shared by
// the encoder, the decoders and the playback output.
//
// This package defines:
//   - Format: describes a PCM stream (codec, sample rate, channels, bit depth)
//   - Buffer: decoded PCM audio as int32 samples in 24-bit range
//
// It also provides sample conversions:
//   - float → 16-bit PCM (asymmetric scaling used by the WAV writer)
//   - 16-bit and other bit depths → 24-bit range
//   - 24-bit int32 → float and multi-channel → mono downmix
//
// Example:
//
//	format := audio.Format{
//	    Codec:      "pcm",
//	    SampleRate: 44100,
//	    Channels:   2,
//	    BitDepth:   16,
//	}
//
//	pcm := audio.FloatToInt16(0.5) // 16383
package audio
