// ABOUTME: Audio decoder package for external layer sources
// ABOUTME: Provides Decoder interface and implementations for WAV, MP3, FLAC
// Package decode provides audio decoders for externally produced layers.
//
// Supports: WAV (via go-audio/wav), MP3 (via go-mp3) and FLAC (via mewkiz/flac).
//
// All decoders implement the Decoder interface and output interleaved
// int32 samples in 24-bit range. File picks a decoder from the file
// extension and returns an audio.Buffer.
//
// Example:
//
//	buf, err := decode.File("creek.flac")
//	mono := audio.Downmix(audio.ToFloat(buf.Samples), buf.Format.Channels)
package decode
