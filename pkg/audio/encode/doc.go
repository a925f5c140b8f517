// ABOUTME: Audio encoder package for encoding float buffers to PCM and WAV
// ABOUTME: Provides the Encoder interface, 16-bit PCM packing and the WAV writer
// Package encode turns rendered float buffers into bytes.
//
// Supports: 16-bit little-endian PCM and the canonical 44-byte RIFF/WAVE
// container around it.
//
// Float samples are clamped to [-1, 1] and scaled asymmetrically:
// negative × 32768, non-negative × 32767.
//
// Example:
//
//	err := encode.WriteWaveform(encode.WaveformOptions{
//	    Data:       samples,
//	    SampleRate: 44100,
//	    Channels:   2,
//	    OutputPath: "rain.wav",
//	})
package encode
