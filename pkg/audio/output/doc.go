// ABOUTME: Audio output package for previewing renders
// ABOUTME: Provides the Output interface and an oto implementation
// Package output provides audio playback for rendered noise.
//
// The oto backend plays interleaved float samples through the system
// audio device with software volume.
//
// Example:
//
//	out := output.NewOto()
//	err := out.Open(44100, 1)
//	err = out.Write(samples)
//	err = out.Close()
package output
