// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for audio playback backends
package output

// Output represents an audio output device
type Output interface {
	// Open initializes the output device
	Open(sampleRate, channels int) error

	// Write queues interleaved samples in [-1, 1] for playback
	Write(samples []float32) error

	// Close waits for queued audio to finish and releases the device
	Close() error
}

// Volume is implemented by outputs with software gain
type Volume interface {
	SetVolume(volume int)
	GetVolume() int
	SetMuted(muted bool)
	IsMuted() bool
}
