// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for all audio encoders
package encode

// Encoder encodes float samples to a byte format
type Encoder interface {
	// Encode converts interleaved float samples to encoded audio data
	Encode(samples []float32) ([]byte, error)

	// Close releases encoder resources
	Close() error
}
