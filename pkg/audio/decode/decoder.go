// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for all audio decoders
package decode

import "github.com/Resonate-Protocol/resonate-noise/pkg/audio"

// Decoder decodes audio in various formats to PCM int32 samples
type Decoder interface {
	// Decode converts encoded audio data to interleaved PCM samples
	Decode(data []byte) ([]int32, error)

	// Format reports the stream format; container formats fill in the
	// sample rate and channel count after Decode
	Format() audio.Format

	// Close releases decoder resources
	Close() error
}
