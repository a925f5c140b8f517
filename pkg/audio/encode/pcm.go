// ABOUTME: PCM audio encoder
// ABOUTME: Encodes float samples to 16-bit little-endian PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"

	"github.com/Resonate-Protocol/resonate-noise/pkg/audio"
)

// PCMEncoder encodes PCM audio
type PCMEncoder struct {
	bitDepth int
}

// NewPCM creates a new PCM encoder
func NewPCM(format audio.Format) (Encoder, error) {
	if format.Codec != "pcm" {
		return nil, fmt.Errorf("invalid codec for PCM encoder: %s", format.Codec)
	}

	if format.BitDepth != audio.DefaultBitDepth {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: %d)", format.BitDepth, audio.DefaultBitDepth)
	}

	return &PCMEncoder{
		bitDepth: format.BitDepth,
	}, nil
}

// Encode packs float samples as 16-bit little-endian PCM, 2 bytes per
// sample in buffer order
func (e *PCMEncoder) Encode(samples []float32) ([]byte, error) {
	output := make([]byte, len(samples)*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(output[i*2:], uint16(audio.FloatToInt16(sample)))
	}
	return output, nil
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}
