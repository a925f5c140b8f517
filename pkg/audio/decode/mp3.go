// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 audio to int32 samples
package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Resonate-Protocol/resonate-noise/pkg/audio"
	"github.com/hajimehoshi/go-mp3"
)

// MP3Decoder decodes MP3 audio
type MP3Decoder struct {
	format audio.Format
}

// NewMP3 creates a new MP3 decoder
func NewMP3(format audio.Format) (Decoder, error) {
	if format.Codec != "mp3" {
		return nil, fmt.Errorf("invalid codec for MP3 decoder: %s", format.Codec)
	}

	return &MP3Decoder{
		format: format,
	}, nil
}

// Decode converts a complete MP3 stream to int32 samples
func (d *MP3Decoder) Decode(data []byte) ([]int32, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	// go-mp3 always produces 16-bit little-endian stereo
	pcm, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("mp3 decode error: %w", err)
	}

	numSamples := len(pcm) / 2
	samples := make([]int32, numSamples)
	for i := 0; i < numSamples; i++ {
		sample16 := int16(binary.LittleEndian.Uint16(pcm[i*2:]))
		samples[i] = audio.SampleFromInt16(sample16)
	}

	d.format.SampleRate = decoder.SampleRate()
	d.format.Channels = 2
	d.format.BitDepth = 16

	return samples, nil
}

// Format returns the decoded stream format
func (d *MP3Decoder) Format() audio.Format {
	return d.format
}

// Close releases decoder resources
func (d *MP3Decoder) Close() error {
	return nil
}
