// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes FLAC audio to int32 samples using mewkiz/flac
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Resonate-Protocol/resonate-noise/pkg/audio"
	"github.com/mewkiz/flac"
)

// FLACDecoder decodes FLAC audio
type FLACDecoder struct {
	format audio.Format
}

// NewFLAC creates a new FLAC decoder
func NewFLAC(format audio.Format) (Decoder, error) {
	if format.Codec != "flac" {
		return nil, fmt.Errorf("invalid codec for FLAC decoder: %s", format.Codec)
	}

	return &FLACDecoder{
		format: format,
	}, nil
}

// Decode converts a complete FLAC stream to interleaved int32 samples
func (d *FLACDecoder) Decode(data []byte) ([]int32, error) {
	stream, err := flac.New(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode FLAC: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)

	samples := make([]int32, 0, int(info.NSamples)*channels)
	for {
		frame, err := stream.ParseNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to parse FLAC frame: %w", err)
		}

		for i := 0; i < int(frame.BlockSize); i++ {
			for ch := 0; ch < channels; ch++ {
				sample := frame.Subframes[ch].Samples[i]
				samples = append(samples, audio.SampleFromBitDepth(sample, bitDepth))
			}
		}
	}

	d.format.SampleRate = int(info.SampleRate)
	d.format.Channels = channels
	d.format.BitDepth = bitDepth

	return samples, nil
}

// Format returns the decoded stream format
func (d *FLACDecoder) Format() audio.Format {
	return d.format
}

// Close releases decoder resources
func (d *FLACDecoder) Close() error {
	return nil
}
