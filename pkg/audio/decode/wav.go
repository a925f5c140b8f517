// ABOUTME: WAV audio decoder
// ABOUTME: Decodes RIFF/WAVE PCM files to int32 samples using go-audio/wav
package decode

import (
	"bytes"
	"fmt"

	"github.com/Resonate-Protocol/resonate-noise/pkg/audio"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// WAVDecoder decodes WAV files
type WAVDecoder struct {
	format audio.Format
}

// NewWAV creates a new WAV decoder
func NewWAV(format audio.Format) (Decoder, error) {
	if format.Codec != "wav" {
		return nil, fmt.Errorf("invalid codec for WAV decoder: %s", format.Codec)
	}

	return &WAVDecoder{
		format: format,
	}, nil
}

// Decode converts a complete WAV file to int32 samples
func (d *WAVDecoder) Decode(data []byte) ([]int32, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	if buf == nil || dec.NumChans == 0 {
		return nil, fmt.Errorf("failed to decode wav: invalid file")
	}
	if dec.WavAudioFormat != wavFormatPCM && dec.WavAudioFormat != wavFormatExtensible {
		return nil, fmt.Errorf("unsupported wav format tag: %d (supported: PCM)", dec.WavAudioFormat)
	}

	d.format.SampleRate = int(dec.SampleRate)
	d.format.Channels = int(dec.NumChans)
	d.format.BitDepth = int(dec.BitDepth)

	return intBufferSamples(buf, d.format.BitDepth), nil
}

// intBufferSamples scales go-audio integer samples into the 24-bit range
func intBufferSamples(buf *goaudio.IntBuffer, bitDepth int) []int32 {
	samples := make([]int32, len(buf.Data))
	for i, v := range buf.Data {
		// 8-bit WAV is unsigned
		if bitDepth == 8 {
			v -= 128
		}
		samples[i] = audio.SampleFromBitDepth(int32(v), bitDepth)
	}
	return samples
}

// Format returns the decoded stream format
func (d *WAVDecoder) Format() audio.Format {
	return d.format
}

// Close releases decoder resources
func (d *WAVDecoder) Close() error {
	return nil
}
