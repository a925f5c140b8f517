// ABOUTME: RIFF/WAVE container writer
// ABOUTME: Builds the canonical 44-byte header and persists PCM16 files
package encode

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Resonate-Protocol/resonate-noise/pkg/audio"
)

const (
	// HeaderSize is the size of the canonical WAV header in bytes
	HeaderSize = 44

	formatPCM     = 1
	bitsPerSample = 16
	fmtChunkSize  = 16
)

// WaveformOptions describes a waveform to persist
type WaveformOptions struct {
	Data       []float32 // Interleaved when Channels > 1
	SampleRate int
	Channels   int // Defaults to 1
	OutputPath string
}

// EncodeWaveform returns a complete WAV file: the 44-byte header
// followed by the 16-bit PCM payload
func EncodeWaveform(data []float32, sampleRate, channels int) ([]byte, error) {
	if channels <= 0 {
		channels = 1
	}

	encoder, err := NewPCM(audio.Format{
		Codec:      "pcm",
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   bitsPerSample,
	})
	if err != nil {
		return nil, err
	}
	defer encoder.Close()

	pcm, err := encoder.Encode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode samples: %w", err)
	}
	dataSize := len(pcm)
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	buf := make([]byte, HeaderSize+dataSize)

	// RIFF header
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(HeaderSize-8+dataSize))
	copy(buf[8:12], "WAVE")

	// fmt subchunk
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(buf[20:22], formatPCM)
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], bitsPerSample)

	// data subchunk
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	copy(buf[HeaderSize:], pcm)
	return buf, nil
}

// WriteWaveform creates or overwrites opts.OutputPath with a WAV file in
// a single write. A failed write may leave a partial file behind; use
// WriteWaveformAtomic when that matters.
func WriteWaveform(opts WaveformOptions) error {
	wav, err := EncodeWaveform(opts.Data, opts.SampleRate, opts.Channels)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.OutputPath, wav, 0o644); err != nil {
		return fmt.Errorf("failed to write waveform: %w", err)
	}
	return nil
}

// WriteWaveformAtomic writes to a temporary file next to
// opts.OutputPath and renames it into place on success
func WriteWaveformAtomic(opts WaveformOptions) error {
	wav, err := EncodeWaveform(opts.Data, opts.SampleRate, opts.Channels)
	if err != nil {
		return err
	}

	dir := filepath.Dir(opts.OutputPath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(opts.OutputPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(wav); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write waveform: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, opts.OutputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename waveform: %w", err)
	}
	return nil
}
