// ABOUTME: File decoding entry point
// ABOUTME: Selects a decoder by file extension and returns a decoded buffer
package decode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Resonate-Protocol/resonate-noise/pkg/audio"
)

// ForPath returns a decoder chosen by the file extension of path
func ForPath(path string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".wav", ".wave":
		return NewWAV(audio.Format{Codec: "wav"})
	case ".mp3":
		return NewMP3(audio.Format{Codec: "mp3"})
	case ".flac":
		return NewFLAC(audio.Format{Codec: "flac"})
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .flac)", ext)
	}
}

// File reads and decodes the audio file at path
func File(path string) (*audio.Buffer, error) {
	decoder, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	samples, err := decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return &audio.Buffer{
		Samples: samples,
		Format:  decoder.Format(),
	}, nil
}
