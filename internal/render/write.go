// ABOUTME: Persists render results as WAV files
// ABOUTME: Chooses between a direct write and an atomic rename
package render

import (
	"fmt"

	"github.com/Resonate-Protocol/resonate-noise/pkg/audio/encode"
)

// Write encodes result to path. With atomic set the file is written to a
// temporary sibling and renamed into place.
func Write(result *Result, path string, atomic bool) error {
	if result == nil {
		return fmt.Errorf("nil render result")
	}

	opts := encode.WaveformOptions{
		Data:       result.Samples,
		SampleRate: result.SampleRate,
		Channels:   result.Channels,
		OutputPath: path,
	}
	if atomic {
		return encode.WriteWaveformAtomic(opts)
	}
	return encode.WriteWaveform(opts)
}
