// ABOUTME: Render options and results
// ABOUTME: Describes one render request and the buffer it produces
package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/Resonate-Protocol/resonate-noise/pkg/ambient"
	"github.com/Resonate-Protocol/resonate-noise/pkg/audio"
	"github.com/Resonate-Protocol/resonate-noise/pkg/mix"
	"github.com/Resonate-Protocol/resonate-noise/pkg/noise"
	"github.com/google/uuid"
)

// ErrInvalidOptions is returned when Options fail validation
var ErrInvalidOptions = errors.New("invalid render options")

// LayerSpec requests one synthesized ambient layer
type LayerSpec struct {
	Kind      ambient.Kind
	Intensity float64
	Variation float64
	Seed      *int32 // overrides the seed derived from Options.Seed
}

// Options describes a render
type Options struct {
	NoiseType  noise.Type
	Duration   float64 // seconds
	SampleRate int
	Seed       *int32
	Stereo     bool
	FadeIn     float64 // seconds
	FadeOut    float64 // seconds
	Layers     []LayerSpec
	LayerFiles []string // external audio mixed after synthesized layers
	Levels     mix.Levels
}

// DefaultOptions returns a 60 second mono white noise render at 44.1kHz
func DefaultOptions() Options {
	return Options{
		NoiseType:  noise.White,
		Duration:   60,
		SampleRate: audio.DefaultSampleRate,
		Levels:     mix.DefaultLevels(),
	}
}

// Channels returns 2 for stereo renders and 1 otherwise
func (o Options) Channels() int {
	if o.Stereo {
		return 2
	}
	return 1
}

// Validate checks the options for values the pipeline cannot render
func (o Options) Validate() error {
	if _, err := noise.For(o.NoiseType); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if o.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidOptions, o.Duration)
	}
	if o.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidOptions, o.SampleRate)
	}
	if o.FadeIn < 0 || o.FadeOut < 0 {
		return fmt.Errorf("%w: fades must not be negative", ErrInvalidOptions)
	}
	seen := make(map[ambient.Kind]bool, len(o.Layers))
	for _, l := range o.Layers {
		if _, err := ambient.For(l.Kind); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
		// Derived layer seeds depend only on the kind
		if seen[l.Kind] {
			return fmt.Errorf("%w: duplicate %s layer", ErrInvalidOptions, l.Kind)
		}
		seen[l.Kind] = true
	}
	return nil
}

// layerSeed returns the explicit layer seed, or the render seed offset by
// the layer kind so each layer draws an independent sequence
func (o Options) layerSeed(l LayerSpec) *int32 {
	if l.Seed != nil {
		return l.Seed
	}
	if o.Seed == nil {
		return nil
	}
	s := *o.Seed + int32(l.Kind) + 1
	return &s
}

// LayerInfo describes a layer that went into the mix
type LayerInfo struct {
	Name        string
	Description string
	Source      string // "synth" or the external file path
}

// Result is a finished render
type Result struct {
	ID         uuid.UUID
	Samples    []float32 // interleaved when Channels is 2
	SampleRate int
	Channels   int
	Layers     []LayerInfo
	Elapsed    time.Duration
}

// Frames returns the number of sample frames
func (r *Result) Frames() int {
	if r.Channels <= 0 {
		return 0
	}
	return len(r.Samples) / r.Channels
}

// Duration returns the rendered length
func (r *Result) Duration() time.Duration {
	if r.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(r.Frames()) / float64(r.SampleRate) * float64(time.Second))
}
