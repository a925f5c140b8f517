// ABOUTME: Ambient layer type definitions
// ABOUTME: Defines Layer results, Options, Kind and the Synthesizer interface
package ambient

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKind is returned for an unrecognized layer kind
var ErrInvalidKind = errors.New("invalid ambient layer kind")

// Layer is a synthesized texture ready for mixing
type Layer struct {
	Name        string // Machine-stable identifier, e.g. "pacific_rain"
	Description string
	Samples     []float32
}

// Options controls a synthesizer
type Options struct {
	Intensity float64 // 0-1, prominence of the layer
	Variation float64 // 0-1, how strongly the base signal modulates events
	Seed      *int32  // nil for non-reproducible output
}

// DefaultOptions returns moderate intensity and variation with no seed
func DefaultOptions() Options {
	return Options{
		Intensity: 0.5,
		Variation: 0.5,
	}
}

// normalized returns a copy with intensity and variation clamped to [0, 1]
func (o Options) normalized() Options {
	o.Intensity = clampUnit(o.Intensity)
	o.Variation = clampUnit(o.Variation)
	return o
}

// Kind identifies a built-in ambient layer
type Kind int

const (
	Rain Kind = iota
	Birds
	Water
)

// Kinds lists every built-in layer kind
var Kinds = []Kind{Rain, Birds, Water}

func (k Kind) String() string {
	switch k {
	case Rain:
		return "rain"
	case Birds:
		return "birds"
	case Water:
		return "water"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a name such as "rain" to a Kind
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rain":
		return Rain, nil
	case "birds", "bird":
		return Birds, nil
	case "water", "stream":
		return Water, nil
	default:
		return 0, fmt.Errorf("%w: %q (supported: rain, birds, water)", ErrInvalidKind, name)
	}
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Rain, Birds, Water:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Synthesizer produces a layer the same length as base
type Synthesizer interface {
	Synthesize(base []float32, sampleRate int, opts Options) Layer
}

// SynthesizerFunc adapts a function to the Synthesizer interface
type SynthesizerFunc func(base []float32, sampleRate int, opts Options) Layer

func (f SynthesizerFunc) Synthesize(base []float32, sampleRate int, opts Options) Layer {
	return f(base, sampleRate, opts)
}

// For returns the synthesizer for a layer kind
func For(k Kind) (Synthesizer, error) {
	switch k {
	case Rain:
		return SynthesizerFunc(GenerateRain), nil
	case Birds:
		return SynthesizerFunc(GenerateBirds), nil
	case Water:
		return SynthesizerFunc(GenerateWater), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, int(k))
	}
}

// eventProbability is the per-sample trigger chance for ratePerSecond
// events, raised by local base amplitude in proportion to variation
func eventProbability(ratePerSecond float64, sampleRate int, amplitude, variation float64) float64 {
	return ratePerSecond / float64(sampleRate) * (1 + amplitude*variation)
}

func abs32(v float32) float64 {
	if v < 0 {
		return -float64(v)
	}
	return float64(v)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
