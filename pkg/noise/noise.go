// ABOUTME: Noise type definitions and synthesis entry point
// ABOUTME: Dispatches noise colors through the Generator interface
package noise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Resonate-Protocol/resonate-noise/pkg/rng"
)

// ErrInvalidNoiseType is returned for an unrecognized noise type
var ErrInvalidNoiseType = errors.New("invalid noise type")

// Type identifies a noise color
type Type int

const (
	White Type = iota
	Pink
	Brown
)

// Types lists every supported noise color
var Types = []Type{White, Pink, Brown}

func (t Type) String() string {
	switch t {
	case White:
		return "white"
	case Pink:
		return "pink"
	case Brown:
		return "brown"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType converts a name such as "pink" to a Type
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "white":
		return White, nil
	case "pink":
		return Pink, nil
	case "brown", "brownian", "red":
		return Brown, nil
	default:
		return 0, fmt.Errorf("%w: %q (supported: white, pink, brown)", ErrInvalidNoiseType, name)
	}
}

// MarshalText implements encoding.TextMarshaler
func (t Type) MarshalText() ([]byte, error) {
	switch t {
	case White, Pink, Brown:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidNoiseType, int(t))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Generator produces n samples of one noise color
type Generator interface {
	Generate(src rng.Source, n int) []float32
}

// For returns the generator for a noise type
func For(t Type) (Generator, error) {
	switch t {
	case White:
		return WhiteGenerator{}, nil
	case Pink:
		return PinkGenerator{}, nil
	case Brown:
		return BrownGenerator{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidNoiseType, int(t))
	}
}

// SampleCount returns floor(durationS * sampleRate), or 0 for
// non-positive inputs
func SampleCount(durationS float64, sampleRate int) int {
	n := int(durationS * float64(sampleRate))
	if n < 0 {
		return 0
	}
	return n
}

// Generate synthesizes durationS seconds of noise at sampleRate.
// A nil seed produces non-reproducible output.
func Generate(t Type, durationS float64, sampleRate int, seed *int32) ([]float32, error) {
	gen, err := For(t)
	if err != nil {
		return nil, err
	}
	return gen.Generate(rng.NewFromOptional(seed), SampleCount(durationS, sampleRate)), nil
}
