// ABOUTME: YAML render presets and library manifests
// ABOUTME: Loads, validates and converts presets into render options
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Resonate-Protocol/resonate-noise/internal/render"
	"github.com/Resonate-Protocol/resonate-noise/pkg/ambient"
	"github.com/Resonate-Protocol/resonate-noise/pkg/mix"
	"github.com/Resonate-Protocol/resonate-noise/pkg/noise"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a preset fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Config is a render preset.
type Config struct {
	Type       noise.Type    `yaml:"type"`
	Duration   float64       `yaml:"duration"`
	SampleRate int           `yaml:"sample_rate"`
	Seed       *int32        `yaml:"seed,omitempty"`
	Stereo     bool          `yaml:"stereo"`
	FadeIn     float64       `yaml:"fade_in"`
	FadeOut    float64       `yaml:"fade_out"`
	Variation  float64       `yaml:"variation"`
	Levels     LevelsConfig  `yaml:"levels"`
	Layers     []LayerConfig `yaml:"layers,omitempty"`
	LayerFiles []string      `yaml:"layer_files,omitempty"`
	Output     string        `yaml:"output,omitempty"`
}

// LevelsConfig holds the mix gains.
type LevelsConfig struct {
	Base  float64 `yaml:"base"`
	Layer float64 `yaml:"layer"`
}

// LayerConfig enables one ambient layer.
type LayerConfig struct {
	Kind      ambient.Kind `yaml:"kind"`
	Intensity float64      `yaml:"intensity"`
	Variation *float64     `yaml:"variation,omitempty"` // defaults to Config.Variation
	Seed      *int32       `yaml:"seed,omitempty"`
}

// Default returns a 60 second mono white noise preset.
func Default() *Config {
	return &Config{
		Type:       noise.White,
		Duration:   60,
		SampleRate: 44100,
		Variation:  ambient.DefaultOptions().Variation,
		Levels: LevelsConfig{
			Base:  mix.DefaultBaseLevel,
			Layer: mix.DefaultLayerLevel,
		},
	}
}

// Load reads a preset from path. Keys missing from the file keep their
// Default() values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the preset to path as YAML.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// SetLayer enables kind at intensity, replacing an existing entry of the
// same kind. An intensity of 0 or less removes the layer.
func (c *Config) SetLayer(kind ambient.Kind, intensity float64) {
	kept := c.Layers[:0]
	replaced := false
	for _, l := range c.Layers {
		if l.Kind != kind {
			kept = append(kept, l)
			continue
		}
		if intensity > 0 && !replaced {
			l.Intensity = intensity
			kept = append(kept, l)
			replaced = true
		}
	}
	if intensity > 0 && !replaced {
		kept = append(kept, LayerConfig{Kind: kind, Intensity: intensity})
	}
	c.Layers = kept
}

// Validate reports the first value the renderer would reject.
func (c *Config) Validate() error {
	if _, err := noise.For(c.Type); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidConfig, c.Duration)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.FadeIn < 0 {
		return fmt.Errorf("%w: fade_in must not be negative, got %g", ErrInvalidConfig, c.FadeIn)
	}
	if c.FadeOut < 0 {
		return fmt.Errorf("%w: fade_out must not be negative, got %g", ErrInvalidConfig, c.FadeOut)
	}
	if err := unit("variation", c.Variation); err != nil {
		return err
	}
	if err := unit("levels.base", c.Levels.Base); err != nil {
		return err
	}
	if err := unit("levels.layer", c.Levels.Layer); err != nil {
		return err
	}
	seen := make(map[ambient.Kind]int, len(c.Layers))
	for i, l := range c.Layers {
		if _, err := ambient.For(l.Kind); err != nil {
			return fmt.Errorf("%w: layers[%d]: %v", ErrInvalidConfig, i, err)
		}
		if j, ok := seen[l.Kind]; ok {
			return fmt.Errorf("%w: layers[%d] repeats %s from layers[%d]", ErrInvalidConfig, i, l.Kind, j)
		}
		seen[l.Kind] = i
		if err := unit(fmt.Sprintf("layers[%d].intensity", i), l.Intensity); err != nil {
			return err
		}
		if l.Variation != nil {
			if err := unit(fmt.Sprintf("layers[%d].variation", i), *l.Variation); err != nil {
				return err
			}
		}
	}
	return nil
}

func unit(field string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %s must be within [0, 1], got %g", ErrInvalidConfig, field, v)
	}
	return nil
}

// RenderOptions converts the preset for the render pipeline.
func (c *Config) RenderOptions() render.Options {
	layers := make([]render.LayerSpec, 0, len(c.Layers))
	for _, l := range c.Layers {
		variation := c.Variation
		if l.Variation != nil {
			variation = *l.Variation
		}
		layers = append(layers, render.LayerSpec{
			Kind:      l.Kind,
			Intensity: l.Intensity,
			Variation: variation,
			Seed:      l.Seed,
		})
	}

	return render.Options{
		NoiseType:  c.Type,
		Duration:   c.Duration,
		SampleRate: c.SampleRate,
		Seed:       c.Seed,
		Stereo:     c.Stereo,
		FadeIn:     c.FadeIn,
		FadeOut:    c.FadeOut,
		Layers:     layers,
		LayerFiles: append([]string(nil), c.LayerFiles...),
		Levels:     mix.Levels{Base: c.Levels.Base, Layer: c.Levels.Layer},
	}
}
