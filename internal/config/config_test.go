// ABOUTME: Tests for preset loading, validation and conversion
// ABOUTME: Uses temporary YAML files for load and save round trips
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Resonate-Protocol/resonate-noise/pkg/ambient"
	"github.com/Resonate-Protocol/resonate-noise/pkg/noise"
	"github.com/Resonate-Protocol/resonate-noise/pkg/rng"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Type != noise.White {
		t.Errorf("expected white noise, got %s", cfg.Type)
	}
	if cfg.Duration != 60 || cfg.SampleRate != 44100 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Levels.Base != 0.7 || cfg.Levels.Layer != 0.3 {
		t.Errorf("unexpected levels: %+v", cfg.Levels)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "rain.yaml", `
type: pink
duration: 600
seed: 42
stereo: true
fade_in: 2.5
layers:
  - kind: rain
    intensity: 0.6
  - kind: birds
    intensity: 0.4
    variation: 0.9
    seed: 7
layer_files:
  - creek.flac
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Type != noise.Pink {
		t.Errorf("expected pink, got %s", cfg.Type)
	}
	if cfg.Duration != 600 {
		t.Errorf("expected duration 600, got %g", cfg.Duration)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("expected default sample rate to survive, got %d", cfg.SampleRate)
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %v", cfg.Seed)
	}
	if !cfg.Stereo || cfg.FadeIn != 2.5 {
		t.Errorf("unexpected stereo/fade: %+v", cfg)
	}
	if len(cfg.Layers) != 2 || cfg.Layers[1].Kind != ambient.Birds {
		t.Fatalf("unexpected layers: %+v", cfg.Layers)
	}
	if len(cfg.LayerFiles) != 1 || cfg.LayerFiles[0] != "creek.flac" {
		t.Errorf("unexpected layer files: %v", cfg.LayerFiles)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown noise type", "type: purple\n"},
		{"unknown layer kind", "layers:\n  - kind: thunder\n"},
		{"malformed yaml", "duration: [1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, "bad.yaml", tt.content)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets", "brown.yaml")

	cfg := Default()
	cfg.Type = noise.Brown
	cfg.Seed = rng.SeedValue(-5)
	cfg.SetLayer(ambient.Water, 0.8)

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Type != noise.Brown {
		t.Errorf("expected brown, got %s", loaded.Type)
	}
	if loaded.Seed == nil || *loaded.Seed != -5 {
		t.Errorf("expected seed -5, got %v", loaded.Seed)
	}
	if len(loaded.Layers) != 1 || loaded.Layers[0].Kind != ambient.Water || loaded.Layers[0].Intensity != 0.8 {
		t.Errorf("unexpected layers: %+v", loaded.Layers)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero duration", func(c *Config) { c.Duration = 0 }},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"negative fade in", func(c *Config) { c.FadeIn = -1 }},
		{"negative fade out", func(c *Config) { c.FadeOut = -1 }},
		{"variation above one", func(c *Config) { c.Variation = 1.5 }},
		{"base level negative", func(c *Config) { c.Levels.Base = -0.1 }},
		{"layer level above one", func(c *Config) { c.Levels.Layer = 2 }},
		{"bad noise type", func(c *Config) { c.Type = noise.Type(7) }},
		{"bad layer kind", func(c *Config) { c.Layers = []LayerConfig{{Kind: ambient.Kind(9), Intensity: 0.5}} }},
		{"layer intensity above one", func(c *Config) { c.SetLayer(ambient.Rain, 3) }},
		{"duplicate layer kind", func(c *Config) {
			c.Layers = []LayerConfig{
				{Kind: ambient.Rain, Intensity: 0.5},
				{Kind: ambient.Rain, Intensity: 0.3},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidate_DistinctLayers(t *testing.T) {
	cfg := Default()
	cfg.Layers = []LayerConfig{
		{Kind: ambient.Rain, Intensity: 0.5},
		{Kind: ambient.Birds, Intensity: 0.3},
		{Kind: ambient.Water, Intensity: 0.2},
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestSetLayer(t *testing.T) {
	cfg := Default()

	cfg.SetLayer(ambient.Rain, 0.5)
	cfg.SetLayer(ambient.Birds, 0.2)
	cfg.SetLayer(ambient.Rain, 0.9)
	if len(cfg.Layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(cfg.Layers))
	}
	if cfg.Layers[0].Kind != ambient.Rain || cfg.Layers[0].Intensity != 0.9 {
		t.Errorf("expected rain updated in place, got %+v", cfg.Layers[0])
	}

	cfg.SetLayer(ambient.Rain, 0)
	if len(cfg.Layers) != 1 || cfg.Layers[0].Kind != ambient.Birds {
		t.Errorf("expected only birds to remain, got %+v", cfg.Layers)
	}
}

func TestRenderOptions(t *testing.T) {
	variation := 0.1
	cfg := Default()
	cfg.Type = noise.Pink
	cfg.Stereo = true
	cfg.Variation = 0.6
	cfg.Seed = rng.SeedValue(3)
	cfg.Layers = []LayerConfig{
		{Kind: ambient.Rain, Intensity: 0.5},
		{Kind: ambient.Water, Intensity: 0.7, Variation: &variation},
	}
	cfg.LayerFiles = []string{"a.wav"}

	opts := cfg.RenderOptions()
	if opts.NoiseType != noise.Pink || !opts.Stereo || opts.Channels() != 2 {
		t.Errorf("unexpected options: %+v", opts)
	}
	if *opts.Seed != 3 {
		t.Errorf("expected seed 3, got %d", *opts.Seed)
	}
	if opts.Layers[0].Variation != 0.6 {
		t.Errorf("expected inherited variation 0.6, got %g", opts.Layers[0].Variation)
	}
	if opts.Layers[1].Variation != 0.1 {
		t.Errorf("expected layer variation 0.1, got %g", opts.Layers[1].Variation)
	}
	if opts.Levels.Base != 0.7 || opts.Levels.Layer != 0.3 {
		t.Errorf("unexpected levels: %+v", opts.Levels)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("converted options should validate: %v", err)
	}

	cfg.LayerFiles[0] = "changed.wav"
	if opts.LayerFiles[0] != "a.wav" {
		t.Error("RenderOptions should copy layer files")
	}
}
