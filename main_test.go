// ABOUTME: Tests for CLI flag handling
// ABOUTME: Verifies flags override preset values only when set
package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Resonate-Protocol/resonate-noise/internal/config"
	"github.com/Resonate-Protocol/resonate-noise/pkg/ambient"
	"github.com/Resonate-Protocol/resonate-noise/pkg/noise"
)

func TestApplyFlags_UnsetFlagsKeepPreset(t *testing.T) {
	cfg := config.Default()
	cfg.Type = noise.Brown
	cfg.Duration = 12
	cfg.Output = "preset.wav"

	if err := applyFlags(cfg, map[string]bool{}); err != nil {
		t.Fatal(err)
	}

	if cfg.Type != noise.Brown || cfg.Duration != 12 {
		t.Errorf("preset values overwritten: %+v", cfg)
	}
	if cfg.Output != "preset.wav" {
		t.Errorf("expected preset output, got %s", cfg.Output)
	}
	if cfg.Seed != nil {
		t.Errorf("expected no seed, got %d", *cfg.Seed)
	}
}

func TestApplyFlags_SetFlagsOverride(t *testing.T) {
	*noiseType = "pink"
	*seed = 1234
	*rain = 0.6
	*outPath = "flag.wav"
	files = layerFiles{"creek.mp3"}
	defer func() {
		*noiseType = "white"
		*seed = 0
		*rain = 0
		*outPath = "noise.wav"
		files = nil
	}()

	cfg := config.Default()
	cfg.Output = "preset.wav"
	visited := map[string]bool{"type": true, "seed": true, "rain": true, "o": true, "layer-file": true}

	if err := applyFlags(cfg, visited); err != nil {
		t.Fatal(err)
	}

	if cfg.Type != noise.Pink {
		t.Errorf("expected pink, got %s", cfg.Type)
	}
	if cfg.Seed == nil || *cfg.Seed != 1234 {
		t.Errorf("expected seed 1234, got %v", cfg.Seed)
	}
	if len(cfg.Layers) != 1 || cfg.Layers[0].Kind != ambient.Rain || cfg.Layers[0].Intensity != 0.6 {
		t.Errorf("unexpected layers: %+v", cfg.Layers)
	}
	if cfg.Output != "flag.wav" {
		t.Errorf("expected flag output, got %s", cfg.Output)
	}
	if len(cfg.LayerFiles) != 1 || cfg.LayerFiles[0] != "creek.mp3" {
		t.Errorf("unexpected layer files: %v", cfg.LayerFiles)
	}
}

func TestApplyFlags_InvalidType(t *testing.T) {
	*noiseType = "purple"
	defer func() { *noiseType = "white" }()

	if err := applyFlags(config.Default(), map[string]bool{"type": true}); err == nil {
		t.Fatal("expected error for unknown noise type")
	}
}

func TestApplyFlags_SeedRange(t *testing.T) {
	defer func() { *seed = 0 }()

	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"max int32", math.MaxInt32, false},
		{"min int32", math.MinInt32, false},
		{"above int32", math.MaxInt32 + 1, true},
		{"below int32", math.MinInt32 - 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			*seed = tt.value
			cfg := config.Default()
			err := applyFlags(cfg, map[string]bool{"seed": true})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for seed %d", tt.value)
				}
				if cfg.Seed != nil {
					t.Errorf("expected seed to stay unset, got %d", *cfg.Seed)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Seed == nil || int(*cfg.Seed) != tt.value {
				t.Errorf("expected seed %d, got %v", tt.value, cfg.Seed)
			}
		})
	}
}

func TestSavePreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets", "rain.yaml")
	*savePath = path
	defer func() { *savePath = "" }()

	cfg := config.Default()
	cfg.Type = noise.Pink
	cfg.Duration = 90
	cfg.SetLayer(ambient.Rain, 0.4)

	if err := savePreset(cfg); err != nil {
		t.Fatalf("savePreset failed: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load saved preset: %v", err)
	}
	if loaded.Type != noise.Pink || loaded.Duration != 90 {
		t.Errorf("unexpected preset: %+v", loaded)
	}
	if len(loaded.Layers) != 1 || loaded.Layers[0].Kind != ambient.Rain || loaded.Layers[0].Intensity != 0.4 {
		t.Errorf("unexpected layers: %+v", loaded.Layers)
	}
}

func TestSavePreset_Unset(t *testing.T) {
	if err := savePreset(config.Default()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSavePreset_Unwritable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	*savePath = filepath.Join(blocker, "preset.yaml")
	defer func() { *savePath = "" }()

	if err := savePreset(config.Default()); err == nil {
		t.Fatal("expected error when the parent path is a file")
	}
}

func TestApplyFlags_DefaultOutput(t *testing.T) {
	cfg := config.Default()
	if err := applyFlags(cfg, map[string]bool{}); err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "noise.wav" {
		t.Errorf("expected default output noise.wav, got %s", cfg.Output)
	}
}

func TestDescribe(t *testing.T) {
	cfg := config.Default()
	cfg.Type = noise.Pink
	cfg.Duration = 30
	cfg.SetLayer(ambient.Rain, 0.5)
	cfg.LayerFiles = []string{"creek.wav"}

	if got, want := describe(cfg), "pink 30s + rain, creek.wav"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLayerFilesFlag(t *testing.T) {
	var l layerFiles
	_ = l.Set("a.wav")
	_ = l.Set("b.flac")
	if l.String() != "a.wav,b.flac" {
		t.Errorf("unexpected value: %s", l.String())
	}
}
