// ABOUTME: Library manifest listing named presets
// ABOUTME: Used to render a whole sample library in one run
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var presetName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Manifest describes a library of presets.
type Manifest struct {
	OutputDir string   `yaml:"output_dir"`
	Presets   []Preset `yaml:"presets"`
}

// Preset is a named Config. Unset keys take Default() values.
type Preset struct {
	Name   string `yaml:"name"`
	Config `yaml:",inline"`
}

// UnmarshalYAML decodes a preset on top of Default().
func (p *Preset) UnmarshalYAML(value *yaml.Node) error {
	type plain Preset
	raw := plain{Config: *Default()}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = Preset(raw)
	return nil
}

// LoadManifest reads and validates a manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m := &Manifest{OutputDir: "library"}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks preset names are unique and file-safe and that every
// preset is valid.
func (m *Manifest) Validate() error {
	if len(m.Presets) == 0 {
		return fmt.Errorf("%w: manifest has no presets", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(m.Presets))
	for i := range m.Presets {
		p := &m.Presets[i]
		if !presetName.MatchString(p.Name) {
			return fmt.Errorf("%w: presets[%d]: invalid name %q", ErrInvalidConfig, i, p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate preset name %q", ErrInvalidConfig, p.Name)
		}
		seen[p.Name] = true

		if err := p.Validate(); err != nil {
			return fmt.Errorf("preset %s: %w", p.Name, err)
		}
	}
	return nil
}
