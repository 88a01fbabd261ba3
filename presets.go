package garden

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// PresetSpec is one named spring in a presets file.
type PresetSpec struct {
	Duration        float64 `yaml:"duration"`
	DampingRatio    float64 `yaml:"damping_ratio"`
	InitialVelocity float64 `yaml:"initial_velocity"`
}

type presetFile struct {
	Presets map[string]PresetSpec `yaml:"presets"`
}

// Presets is a validated set of named animation settings, usually loaded
// from YAML:
//
//	presets:
//	  pop:    {duration: 0.5, damping_ratio: 0.45}
//	  settle: {duration: 0.8, damping_ratio: 1, initial_velocity: 0.5}
type Presets struct {
	settings map[string]AnimationSettings
}

// ParsePresets parses and validates YAML preset data. Every preset must
// have a positive duration and damping ratio.
func ParsePresets(data []byte) (*Presets, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("garden: unmarshal presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("garden: presets: no presets defined")
	}
	p := &Presets{settings: make(map[string]AnimationSettings, len(file.Presets))}
	for name, def := range file.Presets {
		s, err := NewAnimationSettings(def.Duration, def.DampingRatio, def.InitialVelocity)
		if err != nil {
			return nil, fmt.Errorf("garden: preset %q: %w", name, err)
		}
		p.settings[name] = s
	}
	return p, nil
}

// LoadPresets reads and parses the preset file at path.
func LoadPresets(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("garden: load presets %s: %w", path, err)
	}
	return ParsePresets(data)
}

// Settings returns the settings for name.
func (p *Presets) Settings(name string) (AnimationSettings, bool) {
	s, ok := p.settings[name]
	return s, ok
}

// Names returns the preset names in sorted order.
func (p *Presets) Names() []string {
	names := make([]string, 0, len(p.settings))
	for name := range p.settings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of presets.
func (p *Presets) Len() int {
	return len(p.settings)
}
