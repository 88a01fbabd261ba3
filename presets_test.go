package garden

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePresets = `
presets:
  pop:
    duration: 0.6
    damping_ratio: 0.45
  settle: {duration: 0.5, damping_ratio: 1, initial_velocity: 0.5}
`

func TestParsePresets(t *testing.T) {
	p, err := ParsePresets([]byte(samplePresets))
	if err != nil {
		t.Fatalf("ParsePresets: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}
	names := p.Names()
	if len(names) != 2 || names[0] != "pop" || names[1] != "settle" {
		t.Errorf("Names = %v, want [pop settle]", names)
	}

	s, ok := p.Settings("settle")
	if !ok {
		t.Fatal("settle missing")
	}
	if s.Duration != 0.5 || s.Spring.DampingRatio() != 1 || s.Spring.InitialVelocity() != 0.5 {
		t.Errorf("settle = %+v", s)
	}
	if s.Spring.Damping().Regime != CriticallyDamped {
		t.Errorf("Regime = %v, want critically damped", s.Spring.Damping().Regime)
	}

	pop, _ := p.Settings("pop")
	if pop.Spring.InitialVelocity() != 0 {
		t.Errorf("omitted initial_velocity = %v, want 0", pop.Spring.InitialVelocity())
	}

	if _, ok := p.Settings("missing"); ok {
		t.Error("unknown preset should not be found")
	}
}

func TestParsePresetsErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantSub string
	}{
		{"malformed", "presets: [", "unmarshal presets"},
		{"empty", "presets: {}", "no presets defined"},
		{"no section", "other: 1", "no presets defined"},
		{"zero damping", "presets:\n  bad: {duration: 1, damping_ratio: 0}", `preset "bad"`},
		{"missing duration", "presets:\n  bad: {damping_ratio: 1}", "duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePresets([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("err = %q, want it to contain %q", err, tt.wantSub)
			}
		})
	}
}

func TestParsePresetsWrapsInvalidParameter(t *testing.T) {
	_, err := ParsePresets([]byte("presets:\n  bad: {duration: 1, damping_ratio: -2}"))
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("err = %v, want wrapped *InvalidParameterError", err)
	}
	if ipe.Value != -2 {
		t.Errorf("Value = %v, want -2", ipe.Value)
	}
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte(samplePresets), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len = %d, want 2", p.Len())
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	_, err := LoadPresets(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestDemoPresetsParse(t *testing.T) {
	p, err := LoadPresets(filepath.Join("demos", "garden", "presets.yaml"))
	if err != nil {
		t.Fatalf("demo presets: %v", err)
	}
	for _, name := range []string{"pop", "settle", "snap", "lift"} {
		if _, ok := p.Settings(name); !ok {
			t.Errorf("demo presets missing %q", name)
		}
	}
}
