package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/rollcall/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rollcall.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.Canvas != "standard" || cfg.Output != "export" || cfg.Arc.Growth != 4 {
		t.Errorf("Default() = %+v", cfg)
	}
	if !slices.Equal(cfg.Formats, []string{"png"}) {
		t.Errorf("Formats = %v, want [png]", cfg.Formats)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
canvas  = "legacy"
seed    = 42
formats = ["png", "json"]
output  = "out"

[arc]
growth = 2.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Config{Canvas: "legacy", Seed: 42, Formats: []string{"png", "json"}, Output: "out", Arc: Arc{Growth: 2.5}}
	if cfg.Canvas != want.Canvas || cfg.Seed != want.Seed || cfg.Output != want.Output ||
		cfg.Arc != want.Arc || !slices.Equal(cfg.Formats, want.Formats) {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `seed = 7`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Seed != 7 || cfg.Canvas != "standard" || cfg.Arc.Growth != 4 {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want errors.Code
	}{
		{"malformed", `canvas = `, errors.ErrCodeInvalidConfig},
		{"unknown key", `colour = "red"`, errors.ErrCodeInvalidConfig},
		{"unknown nested key", "[arc]\nslices = 10", errors.ErrCodeInvalidConfig},
		{"bad canvas", `canvas = "huge"`, errors.ErrCodeInvalidConfig},
		{"bad format", `formats = ["svg"]`, errors.ErrCodeInvalidFormat},
		{"empty formats", `formats = []`, errors.ErrCodeInvalidConfig},
		{"empty output", `output = ""`, errors.ErrCodeInvalidConfig},
		{"zero growth", "[arc]\ngrowth = 0.0", errors.ErrCodeInvalidConfig},
		{"wrong type", `seed = "seven"`, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}
