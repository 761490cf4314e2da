// Package config loads the optional rollcall TOML configuration file.
//
// A config file sets defaults for the render command; command-line flags
// override it:
//
//	canvas  = "standard"   # or "legacy"
//	seed    = 0            # 0 shuffles with a fresh seed on every run
//	formats = ["png"]      # png, json
//	output  = "export"     # output directory
//
//	[arc]
//	growth = 4.0           # ring spacing multiplier applied to the point diameter
//
// Unknown keys are rejected so a typo does not silently fall back to a
// default.
package config

import (
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/rollcall/pkg/errors"
	"github.com/matzehuels/rollcall/pkg/pipeline"
	"github.com/matzehuels/rollcall/pkg/render/chamber/layout"
	"github.com/matzehuels/rollcall/pkg/render/chamber/styles"
)

// Config mirrors the TOML file.
type Config struct {
	Canvas  string   `toml:"canvas"`
	Seed    uint64   `toml:"seed"`
	Formats []string `toml:"formats"`
	Output  string   `toml:"output"`
	Arc     Arc      `toml:"arc"`
}

// Arc holds arc geometry overrides.
type Arc struct {
	Growth float64 `toml:"growth"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas:  pipeline.DefaultCanvas,
		Formats: []string{pipeline.FormatPNG},
		Output:  pipeline.DefaultOutput,
		Arc:     Arc{Growth: layout.DefaultGrowth},
	}
}

// Load reads path on top of [Default] and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, ok := styles.Canvases[c.Canvas]; !ok {
		names := make([]string, 0, len(styles.Canvases))
		for name := range styles.Canvases {
			names = append(names, name)
		}
		slices.Sort(names)
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown canvas %q (must be one of: %s)", c.Canvas, strings.Join(names, ", "))
	}
	if len(c.Formats) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "formats must not be empty")
	}
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return err
	}
	if c.Output == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "output must not be empty")
	}
	if c.Arc.Growth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "arc.growth must be positive, got %v", c.Arc.Growth)
	}
	return nil
}
