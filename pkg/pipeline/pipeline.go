// Package pipeline runs the parse → order → render pipeline for a roll-call
// vote.
//
// The CLI and tests share this package so every entry point validates,
// orders, caches and logs the same way.
//
// # Stages
//
//  1. Parse: decode the vote document into a [vote.Set].
//  2. Order: arrange the ballots into party blocks with a seeded shuffle.
//  3. Render: compose the graphic and serialize it in each requested format
//     (PNG, JSON draw-list).
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "h3-115.2017.json",
//	    Formats: []string{pipeline.FormatPNG},
//	    Seed:    42,
//	})
//	if err != nil {
//	    return err
//	}
//	png := result.Artifacts[pipeline.FormatPNG]
//
// With a non-zero seed the output is fully determined by the input, so
// artifacts are served from the runner's cache when present.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rollcall/pkg/errors"
	"github.com/matzehuels/rollcall/pkg/render/chamber/layout"
	"github.com/matzehuels/rollcall/pkg/render/chamber/ordering"
	"github.com/matzehuels/rollcall/pkg/render/chamber/styles"
	"github.com/matzehuels/rollcall/pkg/vote"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultCanvas is the canvas preset used when none is given.
	DefaultCanvas = styles.CanvasStandard

	// DefaultOutput is the directory the CLI writes artifacts to.
	DefaultOutput = "export"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options
// =============================================================================

// Options configures one pipeline run.
type Options struct {
	// Input is the path of the vote document. When Data is set, Input is
	// only used as a label in logs and hooks.
	Input string
	Data  []byte

	Canvas  string
	Seed    uint64  // 0 shuffles with a fresh seed
	Growth  float64 // 0 keeps the canvas ring spacing
	Formats []string

	Logger  *log.Logger
	Orderer ordering.Orderer // overrides the seeded party-block orderer

	validated bool
}

// Result holds the outputs of a pipeline run.
type Result struct {
	Set     *vote.Set
	Ordered []vote.Record

	// Overflow counts ballots beyond the arc capacity; they are not drawn.
	Overflow int

	// Artifacts holds rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds counts and stage timings.
type Stats struct {
	Records    int
	Vacancies  int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo reports whether the artifacts came from the cache.
type CacheInfo struct {
	RenderHit bool
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, json)", format)
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateCanvas checks that name is a canvas preset.
func ValidateCanvas(name string) error {
	if _, ok := styles.Canvases[name]; !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid canvas: %q (must be one of: standard, legacy)", name)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" && o.Data == nil {
		return errors.New(errors.ErrCodeInvalidInput, "input is required")
	}
	if o.Canvas == "" {
		o.Canvas = DefaultCanvas
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	o.Formats = dedupe(o.Formats)
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := ValidateCanvas(o.Canvas); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Growth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "growth must not be negative, got %v", o.Growth)
	}
	o.validated = true
	return nil
}

// CanvasPreset returns the selected canvas.
func (o *Options) CanvasPreset() styles.Canvas {
	return styles.Canvases[o.Canvas]
}

// LayoutOptions returns the arc overrides implied by the options.
func (o *Options) LayoutOptions() []layout.Option {
	if o.Growth > 0 {
		return []layout.Option{layout.WithGrowth(o.Growth)}
	}
	return nil
}

// NewOrderer returns the configured orderer: Orderer if set, otherwise a
// party-block orderer seeded with Seed, or auto-seeded when Seed is 0.
func (o *Options) NewOrderer() ordering.Orderer {
	switch {
	case o.Orderer != nil:
		return o.Orderer
	case o.Seed != 0:
		return ordering.NewPartyBlocks(o.Seed)
	}
	return &ordering.PartyBlocks{}
}

// Cacheable reports whether the run is reproducible and may use the cache.
func (o *Options) Cacheable() bool {
	return o.Seed != 0 && o.Orderer == nil
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}
