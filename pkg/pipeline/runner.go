package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rollcall/pkg/cache"
	"github.com/matzehuels/rollcall/pkg/observability"
)

// Runner executes the pipeline with artifact caching.
//
// The Runner holds no per-run state; one Runner may serve concurrent runs
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses [cache.DefaultKeyer] and a nil logger uses the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs parse → order → render. Any stage error aborts the run; no
// partial artifacts are returned.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	logger := opts.Logger
	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	hooks.OnParseStart(ctx, opts.Input)
	data, err := Load(opts)
	if err != nil {
		hooks.OnParseComplete(ctx, "", 0, time.Since(parseStart), err)
		return nil, err
	}
	set, err := Parse(data)
	result.Stats.ParseTime = time.Since(parseStart)
	if err != nil {
		hooks.OnParseComplete(ctx, "", 0, result.Stats.ParseTime, err)
		return nil, err
	}
	hooks.OnParseComplete(ctx, set.ID, set.Total(), result.Stats.ParseTime, nil)
	result.Set = set
	result.Stats.Records = set.Total()
	result.Stats.Vacancies = set.Vacancies

	logger.Debug("parsed vote",
		"vote", set.ID,
		"chamber", set.Chamber,
		"records", set.Total(),
		"passed", set.Passed,
		"threshold", set.Threshold,
		"duration", result.Stats.ParseTime)
	if set.Vacancies > 0 {
		logger.Debug("skipped vacant seats", "vote", set.ID, "vacancies", set.Vacancies)
	}

	// Stage 2: Order
	canvas := opts.CanvasPreset()
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, canvas.Name, set.Total())
	result.Ordered, result.Overflow = Order(set, opts.NewOrderer(), canvas.Capacity())
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, canvas.Name, result.Overflow, result.Stats.LayoutTime, nil)

	if result.Overflow > 0 {
		logger.Warn("ballots beyond arc capacity are not drawn",
			"vote", set.ID,
			"capacity", canvas.Capacity(),
			"overflow", result.Overflow)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, hit, err := r.render(ctx, data, result, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = hit

	logger.Debug("rendered outputs",
		"vote", set.ID,
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// render serves all formats from the cache when every one is present and
// otherwise renders and stores them.
func (r *Runner) render(ctx context.Context, data []byte, res *Result, opts Options) (map[string][]byte, bool, error) {
	if !opts.Cacheable() {
		artifacts, err := Render(res.Set, res.Ordered, opts)
		return artifacts, false, err
	}

	hooks := observability.Cache()
	inputHash := cache.Hash(data)
	keys := make(map[string]string, len(opts.Formats))
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		keys[format] = r.Keyer.ArtifactKey(inputHash, cache.ArtifactKeyOpts{
			Format: format,
			Canvas: opts.Canvas,
			Seed:   opts.Seed,
			Growth: opts.Growth,
		})
		if cached, hit, err := r.Cache.Get(ctx, keys[format]); err == nil && hit {
			hooks.OnCacheHit(ctx, format)
			artifacts[format] = cached
		} else {
			hooks.OnCacheMiss(ctx, format)
		}
	}
	if len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	rendered, err := Render(res.Set, res.Ordered, opts)
	if err != nil {
		return nil, false, err
	}
	for format, out := range rendered {
		if err := r.Cache.Set(ctx, keys[format], out, cache.TTLArtifact); err != nil {
			opts.Logger.Debug("cache write failed", "format", format, "error", err)
			continue
		}
		hooks.OnCacheSet(ctx, format, len(out))
	}
	return rendered, false, nil
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on opts if none is set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
