package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rollcall/pkg/config"
	rcio "github.com/matzehuels/rollcall/pkg/io"
	"github.com/matzehuels/rollcall/pkg/pipeline"
)

// renderOpts holds the render command's flag values.
type renderOpts struct {
	output  string
	formats string
	canvas  string
	seed    uint64
	growth  float64
	config  string
	noCache bool
}

// renderCommand creates the render command for drawing a vote file.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a roll-call vote as a chamber chart",
		Long: `Render a roll-call vote JSON file as a chamber chart.

Artifacts are written to <output>/<vote_id>.<format>. Seats are shuffled
within party blocks; pass --seed for a reproducible arrangement.`,
		Example: `  rollcall render h3-115.2017.json
  rollcall render h3-115.2017.json -f png,json -o charts --seed 7
  rollcall render s12-116.2019.json --canvas legacy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], cfg, opts.noCache)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", pipeline.DefaultOutput, "output directory")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.FormatPNG, "output formats: png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.canvas, "canvas", pipeline.DefaultCanvas, "canvas preset: standard, legacy")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "shuffle seed (0 picks a fresh seed every run)")
	cmd.Flags().Float64Var(&opts.growth, "growth", 0, "ring spacing multiplier applied to the point diameter")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML config file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// resolveConfig loads the config file, if any, and overlays explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts renderOpts) (config.Config, error) {
	cfg := config.Default()
	if opts.config != "" {
		loaded, err := config.Load(opts.config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("format") {
		cfg.Formats = parseFormats(opts.formats)
	}
	if flags.Changed("canvas") {
		cfg.Canvas = opts.canvas
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("growth") {
		cfg.Arc.Growth = opts.growth
	}
	return cfg, cfg.Validate()
}

// runRender executes the pipeline for input and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, cfg config.Config, noCache bool) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		Input:   input,
		Canvas:  cfg.Canvas,
		Seed:    cfg.Seed,
		Growth:  cfg.Arc.Growth,
		Formats: cfg.Formats,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(cfg.Output, res, cfg.Formats)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", res.Set.ID))

	printSuccess("Rendered %s", res.Set.ID)
	printStats(res.Stats.Records, res.Overflow, res.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	if res.Overflow > 0 {
		printWarning("%d ballots did not fit the chart", res.Overflow)
	}
	return nil
}

// writeArtifacts writes res's artifacts under dir in the order formats lists them.
func writeArtifacts(dir string, res *pipeline.Result, formats []string) ([]string, error) {
	var paths []string
	written := make(map[string]bool, len(formats))
	for _, f := range formats {
		data, ok := res.Artifacts[f]
		if !ok || written[f] {
			continue
		}
		path, err := rcio.OutputPath(dir, res.Set.ID, f)
		if err != nil {
			return nil, err
		}
		if err := rcio.WriteArtifact(path, data); err != nil {
			return nil, err
		}
		written[f] = true
		paths = append(paths, path)
	}
	return paths, nil
}
