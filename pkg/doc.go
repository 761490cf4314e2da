// Package pkg provides the core libraries for rollcall chamber charts.
//
// # Overview
//
// Rollcall turns a congressional roll-call vote into a single image: the
// title, a progress bar showing Yea support against the passage threshold, a
// status badge, the tally, and a hemicycle of seats coloured by party and
// filled when the member voted Yea.
//
// # Architecture
//
// The data flow through rollcall:
//
//	vote JSON
//	    ↓
//	[io] (decode and validate into a [vote] Set)
//	    ↓
//	[render/chamber/ordering] (party blocks, shuffled within each block)
//	    ↓
//	[render/chamber/layout] (44 arc slices, 10 points each)
//	    ↓
//	[render/chamber/scene] (compose title, bar, badge, tally and markers)
//	    ↓
//	[render/chamber/sink] (PNG raster or JSON draw-list)
//
// [pipeline] runs these stages with logging, [observability] hooks and an
// optional [cache] of rendered artifacts.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "h3-115.2017.json",
//	    Seed:    7,
//	    Formats: []string{pipeline.FormatPNG},
//	})
//	png := res.Artifacts[pipeline.FormatPNG]
//
// # Supporting Packages
//
// [errors] - Coded errors shared by every stage.
//
// [config] - Optional TOML configuration for the CLI.
//
// [fonts] - The embedded Go Bold face used for text.
//
// [buildinfo] - Version information injected at build time.
//
// [io]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/io
// [vote]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/vote
// [render/chamber/ordering]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/render/chamber/ordering
// [render/chamber/layout]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/render/chamber/layout
// [render/chamber/scene]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/render/chamber/scene
// [render/chamber/sink]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/render/chamber/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/observability
// [cache]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/errors
// [config]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/config
// [fonts]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/fonts
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/rollcall/pkg/buildinfo
package pkg
