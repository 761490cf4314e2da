// Package render groups the visualizations rollcall can draw.
//
// # Chamber Charts
//
// The chamber subpackages render a roll-call vote as a hemicycle of seats
// beneath a pass/fail progress bar. Each stage is a separate package:
//
//   - [chamber/ordering]: Arrange ballots into party blocks
//   - [chamber/layout]: Place ballots on concentric arc slices
//   - [chamber/styles]: Canvas presets, theme colours and the party palette
//   - [chamber/scene]: Compose the chart onto a drawing surface
//   - [chamber/sink]: Drawing surfaces (PNG raster, JSON draw-list)
//
// A typical render:
//
//	records := ordering.NewPartyBlocks(seed).Order(set.Records)
//	c := scene.New(styles.Standard)
//	png, err := sink.RenderPNG(c, set.Passed, records, set.Threshold)
//
// [chamber/ordering]: github.com/matzehuels/rollcall/pkg/render/chamber/ordering
// [chamber/layout]: github.com/matzehuels/rollcall/pkg/render/chamber/layout
// [chamber/styles]: github.com/matzehuels/rollcall/pkg/render/chamber/styles
// [chamber/scene]: github.com/matzehuels/rollcall/pkg/render/chamber/scene
// [chamber/sink]: github.com/matzehuels/rollcall/pkg/render/chamber/sink
package render
