// Package sink provides drawing surfaces that turn a composed vote graphic
// into output bytes.
//
// # Overview
//
// A sink implements [scene.Surface] and serializes what was drawn on it:
//
//   - PNG: [PNGSurface] rasterizes with gg, rotates marker sprites with
//     imaging and draws text in the embedded Go Bold font.
//   - JSON: [Recorder] keeps the draw operations, and [RenderJSON] exports
//     them as a draw-list for inspection and tests.
//
// Both render helpers take a [scene.Composer] and ordered records:
//
//	png, err := sink.RenderPNG(composer, set.Passed, ordered, set.Threshold)
//	doc, err := sink.RenderJSON(composer, set.Passed, ordered, set.Threshold,
//	    sink.WithJSONVote(set.ID),
//	)
//
// # Marker sprites
//
// Each marker is painted on its own small image, rotated counter-clockwise
// with the theme's key colour filling the exposed corners, and composited
// with every key pixel cleared. A failure on one marker aborts the render.
package sink
