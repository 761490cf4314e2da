// Package scene composes the roll-call graphic from ordered ballots.
//
// A [Composer] issues draw operations against a [Surface] in a fixed order:
//
//  1. Title: "VOTE PASSED" or "VOTE FAILED", centred at the top.
//  2. Progress bar: a rounded background, a rounded fill sized to the Yea
//     share of the canvas width, a one-pixel divider at the passage
//     threshold, and a status badge that follows the fill's leading edge.
//  3. Tally: "{yea} - {other}" centred below the bar.
//  4. Markers: the ordered ballots laid out on the arc by
//     [github.com/matzehuels/rollcall/pkg/render/chamber/layout], each
//     blitted as a small rotated square offset by the canvas padding.
//
// The package does no file I/O. Backends that turn a Surface into bytes live
// in [github.com/matzehuels/rollcall/pkg/render/chamber/sink].
package scene
