// Package styles defines the colours and fixed geometry of a roll-call graphic.
//
// A [Palette] answers one question: what colour, and filled or not, is the
// marker for a ballot. It is total over {D, R, I} × {Yea, Nay, Present,
// Not Voting} and errors for anything else.
//
// A [Canvas] is one supported target configuration. [Standard] (540×500) is
// canonical; [Legacy] (250×250) keeps the same composition with halved
// offsets. A [Theme] carries the remaining colours (title text, progress bar,
// divider, status badge) and the palette.
package styles
