// Package layout places ordered ballots on a half-circle arc.
//
// # Geometry
//
// The arc is split into n rays (slices) spread evenly from 0 to π. Slice i
// sits at angle π/(n−1)·i, and every record in it shares that angle; records
// step outward from the base radius by diameter × growth each:
//
//	r(k) = baseRadius + k · diameter · growth
//	p(k) = centroid + r(k) · (cos θ, sin θ)
//
// With the standard constants (44 slices of 10, base radius 150, diameter 3,
// growth 4) rings are 12px apart and the arc holds 440 markers.
//
// # Colour
//
// Each point takes its colour and fill from the palette in
// [github.com/matzehuels/rollcall/pkg/render/chamber/styles]: a Yea ballot
// gets its party's solid colour, anything else the pale one.
//
// # Building a Layout
//
// [PlaceSlice] handles one ray; [Build] chunks an ordered sequence across the
// whole canvas arc:
//
//	l, err := layout.Build(ordered, styles.Standard)
//	for _, p := range l.Points() {
//	    // draw p
//	}
//
// Records beyond the arc's capacity are counted in [Layout.Overflow] rather
// than placed.
package layout
