package layout

import (
	"math"
	"slices"

	"github.com/matzehuels/rollcall/pkg/errors"
	"github.com/matzehuels/rollcall/pkg/render/chamber/styles"
	"github.com/matzehuels/rollcall/pkg/vote"
)

// Rendering constants for the standard canvas.
const (
	DefaultSlices   = 44
	DefaultPerSlice = 10

	// DefaultDiameter and DefaultGrowth give 12px between rings.
	DefaultDiameter = 3.0
	DefaultGrowth   = 4.0
)

// Option configures slice placement.
type Option func(*config)

type config struct {
	diameter float64
	growth   float64
	palette  styles.Palette
}

// WithDiameter sets the point diameter used for ring spacing.
func WithDiameter(d float64) Option { return func(c *config) { c.diameter = d } }

// WithGrowth sets the ring spacing multiplier applied to the diameter.
func WithGrowth(g float64) Option { return func(c *config) { c.growth = g } }

// WithPalette sets the marker colours.
func WithPalette(p styles.Palette) Option { return func(c *config) { c.palette = p } }

func newConfig(opts []Option) config {
	c := config{diameter: DefaultDiameter, growth: DefaultGrowth}
	for _, opt := range opts {
		opt(&c)
	}
	if c.palette == nil {
		c.palette = styles.DefaultPalette()
	}
	return c
}

// SliceAngle returns the ray angle of slice i out of n, spreading the slices
// evenly from 0 to π inclusive.
func SliceAngle(n, i int) float64 {
	return math.Pi / float64(n-1) * float64(i)
}

// PlaceSlice lays records out along the ray of slice sliceIndex. The k-th
// record sits at baseRadius + k × diameter × growth from centroid; positions
// are truncated to whole pixels. Points come back in reverse placement order
// so the outermost marker is drawn first.
func PlaceSlice(totalSlices, sliceIndex int, records []vote.Record, baseRadius float64, centroid Vec, opts ...Option) ([]Point, error) {
	if totalSlices < 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "arc needs at least 2 slices, got %d", totalSlices)
	}
	if sliceIndex < 0 || sliceIndex >= totalSlices {
		return nil, errors.New(errors.ErrCodeInvalidInput, "slice %d out of range [0, %d)", sliceIndex, totalSlices)
	}
	cfg := newConfig(opts)

	angle := SliceAngle(totalSlices, sliceIndex)
	cos, sin := math.Cos(angle), math.Sin(angle)
	step := cfg.diameter * cfg.growth

	points := make([]Point, 0, len(records))
	for k, r := range records {
		c, filled, err := cfg.palette.ColorFor(r)
		if err != nil {
			return nil, err
		}
		radius := baseRadius + float64(k)*step
		points = append(points, Point{
			X:        math.Trunc(centroid.X + radius*cos),
			Y:        math.Trunc(centroid.Y + radius*sin),
			Angle:    angle,
			Color:    c,
			Filled:   filled,
			Diameter: cfg.diameter,
			Record:   r,
		})
	}
	slices.Reverse(points)
	return points, nil
}

// Layout is a full arc: one point slice per ray, in slice order.
type Layout struct {
	Slices [][]Point

	// Overflow counts records that did not fit on the arc.
	Overflow int
}

// Points returns all points in draw order.
func (l Layout) Points() []Point {
	return slices.Concat(l.Slices...)
}

// Chunk splits records into count consecutive groups of at most size,
// returning how many records were left over. Short input yields short or
// empty trailing groups.
func Chunk(records []vote.Record, size, count int) ([][]vote.Record, int) {
	chunks := make([][]vote.Record, count)
	rest := records
	for i := range chunks {
		n := min(size, len(rest))
		chunks[i] = rest[:n:n]
		rest = rest[n:]
	}
	return chunks, len(rest)
}

// Build lays out ordered records on the canvas arc, filling slices left to
// right with canvas.PerSlice records each. Diameter and growth come from the
// canvas unless overridden by opts.
func Build(records []vote.Record, canvas styles.Canvas, opts ...Option) (Layout, error) {
	base := []Option{WithDiameter(canvas.PointDiameter), WithGrowth(canvas.Growth)}
	opts = append(base, opts...)

	centroid := Vec{X: canvas.CentroidX, Y: canvas.CentroidY}
	chunks, overflow := Chunk(records, canvas.PerSlice, canvas.Slices)

	l := Layout{Slices: make([][]Point, len(chunks)), Overflow: overflow}
	for i, chunk := range chunks {
		points, err := PlaceSlice(canvas.Slices, i, chunk, canvas.BaseRadius, centroid, opts...)
		if err != nil {
			return Layout{}, err
		}
		l.Slices[i] = points
	}
	return l, nil
}
