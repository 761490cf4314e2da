package scene

import (
	"image/color"

	"github.com/matzehuels/rollcall/pkg/render/chamber/layout"
)

// Align is the horizontal alignment of a text box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// Text is a single line of text drawn inside a box. The line is aligned
// horizontally by Align and hangs from the top edge of the box.
type Text struct {
	Value      string
	Size       float64 // points
	Color      color.RGBA
	X, Y, W, H float64
	Align      Align
}

// Sprite is a marker square drawn on its own small image, rotated, then
// composited onto the canvas. Corners uncovered by the rotation stay
// transparent.
type Sprite struct {
	Size   int
	Fill   color.RGBA
	Rotate float64 // degrees, counter-clockwise
}

// Surface is the drawing backend the composer issues operations against.
// Coordinates are canvas pixels with the origin at the top left.
type Surface interface {
	Size() (width, height int)
	FillRect(x, y, w, h float64, c color.RGBA)
	FillEllipse(cx, cy, rx, ry float64, c color.RGBA)
	FillPolygon(points []layout.Vec, c color.RGBA)
	DrawText(t Text) error

	// Blit draws s with its top-left corner at (x, y). The sprite's backing
	// image is released before Blit returns, including on error.
	Blit(s Sprite, x, y float64) error
}

// fillRoundedRect draws a rounded rectangle from two rectangles and four
// corner ellipses. Non-positive sizes draw nothing.
func fillRoundedRect(s Surface, x, y, w, h, r float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r = min(r, w/2, h/2)
	if r <= 0 {
		s.FillRect(x, y, w, h, c)
		return
	}
	s.FillRect(x+r, y, w-2*r, h, c)
	s.FillRect(x, y+r, w, h-2*r, c)
	for _, corner := range []layout.Vec{
		{X: x + r, Y: y + r},
		{X: x + w - r, Y: y + r},
		{X: x + r, Y: y + h - r},
		{X: x + w - r, Y: y + h - r},
	} {
		s.FillEllipse(corner.X, corner.Y, r, r, c)
	}
}
