package sink

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/matzehuels/rollcall/pkg/errors"
	"github.com/matzehuels/rollcall/pkg/fonts"
	"github.com/matzehuels/rollcall/pkg/render/chamber/layout"
	"github.com/matzehuels/rollcall/pkg/render/chamber/scene"
	"github.com/matzehuels/rollcall/pkg/vote"
)

// PNGSurface is a raster [scene.Surface] backed by a gg context.
type PNGSurface struct {
	dc *gg.Context
}

var _ scene.Surface = (*PNGSurface)(nil)

// NewPNGSurface returns a width×height surface cleared to background.
func NewPNGSurface(width, height int, background color.Color) *PNGSurface {
	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()
	return &PNGSurface{dc: dc}
}

func (s *PNGSurface) Size() (int, int) { return s.dc.Width(), s.dc.Height() }

func (s *PNGSurface) FillRect(x, y, w, h float64, c color.RGBA) {
	s.dc.DrawRectangle(x, y, w, h)
	s.fill(c)
}

func (s *PNGSurface) FillEllipse(cx, cy, rx, ry float64, c color.RGBA) {
	s.dc.DrawEllipse(cx, cy, rx, ry)
	s.fill(c)
}

func (s *PNGSurface) FillPolygon(points []layout.Vec, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.fill(c)
}

func (s *PNGSurface) fill(c color.RGBA) {
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *PNGSurface) DrawText(t scene.Text) error {
	face, err := fonts.Face(t.Size)
	if err != nil {
		return err
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(t.Color)

	x, ax := t.X, 0.0
	switch t.Align {
	case scene.AlignCenter:
		x, ax = t.X+t.W/2, 0.5
	case scene.AlignRight:
		x, ax = t.X+t.W, 1
	}
	s.dc.DrawStringAnchored(t.Value, x, t.Y, ax, 1)
	return nil
}

// Blit paints the marker square on its own image, rotates it against a
// transparent background and draws the result at (x, y). Edge pixels keep the
// fill colour with partial alpha, so they blend into whatever lies beneath.
func (s *PNGSurface) Blit(sp scene.Sprite, x, y float64) error {
	if sp.Size <= 0 {
		return errors.New(errors.ErrCodeRender, "marker size must be positive, got %d", sp.Size)
	}
	square := image.NewNRGBA(image.Rect(0, 0, sp.Size, sp.Size))
	draw.Draw(square, square.Bounds(), image.NewUniform(sp.Fill), image.Point{}, draw.Src)

	rotated := imaging.Rotate(square, sp.Rotate, color.Transparent)
	s.dc.DrawImage(rotated, int(x), int(y))
	return nil
}

// Image returns the current raster.
func (s *PNGSurface) Image() image.Image { return s.dc.Image() }

// EncodePNG serializes the raster.
func (s *PNGSurface) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode png")
	}
	return buf.Bytes(), nil
}

// RenderPNG composes the vote on a fresh surface sized to the composer's
// canvas and returns the encoded PNG.
func RenderPNG(c *scene.Composer, passed bool, records []vote.Record, threshold int) ([]byte, error) {
	s := NewPNGSurface(c.Canvas.Width, c.Canvas.Height, c.Theme.Background)
	if _, err := c.Compose(s, passed, records, threshold); err != nil {
		return nil, err
	}
	return s.EncodePNG()
}
