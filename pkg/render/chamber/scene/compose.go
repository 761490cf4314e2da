package scene

import (
	"fmt"
	"math"

	"github.com/matzehuels/rollcall/pkg/errors"
	"github.com/matzehuels/rollcall/pkg/render/chamber/layout"
	"github.com/matzehuels/rollcall/pkg/render/chamber/styles"
	"github.com/matzehuels/rollcall/pkg/vote"
)

// Titles drawn at the top of the graphic.
const (
	TitlePassed = "VOTE PASSED"
	TitleFailed = "VOTE FAILED"
)

// Composer draws the vote graphic onto a [Surface].
type Composer struct {
	Canvas styles.Canvas
	Theme  styles.Theme

	// Layout options applied after the canvas defaults, e.g. a growth
	// override from the config file.
	Layout []layout.Option
}

// New returns a composer for canvas with the default theme.
func New(canvas styles.Canvas, opts ...layout.Option) *Composer {
	return &Composer{Canvas: canvas, Theme: styles.DefaultTheme(), Layout: opts}
}

// Compose draws, in order: the title, the progress bar with its threshold
// divider and status badge, the tally label and the arc markers. records
// must already be ordered. The returned layout reports any records that did
// not fit on the arc.
//
// The surface must match the canvas size. Any surface error aborts
// composition; the surface is left partially drawn and should be discarded.
func (c *Composer) Compose(s Surface, passed bool, records []vote.Record, threshold int) (layout.Layout, error) {
	cv, th := c.Canvas, c.Theme
	if w, h := s.Size(); w != cv.Width || h != cv.Height {
		return layout.Layout{}, errors.New(errors.ErrCodeRender,
			"surface is %dx%d, %s canvas needs %dx%d", w, h, cv.Name, cv.Width, cv.Height)
	}
	width := float64(cv.Width)
	yea, other := vote.Tally(records)
	total := yea + other

	title := TitleFailed
	if passed {
		title = TitlePassed
	}
	if err := s.DrawText(Text{
		Value: title, Size: cv.TitleSize, Color: th.Text,
		X: 0, Y: cv.TitleTop, W: width, H: float64(cv.Height),
		Align: AlignCenter,
	}); err != nil {
		return layout.Layout{}, err
	}

	barHeight := cv.BarBottom - cv.BarTop
	fillRoundedRect(s, 0, cv.BarTop, width, barHeight, cv.BarRadius, th.BarBackground)

	var fill float64
	if total > 0 {
		fill = float64(yea) / float64(total) * width
	}
	fillColor := th.FailedFill
	if passed {
		fillColor = th.PassedFill
	}
	fillRoundedRect(s, 0, cv.BarTop, fill, barHeight, cv.BarRadius, fillColor)

	if total > 0 {
		x := float64(threshold) / float64(total) * width
		s.FillRect(x, cv.DividerTop, 1, cv.DividerHeight, th.Divider)
	}

	c.drawBadge(s, BadgeX(fill, width, cv.BadgeSize), passed)

	if err := s.DrawText(Text{
		Value: fmt.Sprintf("%d - %d", yea, other), Size: cv.TallySize, Color: th.Text,
		X: 0, Y: cv.TallyTop, W: width, H: cv.TallySize * 2,
		Align: AlignCenter,
	}); err != nil {
		return layout.Layout{}, err
	}

	opts := append([]layout.Option{layout.WithPalette(th.Palette)}, c.Layout...)
	l, err := layout.Build(records, cv, opts...)
	if err != nil {
		return layout.Layout{}, err
	}
	for _, p := range l.Points() {
		sprite := Sprite{
			Size:   cv.MarkerSize,
			Fill:   p.Color,
			Rotate: RotationDegrees(p.Angle),
		}
		if err := s.Blit(sprite, p.X+cv.PadX, p.Y+cv.PadY); err != nil {
			return layout.Layout{}, err
		}
	}
	return l, nil
}

// RotationDegrees converts a placement angle in radians to the marker's
// counter-clockwise rotation: 360° minus the angle in degrees. A rotation
// that truncates to exactly 360° is drawn as 90°, which is the same square.
func RotationDegrees(angle float64) float64 {
	deg := 360 - angle*180/math.Pi
	if int(deg) == 360 {
		return 90
	}
	return deg
}

// BadgeX returns the left edge of the status badge: it trails the leading
// edge of the fill by half its size and is clamped to the canvas.
func BadgeX(fill, width, size float64) float64 {
	half := math.Floor(size / 2)
	x := fill - half
	if x >= width-half {
		x = width - 2*half
	}
	if x < 0 {
		x = 0
	}
	return x
}

// Badge glyphs in unit-square coordinates.
var (
	checkGlyph = []layout.Vec{
		{X: 0.22, Y: 0.52}, {X: 0.32, Y: 0.42}, {X: 0.44, Y: 0.54},
		{X: 0.68, Y: 0.30}, {X: 0.78, Y: 0.40}, {X: 0.44, Y: 0.74},
	}
	crossGlyph = []layout.Vec{
		{X: 0.30, Y: 0.22}, {X: 0.50, Y: 0.42}, {X: 0.70, Y: 0.22},
		{X: 0.78, Y: 0.30}, {X: 0.58, Y: 0.50}, {X: 0.78, Y: 0.70},
		{X: 0.70, Y: 0.78}, {X: 0.50, Y: 0.58}, {X: 0.30, Y: 0.78},
		{X: 0.22, Y: 0.70}, {X: 0.42, Y: 0.50}, {X: 0.22, Y: 0.30},
	}
)

func (c *Composer) drawBadge(s Surface, x float64, passed bool) {
	size, top := c.Canvas.BadgeSize, c.Canvas.BadgeTop
	accent, glyph := c.Theme.FailedAccent, crossGlyph
	if passed {
		accent, glyph = c.Theme.PassedAccent, checkGlyph
	}
	s.FillEllipse(x+size/2, top+size/2, size/2, size/2, accent)

	points := make([]layout.Vec, len(glyph))
	for i, g := range glyph {
		points[i] = layout.Vec{X: x + g.X*size, Y: top + g.Y*size}
	}
	s.FillPolygon(points, c.Theme.Background)
}
