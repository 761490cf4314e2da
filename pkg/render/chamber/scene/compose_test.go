package scene

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/matzehuels/rollcall/pkg/errors"
	"github.com/matzehuels/rollcall/pkg/render/chamber/layout"
	"github.com/matzehuels/rollcall/pkg/render/chamber/styles"
	"github.com/matzehuels/rollcall/pkg/vote"
)

type op struct {
	kind       string
	x, y, w, h float64
	color      color.RGBA
	text       Text
	sprite     Sprite
	points     []layout.Vec
}

type recorder struct {
	width, height int
	ops           []op
	textErr       error
	blitErr       error
}

func (r *recorder) Size() (int, int) { return r.width, r.height }

func (r *recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "rect", x: x, y: y, w: w, h: h, color: c})
}

func (r *recorder) FillEllipse(cx, cy, rx, ry float64, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "ellipse", x: cx, y: cy, w: rx, h: ry, color: c})
}

func (r *recorder) FillPolygon(points []layout.Vec, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "polygon", points: points, color: c})
}

func (r *recorder) DrawText(t Text) error {
	r.ops = append(r.ops, op{kind: "text", text: t})
	return r.textErr
}

func (r *recorder) Blit(s Sprite, x, y float64) error {
	r.ops = append(r.ops, op{kind: "blit", x: x, y: y, sprite: s})
	return r.blitErr
}

func (r *recorder) filter(kind string) []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func (r *recorder) rectsColored(c color.RGBA) []op {
	var out []op
	for _, o := range r.filter("rect") {
		if o.color == c {
			out = append(out, o)
		}
	}
	return out
}

func ballots(yea, nay int) []vote.Record {
	var rs []vote.Record
	for i := range yea {
		rs = append(rs, vote.Record{ID: fmt.Sprintf("Y%d", i), Party: vote.Democrat, Value: vote.Yea})
	}
	for i := range nay {
		rs = append(rs, vote.Record{ID: fmt.Sprintf("N%d", i), Party: vote.Republican, Value: vote.Nay})
	}
	return rs
}

func TestComposePassed(t *testing.T) {
	c := New(styles.Standard)
	s := &recorder{width: 540, height: 500}

	l, err := c.Compose(s, true, ballots(3, 2), 3)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if l.Overflow != 0 || len(l.Points()) != 5 {
		t.Errorf("layout = %d points, overflow %d; want 5, 0", len(l.Points()), l.Overflow)
	}

	texts := s.filter("text")
	if len(texts) != 2 {
		t.Fatalf("got %d text ops, want 2", len(texts))
	}
	if got := texts[0].text; got.Value != TitlePassed || got.Size != 30 || got.Align != AlignCenter {
		t.Errorf("title = %+v", got)
	}
	if got := texts[1].text.Value; got != "3 - 2" {
		t.Errorf("tally = %q, want %q", got, "3 - 2")
	}
	if got := texts[1].text.Y; got != 125 {
		t.Errorf("tally top = %v, want 125", got)
	}

	// The fill is 60% of the width: 324px, inset by the corner radius.
	th := c.Theme
	fill := s.rectsColored(th.PassedFill)
	if len(fill) != 2 {
		t.Fatalf("got %d fill rects, want 2", len(fill))
	}
	if fill[0].x != 5 || fill[0].w != 314 || fill[1].w != 324 {
		t.Errorf("fill rects = %+v, %+v", fill[0], fill[1])
	}
	if len(s.rectsColored(th.FailedFill)) != 0 {
		t.Error("passed vote drew the failed fill")
	}

	div := s.rectsColored(th.Divider)
	if len(div) != 1 {
		t.Fatalf("got %d divider rects, want 1", len(div))
	}
	if d := div[0]; d.x != 324 || d.y != 47 || d.w != 1 || d.h != 39 {
		t.Errorf("divider = %+v", d)
	}

	var badge *op
	for _, o := range s.filter("ellipse") {
		if o.color == th.PassedAccent {
			badge = &o
		}
	}
	if badge == nil {
		t.Fatal("no passed badge drawn")
	}
	if badge.x != 304+20.5 || badge.y != 47+20.5 {
		t.Errorf("badge centre = (%v, %v), want (324.5, 67.5)", badge.x, badge.y)
	}
	if polys := s.filter("polygon"); len(polys) != 1 || len(polys[0].points) != len(checkGlyph) {
		t.Errorf("badge glyph = %+v, want check", polys)
	}

	blits := s.filter("blit")
	if len(blits) != 5 {
		t.Fatalf("got %d blits, want 5", len(blits))
	}
	for _, b := range blits {
		if b.sprite.Size != 6 {
			t.Errorf("sprite = %+v", b.sprite)
		}
	}
	// Slice 0 sits at angle 0, straight right of the padding origin; its
	// innermost marker is drawn last.
	if b := blits[4]; b.x != styles.Standard.PadX+150 || b.y != 110 || b.sprite.Rotate != 90 {
		t.Errorf("first marker at (%v, %v) rot %v", b.x, b.y, b.sprite.Rotate)
	}
}

func TestComposeOrder(t *testing.T) {
	s := &recorder{width: 540, height: 500}
	if _, err := New(styles.Standard).Compose(s, false, ballots(1, 1), 1); err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	if s.ops[0].kind != "text" {
		t.Errorf("first op = %s, want title text", s.ops[0].kind)
	}
	tally := -1
	for i, o := range s.ops {
		if o.kind == "text" && i > 0 {
			tally = i
		}
		if o.kind == "blit" && tally < 0 {
			t.Fatalf("marker at op %d drawn before tally", i)
		}
	}
	for _, o := range s.ops[tally+1:] {
		if o.kind != "blit" {
			t.Errorf("op %s after markers started", o.kind)
		}
	}
}

func TestComposeFailed(t *testing.T) {
	c := New(styles.Standard)
	s := &recorder{width: 540, height: 500}
	if _, err := c.Compose(s, false, ballots(1, 4), 3); err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if got := s.filter("text")[0].text.Value; got != TitleFailed {
		t.Errorf("title = %q, want %q", got, TitleFailed)
	}
	if len(s.rectsColored(c.Theme.FailedFill)) == 0 {
		t.Error("failed vote drew no failed fill")
	}
	if polys := s.filter("polygon"); len(polys) != 1 || len(polys[0].points) != len(crossGlyph) {
		t.Errorf("badge glyph = %+v, want cross", polys)
	}
}

func TestComposeEmpty(t *testing.T) {
	c := New(styles.Standard)
	s := &recorder{width: 540, height: 500}
	l, err := c.Compose(s, false, nil, 0)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if len(l.Points()) != 0 {
		t.Errorf("placed %d points", len(l.Points()))
	}
	if got := s.filter("text")[1].text.Value; got != "0 - 0" {
		t.Errorf("tally = %q, want %q", got, "0 - 0")
	}
	if n := len(s.rectsColored(c.Theme.Divider)); n != 0 {
		t.Errorf("drew %d dividers for an empty vote", n)
	}
	if n := len(s.rectsColored(c.Theme.FailedFill)); n != 0 {
		t.Errorf("drew %d fill rects for an empty vote", n)
	}
	if n := len(s.filter("blit")); n != 0 {
		t.Errorf("drew %d markers for an empty vote", n)
	}
	for _, o := range s.filter("ellipse") {
		if o.color == c.Theme.FailedAccent && o.x != 20.5 {
			t.Errorf("badge centre x = %v, want 20.5", o.x)
		}
	}
}

func TestComposeLegacy(t *testing.T) {
	s := &recorder{width: 250, height: 250}
	if _, err := New(styles.Legacy).Compose(s, true, ballots(2, 2), 2); err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if got := s.filter("text")[0].text.Size; got != 15 {
		t.Errorf("title size = %v, want 15", got)
	}
	if b := s.filter("blit"); len(b) != 4 || b[0].sprite.Size != 3 {
		t.Errorf("legacy markers = %+v", b)
	}
}

func TestComposeErrors(t *testing.T) {
	renderErr := errors.New(errors.ErrCodeRender, "no font")

	s := &recorder{width: 540, height: 500, textErr: renderErr}
	if _, err := New(styles.Standard).Compose(s, true, ballots(1, 0), 1); !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("text failure = %v, want %v", err, errors.ErrCodeRender)
	}
	if len(s.ops) != 1 {
		t.Errorf("drew %d ops after a failed title", len(s.ops))
	}

	s = &recorder{width: 540, height: 500, blitErr: renderErr}
	if _, err := New(styles.Standard).Compose(s, true, ballots(3, 0), 1); !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("blit failure = %v, want %v", err, errors.ErrCodeRender)
	}
	if n := len(s.filter("blit")); n != 1 {
		t.Errorf("blitted %d markers, want abort after the first", n)
	}

	bad := []vote.Record{{ID: "Z9", Party: "G", Value: vote.Yea}}
	if _, err := New(styles.Standard).Compose(&recorder{width: 540, height: 500}, true, bad, 1); !errors.Is(err, errors.ErrCodeInvalidParty) {
		t.Errorf("bad party = %v, want %v", err, errors.ErrCodeInvalidParty)
	}
}

func TestComposeSurfaceSize(t *testing.T) {
	tests := []struct {
		name          string
		canvas        styles.Canvas
		width, height int
		wantErr       bool
	}{
		{"standard", styles.Standard, 540, 500, false},
		{"legacy", styles.Legacy, 250, 250, false},
		{"legacy surface for standard canvas", styles.Standard, 250, 250, true},
		{"height mismatch", styles.Standard, 540, 250, true},
		{"empty surface", styles.Legacy, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &recorder{width: tt.width, height: tt.height}
			_, err := New(tt.canvas).Compose(s, true, ballots(2, 1), 2)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeRender) {
					t.Fatalf("Compose() error = %v, want %v", err, errors.ErrCodeRender)
				}
				if len(s.ops) != 0 {
					t.Errorf("drew %d ops on a mismatched surface", len(s.ops))
				}
				return
			}
			if err != nil {
				t.Errorf("Compose() error: %v", err)
			}
		})
	}
}

func TestComposeLayoutOptions(t *testing.T) {
	s := &recorder{width: 540, height: 500}
	c := New(styles.Standard, layout.WithGrowth(2))
	if _, err := c.Compose(s, true, ballots(2, 0), 1); err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	b := s.filter("blit")
	// Reverse placement: the outer ring (k=1) is drawn first, 6px out.
	if d := b[0].x - b[1].x; math.Abs(d-6) > 1e-9 {
		t.Errorf("ring spacing = %v, want 6", d)
	}
}

func TestRotationDegrees(t *testing.T) {
	tests := []struct {
		angle float64
		want  float64
	}{
		{0, 90},
		{math.Pi / 2, 270},
		{math.Pi, 180},
		{math.Pi / 4, 315},
	}
	for _, tt := range tests {
		if got := RotationDegrees(tt.angle); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RotationDegrees(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestBadgeX(t *testing.T) {
	tests := []struct {
		fill, width, size float64
		want              float64
	}{
		{324, 540, 41, 304},
		{0, 540, 41, 0},
		{10, 540, 41, 0},
		{530, 540, 41, 510},
		{540, 540, 41, 500},
		{250, 250, 21, 230},
		{100, 250, 21, 90},
	}
	for _, tt := range tests {
		if got := BadgeX(tt.fill, tt.width, tt.size); got != tt.want {
			t.Errorf("BadgeX(%v, %v, %v) = %v, want %v", tt.fill, tt.width, tt.size, got, tt.want)
		}
	}
}

func TestFillRoundedRect(t *testing.T) {
	s := &recorder{}
	c := color.RGBA{A: 0xff}

	fillRoundedRect(s, 0, 0, 0, 10, 5, c)
	if len(s.ops) != 0 {
		t.Errorf("zero width drew %d ops", len(s.ops))
	}

	fillRoundedRect(s, 10, 20, 100, 30, 5, c)
	if len(s.filter("rect")) != 2 || len(s.filter("ellipse")) != 4 {
		t.Fatalf("ops = %+v", s.ops)
	}

	// A fill narrower than two radii clamps the radius.
	s = &recorder{}
	fillRoundedRect(s, 0, 0, 4, 30, 5, c)
	for _, e := range s.filter("ellipse") {
		if e.w != 2 {
			t.Errorf("corner radius = %v, want 2", e.w)
		}
	}
}
