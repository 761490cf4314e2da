package sink

import (
	"encoding/json"
	"image/color"

	"github.com/matzehuels/rollcall/pkg/errors"
	"github.com/matzehuels/rollcall/pkg/render/chamber/layout"
	"github.com/matzehuels/rollcall/pkg/render/chamber/scene"
	"github.com/matzehuels/rollcall/pkg/render/chamber/styles"
	"github.com/matzehuels/rollcall/pkg/vote"
)

// Draw-list operation kinds.
const (
	OpRect    = "rect"
	OpEllipse = "ellipse"
	OpPolygon = "polygon"
	OpText    = "text"
	OpSprite  = "sprite"
)

// Op is one recorded draw operation. Fields that do not apply to the
// operation kind are omitted from the JSON form.
type Op struct {
	Op     string       `json:"op"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	W      float64      `json:"w,omitempty"`
	H      float64      `json:"h,omitempty"`
	RX     float64      `json:"rx,omitempty"`
	RY     float64      `json:"ry,omitempty"`
	Points [][2]float64 `json:"points,omitempty"`
	Color  string       `json:"color"`
	Text   string       `json:"text,omitempty"`
	Size   float64      `json:"size,omitempty"`
	Align  string       `json:"align,omitempty"`
	Rotate float64      `json:"rotate,omitempty"`
}

// Recorder is a [scene.Surface] that keeps the operations instead of
// rasterizing them.
type Recorder struct {
	width, height int
	Ops           []Op
}

var _ scene.Surface = (*Recorder)(nil)

// NewRecorder returns an empty recorder for a width×height canvas.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Op: OpRect, X: x, Y: y, W: w, H: h, Color: styles.Hex(c)})
}

func (r *Recorder) FillEllipse(cx, cy, rx, ry float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Op: OpEllipse, X: cx, Y: cy, RX: rx, RY: ry, Color: styles.Hex(c)})
}

func (r *Recorder) FillPolygon(points []layout.Vec, c color.RGBA) {
	pts := make([][2]float64, len(points))
	for i, p := range points {
		pts[i] = [2]float64{p.X, p.Y}
	}
	r.Ops = append(r.Ops, Op{Op: OpPolygon, Points: pts, Color: styles.Hex(c)})
}

func (r *Recorder) DrawText(t scene.Text) error {
	r.Ops = append(r.Ops, Op{
		Op: OpText, X: t.X, Y: t.Y, W: t.W, H: t.H,
		Color: styles.Hex(t.Color), Text: t.Value, Size: t.Size, Align: t.Align.String(),
	})
	return nil
}

func (r *Recorder) Blit(s scene.Sprite, x, y float64) error {
	r.Ops = append(r.Ops, Op{
		Op: OpSprite, X: x, Y: y, W: float64(s.Size), H: float64(s.Size),
		Color: styles.Hex(s.Fill), Rotate: s.Rotate,
	})
	return nil
}

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	voteID string
	seed   uint64
}

// WithJSONVote records the vote id in the output.
func WithJSONVote(id string) JSONOption { return func(r *jsonRenderer) { r.voteID = id } }

// WithJSONSeed records the ordering seed. A non-zero seed reproduces the same
// draw-list. Seed 0 means the ballots were shuffled from the global source:
// nothing is recorded and the output cannot be reproduced.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

type jsonOutput struct {
	Vote      string `json:"vote,omitempty"`
	Canvas    string `json:"canvas"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Seed      uint64 `json:"seed,omitempty"`
	Passed    bool   `json:"passed"`
	Threshold int    `json:"threshold"`
	Yea       int    `json:"yea"`
	Other     int    `json:"other"`
	Overflow  int    `json:"overflow,omitempty"`
	Ops       []Op   `json:"ops"`
}

// RenderJSON composes the vote onto a [Recorder] and exports the draw-list
// as a pretty-printed JSON document.
func RenderJSON(c *scene.Composer, passed bool, records []vote.Record, threshold int, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	rec := NewRecorder(c.Canvas.Width, c.Canvas.Height)
	l, err := c.Compose(rec, passed, records, threshold)
	if err != nil {
		return nil, err
	}
	yea, other := vote.Tally(records)

	data, err := json.MarshalIndent(jsonOutput{
		Vote:      r.voteID,
		Canvas:    c.Canvas.Name,
		Width:     c.Canvas.Width,
		Height:    c.Canvas.Height,
		Seed:      r.seed,
		Passed:    passed,
		Threshold: threshold,
		Yea:       yea,
		Other:     other,
		Overflow:  l.Overflow,
		Ops:       rec.Ops,
	}, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode draw-list")
	}
	return data, nil
}
