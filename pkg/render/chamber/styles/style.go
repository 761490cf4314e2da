package styles

import "image/color"

// Canvas is a fixed-size target configuration: canvas size plus every
// offset the composer needs. Values are in pixels unless noted.
type Canvas struct {
	Name          string
	Width, Height int

	TitleSize float64 // points
	TitleTop  float64

	BarTop, BarBottom float64
	BarRadius         float64

	DividerTop, DividerHeight float64

	BadgeTop  float64
	BadgeSize float64

	TallySize float64 // points
	TallyTop  float64

	// Arc geometry. The centroid is relative to the padding offset, so with a
	// zero centroid the arc is centred on (PadX, PadY).
	Slices, PerSlice     int
	BaseRadius           float64
	CentroidX, CentroidY float64
	PointDiameter        float64
	Growth               float64 // ring spacing = PointDiameter × Growth
	MarkerSize           int     // drawn square edge
	PadX, PadY           float64
}

// Capacity returns the number of markers the arc can hold.
func (c Canvas) Capacity() int { return c.Slices * c.PerSlice }

// Canvas preset names.
const (
	CanvasStandard = "standard"
	CanvasLegacy   = "legacy"
)

// Standard is the canonical 540×500 target.
var Standard = Canvas{
	Name:          CanvasStandard,
	Width:         540,
	Height:        500,
	TitleSize:     30,
	TitleTop:      0,
	BarTop:        52,
	BarBottom:     82,
	BarRadius:     5,
	DividerTop:    47,
	DividerHeight: 39,
	BadgeTop:      47,
	BadgeSize:     41,
	TallySize:     32,
	TallyTop:      125,
	Slices:        44,
	PerSlice:      10,
	BaseRadius:    150,
	PointDiameter: 3,
	Growth:        4,
	MarkerSize:    6,
	PadX:          540 / 2.05,
	PadY:          110,
}

// Legacy is the older 250×250 target with halved offsets.
var Legacy = Canvas{
	Name:          CanvasLegacy,
	Width:         250,
	Height:        250,
	TitleSize:     15,
	TitleTop:      0,
	BarTop:        26,
	BarBottom:     41,
	BarRadius:     3,
	DividerTop:    23,
	DividerHeight: 20,
	BadgeTop:      23,
	BadgeSize:     21,
	TallySize:     16,
	TallyTop:      62,
	Slices:        44,
	PerSlice:      10,
	BaseRadius:    70,
	PointDiameter: 1.25,
	Growth:        4,
	MarkerSize:    3,
	PadX:          250 / 2.05,
	PadY:          55,
}

// Canvases lists the presets by name.
var Canvases = map[string]Canvas{
	CanvasStandard: Standard,
	CanvasLegacy:   Legacy,
}

// Theme holds the non-party colours of the graphic.
type Theme struct {
	Background    color.RGBA
	Text          color.RGBA
	BarBackground color.RGBA
	PassedFill    color.RGBA
	FailedFill    color.RGBA
	Divider       color.RGBA
	PassedAccent  color.RGBA // badge ring and glyph
	FailedAccent  color.RGBA
	Palette       Palette
}

// DefaultTheme returns the standard colours.
func DefaultTheme() Theme {
	return Theme{
		Background:    rgb(0xFF, 0xFF, 0xFF),
		Text:          rgb(0x35, 0x35, 0x35),
		BarBackground: rgb(0xF8, 0xFA, 0xFC),
		PassedFill:    rgb(0xE8, 0xFB, 0xED),
		FailedFill:    rgb(0xFB, 0xE8, 0xED),
		Divider:       rgb(0x9C, 0xA3, 0xAF),
		PassedAccent:  rgb(0x2E, 0xB8, 0x72),
		FailedAccent:  rgb(0xE5, 0x48, 0x4D),
		Palette:       DefaultPalette(),
	}
}
