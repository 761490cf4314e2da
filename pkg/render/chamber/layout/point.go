package layout

import (
	"image/color"

	"github.com/matzehuels/rollcall/pkg/vote"
)

// Vec is a 2D offset in canvas pixels.
type Vec struct{ X, Y float64 }

// Point is one placed, coloured marker. Points are created per render and
// own nothing.
type Point struct {
	X, Y     float64 // truncated to whole pixels
	Angle    float64 // radians; placement ray and marker rotation
	Color    color.RGBA
	Filled   bool // solid marker for a Yea ballot
	Diameter float64
	Record   vote.Record
}
