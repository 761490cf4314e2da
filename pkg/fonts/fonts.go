// Package fonts provides the embedded font used for raster rendering.
//
// The bold Go font ships inside golang.org/x/image, so rendering needs no
// font files on the host. Faces are cached per point size.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/rollcall/pkg/errors"
)

// DPI is the resolution faces are created at. At 72 DPI one point is one
// pixel, so title and tally sizes map directly onto canvas pixels.
const DPI = 72

// FontFamily is the display name of the embedded font.
const FontFamily = "Go Bold"

// BoldTTF returns the embedded TTF data.
func BoldTTF() []byte {
	return gobold.TTF
}

// Parsed font (computed once on first access).
var (
	bold     *opentype.Font
	boldErr  error
	boldOnce sync.Once
)

// Bold returns the parsed embedded font.
func Bold() (*opentype.Font, error) {
	boldOnce.Do(func() {
		bold, boldErr = opentype.Parse(gobold.TTF)
		if boldErr != nil {
			boldErr = errors.Wrap(errors.ErrCodeRender, boldErr, "parse %s", FontFamily)
		}
	})
	return bold, boldErr
}

var (
	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

// Face returns a cached face of the embedded font at size points. Faces are
// shared; callers must not Close them.
func Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeRender, "font size must be positive, got %v", size)
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}

	ft, err := Bold()
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "%s face at %vpt", FontFamily, size)
	}
	faces[size] = f
	return f, nil
}
