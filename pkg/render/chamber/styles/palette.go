package styles

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/rollcall/pkg/errors"
	"github.com/matzehuels/rollcall/pkg/vote"
)

// PartyColors is the marker colour pair for one party: Solid marks a Yea
// ballot, Pale marks everything else.
type PartyColors struct {
	Solid color.RGBA
	Pale  color.RGBA
}

// Palette maps each party to its marker colours.
type Palette map[vote.Party]PartyColors

// DefaultPalette returns the standard party colours.
func DefaultPalette() Palette {
	return Palette{
		vote.Democrat:    {Solid: rgb(0x00, 0xAE, 0xF3), Pale: rgb(0xE6, 0xF8, 0xFF)},
		vote.Republican:  {Solid: rgb(0xE8, 0x1B, 0x23), Pale: rgb(0xFB, 0xEA, 0xEB)},
		vote.Independent: {Solid: rgb(0xF1, 0xBB, 0x00), Pale: rgb(0xF5, 0xDF, 0x92)},
	}
}

// ColorFor returns the marker colour for a ballot and whether it is filled
// (solid). It is a pure function of (party, value); an unknown party or vote
// value is an error naming the record.
func (p Palette) ColorFor(r vote.Record) (color.RGBA, bool, error) {
	pc, ok := p[r.Party]
	if !ok {
		return color.RGBA{}, false, errors.New(errors.ErrCodeInvalidParty,
			"legislator %s: no colour for party %q", r.ID, r.Party)
	}
	switch r.Value {
	case vote.Yea:
		return pc.Solid, true, nil
	case vote.Nay, vote.Present, vote.NotVoting:
		return pc.Pale, false, nil
	}
	return color.RGBA{}, false, errors.New(errors.ErrCodeInvalidVote,
		"legislator %s: unable to read vote %q", r.ID, r.Value)
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
