package pipeline

import (
	"bytes"

	rcio "github.com/matzehuels/rollcall/pkg/io"
	"github.com/matzehuels/rollcall/pkg/render/chamber/ordering"
	"github.com/matzehuels/rollcall/pkg/render/chamber/scene"
	"github.com/matzehuels/rollcall/pkg/render/chamber/sink"
	"github.com/matzehuels/rollcall/pkg/vote"
)

// Load returns the raw document bytes: opts.Data when set, otherwise the
// contents of opts.Input.
func Load(opts Options) ([]byte, error) {
	if opts.Data != nil {
		return opts.Data, nil
	}
	return rcio.ReadFile(opts.Input)
}

// Parse decodes a vote document.
func Parse(data []byte) (*vote.Set, error) {
	return rcio.ReadJSON(bytes.NewReader(data))
}

// Order arranges the set's ballots for layout and reports how many will
// not fit on the canvas arc.
func Order(set *vote.Set, o ordering.Orderer, capacity int) ([]vote.Record, int) {
	ordered := o.Order(set.Records)
	return ordered, max(0, len(ordered)-capacity)
}

// Render composes the ordered ballots and serializes them in every
// requested format.
func Render(set *vote.Set, ordered []vote.Record, opts Options) (map[string][]byte, error) {
	c := scene.New(opts.CanvasPreset(), opts.LayoutOptions()...)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatPNG:
			data, err = sink.RenderPNG(c, set.Passed, ordered, set.Threshold)
		case FormatJSON:
			data, err = sink.RenderJSON(c, set.Passed, ordered, set.Threshold,
				sink.WithJSONVote(set.ID),
				sink.WithJSONSeed(opts.Seed),
			)
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
