package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/rollcall/pkg/config"
	"github.com/matzehuels/rollcall/pkg/errors"
	"github.com/matzehuels/rollcall/pkg/pipeline"
	"github.com/matzehuels/rollcall/pkg/vote"
)

const sampleVote = `{
  "vote_id": "s12-116.2019",
  "chamber": "s",
  "result": "Motion Rejected",
  "requires": "1/2",
  "votes": {
    "Yea": [{"id": "R1", "party": "R", "state": "OH", "display_name": "Hale"}],
    "Nay": [
      {"id": "D1", "party": "D", "state": "CA", "display_name": "Ito"},
      {"id": "I1", "party": "I", "state": "ME", "display_name": "Jones"}
    ]
  }
}`

func writeVote(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vote.json")
	if err := os.WriteFile(path, []byte(sampleVote), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "png"},
		{"png", "png"},
		{"png,json", "png,json"},
		{" json , png ,", "json,png"},
	}
	for _, tt := range tests {
		if got := strings.Join(parseFormats(tt.input), ","); got != tt.want {
			t.Errorf("parseFormats(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolveConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "rollcall.toml")
	if err := os.WriteFile(cfgPath, []byte("canvas = \"legacy\"\nseed = 5\nformats = [\"json\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		want    func(config.Config) bool
		wantErr errors.Code
	}{
		{
			name: "defaults",
			want: func(c config.Config) bool {
				return c.Canvas == pipeline.DefaultCanvas && c.Seed == 0 && c.Output == pipeline.DefaultOutput
			},
		},
		{
			name: "file values",
			args: []string{"--config", cfgPath},
			want: func(c config.Config) bool {
				return c.Canvas == "legacy" && c.Seed == 5 && strings.Join(c.Formats, ",") == "json"
			},
		},
		{
			name: "flags override file",
			args: []string{"--config", cfgPath, "--seed", "9", "-f", "png", "--growth", "2", "-o", "out"},
			want: func(c config.Config) bool {
				return c.Canvas == "legacy" && c.Seed == 9 && c.Formats[0] == "png" &&
					c.Arc.Growth == 2 && c.Output == "out"
			},
		},
		{name: "bad canvas", args: []string{"--canvas", "poster"}, wantErr: errors.ErrCodeInvalidConfig},
		{name: "bad format", args: []string{"-f", "svg"}, wantErr: errors.ErrCodeInvalidFormat},
		{name: "missing config", args: []string{"--config", "nope.toml"}, wantErr: errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := New(&bytes.Buffer{}, LogInfo).renderCommand()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			flags := cmd.Flags()
			var opts renderOpts
			opts.output, _ = flags.GetString("output")
			opts.formats, _ = flags.GetString("format")
			opts.canvas, _ = flags.GetString("canvas")
			opts.seed, _ = flags.GetUint64("seed")
			opts.growth, _ = flags.GetFloat64("growth")
			opts.config, _ = flags.GetString("config")
			got, gotErr := resolveConfig(cmd, opts)

			if tt.wantErr != "" {
				if !errors.Is(gotErr, tt.wantErr) {
					t.Errorf("error = %v, want %v", gotErr, tt.wantErr)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("resolveConfig() error: %v", gotErr)
			}
			if !tt.want(got) {
				t.Errorf("config = %+v", got)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	input := writeVote(t)
	out := t.TempDir()

	var logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetArgs([]string{"render", input, "-o", out, "-f", "png,json", "--seed", "3", "--no-cache"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render error: %v", err)
	}

	for _, name := range []string{"s12-116.2019.png", "s12-116.2019.json"} {
		info, err := os.Stat(filepath.Join(out, name))
		if err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if !strings.Contains(logs.String(), "Rendered s12-116.2019") {
		t.Errorf("no progress line in log: %q", logs.String())
	}
}

func TestRenderCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want errors.Code
	}{
		{"missing file", []string{"render", "nope.json", "--no-cache"}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"render", "x.json", "-f", "pdf"}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := New(&bytes.Buffer{}, LogInfo).RootCommand()
			root.SetArgs(tt.args)
			root.SetErr(&bytes.Buffer{})
			if err := root.ExecuteContext(context.Background()); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	res := &pipeline.Result{
		Set:       &vote.Set{ID: "h3-115.2017"},
		Artifacts: map[string][]byte{"png": []byte("png"), "json": []byte("{}")},
	}

	paths, err := writeArtifacts(dir, res, []string{"json", "png", "json"})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	want := []string{filepath.Join(dir, "h3-115.2017.json"), filepath.Join(dir, "h3-115.2017.png")}
	if strings.Join(paths, " ") != strings.Join(want, " ") {
		t.Errorf("paths = %v, want %v", paths, want)
	}

	res.Set.ID = "../escape"
	if _, err := writeArtifacts(dir, res, []string{"png"}); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("unsafe id error = %v, want %v", err, errors.ErrCodeInvalidPath)
	}
}

func TestStatsLine(t *testing.T) {
	tests := []struct {
		records, overflow int
		cached            bool
		want              []string
	}{
		{435, 0, false, []string{"435 ballots", iconFresh}},
		{450, 10, true, []string{"450 ballots", "10 not drawn", iconCached}},
	}
	for _, tt := range tests {
		line := statsLine(tt.records, tt.overflow, tt.cached)
		for _, w := range tt.want {
			if !strings.Contains(line, w) {
				t.Errorf("statsLine(%d, %d, %v) = %q, missing %q", tt.records, tt.overflow, tt.cached, line, w)
			}
		}
	}
}
