package sink

import (
	"encoding/json"

	"github.com/matzehuels/parallelowow/pkg/pattern"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonConfig)

type jsonConfig struct {
	commands bool
	indent   bool
}

// WithoutCommands leaves the command stream out, keeping only the frame
// and the stats.
func WithoutCommands() JSONOption { return func(c *jsonConfig) { c.commands = false } }

// WithCompactJSON disables pretty-printing.
func WithCompactJSON() JSONOption { return func(c *jsonConfig) { c.indent = false } }

type jsonOutput struct {
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Style    pattern.Style `json:"style"`
	Seed     uint64        `json:"seed"`
	Stats    pattern.Stats `json:"stats"`
	Commands []jsonCommand `json:"commands,omitempty"`
}

type jsonCommand struct {
	Op    Op              `json:"op"`
	X     *float64        `json:"x,omitempty"`
	Y     *float64        `json:"y,omitempty"`
	Color string          `json:"color,omitempty"`
	Width *float64        `json:"width,omitempty"`
	Cap   pattern.LineCap `json:"cap,omitempty"`
}

func toJSONCommand(c Command) jsonCommand {
	jc := jsonCommand{Op: c.Op}
	switch c.Op {
	case OpMoveTo, OpLineTo:
		x, y := c.X, c.Y
		jc.X, jc.Y = &x, &y
	case OpFillStyle:
		jc.Color = c.Color.String()
	case OpStrokeStyle:
		w := c.Width
		jc.Color, jc.Width, jc.Cap = c.Color.String(), &w, c.Cap
	}
	return jc
}

// RenderJSON exports f and the drawing commands it produces. The document
// is enough to replay the pattern on any canvas-like surface.
func RenderJSON(f Frame, opts ...JSONOption) ([]byte, pattern.Stats, error) {
	cfg := jsonConfig{commands: true, indent: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	var rec Recorder
	stats := f.Draw(&rec)

	out := jsonOutput{
		Width:  f.Region.Width,
		Height: f.Region.Height,
		Style:  f.Style,
		Seed:   f.Seed,
		Stats:  stats,
	}
	if cfg.commands {
		out.Commands = make([]jsonCommand, len(rec.Commands))
		for i, c := range rec.Commands {
			out.Commands[i] = toJSONCommand(c)
		}
	}

	var (
		data []byte
		err  error
	)
	if cfg.indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	return data, stats, err
}
