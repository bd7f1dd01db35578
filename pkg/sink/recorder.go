package sink

import (
	"github.com/matzehuels/parallelowow/pkg/colorspec"
	"github.com/matzehuels/parallelowow/pkg/pattern"
)

// Op names a surface call.
type Op string

// Surface operations.
const (
	OpFillStyle   Op = "fillStyle"
	OpStrokeStyle Op = "strokeStyle"
	OpBeginPath   Op = "beginPath"
	OpMoveTo      Op = "moveTo"
	OpLineTo      Op = "lineTo"
	OpFill        Op = "fill"
	OpStroke      Op = "stroke"
)

// Command is one recorded surface call. Only the fields used by Op are set.
type Command struct {
	Op    Op
	X, Y  float64
	Color colorspec.Color
	Width float64
	Cap   pattern.LineCap
}

// Recorder is a Surface that keeps every call in order.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) add(c Command) { r.Commands = append(r.Commands, c) }

func (r *Recorder) SetFillColor(c colorspec.Color) {
	r.add(Command{Op: OpFillStyle, Color: c})
}

func (r *Recorder) SetStrokeStyle(c colorspec.Color, width float64, cap pattern.LineCap) {
	r.add(Command{Op: OpStrokeStyle, Color: c, Width: width, Cap: cap})
}

func (r *Recorder) BeginPath()          { r.add(Command{Op: OpBeginPath}) }
func (r *Recorder) MoveTo(x, y float64) { r.add(Command{Op: OpMoveTo, X: x, Y: y}) }
func (r *Recorder) LineTo(x, y float64) { r.add(Command{Op: OpLineTo, X: x, Y: y}) }
func (r *Recorder) Fill()               { r.add(Command{Op: OpFill}) }
func (r *Recorder) Stroke()             { r.add(Command{Op: OpStroke}) }

// Count returns how many recorded commands have the given op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

// Replay issues the recorded commands against s in order.
func (r *Recorder) Replay(s pattern.Surface) {
	for _, c := range r.Commands {
		switch c.Op {
		case OpFillStyle:
			s.SetFillColor(c.Color)
		case OpStrokeStyle:
			s.SetStrokeStyle(c.Color, c.Width, c.Cap)
		case OpBeginPath:
			s.BeginPath()
		case OpMoveTo:
			s.MoveTo(c.X, c.Y)
		case OpLineTo:
			s.LineTo(c.X, c.Y)
		case OpFill:
			s.Fill()
		case OpStroke:
			s.Stroke()
		}
	}
}
