package sink

import (
	"math/rand/v2"

	"github.com/matzehuels/parallelowow/pkg/colorspec"
	"github.com/matzehuels/parallelowow/pkg/pattern"
)

// Frame is everything needed to reproduce one pattern.
type Frame struct {
	Region pattern.Region `json:"region"`
	Style  pattern.Style  `json:"style"`
	Seed   uint64         `json:"seed"`
}

// Rand returns a new generator seeded from f.Seed.
func (f Frame) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(f.Seed, f.Seed^0xdeadbeef))
}

// Draw renders f onto s.
func (f Frame) Draw(s pattern.Surface) pattern.Stats {
	return pattern.Render(s, f.Region, f.Style, f.Rand())
}

// Discard is a Surface that ignores every call. Drawing a frame on it is a
// cheap way to learn the frame's Stats.
var Discard pattern.Surface = discard{}

type discard struct{}

func (discard) SetFillColor(colorspec.Color)                             {}
func (discard) SetStrokeStyle(colorspec.Color, float64, pattern.LineCap) {}
func (discard) BeginPath()                                               {}
func (discard) MoveTo(x, y float64)                                      {}
func (discard) LineTo(x, y float64)                                      {}
func (discard) Fill()                                                    {}
func (discard) Stroke()                                                  {}
