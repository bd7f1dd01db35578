package pattern

import "github.com/matzehuels/parallelowow/pkg/colorspec"

// LineCap is the shape drawn at the ends of stroked segments.
type LineCap string

// Line cap styles.
const (
	CapButt   LineCap = "butt"
	CapRound  LineCap = "round"
	CapSquare LineCap = "square"
)

// Surface is a 2D vector drawing sink with canvas-style path semantics.
//
// BeginPath starts an empty path. Fill and Stroke paint the current path and
// leave it in place, so a Stroke right after a Fill outlines the same shape.
// Fill closes open subpaths implicitly.
type Surface interface {
	SetFillColor(c colorspec.Color)
	SetStrokeStyle(c colorspec.Color, width float64, cap LineCap)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Fill()
	Stroke()
}

// Region is the pixel area to tile.
type Region struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}
