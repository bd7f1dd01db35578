package pattern

import "math"

// Fixed geometry of the motif. These encode the look of the pattern and are
// not derived from one another.
const (
	// TileAspect is tile height divided by tile width.
	TileAspect = 0.25
	// ShearAngleDegrees is the direction of the shared far vertex.
	ShearAngleDegrees = 39.375
	// OuterRadiusFactor scales the larger region dimension to the distance
	// of the shared far vertex.
	OuterRadiusFactor = 2.0
)

// Geometry is the tiling grid derived from a region and a tile width.
type Geometry struct {
	TileWidth  float64
	TileHeight float64
	// Rows and Cols are the fractional tile counts that bound the loops.
	Rows float64
	Cols float64
	// Far is the vertex shared by every tile's side facets.
	Far Point
}

// NewGeometry derives the grid for tiling r with tiles of the given width.
func NewGeometry(r Region, tileWidth float64) Geometry {
	tileHeight := tileWidth * TileAspect
	outerRadius := OuterRadiusFactor * max(r.Width, r.Height)
	theta := ShearAngleDegrees * math.Pi / 180
	return Geometry{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Rows:       r.Height / tileHeight,
		Cols:       r.Width / tileWidth,
		Far:        Point{X: math.Cos(theta) * outerRadius, Y: math.Sin(theta) * outerRadius},
	}
}

// Valid reports whether the tile size can drive the loops to completion.
func (g Geometry) Valid() bool {
	return g.TileHeight > 0 && !math.IsInf(g.TileHeight, 0) &&
		!math.IsNaN(g.Rows) && !math.IsInf(g.Rows, 0) &&
		!math.IsNaN(g.Cols) && !math.IsInf(g.Cols, 0)
}

// Cells estimates how many grid cells the loops visit. Row y runs
// Cols+y+1 columns, so the count grows with the square of Rows.
func (g Geometry) Cells() float64 {
	if !g.Valid() {
		return 0
	}
	rows := max(math.Ceil(g.Rows)+1, 0)
	last := rows - 2
	return rows*(max(g.Cols, 0)+1) + last*(last+1)/2
}

// RowRange returns the first row index and the exclusive float bound.
func (g Geometry) RowRange() (first int, bound float64) {
	return -1, g.Rows
}

// ColRange returns the first column index and the exclusive float bound for
// row y. Each row reaches one column further than the row above it.
func (g Geometry) ColRange(y int) (first int, bound float64) {
	return -1, g.Cols + float64(y)
}

// Tile holds the four corners of one parallelogram.
type Tile struct {
	UpperLeft, UpperRight, LowerRight, LowerLeft Point
}

// Tile returns the corners of the tile at column x, row y.
func (g Geometry) Tile(x, y int) Tile {
	tw, th := g.TileWidth, g.TileHeight
	xOffset := float64(x)*tw - float64(y)*th
	yOffset := float64(y) * th
	return Tile{
		UpperLeft:  Point{X: xOffset, Y: yOffset},
		UpperRight: Point{X: xOffset + tw, Y: yOffset},
		LowerRight: Point{X: xOffset + tw - th, Y: yOffset + th},
		LowerLeft:  Point{X: xOffset - th, Y: yOffset + th},
	}
}
