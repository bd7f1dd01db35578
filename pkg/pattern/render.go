package pattern

import "math/rand/v2"

// Rand is the random source consulted once per tile.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Stats summarizes one render pass.
type Stats struct {
	Rows    int `json:"rows"`
	Drawn   int `json:"drawn"`
	Skipped int `json:"skipped"`
}

// Tiles returns the number of grid cells visited.
func (s Stats) Tiles() int {
	return s.Drawn + s.Skipped
}

// Render tiles r with the pattern described by st, drawing on s.
//
// Each tile is skipped when rng draws a value below st.Probability. A nil
// rng uses the process-wide source. Render never stores s and keeps no
// state between calls. A tile width that is not positive and finite draws
// nothing.
func Render(s Surface, r Region, st Style, rng Rand) Stats {
	var stats Stats

	g := NewGeometry(r, st.TileWidth)
	if !g.Valid() {
		return stats
	}
	if rng == nil {
		rng = globalRand{}
	}

	facets := NewFacets(st.BaseColor)
	stroked := st.Stroked()
	if stroked {
		s.SetStrokeStyle(facets[FacetTop].Adjust(StrokeBrightness), st.StrokeWeight, CapButt)
	}

	firstRow, rowBound := g.RowRange()
	for y := firstRow; float64(y) < rowBound; y++ {
		firstCol, colBound := g.ColRange(y)
		for x := firstCol; float64(x) < colBound; x++ {
			if rng.Float64() < st.Probability {
				stats.Skipped++
				continue
			}
			drawTile(s, g.Tile(x, y), g.Far, facets, stroked)
			stats.Drawn++
		}
		stats.Rows++
		facets = facets.Adjust(st.ColorStep)
	}
	return stats
}

// drawTile paints the right facet, the lower-left facet and then the cap,
// so the cap sits on top.
func drawTile(s Surface, t Tile, far Point, facets Facets, stroked bool) {
	paint := func() {
		s.Fill()
		if stroked {
			s.Stroke()
		}
	}

	s.SetFillColor(facets[FacetRight])
	s.BeginPath()
	s.MoveTo(t.UpperRight.X, t.UpperRight.Y)
	s.LineTo(far.X, far.Y)
	s.LineTo(t.LowerRight.X, t.LowerRight.Y)
	s.LineTo(t.UpperRight.X, t.UpperRight.Y)
	paint()

	// Left open: Fill closes it back to the lower-right corner.
	s.SetFillColor(facets[FacetLowerLeft])
	s.BeginPath()
	s.MoveTo(t.LowerRight.X, t.LowerRight.Y)
	s.LineTo(far.X, far.Y)
	s.LineTo(t.LowerLeft.X, t.LowerLeft.Y)
	s.MoveTo(t.LowerLeft.X, t.LowerLeft.Y)
	paint()

	s.SetFillColor(facets[FacetTop])
	s.BeginPath()
	s.MoveTo(t.UpperLeft.X, t.UpperLeft.Y)
	s.LineTo(t.UpperRight.X, t.UpperRight.Y)
	s.LineTo(t.LowerRight.X, t.LowerRight.Y)
	s.LineTo(t.LowerLeft.X, t.LowerLeft.Y)
	s.LineTo(t.UpperLeft.X, t.UpperLeft.Y)
	paint()
}
