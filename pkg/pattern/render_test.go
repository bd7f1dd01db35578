package pattern

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/parallelowow/pkg/colorspec"
)

// recorder captures surface calls as strings.
type recorder struct {
	ops   []string
	fills []colorspec.Color
}

func (r *recorder) SetFillColor(c colorspec.Color) {
	r.fills = append(r.fills, c)
	r.ops = append(r.ops, "fillStyle "+c.String())
}

func (r *recorder) SetStrokeStyle(c colorspec.Color, width float64, cap LineCap) {
	r.ops = append(r.ops, fmt.Sprintf("strokeStyle %s %g %s", c, width, cap))
}

func (r *recorder) BeginPath()          { r.ops = append(r.ops, "beginPath") }
func (r *recorder) MoveTo(x, y float64) { r.ops = append(r.ops, fmt.Sprintf("moveTo %.3f %.3f", x, y)) }
func (r *recorder) LineTo(x, y float64) { r.ops = append(r.ops, fmt.Sprintf("lineTo %.3f %.3f", x, y)) }
func (r *recorder) Fill()               { r.ops = append(r.ops, "fill") }
func (r *recorder) Stroke()             { r.ops = append(r.ops, "stroke") }

func (r *recorder) count(op string) int {
	n := 0
	for _, o := range r.ops {
		if o == op {
			n++
		}
	}
	return n
}

// constRand always returns the same draw.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func TestGeometry(t *testing.T) {
	g := NewGeometry(Region{Width: 112, Height: 28}, 56)

	if g.TileHeight != 14 {
		t.Errorf("TileHeight = %v, want 14", g.TileHeight)
	}
	if g.Rows != 2 || g.Cols != 2 {
		t.Errorf("Rows, Cols = %v, %v, want 2, 2", g.Rows, g.Cols)
	}

	theta := 39.375 * math.Pi / 180
	want := Point{X: math.Cos(theta) * 224, Y: math.Sin(theta) * 224}
	if math.Abs(g.Far.X-want.X) > 1e-9 || math.Abs(g.Far.Y-want.Y) > 1e-9 {
		t.Errorf("Far = %+v, want %+v", g.Far, want)
	}

	tall := NewGeometry(Region{Width: 10, Height: 300}, 56)
	if r := math.Hypot(tall.Far.X, tall.Far.Y); math.Abs(r-600) > 1e-9 {
		t.Errorf("far vertex radius = %v, want 600 (2 * height)", r)
	}
}

func TestGeometryTile(t *testing.T) {
	g := NewGeometry(Region{Width: 112, Height: 28}, 56)

	got := g.Tile(1, 1)
	want := Tile{
		UpperLeft:  Point{X: 42, Y: 14},
		UpperRight: Point{X: 98, Y: 14},
		LowerRight: Point{X: 84, Y: 28},
		LowerLeft:  Point{X: 28, Y: 28},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tile(1, 1) mismatch (-want +got):\n%s", diff)
	}

	origin := g.Tile(0, 0)
	if origin.UpperLeft != (Point{}) {
		t.Errorf("Tile(0, 0).UpperLeft = %+v, want origin", origin.UpperLeft)
	}
}

func TestGeometryValid(t *testing.T) {
	tests := []struct {
		name      string
		region    Region
		tileWidth float64
		want      bool
	}{
		{"default", Region{Width: 800, Height: 600}, 56, true},
		{"empty region", Region{}, 56, true},
		{"zero tile", Region{Width: 800, Height: 600}, 0, false},
		{"negative tile", Region{Width: 800, Height: 600}, -56, false},
		{"nan tile", Region{Width: 800, Height: 600}, math.NaN(), false},
		{"inf tile", Region{Width: 800, Height: 600}, math.Inf(1), false},
		{"inf region", Region{Width: math.Inf(1), Height: 600}, 56, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewGeometry(tt.region, tt.tileWidth).Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderTileCoverage(t *testing.T) {
	st := DefaultStyle()
	st.Probability = 0

	var rec recorder
	stats := Render(&rec, Region{Width: 112, Height: 28}, st, constRand(0))

	// Rows y = -1, 0, 1 hold 2, 3 and 4 tiles.
	if stats.Rows != 3 {
		t.Errorf("Rows = %d, want 3", stats.Rows)
	}
	if stats.Drawn != 9 || stats.Skipped != 0 {
		t.Errorf("Drawn, Skipped = %d, %d, want 9, 0", stats.Drawn, stats.Skipped)
	}

	g := NewGeometry(Region{Width: 112, Height: 28}, 56)
	first, bound := g.RowRange()
	var rows []int
	for y := first; float64(y) < bound; y++ {
		rows = append(rows, y)
	}
	if diff := cmp.Diff([]int{-1, 0, 1}, rows); diff != "" {
		t.Errorf("row indices mismatch (-want +got):\n%s", diff)
	}
	for y := -1; y < 1; y++ {
		_, b0 := g.ColRange(y)
		_, b1 := g.ColRange(y + 1)
		if b1-b0 != 1 {
			t.Errorf("column bound grows by %v from row %d to %d, want 1", b1-b0, y, y+1)
		}
	}
}

func TestRenderCommandSequence(t *testing.T) {
	st := DefaultStyle()
	st.Probability = 0

	// A region that yields exactly one tile: row -1, column -1.
	var rec recorder
	stats := Render(&rec, Region{Width: 0.5, Height: 0}, st, constRand(0.5))
	if stats.Drawn != 1 {
		t.Fatalf("Drawn = %d, want 1", stats.Drawn)
	}

	g := NewGeometry(Region{Width: 0.5, Height: 0}, 56)
	tile := g.Tile(-1, -1)
	far := fmt.Sprintf("lineTo %.3f %.3f", g.Far.X, g.Far.Y)
	pt := func(op string, p Point) string { return fmt.Sprintf("%s %.3f %.3f", op, p.X, p.Y) }

	want := []string{
		"strokeStyle rgb(229,178,255) 0.5 butt",

		"fillStyle rgb(194,143,245)",
		"beginPath",
		pt("moveTo", tile.UpperRight),
		far,
		pt("lineTo", tile.LowerRight),
		pt("lineTo", tile.UpperRight),
		"fill",
		"stroke",

		"fillStyle rgb(174,123,225)",
		"beginPath",
		pt("moveTo", tile.LowerRight),
		far,
		pt("lineTo", tile.LowerLeft),
		pt("moveTo", tile.LowerLeft),
		"fill",
		"stroke",

		"fillStyle rgb(204,153,255)",
		"beginPath",
		pt("moveTo", tile.UpperLeft),
		pt("lineTo", tile.UpperRight),
		pt("lineTo", tile.LowerRight),
		pt("lineTo", tile.LowerLeft),
		pt("lineTo", tile.UpperLeft),
		"fill",
		"stroke",
	}
	if diff := cmp.Diff(want, rec.ops); diff != "" {
		t.Errorf("command sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderStrokeDisabled(t *testing.T) {
	for _, weight := range []float64{0, -0.5} {
		st := DefaultStyle()
		st.Probability = 0
		st.StrokeWeight = weight

		var rec recorder
		Render(&rec, Region{Width: 112, Height: 28}, st, constRand(0))

		if n := rec.count("stroke"); n != 0 {
			t.Errorf("weight %v: %d stroke calls, want 0", weight, n)
		}
		for _, op := range rec.ops {
			if len(op) > 11 && op[:11] == "strokeStyle" {
				t.Errorf("weight %v: unexpected %q", weight, op)
			}
		}
		if n := rec.count("fill"); n != 27 {
			t.Errorf("weight %v: %d fills, want 27", weight, n)
		}
	}
}

func TestRenderStrokeStyleSetOnce(t *testing.T) {
	st := DefaultStyle()
	st.Probability = 0

	var rec recorder
	Render(&rec, Region{Width: 400, Height: 300}, st, constRand(0))

	n := 0
	for _, op := range rec.ops {
		if len(op) > 11 && op[:11] == "strokeStyle" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("stroke style set %d times, want 1", n)
	}
	if rec.ops[0][:11] != "strokeStyle" {
		t.Errorf("first op = %q, want stroke style before any tile", rec.ops[0])
	}
	if got, want := rec.count("stroke"), rec.count("fill"); got != want {
		t.Errorf("strokes = %d, fills = %d, want equal", got, want)
	}
}

func TestRenderSkipProbabilityBoundaries(t *testing.T) {
	region := Region{Width: 400, Height: 300}

	t.Run("zero renders on zero draw", func(t *testing.T) {
		st := DefaultStyle()
		st.Probability = 0
		stats := Render(&recorder{}, region, st, constRand(0))
		if stats.Skipped != 0 || stats.Drawn == 0 {
			t.Errorf("Drawn, Skipped = %d, %d, want all drawn", stats.Drawn, stats.Skipped)
		}
	})

	t.Run("one skips everything", func(t *testing.T) {
		st := DefaultStyle()
		st.Probability = 1
		for _, draw := range []float64{0, 0.5, math.Nextafter(1, 0)} {
			var rec recorder
			stats := Render(&rec, region, st, constRand(draw))
			if stats.Drawn != 0 {
				t.Errorf("draw %v: Drawn = %d, want 0", draw, stats.Drawn)
			}
			if n := rec.count("fill"); n != 0 {
				t.Errorf("draw %v: %d fills, want 0", draw, n)
			}
		}
	})

	t.Run("draw at threshold renders", func(t *testing.T) {
		st := DefaultStyle()
		st.Probability = 0.33
		stats := Render(&recorder{}, region, st, constRand(0.33))
		if stats.Skipped != 0 {
			t.Errorf("Skipped = %d, want 0", stats.Skipped)
		}
		stats = Render(&recorder{}, region, st, constRand(0.32))
		if stats.Drawn != 0 {
			t.Errorf("Drawn = %d, want 0", stats.Drawn)
		}
	})

	t.Run("roughly matches probability", func(t *testing.T) {
		st := DefaultStyle()
		stats := Render(&recorder{}, Region{Width: 2000, Height: 2000}, st, seeded(7))
		ratio := float64(stats.Skipped) / float64(stats.Tiles())
		if math.Abs(ratio-st.Probability) > 0.03 {
			t.Errorf("skip ratio = %.3f, want about %.2f", ratio, st.Probability)
		}
	})
}

func TestRenderRowDarkening(t *testing.T) {
	st := DefaultStyle()
	st.Probability = 0
	st.ColorStep = -3
	st.BaseColor = colorspec.RGB(20, 100, 200)

	var rec recorder
	// Tile width 4 gives 1-pixel rows: rows -1..29 on a 30-pixel tall canvas.
	st.TileWidth = 4
	region := Region{Width: 4, Height: 30}
	Render(&rec, region, st, constRand(0))

	g := NewGeometry(region, st.TileWidth)
	// Three fills per tile; the cap is the third.
	idx := 0
	for y := -1; float64(y) < g.Rows; y++ {
		_, bound := g.ColRange(y)
		n := 0
		for x := -1; float64(x) < bound; x++ {
			n++
		}
		row := y + 1
		wantRed := max(0, 20-3*row)
		for i := 0; i < n; i++ {
			capColor := rec.fills[idx+2]
			if capColor.R != wantRed {
				t.Fatalf("row %d: cap red = %d, want %d", row, capColor.R, wantRed)
			}
			idx += 3
		}
	}
	if idx != len(rec.fills) {
		t.Errorf("checked %d fills, recorded %d", idx, len(rec.fills))
	}
}

func TestRenderDeterministicWithSeed(t *testing.T) {
	st := DefaultStyle()
	region := Region{Width: 300, Height: 200}

	var a, b recorder
	Render(&a, region, st, seeded(42))
	Render(&b, region, st, seeded(42))
	if diff := cmp.Diff(a.ops, b.ops); diff != "" {
		t.Errorf("same seed produced different output (-first +second):\n%s", diff)
	}

	var c recorder
	Render(&c, region, st, seeded(43))
	if cmp.Equal(a.ops, c.ops) {
		t.Error("different seeds produced identical output")
	}
}

func TestRenderDefaultSubstitution(t *testing.T) {
	explicit := MapSource{
		PropTileWidth:    "56",
		PropBaseColor:    "#cc99ff",
		PropColorStep:    "-3",
		PropProbability:  "0.33",
		PropStrokeWeight: "0.5",
	}
	sources := map[string]Source{
		"nil":   nil,
		"empty": MapSource{},
		"blank": MapSource{
			PropTileWidth:    "",
			PropBaseColor:    " ",
			PropColorStep:    "",
			PropProbability:  "",
			PropStrokeWeight: "",
		},
	}

	region := Region{Width: 300, Height: 200}
	want, err := ParseStyle(explicit)
	if err != nil {
		t.Fatal(err)
	}
	var wantRec recorder
	Render(&wantRec, region, want, seeded(1))

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			st, err := ParseStyle(src)
			if err != nil {
				t.Fatalf("ParseStyle error: %v", err)
			}
			var got recorder
			Render(&got, region, st, seeded(1))
			if diff := cmp.Diff(wantRec.ops, got.ops); diff != "" {
				t.Errorf("output differs from explicit defaults (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderInvalidTileWidthDrawsNothing(t *testing.T) {
	for _, tw := range []float64{0, -56, math.NaN()} {
		st := DefaultStyle()
		st.TileWidth = tw
		var rec recorder
		stats := Render(&rec, Region{Width: 100, Height: 100}, st, constRand(0.9))
		if len(rec.ops) != 0 || stats != (Stats{}) {
			t.Errorf("tile width %v: got %d ops, stats %+v", tw, len(rec.ops), stats)
		}
	}
}

func TestRenderNilRand(t *testing.T) {
	st := DefaultStyle()
	stats := Render(&recorder{}, Region{Width: 200, Height: 100}, st, nil)
	if stats.Tiles() == 0 {
		t.Error("nil rng should fall back to the global source")
	}
}

func TestFacets(t *testing.T) {
	f := NewFacets(colorspec.RGB(100, 100, 100))
	want := Facets{colorspec.RGB(100, 100, 100), colorspec.RGB(90, 90, 90), colorspec.RGB(70, 70, 70)}
	if f != want {
		t.Errorf("NewFacets = %v, want %v", f, want)
	}
	got := f.Adjust(-3)
	want = Facets{colorspec.RGB(97, 97, 97), colorspec.RGB(87, 87, 87), colorspec.RGB(67, 67, 67)}
	if got != want {
		t.Errorf("Adjust(-3) = %v, want %v", got, want)
	}
	if f[0].R != 100 {
		t.Error("Adjust should not modify the receiver")
	}
}

func TestFacetsOutOfRangeBase(t *testing.T) {
	f := NewFacets(colorspec.MustParse("rgb(270,40,40)"))
	rows := []Facets{f, f.Adjust(-3)}
	want := [][3]string{
		{"rgb(255,40,40)", "rgb(255,30,30)", "rgb(240,10,10)"},
		{"rgb(255,37,37)", "rgb(252,27,27)", "rgb(237,7,7)"},
	}
	for i, row := range rows {
		got := [3]string{row[0].String(), row[1].String(), row[2].String()}
		if diff := cmp.Diff(want[i], got); diff != "" {
			t.Errorf("row %d facets mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestGeometryCells(t *testing.T) {
	regions := []Region{{Width: 800, Height: 600}, {Width: 300, Height: 900}, {Width: 1200, Height: 200}}
	for _, r := range regions {
		st := DefaultStyle()
		var rec recorder
		stats := Render(&rec, r, st, seeded(1))

		est := NewGeometry(r, st.TileWidth).Cells()
		if diff := math.Abs(est - float64(stats.Tiles())); diff > 0.05*float64(stats.Tiles()) {
			t.Errorf("%vx%v: Cells() = %.0f, visited %d", r.Width, r.Height, est, stats.Tiles())
		}
	}

	if c := NewGeometry(Region{Width: 800, Height: 600}, 0).Cells(); c != 0 {
		t.Errorf("invalid geometry Cells() = %v, want 0", c)
	}
	if c := NewGeometry(Region{Width: 800, Height: 600}, 0.001).Cells(); c < 1e12 {
		t.Errorf("tiny tiles Cells() = %v, want a huge count", c)
	}
}
