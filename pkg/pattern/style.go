package pattern

import (
	"strconv"

	"github.com/matzehuels/parallelowow/pkg/colorspec"
)

// PropertyPrefix is shared by all style property names.
const PropertyPrefix = "--parallelowow-"

// Style property names.
const (
	PropTileWidth    = PropertyPrefix + "tile-width"
	PropBaseColor    = PropertyPrefix + "base-color"
	PropColorStep    = PropertyPrefix + "color-step"
	PropProbability  = PropertyPrefix + "probability"
	PropStrokeWeight = PropertyPrefix + "stroke-weight"
)

// Properties lists every recognized style property in declaration order.
var Properties = []string{
	PropTileWidth,
	PropBaseColor,
	PropColorStep,
	PropProbability,
	PropStrokeWeight,
}

// Default style values.
const (
	DefaultTileWidth    = 56.0
	DefaultColorStep    = -3
	DefaultProbability  = 0.33
	DefaultStrokeWeight = 0.5
)

// DefaultBaseColor is a light purple.
var DefaultBaseColor = colorspec.MustParse("#cc99ff")

// Style holds the five pattern parameters.
type Style struct {
	// TileWidth is the width of one tile before shearing.
	TileWidth float64 `json:"tile_width"`
	// BaseColor seeds the cap facet of the first row.
	BaseColor colorspec.Color `json:"base_color"`
	// ColorStep is added to every facet channel after each row.
	ColorStep int `json:"color_step"`
	// Probability is the per-tile chance of being skipped.
	Probability float64 `json:"probability"`
	// StrokeWeight is the outline width; outlines are drawn only when it is positive.
	StrokeWeight float64 `json:"stroke_weight"`
}

// DefaultStyle returns the style used when no parameters are given.
func DefaultStyle() Style {
	return Style{
		TileWidth:    DefaultTileWidth,
		BaseColor:    DefaultBaseColor,
		ColorStep:    DefaultColorStep,
		Probability:  DefaultProbability,
		StrokeWeight: DefaultStrokeWeight,
	}
}

// TileHeight returns the height of one tile.
func (s Style) TileHeight() float64 {
	return s.TileWidth * TileAspect
}

// Stroked reports whether tiles are outlined.
func (s Style) Stroked() bool {
	return s.StrokeWeight > 0
}

// Map returns the style as property values. Parsing the result with
// ParseStyle yields s again.
func (s Style) Map() map[string]string {
	return map[string]string{
		PropTileWidth:    strconv.FormatFloat(s.TileWidth, 'g', -1, 64),
		PropBaseColor:    s.BaseColor.String(),
		PropColorStep:    strconv.Itoa(s.ColorStep),
		PropProbability:  strconv.FormatFloat(s.Probability, 'g', -1, 64),
		PropStrokeWeight: strconv.FormatFloat(s.StrokeWeight, 'g', -1, 64),
	}
}
