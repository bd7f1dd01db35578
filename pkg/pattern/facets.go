package pattern

import "github.com/matzehuels/parallelowow/pkg/colorspec"

// Facet indexes into Facets.
const (
	FacetTop = iota
	FacetRight
	FacetLowerLeft
)

// Brightness offsets relative to the row's base color.
const (
	RightShade       = -10
	LowerLeftShade   = -30
	StrokeBrightness = 25
)

// Facets holds the cap, right and lower-left colors for one row.
type Facets [3]colorspec.Color

// NewFacets derives the first row's facet colors from base.
func NewFacets(base colorspec.Color) Facets {
	return Facets{
		base,
		base.Adjust(RightShade),
		base.Adjust(LowerLeftShade),
	}
}

// Adjust shifts all three colors by delta.
func (f Facets) Adjust(delta int) Facets {
	for i := range f {
		f[i] = f[i].Adjust(delta)
	}
	return f
}
