// Package pattern renders the parallelowow motif: a sheared grid of
// parallelogram tiles whose two side facets recede toward one shared far
// vertex, producing a brick-wall illusion.
//
// # Overview
//
// [Render] is the whole core. It takes a [Surface] to draw on, the [Region]
// to cover, a [Style] and a random source, and issues fill (and optional
// stroke) commands for every tile that survives the skip draw:
//
//	st, err := pattern.ParseStyle(pattern.MapSource{
//	    pattern.PropBaseColor: "#88ccee",
//	})
//	if err != nil {
//	    logger.Warn("style fallback", "err", err)
//	}
//	rng := rand.New(rand.NewPCG(42, 42^0xdeadbeef))
//	stats := pattern.Render(surface, pattern.Region{Width: 800, Height: 600}, st, rng)
//
// # Geometry
//
// A tile is [TileAspect] times as tall as it is wide. Rows are shifted left
// by one tile height per row, so each row needs one more column than the row
// above to reach the right edge. The right and lower-left facets of every
// tile meet at a vertex placed [OuterRadiusFactor] times the larger region
// dimension away from the origin, at [ShearAngleDegrees].
//
// # Colors
//
// Each tile uses three [Facets]: the cap in the row's base color, the right
// facet 10 darker and the lower-left facet 30 darker. After every row all
// three shift by [Style.ColorStep].
//
// # Style Parameters
//
// Styles usually come from a [Source] keyed by the custom property names
// ([PropTileWidth] and friends). [ParseStyle] never fails to produce a
// usable style: absent, empty or unparsable fields fall back to their
// defaults, and unparsable ones are reported in the returned error.
package pattern
