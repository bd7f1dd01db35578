// Package render converts rendered SVG documents into other vector formats.
//
// Conversion shells out to rsvg-convert from librsvg, so [Available] should
// be checked before offering PDF output:
//
//	if render.Available() {
//	    pdf, err := render.ToPDF(ctx, svg)
//	}
package render
