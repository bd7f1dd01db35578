// Package sink implements [pattern.Surface] for the supported output formats.
//
// Every renderer takes a [Frame], which pins the region, the style and the
// random seed. Each call draws with a fresh generator seeded from the frame,
// so the same frame yields the same tiles in every format:
//
//	f := sink.Frame{Region: pattern.Region{Width: 800, Height: 600}, Style: st, Seed: 42}
//	svg, stats := sink.RenderSVG(f)
//	png, _, err := sink.RenderPNG(f, sink.WithScale(2))
//
// # Formats
//
//   - SVG: one path element per painted facet, written with [SVG]
//   - PNG: rasterized in process with fogleman/gg by [PNG]
//   - PDF: the SVG output converted by rsvg-convert
//   - JSON: the raw drawing command stream captured by [Recorder]
package sink
