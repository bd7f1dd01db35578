// Package pkg holds the libraries behind parallelowow, a renderer for
// procedural herringbone tilings of sheared parallelograms.
//
// # Overview
//
// A pattern is a grid of tiles. Each tile is three filled facets that
// converge on one far vertex, so the whole plane reads as a field of
// bevelled bricks receding in the same direction. Facet colors are derived
// from one base color and shift by a fixed step every row, and a seeded
// random draw leaves a share of tiles out.
//
// The packages split as follows:
//
//  1. [pattern] - the tiling algorithm, drawing onto any [pattern.Surface]
//  2. [colorspec] - color parsing, brightness shifts and formatting
//  3. [sink] - surfaces and encoders for SVG, PNG, PDF and JSON
//  4. [pipeline] - options, validation, style resolution and caching
//  5. [cache] - artifact caches (null, file, Redis)
//  6. [preset] - TOML style presets, several of them built in
//
// # Data Flow
//
//	style properties (flags, query string, preset)
//	         ↓
//	    [pattern.ParseStyle] (lenient, per-field defaults)
//	         ↓
//	    [sink.Frame] (region + style + seed)
//	         ↓
//	    [pattern.Render] onto a surface
//	         ↓
//	    SVG/PNG/PDF/JSON bytes, cached by [pipeline.Runner]
//
// # Quick Start
//
//	st, _ := pattern.ParseStyle(pattern.MapSource{
//	    pattern.PropBaseColor: "#88ccee",
//	    pattern.PropTileWidth: "40",
//	})
//	svg, stats := sink.RenderSVG(sink.Frame{
//	    Region: pattern.Region{Width: 1200, Height: 400},
//	    Style:  st,
//	    Seed:   7,
//	})
//
// # Supporting Packages
//
// [errors] - coded errors shared by the CLI and the HTTP service.
//
// [observability] - hooks for metrics; the server installs Prometheus hooks.
//
// [render] - SVG to PDF conversion through rsvg-convert.
//
// [buildinfo] - version information stamped in at link time.
//
// [pattern]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/pattern
// [pattern.Surface]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/pattern#Surface
// [pattern.ParseStyle]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/pattern#ParseStyle
// [pattern.Render]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/pattern#Render
// [colorspec]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/colorspec
// [sink]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/sink
// [sink.Frame]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/sink#Frame
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/cache
// [preset]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/preset
// [errors]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/render
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/parallelowow/pkg/buildinfo
package pkg
