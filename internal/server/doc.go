// Package server exposes the pattern pipeline over HTTP.
//
// # Routes
//
//	GET /pattern.{format}   render a pattern as svg, png, pdf or json
//	GET /presets            list the built-in presets
//	GET /healthz            liveness probe
//	GET /metrics            Prometheus metrics
//
// Canvas parameters come from the query string (width, height, seed, scale).
// Style parameters use the short property names, for example
//
//	/pattern.svg?width=1200&height=400&tile-width=40&base-color=%2388ccee
//
// and a built-in preset may supply defaults with preset=name. Query values
// win over preset values.
//
// Errors are returned as JSON objects of the form {"code": ..., "message": ...}.
// Validation failures map to 400, unknown presets to 404, everything else to 500.
package server
