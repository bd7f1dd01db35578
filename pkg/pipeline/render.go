package pipeline

import (
	"context"

	errs "github.com/matzehuels/parallelowow/pkg/errors"
	"github.com/matzehuels/parallelowow/pkg/pattern"
	"github.com/matzehuels/parallelowow/pkg/sink"
)

// RenderFormat draws f in one output format. It does not touch the cache.
func RenderFormat(ctx context.Context, f sink.Frame, format string, opts Options) ([]byte, pattern.Stats, error) {
	switch format {
	case FormatSVG:
		data, stats := sink.RenderSVG(f)
		return data, stats, nil
	case FormatPNG:
		scale := opts.Scale
		if scale == 0 {
			scale = DefaultScale
		}
		return sink.RenderPNG(f, sink.WithScale(scale))
	case FormatPDF:
		data, stats, err := sink.RenderPDF(ctx, f)
		if err != nil {
			return nil, stats, errs.Wrap(errs.ErrCodeUnsupported, err, "render pdf")
		}
		return data, stats, nil
	case FormatJSON:
		return sink.RenderJSON(f)
	default:
		return nil, pattern.Stats{}, ValidateFormat(format)
	}
}

// Render draws f in every requested format without caching.
func Render(ctx context.Context, f sink.Frame, opts Options) (map[string][]byte, pattern.Stats, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	var stats pattern.Stats
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		data, s, err := RenderFormat(ctx, f, format, opts)
		if err != nil {
			return nil, stats, err
		}
		artifacts[format] = data
		stats = s
	}
	return artifacts, stats, nil
}
