package sink

import (
	"context"

	"github.com/matzehuels/parallelowow/pkg/pattern"
	"github.com/matzehuels/parallelowow/pkg/render"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfConfig)

type pdfConfig struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(cfg *pdfConfig) { cfg.svgOpts = opts }
}

// RenderPDF renders f as SVG and converts it to PDF.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, f Frame, opts ...PDFOption) ([]byte, pattern.Stats, error) {
	cfg := pdfConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	svg, stats := RenderSVG(f, cfg.svgOpts...)
	pdf, err := render.ToPDF(ctx, svg)
	return pdf, stats, err
}
