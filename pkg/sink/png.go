package sink

import (
	"bytes"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/parallelowow/pkg/colorspec"
	"github.com/matzehuels/parallelowow/pkg/pattern"
)

// DefaultScale is the PNG pixel density relative to the region size.
const DefaultScale = 2.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngConfig)

type pngConfig struct {
	scale      float64
	background *colorspec.Color
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(cfg *pngConfig) { cfg.scale = s }
}

// WithPNGBackground fills the image with c before any tile is drawn.
// Without it the background is transparent.
func WithPNGBackground(c colorspec.Color) PNGOption {
	return func(cfg *pngConfig) { cfg.background = &c }
}

// PNG is a Surface that rasterizes into an in-memory image.
type PNG struct {
	dc    *gg.Context
	scale float64
	fill  colorspec.Color
}

// NewPNG allocates an image covering r at the configured scale.
func NewPNG(r pattern.Region, opts ...PNGOption) *PNG {
	cfg := pngConfig{scale: DefaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.scale <= 0 {
		cfg.scale = DefaultScale
	}

	w := max(int(math.Ceil(r.Width*cfg.scale)), 1)
	h := max(int(math.Ceil(r.Height*cfg.scale)), 1)
	dc := gg.NewContext(w, h)
	if cfg.background != nil {
		dc.SetColor(cfg.background.NRGBA())
		dc.Clear()
	}
	dc.Scale(cfg.scale, cfg.scale)
	return &PNG{dc: dc, scale: cfg.scale}
}

func (p *PNG) SetFillColor(c colorspec.Color) {
	p.fill = c
}

func (p *PNG) SetStrokeStyle(c colorspec.Color, width float64, cap pattern.LineCap) {
	p.dc.SetStrokeStyle(gg.NewSolidPattern(c.NRGBA()))
	// Line widths are not transformed by the context matrix.
	p.dc.SetLineWidth(width * p.scale)
	switch cap {
	case pattern.CapRound:
		p.dc.SetLineCap(gg.LineCapRound)
	case pattern.CapSquare:
		p.dc.SetLineCap(gg.LineCapSquare)
	default:
		p.dc.SetLineCap(gg.LineCapButt)
	}
}

func (p *PNG) BeginPath()          { p.dc.ClearPath() }
func (p *PNG) MoveTo(x, y float64) { p.dc.MoveTo(x, y) }
func (p *PNG) LineTo(x, y float64) { p.dc.LineTo(x, y) }

func (p *PNG) Fill() {
	p.dc.SetFillStyle(gg.NewSolidPattern(p.fill.NRGBA()))
	p.dc.FillPreserve()
}

func (p *PNG) Stroke() { p.dc.StrokePreserve() }

// Image returns the raster drawn so far.
func (p *PNG) Image() image.Image { return p.dc.Image() }

// Encode writes the image as PNG.
func (p *PNG) Encode(w io.Writer) error { return p.dc.EncodePNG(w) }

// RenderPNG rasterizes f.
func RenderPNG(f Frame, opts ...PNGOption) ([]byte, pattern.Stats, error) {
	p := NewPNG(f.Region, opts...)
	stats := f.Draw(p)

	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		return nil, stats, err
	}
	return buf.Bytes(), stats, nil
}
