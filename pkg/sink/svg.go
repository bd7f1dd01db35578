package sink

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/parallelowow/pkg/colorspec"
	"github.com/matzehuels/parallelowow/pkg/pattern"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgConfig)

type svgConfig struct {
	background *colorspec.Color
	precision  int
}

// WithBackground fills the canvas with c before any tile is drawn.
func WithBackground(c colorspec.Color) SVGOption {
	return func(cfg *svgConfig) { cfg.background = &c }
}

// WithPrecision sets the number of decimals kept for coordinates (default 2).
func WithPrecision(n int) SVGOption {
	return func(cfg *svgConfig) { cfg.precision = max(n, 0) }
}

// SVG is a Surface that writes an SVG document.
//
// A Fill followed by a Stroke of the same path becomes a single path element.
// Stroke styles are written once on a group that wraps every element drawn
// after them.
type SVG struct {
	buf       bytes.Buffer
	precision int
	path      strings.Builder
	fill      colorspec.Color
	grouped   bool
	pending   *svgPath
	done      bool
}

type svgPath struct {
	d       string
	fill    colorspec.Color
	filled  bool
	stroked bool
}

// NewSVG starts a document covering r.
func NewSVG(r pattern.Region, opts ...SVGOption) *SVG {
	cfg := svgConfig{precision: 2}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &SVG{precision: cfg.precision}
	w, h := s.num(r.Width), s.num(r.Height)
	fmt.Fprintf(&s.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n", w, h, w, h)
	if cfg.background != nil {
		fmt.Fprintf(&s.buf, `  <rect width="100%%" height="100%%"%s/>`+"\n", fillAttrs(*cfg.background))
	}
	return s
}

func (s *SVG) SetFillColor(c colorspec.Color) {
	s.fill = c
}

func (s *SVG) SetStrokeStyle(c colorspec.Color, width float64, cap pattern.LineCap) {
	s.flush()
	if s.grouped {
		s.buf.WriteString("  </g>\n")
	}
	fmt.Fprintf(&s.buf, `  <g fill="none" stroke="%s" stroke-width="%s" stroke-linecap="%s"`, c.Hex(), s.num(width), cap)
	if op := c.Opacity(); op < 1 {
		fmt.Fprintf(&s.buf, ` stroke-opacity="%s"`, strconv.FormatFloat(op, 'f', -1, 64))
	}
	s.buf.WriteString(">\n")
	s.grouped = true
}

func (s *SVG) BeginPath() {
	s.flush()
	s.path.Reset()
}

func (s *SVG) MoveTo(x, y float64) {
	s.flush()
	fmt.Fprintf(&s.path, "M%s %s", s.num(x), s.num(y))
}

func (s *SVG) LineTo(x, y float64) {
	s.flush()
	fmt.Fprintf(&s.path, "L%s %s", s.num(x), s.num(y))
}

func (s *SVG) Fill() {
	if s.pending == nil || s.pending.filled {
		s.flush()
		s.pending = &svgPath{d: s.path.String()}
	}
	s.pending.filled = true
	s.pending.fill = s.fill
}

func (s *SVG) Stroke() {
	if s.pending == nil || s.pending.stroked {
		s.flush()
		s.pending = &svgPath{d: s.path.String()}
	}
	s.pending.stroked = true
}

// Bytes closes the document and returns it. Drawing after Bytes has no
// effect on the result.
func (s *SVG) Bytes() []byte {
	if !s.done {
		s.flush()
		if s.grouped {
			s.buf.WriteString("  </g>\n")
		}
		s.buf.WriteString("</svg>\n")
		s.done = true
	}
	return s.buf.Bytes()
}

func (s *SVG) flush() {
	p := s.pending
	if p == nil || s.done {
		return
	}
	s.pending = nil
	if p.d == "" {
		return
	}

	indent := "  "
	if s.grouped {
		indent = "    "
	}
	fmt.Fprintf(&s.buf, `%s<path d="%s"`, indent, p.d)
	if p.filled {
		s.buf.WriteString(fillAttrs(p.fill))
	}
	switch {
	case p.stroked && !s.grouped:
		s.buf.WriteString(` stroke="#000000"`)
	case !p.stroked && s.grouped:
		s.buf.WriteString(` stroke="none"`)
	}
	s.buf.WriteString("/>\n")
}

func fillAttrs(c colorspec.Color) string {
	attrs := fmt.Sprintf(` fill="%s"`, c.Hex())
	if op := c.Opacity(); op < 1 {
		attrs += fmt.Sprintf(` fill-opacity="%s"`, strconv.FormatFloat(op, 'f', -1, 64))
	}
	return attrs
}

func (s *SVG) num(v float64) string {
	out := strconv.FormatFloat(v, 'f', s.precision, 64)
	if strings.Contains(out, ".") {
		out = strings.TrimRight(out, "0")
		out = strings.TrimSuffix(out, ".")
	}
	if out == "-0" {
		return "0"
	}
	return out
}

// RenderSVG draws f as an SVG document.
func RenderSVG(f Frame, opts ...SVGOption) ([]byte, pattern.Stats) {
	s := NewSVG(f.Region, opts...)
	stats := f.Draw(s)
	return s.Bytes(), stats
}
