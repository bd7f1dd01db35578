// Package pipeline turns render options into finished artifacts.
//
// The CLI and the HTTP service both go through [Runner], so defaults,
// validation, style fallback logging and artifact caching behave the same
// everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Width:      1200,
//	    Height:     800,
//	    Properties: map[string]string{pattern.PropBaseColor: "#88ccee"},
//	    Formats:    []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// Every format of one run is drawn from the same seed, so the SVG and the
// PNG above show the same tiles.
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/parallelowow/pkg/errors"
	"github.com/matzehuels/parallelowow/pkg/pattern"
	"github.com/matzehuels/parallelowow/pkg/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultScale is the default PNG pixel density.
	DefaultScale = sink.DefaultScale
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// FormatNames lists the supported formats in display order.
var FormatNames = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Canvas options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Seed   uint64  `json:"seed,omitempty"`

	// Properties holds style values keyed by full property name. They take
	// precedence over Source.
	Properties map[string]string `json:"properties,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // Skip cache reads; results are still cached

	// Runtime options (not serialized)
	Source pattern.Source `json:"-"` // Fallback style values, such as a preset
	Logger *log.Logger    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Frame is the resolved region, style and seed.
	Frame sink.Frame

	// FrameHash is the content hash of Frame, used in cache keys.
	FrameHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains tile counts and timing.
	Stats Stats

	// CacheInfo tracks which formats came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	pattern.Stats
	RenderTime time.Duration
	Bytes      int
}

// CacheInfo tracks cache hits per format.
type CacheInfo struct {
	Hits      map[string]bool // Formats served from cache
	RenderHit bool            // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks,
// lowercasing and dropping duplicates.
func ParseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	return formats
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and checks every field.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := errs.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errs.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	if err := errs.ValidateScale(o.Scale); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := o.validateWorkload(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// validateWorkload bounds the work the resolved style implies: the number
// of tiles for every format and the pixel buffer for PNG.
func (o *Options) validateWorkload() error {
	st, _ := pattern.ParseStyle(o.StyleSource())
	if err := errs.ValidateTiles(pattern.NewGeometry(o.Region(), st.TileWidth).Cells()); err != nil {
		return err
	}
	if slices.Contains(o.Formats, FormatPNG) {
		return errs.ValidateRasterSize(o.Width, o.Height, o.Scale)
	}
	return nil
}

// SetDefaults fills zero fields with their defaults.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Region returns the canvas as a pattern region.
func (o *Options) Region() pattern.Region {
	return pattern.Region{Width: o.Width, Height: o.Height}
}

// StyleSource layers Properties over Source.
func (o *Options) StyleSource() pattern.Source {
	var props pattern.Source
	if len(o.Properties) > 0 {
		props = pattern.MapSource(o.Properties)
	}
	return pattern.Layered(props, o.Source)
}
