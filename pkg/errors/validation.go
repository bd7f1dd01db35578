package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxDimension bounds canvas width and height in pixels. Larger canvases
// produce raster artifacts that do not fit comfortably in memory.
const MaxDimension = 8192

// MaxTiles bounds the grid cells a single render may visit.
const MaxTiles = 500_000

// MaxRasterPixels bounds the PNG buffer, counted in device pixels.
const MaxRasterPixels = MaxDimension * MaxDimension

// ValidateDimension checks that a canvas dimension is finite, positive and
// no larger than MaxDimension.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %g", name, v)
	}
	if v > MaxDimension {
		return New(ErrCodeInvalidDimension, "%s too large (max %d), got %g", name, MaxDimension, v)
	}
	return nil
}

// ValidateScale checks a raster scale factor.
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return New(ErrCodeInvalidInput, "scale must be a positive number, got %g", scale)
	}
	if scale > 8 {
		return New(ErrCodeInvalidInput, "scale too large (max 8), got %g", scale)
	}
	return nil
}

// ValidateTiles checks the number of grid cells a render would visit.
func ValidateTiles(cells float64) error {
	if math.IsNaN(cells) || cells > MaxTiles {
		return New(ErrCodeInvalidInput, "tile grid too dense (max %d tiles), got %.0f; use a larger tile width or a smaller canvas", MaxTiles, cells)
	}
	return nil
}

// ValidateRasterSize checks the device pixel count of a raster canvas.
func ValidateRasterSize(width, height, scale float64) error {
	if px := width * scale * height * scale; px > MaxRasterPixels {
		return New(ErrCodeInvalidInput, "raster too large (max %d pixels), got %.0f; lower the scale or the canvas size", MaxRasterPixels, px)
	}
	return nil
}

// ValidatePresetName validates a built-in preset name.
// It rejects names that could be mistaken for paths.
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidPreset, "preset name too long (max 64 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPreset, "preset name contains invalid control characters")
		}
	}
	if strings.ContainsAny(name, `/\.`) {
		return New(ErrCodeInvalidPreset, "preset name cannot contain path characters: %q", name)
	}
	return nil
}
