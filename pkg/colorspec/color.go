package colorspec

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a parsed color spec: three integer channels and, for rgba()
// input, the raw alpha token. Parsed channels keep their source values so
// out-of-range input is shifted before it is clamped. Adjust and the output
// forms clamp to [0, 255].
type Color struct {
	R, G, B int

	// HasAlpha is set when the source used the rgba() wrapper.
	HasAlpha bool
	// Alpha is the fourth channel token exactly as it appeared in the source.
	Alpha string
}

// ParseError reports a color spec that could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

var (
	funcPattern   = regexp.MustCompile(`(?i)^(rgba?)\((.*)\)$`)
	intPrefix     = regexp.MustCompile(`^[+-]?\d+`)
	whitespaceSet = " \t\n\r\f"
)

// RGB returns an opaque Color from three channel values, clamped to [0, 255].
func RGB(r, g, b int) Color {
	return Color{R: clamp(r), G: clamp(g), B: clamp(b)}
}

// Parse parses a hex or rgb()/rgba() color spec.
func Parse(s string) (Color, error) {
	spec := strings.TrimSpace(s)
	if spec == "" {
		return Color{}, &ParseError{Input: s, Reason: "empty"}
	}
	if IsValidHex(spec) {
		rgb, err := HexToRGB(spec)
		if err != nil {
			return Color{}, err
		}
		spec = rgb
	}

	m := funcPattern.FindStringSubmatch(removeWhitespace(spec))
	if m == nil {
		return Color{}, &ParseError{Input: s, Reason: "expected hex, rgb() or rgba()"}
	}

	c := Color{HasAlpha: strings.EqualFold(m[1], "rgba")}
	parts := strings.Split(m[2], ",")
	if len(parts) < 3 || len(parts) > 4 {
		return Color{}, &ParseError{Input: s, Reason: fmt.Sprintf("expected 3 or 4 channels, got %d", len(parts))}
	}

	channels := [3]*int{&c.R, &c.G, &c.B}
	for i, dst := range channels {
		v, ok := leadingInt(parts[i])
		if !ok {
			return Color{}, &ParseError{Input: s, Reason: fmt.Sprintf("channel %d is not a number: %q", i+1, parts[i])}
		}
		*dst = v
	}
	if len(parts) == 4 {
		c.Alpha = parts[3]
	}
	return c, nil
}

// MustParse is like Parse but panics on malformed input.
// It is intended for package-level color constants.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Adjust returns c with delta added to each of R, G and B, clamped to
// [0, 255]. The alpha token is carried over unchanged.
func (c Color) Adjust(delta int) Color {
	c.R = clamp(c.R + delta)
	c.G = clamp(c.G + delta)
	c.B = clamp(c.B + delta)
	return c
}

// String formats c as "rgb(r,g,b)" or, for rgba() sources, "rgba(r,g,b,a)",
// with channels clamped to [0, 255].
func (c Color) String() string {
	return c.format(clamp)
}

func (c Color) format(channel func(int) int) string {
	channels := []string{strconv.Itoa(channel(c.R)), strconv.Itoa(channel(c.G)), strconv.Itoa(channel(c.B))}
	if c.Alpha != "" {
		channels = append(channels, c.Alpha)
	}
	fn := "rgb"
	if c.HasAlpha {
		fn = "rgba"
	}
	return fn + "(" + strings.Join(channels, ",") + ")"
}

// Hex returns the "#rrggbb" form of the color channels, dropping alpha.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// Opacity interprets the alpha token as a number in [0, 1]. Percentages are
// accepted. A missing or unreadable token means fully opaque.
func (c Color) Opacity() float64 {
	a := strings.TrimSpace(c.Alpha)
	if a == "" {
		return 1
	}
	scale := 1.0
	if strings.HasSuffix(a, "%") {
		a = strings.TrimSuffix(a, "%")
		scale = 100
	}
	v, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 1
	}
	return min(max(v/scale, 0), 1)
}

// NRGBA converts c for use with image/color based rasterizers.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.colorful().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(c.Opacity()*255 + 0.5)}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(clamp(c.R)) / 255, G: float64(clamp(c.G)) / 255, B: float64(clamp(c.B)) / 255}
}

// AdjustBrightness parses s, shifts its channels by delta and formats the
// result. Hex input comes back in rgb() form.
func AdjustBrightness(s string, delta int) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return c.Adjust(delta).String(), nil
}

func clamp(v int) int {
	return min(max(v, 0), 255)
}

// leadingInt parses the longest integer prefix of s, ignoring surrounding
// whitespace, so "12.7" and "40%" read as 12 and 40.
func leadingInt(s string) (int, bool) {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}

func removeWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(whitespaceSet, r) {
			return -1
		}
		return r
	}, s)
}

// MarshalText implements encoding.TextMarshaler. Unlike String it keeps
// out-of-range channels, so colors that render differently after Adjust
// never encode the same.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.format(func(v int) int { return v })), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
