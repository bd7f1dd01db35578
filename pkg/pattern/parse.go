package pattern

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/parallelowow/pkg/colorspec"
	errs "github.com/matzehuels/parallelowow/pkg/errors"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// FieldError reports a style property whose value was ignored.
type FieldError struct {
	Property string
	Value    string
	Err      error
}

func (e *FieldError) Error() string {
	return e.Property + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

// FieldErrors returns the per-property errors contained in an error
// returned by ParseStyle.
func FieldErrors(err error) []*FieldError {
	var out []*FieldError
	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case nil:
		case *FieldError:
			out = append(out, e)
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(e.Unwrap())
		}
	}
	walk(err)
	return out
}

// ParseStyle reads the five style properties from src.
//
// The returned Style is always complete. Fields that are absent or blank
// take their defaults silently. Fields that are present but unparsable also
// take their defaults, and each one adds a *FieldError carrying an
// INVALID_STYLE or INVALID_COLOR code to the joined error result. A
// non-positive tile width counts as unparsable.
func ParseStyle(src Source) (Style, error) {
	st := DefaultStyle()
	if src == nil {
		return st, nil
	}

	var problems []error
	invalid := func(name, raw string) {
		problems = append(problems, &FieldError{
			Property: name,
			Value:    raw,
			Err:      errs.New(errs.ErrCodeInvalidStyle, "cannot use %q", raw),
		})
	}

	if raw, ok := lookup(src, PropTileWidth); ok {
		if v, ok := ParseFloat(raw); ok && v > 0 {
			st.TileWidth = v
		} else {
			invalid(PropTileWidth, raw)
		}
	}
	if raw, ok := lookup(src, PropBaseColor); ok {
		if c, err := colorspec.Parse(raw); err == nil {
			st.BaseColor = c
		} else {
			problems = append(problems, &FieldError{
				Property: PropBaseColor,
				Value:    raw,
				Err:      errs.Wrap(errs.ErrCodeInvalidColor, err, "cannot use %q", raw),
			})
		}
	}
	if raw, ok := lookup(src, PropColorStep); ok {
		if v, ok := ParseInt(raw); ok {
			st.ColorStep = v
		} else {
			invalid(PropColorStep, raw)
		}
	}
	if raw, ok := lookup(src, PropProbability); ok {
		if v, ok := ParseFloat(raw); ok {
			st.Probability = v
		} else {
			invalid(PropProbability, raw)
		}
	}
	if raw, ok := lookup(src, PropStrokeWeight); ok {
		if v, ok := ParseFloat(raw); ok {
			st.StrokeWeight = v
		} else {
			invalid(PropStrokeWeight, raw)
		}
	}

	return st, errors.Join(problems...)
}

func lookup(src Source, name string) (string, bool) {
	v, ok := src.Lookup(name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// ParseFloat reads the longest leading decimal number of s after trimming
// whitespace, so "56px" reads as 56. Non-finite results are rejected.
func ParseFloat(s string) (float64, bool) {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ParseInt reads the longest leading integer of s after trimming
// whitespace, so "-3.7" reads as -3.
func ParseInt(s string) (int, bool) {
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
