// Package preset loads named canvas and style settings from TOML.
//
// A preset file has an optional name and description, a [canvas] table and
// a [style] table keyed by short property names:
//
//	[canvas]
//	width = 800
//	height = 600
//	seed = 42
//
//	[style]
//	tile-width = 56
//	base-color = "#cc99ff"
//
// Style values may be TOML strings, integers or floats. They are handed to
// [pattern.ParseStyle] as text, so "56px" works as well as 56.
package preset

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/parallelowow/pkg/errors"
	"github.com/matzehuels/parallelowow/pkg/pattern"
)

//go:embed builtin/*.toml
var builtinFS embed.FS

// Canvas holds the output size and random seed. Zero fields mean "not set".
type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Seed   uint64  `toml:"seed"`
}

// Preset is a parsed preset file.
type Preset struct {
	Name        string         `toml:"name"`
	Description string         `toml:"description"`
	Canvas      Canvas         `toml:"canvas"`
	Style       map[string]any `toml:"style"`
}

// Parse decodes a preset from r. Unknown keys outside [style] are
// INVALID_PRESET errors; unknown style keys and values that are neither
// strings nor numbers are INVALID_STYLE errors.
func Parse(r io.Reader) (*Preset, error) {
	var p Preset
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidPreset, err, "decode preset")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidPreset, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := p.validateStyle(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and parses the preset file at path.
func Load(path string) (*Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodePresetNotFound, err, "preset file %s", path)
		}
		return nil, err
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Builtin returns the embedded preset with the given name.
func Builtin(name string) (*Preset, error) {
	if err := errs.ValidatePresetName(name); err != nil {
		return nil, err
	}
	f, err := builtinFS.Open(path.Join("builtin", name+".toml"))
	if err != nil {
		return nil, errs.New(errs.ErrCodePresetNotFound, "no built-in preset %q (have: %s)", name, strings.Join(Names(), ", "))
	}
	defer f.Close()
	return Parse(f)
}

// Names lists the built-in presets in alphabetical order.
func Names() []string {
	entries, _ := builtinFS.ReadDir("builtin")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// Resolve returns the built-in preset called ref, or loads ref as a file
// path when it is not a built-in name.
func Resolve(ref string) (*Preset, error) {
	if slices.Contains(Names(), ref) {
		return Builtin(ref)
	}
	return Load(ref)
}

// Source exposes the style table as a pattern.Source keyed by full
// property names.
func (p *Preset) Source() pattern.Source {
	values := make(pattern.MapSource, len(p.Style))
	for k, v := range p.Style {
		if s, ok := stringify(v); ok {
			values[k] = s
		}
	}
	return pattern.ShortNames(values)
}

func (p *Preset) validateStyle() error {
	known := make(map[string]bool, len(pattern.Properties))
	for _, prop := range pattern.Properties {
		known[pattern.ShortName(prop)] = true
	}

	keys := make([]string, 0, len(p.Style))
	for k := range p.Style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !known[k] {
			return errs.New(errs.ErrCodeInvalidStyle, "unknown style key %q", k)
		}
		if _, ok := stringify(p.Style[k]); !ok {
			return errs.New(errs.ErrCodeInvalidStyle, "style key %q must be a string or number, got %T", k, p.Style[k])
		}
	}
	return nil
}

func stringify(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	default:
		return "", false
	}
}
