package pattern

import "strings"

// Source looks up raw style property values by property name.
type Source interface {
	Lookup(name string) (string, bool)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(name string) (string, bool)

// Lookup calls f.
func (f SourceFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// MapSource is a Source backed by a map keyed by full property names.
type MapSource map[string]string

// Lookup returns the value stored under name.
func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// ShortName strips PropertyPrefix from a property name.
func ShortName(name string) string {
	return strings.TrimPrefix(name, PropertyPrefix)
}

// ShortNames adapts a Source keyed by short names ("tile-width") so it can
// be queried with full property names.
func ShortNames(src Source) Source {
	return SourceFunc(func(name string) (string, bool) {
		return src.Lookup(ShortName(name))
	})
}

// Layered returns a Source that consults sources in order and returns the
// first non-blank value. Nil sources are ignored.
func Layered(sources ...Source) Source {
	return SourceFunc(func(name string) (string, bool) {
		for _, src := range sources {
			if src == nil {
				continue
			}
			if v, ok := src.Lookup(name); ok && strings.TrimSpace(v) != "" {
				return v, true
			}
		}
		return "", false
	})
}
