package icons

import (
	"strconv"
	"strings"
)

// StyleProp is a single CSS declaration. Key and Value are written verbatim:
// a value containing ';' or ':' adds declarations of its own, so callers must
// not put untrusted input here. The attribute itself is HTML-escaped when an
// icon renders.
type StyleProp struct {
	Key   string
	Value string
}

// Style is an ordered set of CSS declarations keyed by property name.
type Style []StyleProp

// Px formats a numeric length the way host frameworks treat unitless numbers.
func Px(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64) + "px"
}

// Get returns the value for key.
func (s Style) Get(key string) (string, bool) {
	for _, prop := range s {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return "", false
}

// Set returns a copy of s with key set to value. Existing keys keep their
// position; new keys are appended.
func (s Style) Set(key, value string) Style {
	out := make(Style, len(s), len(s)+1)
	copy(out, s)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, StyleProp{Key: key, Value: value})
}

// Merge overlays other on top of s. Keys present in other win.
func (s Style) Merge(other Style) Style {
	out := make(Style, len(s), len(s)+len(other))
	copy(out, s)
	for _, prop := range other {
		out = out.Set(prop.Key, prop.Value)
	}
	return out
}

// String renders the declarations as an inline style attribute value.
func (s Style) String() string {
	var b strings.Builder
	for i, prop := range s {
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString(prop.Key)
		b.WriteString(":")
		b.WriteString(prop.Value)
	}
	return b.String()
}
