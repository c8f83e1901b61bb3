package runecut

import (
	"slices"
	"unicode/utf16"
)

// Text is a sequence of UTF-16 code units. Indices into a Text are code unit
// offsets, so a character outside the Basic Multilingual Plane occupies two
// positions.
//
// A nil Text is treated as a missing argument by the slicing functions. Use
// [FromString] or Text{} for an empty text.
type Text []uint16

// FromString encodes s as UTF-16. The result is never nil.
func FromString(s string) Text {
	units := utf16.Encode([]rune(s))
	if units == nil {
		return Text{}
	}
	return Text(units)
}

// String decodes t into a Go string. Isolated surrogates, which a [Split]
// cut may produce, are replaced with U+FFFD.
func (t Text) String() string {
	return string(utf16.Decode(t))
}

// Len returns the number of code units in t.
func (t Text) Len() int {
	return len(t)
}

// Clone returns a copy of t that shares no memory with it. The clone of a nil
// Text is an empty, non-nil Text.
func (t Text) Clone() Text {
	if t == nil {
		return Text{}
	}
	return slices.Clone(t)
}

// Equal reports whether t and other hold the same code units.
func (t Text) Equal(other Text) bool {
	return slices.Equal(t, other)
}

// UnitKind returns the kind of the code unit at index i. It panics if i is out
// of range.
func (t Text) UnitKind(i int) UnitKind {
	return Classify(t[i])
}

// HasIsolatedSurrogate reports whether t contains a high surrogate not
// followed by a low surrogate, or a low surrogate not preceded by a high one.
func (t Text) HasIsolatedSurrogate() bool {
	for i := 0; i < len(t); i++ {
		switch Classify(t[i]) {
		case HighSurrogate:
			if i+1 >= len(t) || !IsLowSurrogate(t[i+1]) {
				return true
			}
			i++ // Skip the low half.
		case LowSurrogate:
			return true
		}
	}
	return false
}
