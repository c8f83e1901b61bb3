package runecut

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/scalecode-solutions/runecut/check"
)

// nullText is written for nil elements.
const nullText = "null"

// Join formats the elements of elems with [fmt] and joins them with sep, which
// is formatted the same way. A nil sep joins the elements without a separator.
// Nil elements, including nil pointers, are written as "null".
func Join[T any](elems []T, sep any) string {
	return JoinSeq(slices.Values(elems), sep)
}

// JoinSeq is like [Join] but reads the elements from seq. A nil seq yields an
// empty string.
func JoinSeq[T any](seq iter.Seq[T], sep any) string {
	if seq == nil {
		return ""
	}
	var separator string
	if !check.IsNil(sep) {
		separator = fmt.Sprint(sep)
	}

	var b strings.Builder
	first := true
	for e := range seq {
		if !first {
			b.WriteString(separator)
		}
		first = false
		if check.IsNil(e) {
			b.WriteString(nullText)
		} else {
			fmt.Fprint(&b, e)
		}
	}
	return b.String()
}
