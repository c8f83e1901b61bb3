package runecut

import (
	"slices"

	"github.com/scalecode-solutions/runecut/check"
)

// SliceFrom returns the code units of text from index begin to the end.
//
// If begin falls between the two halves of a surrogate pair, that is, the
// unit at begin is a low surrogate, the policy decides where the cut is made:
//
//   - [Split] cuts at begin. The result starts with an isolated low surrogate.
//   - [Keep] cuts at begin-1 so the result starts with the whole pair.
//   - [Discard] cuts at begin+1 so the pair is not part of the result.
//
// A high surrogate at begin means the pair lies entirely after the cut, so no
// adjustment is made. Neither is one made for begin == 0 or begin == len(text).
//
// The returned Text never shares memory with text. An error matching
// [check.ErrInvalidArgument] is returned if text is nil, the policy is unset
// or unknown, or begin is outside [0, len(text)].
func SliceFrom(text Text, begin int, policy Policy) (Text, error) {
	if _, err := check.NotNil(text, "text"); err != nil {
		return nil, err
	}
	if _, err := check.InsideRange(begin, 0, len(text), "begin"); err != nil {
		return nil, err
	}
	if err := checkPolicy(policy, "policy"); err != nil {
		return nil, err
	}

	if begin == 0 {
		return text.Clone(), nil
	} else if begin == len(text) {
		return Text{}, nil
	}

	return slices.Clone(text[adjustBegin(text, begin, policy):]), nil
}

// SliceBetween returns the code units of text from index begin (inclusive) to
// index end (exclusive), resolving a surrogate pair split at either boundary
// with its own policy.
//
// At the begin boundary the rules of [SliceFrom] apply. At the end boundary a
// low surrogate at end means the pair straddles the cut (its high unit is the
// last unit inside the range):
//
//   - [Split] cuts at end. The result ends with an isolated high surrogate.
//   - [Keep] cuts at end+1 so the result ends with the whole pair.
//   - [Discard] cuts at end-1 so the pair is not part of the result.
//
// The begin boundary is never adjusted when begin == 0 and the end boundary
// is never adjusted when end == len(text).
//
// The returned Text never shares memory with text. An error matching
// [check.ErrInvalidArgument] is returned if text is nil, either policy is
// unset or unknown, begin is negative, end exceeds len(text), or begin is
// greater than end.
func SliceBetween(text Text, begin, end int, beginPolicy, endPolicy Policy) (Text, error) {
	if _, err := check.NotNil(text, "text"); err != nil {
		return nil, err
	}
	if _, err := check.GreaterThanOrEqual(begin, 0, "begin"); err != nil {
		return nil, err
	}
	if _, err := check.LessThanOrEqual(end, len(text), "end"); err != nil {
		return nil, err
	}
	if _, err := check.LessThanOrEqual(begin, end, "begin"); err != nil {
		return nil, err
	}
	if err := checkPolicy(beginPolicy, "beginPolicy"); err != nil {
		return nil, err
	}
	if err := checkPolicy(endPolicy, "endPolicy"); err != nil {
		return nil, err
	}

	if begin == end {
		return Text{}, nil
	} else if begin == 0 && end == len(text) {
		return text.Clone(), nil
	}

	adjustedBegin, adjustedEnd := begin, end
	if begin != 0 {
		adjustedBegin = adjustBegin(text, begin, beginPolicy)
	}
	if end != len(text) {
		adjustedEnd = adjustEnd(text, end, endPolicy)
	}

	// Only ill-formed text (two adjacent low surrogates at begin and end) can
	// make the cuts cross.
	if adjustedBegin >= adjustedEnd {
		return Text{}, nil
	}
	return slices.Clone(text[adjustedBegin:adjustedEnd]), nil
}

// SliceBetweenPolicy is like [SliceBetween] but applies the same policy at
// both boundaries.
func SliceBetweenPolicy(text Text, begin, end int, policy Policy) (Text, error) {
	return SliceBetween(text, begin, end, policy, policy)
}

// adjustBegin returns the effective start index for a cut at begin. The caller
// guarantees 0 < begin < len(text).
func adjustBegin(text Text, begin int, policy Policy) int {
	if !IsLowSurrogate(text[begin]) {
		return begin
	}
	switch policy {
	case Keep:
		return begin - 1
	case Discard:
		return begin + 1
	}
	return begin
}

// adjustEnd returns the effective end index for a cut at end. The caller
// guarantees 0 < end < len(text).
func adjustEnd(text Text, end int, policy Policy) int {
	if !IsLowSurrogate(text[end]) {
		return end
	}
	switch policy {
	case Keep:
		return end + 1
	case Discard:
		return end - 1
	}
	return end
}

// SliceFromString is like [SliceFrom] for a Go string. The index counts UTF-16
// code units of s, the convention used by LSP positions and JavaScript string
// offsets. Isolated surrogates left by [Split] are replaced with U+FFFD.
func SliceFromString(s string, begin int, policy Policy) (string, error) {
	t, err := SliceFrom(FromString(s), begin, policy)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// SliceBetweenString is like [SliceBetween] for a Go string. The indices count
// UTF-16 code units of s. Isolated surrogates left by [Split] are replaced
// with U+FFFD.
func SliceBetweenString(s string, begin, end int, beginPolicy, endPolicy Policy) (string, error) {
	t, err := SliceBetween(FromString(s), begin, end, beginPolicy, endPolicy)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}
