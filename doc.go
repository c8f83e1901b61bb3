/*
Package runecut slices UTF-16 text without silently breaking surrogate pairs.

Many systems count text positions in UTF-16 code units: the Language Server
Protocol, JavaScript and Java strings, Telegram message entities, Windows
APIs. In UTF-16 every character above U+FFFF is stored as two code units, a
high surrogate followed by a low surrogate. An offset computed elsewhere can
land between the two, and cutting there leaves half a character on each side.

# Overview

Using this package, you can:
  - Slice a [Text] from an offset to its end with [SliceFrom]
  - Slice a [Text] between two offsets with [SliceBetween] or
    [SliceBetweenPolicy]
  - Do the same on Go strings with UTF-16 offsets using [SliceFromString] and
    [SliceBetweenString]
  - Inspect code units with [Classify], [IsHighSurrogate] and
    [IsLowSurrogate]
  - Join arbitrary elements with [Join] and [JoinSeq]

# Boundary Policies

When a cut index falls between the halves of a pair, a [Policy] decides what
happens to the pair:
  - [Split]: cut exactly at the index. The result contains an isolated
    surrogate. This is the fastest option and is never corrected.
  - [Keep]: move the cut away from the result's interior so the pair stays
    whole in the result.
  - [Discard]: move the cut into the result's interior so the pair is left out.

For "A𝔼Ѝ", stored as the units A, U+D835, U+DD3C, Ѝ:

	t := runecut.FromString("A𝔼Ѝ")
	runecut.SliceFrom(t, 2, runecut.Keep)     // "𝔼Ѝ"
	runecut.SliceFrom(t, 2, runecut.Discard)  // "Ѝ"
	runecut.SliceBetween(t, 0, 2, runecut.Keep, runecut.Keep) // "A𝔼"

A cut is considered to be inside a pair only when the unit at the cut index
is a low surrogate. Cuts at 0 and at the length of the text are never
adjusted. The text is not checked for well-formedness.

# Errors

Invalid arguments (a nil [Text], an unset [Policy], an index out of range, or
a begin index after the end index) are reported with errors matching
[check.ErrInvalidArgument]. Indices are never clamped.

All functions are pure and safe for concurrent use. Results never share
memory with their inputs.
*/
package runecut
