package runecut

import (
	"fmt"
	"strings"

	"github.com/scalecode-solutions/runecut/check"
)

// Policy decides what happens to a surrogate pair when a cut index falls
// between its high and low code units.
//
// The zero value is not a valid policy. Functions taking a Policy reject it
// the same way they reject a missing argument.
type Policy uint8

// These are the boundary policies accepted by [SliceFrom], [SliceBetween] and
// [SliceBetweenPolicy].
const (
	Split   Policy = iota + 1 // Cut at the index, leaving an isolated surrogate.
	Keep                      // Move the cut outward so the pair stays whole.
	Discard                   // Move the cut inward so the pair is dropped.
)

var policyNames = [...]string{
	Split:   "split",
	Keep:    "keep",
	Discard: "discard",
}

// Valid reports whether p is one of [Split], [Keep] or [Discard].
func (p Policy) Valid() bool {
	return p >= Split && p <= Discard
}

// String returns the lower-case name of the policy.
func (p Policy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
	return policyNames[p]
}

// MarshalText implements [encoding.TextMarshaler].
func (p Policy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, check.Fail("policy", p, "is not a boundary policy")
	}
	return []byte(policyNames[p]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Names are matched
// case-insensitively.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePolicy returns the policy named s ("split", "keep" or "discard").
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p := Split; p <= Discard; p++ {
		if policyNames[p] == name {
			return p, nil
		}
	}
	return 0, check.Fail("policy", s, `must be one of "split", "keep", "discard"`)
}

// checkPolicy rejects the zero value and unknown policies.
func checkPolicy(p Policy, name string) error {
	if p == 0 {
		return check.Fail(name, "unset", "must not be nil")
	}
	if !p.Valid() {
		return check.Fail(name, uint8(p), "is not a boundary policy")
	}
	return nil
}
