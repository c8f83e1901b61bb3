// Package floats compares floating point values with a tolerance.
package floats

import (
	"math"
	"unsafe"
)

// Default tolerances used by the functions without an explicit epsilon.
const (
	DefaultEpsilon32 = 1e-5 // for float32 values
	DefaultEpsilon64 = 1e-9 // for float64 values
)

// Float is satisfied by float32, float64 and types derived from them.
type Float interface {
	~float32 | ~float64
}

// DefaultEpsilon returns [DefaultEpsilon32] for 32-bit types and
// [DefaultEpsilon64] otherwise.
func DefaultEpsilon[T Float]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(DefaultEpsilon32)
	}
	return T(DefaultEpsilon64)
}

// EqualEpsilon reports whether |a-b| <= epsilon.
func EqualEpsilon[T Float](a, b, epsilon T) bool {
	return math.Abs(float64(a-b)) <= float64(epsilon)
}

// LessEpsilon reports whether a < b and the two are not equal within epsilon.
func LessEpsilon[T Float](a, b, epsilon T) bool {
	return a < b && !EqualEpsilon(a, b, epsilon)
}

// GreaterEpsilon reports whether a > b and the two are not equal within
// epsilon.
func GreaterEpsilon[T Float](a, b, epsilon T) bool {
	return a > b && !EqualEpsilon(a, b, epsilon)
}

// LessOrEqualEpsilon reports whether a < b or the two are equal within
// epsilon.
func LessOrEqualEpsilon[T Float](a, b, epsilon T) bool {
	return a < b || EqualEpsilon(a, b, epsilon)
}

// GreaterOrEqualEpsilon reports whether a > b or the two are equal within
// epsilon.
func GreaterOrEqualEpsilon[T Float](a, b, epsilon T) bool {
	return a > b || EqualEpsilon(a, b, epsilon)
}

// Equal is [EqualEpsilon] with the default tolerance for T.
func Equal[T Float](a, b T) bool {
	return EqualEpsilon(a, b, DefaultEpsilon[T]())
}

// Less is [LessEpsilon] with the default tolerance for T.
func Less[T Float](a, b T) bool {
	return LessEpsilon(a, b, DefaultEpsilon[T]())
}

// Greater is [GreaterEpsilon] with the default tolerance for T.
func Greater[T Float](a, b T) bool {
	return GreaterEpsilon(a, b, DefaultEpsilon[T]())
}

// LessOrEqual is [LessOrEqualEpsilon] with the default tolerance for T.
func LessOrEqual[T Float](a, b T) bool {
	return LessOrEqualEpsilon(a, b, DefaultEpsilon[T]())
}

// GreaterOrEqual is [GreaterOrEqualEpsilon] with the default tolerance for T.
func GreaterOrEqual[T Float](a, b T) bool {
	return GreaterOrEqualEpsilon(a, b, DefaultEpsilon[T]())
}
