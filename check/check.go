/*
Package check validates function arguments.

Every function returns the checked value unchanged together with a nil error
when the condition holds. When it does not, the error is an [*ArgumentError]
that matches [ErrInvalidArgument] under [errors.Is]:

	begin, err := check.InsideRange(begin, 0, len(text), "begin")
	if err != nil {
		return nil, err
	}

The name parameter identifies the argument in the error message and may be
empty.
*/
package check

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidArgument is the sentinel matched by every error of this package.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected argument.
type ArgumentError struct {
	Name   string // Argument name, may be empty.
	Value  any    // The rejected value.
	Reason string // The violated condition, e.g. "must be positive".
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v %s", ErrInvalidArgument, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %s (%v) %s", ErrInvalidArgument, e.Name, e.Value, e.Reason)
}

// Unwrap returns [ErrInvalidArgument].
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Fail returns an [*ArgumentError] for the named argument. It is used by
// packages that perform their own checks but report them as invalid arguments.
func Fail(name string, value any, reason string) error {
	return &ArgumentError{Name: name, Value: value, Reason: reason}
}

// Number is satisfied by all integer and floating point types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// NotNil checks that value is not nil. Typed nil pointers, slices, maps,
// channels, functions and interfaces stored in value count as nil.
func NotNil[T any](value T, name string) (T, error) {
	if IsNil(value) {
		return value, Fail(name, "nil", "must not be nil")
	}
	return value, nil
}

// IsNil reports whether value is nil or holds a nil pointer, slice, map,
// channel, function or interface.
func IsNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// GreaterThan checks that value > bound.
func GreaterThan[T cmp.Ordered](value, bound T, name string) (T, error) {
	if value <= bound {
		return value, Fail(name, value, fmt.Sprintf("must be greater than %v", bound))
	}
	return value, nil
}

// GreaterThanOrEqual checks that value >= bound.
func GreaterThanOrEqual[T cmp.Ordered](value, bound T, name string) (T, error) {
	if value < bound {
		return value, Fail(name, value, fmt.Sprintf("must be greater than or equal to %v", bound))
	}
	return value, nil
}

// LessThan checks that value < bound.
func LessThan[T cmp.Ordered](value, bound T, name string) (T, error) {
	if value >= bound {
		return value, Fail(name, value, fmt.Sprintf("must be less than %v", bound))
	}
	return value, nil
}

// LessThanOrEqual checks that value <= bound.
func LessThanOrEqual[T cmp.Ordered](value, bound T, name string) (T, error) {
	if value > bound {
		return value, Fail(name, value, fmt.Sprintf("must be less than or equal to %v", bound))
	}
	return value, nil
}

// InsideRange checks that min <= value <= max.
func InsideRange[T cmp.Ordered](value, min, max T, name string) (T, error) {
	if value < min || value > max {
		return value, Fail(name, value, fmt.Sprintf("must be inside [%v, %v]", min, max))
	}
	return value, nil
}

// Positive checks that value > 0.
func Positive[T Number](value T, name string) (T, error) {
	if value <= 0 {
		return value, Fail(name, value, "must be positive")
	}
	return value, nil
}

// Negative checks that value < 0.
func Negative[T Number](value T, name string) (T, error) {
	if value >= 0 {
		return value, Fail(name, value, "must be negative")
	}
	return value, nil
}

// Percent checks that value lies in [0, 100].
func Percent[T Number](value T, name string) (T, error) {
	if value < 0 || value > 100 {
		return value, Fail(name, value, "must be a percentage between 0 and 100")
	}
	return value, nil
}

// Length checks that len(s) == length.
func Length[S ~[]E, E any](s S, length int, name string) (S, error) {
	if len(s) != length {
		return s, Fail(name, len(s), fmt.Sprintf("length must be %d", length))
	}
	return s, nil
}
