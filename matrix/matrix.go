/*
Package matrix implements element-wise and product arithmetic on vectors
([]T) and row-major matrices ([][]T) of any numeric type.

A vector is valid when it is non-empty. A matrix is valid when it has at
least one row, its first row is non-empty and every row has the same length.
Operations reject invalid operands and mismatched shapes with errors that
match both a package sentinel and [check.ErrInvalidArgument]:

	_, err := matrix.Multiply(a, b)
	if errors.Is(err, matrix.ErrDimensionMismatch) {
		// columns of a != rows of b
	}

Results are always freshly allocated.
*/
package matrix

import (
	"fmt"

	"github.com/scalecode-solutions/runecut/check"
)

// Sentinel errors. Each one wraps [check.ErrInvalidArgument].
var (
	ErrInvalidMatrix     = fmt.Errorf("%w: matrix must be non-empty and every row must have the same length", check.ErrInvalidArgument)
	ErrSizeMismatch      = fmt.Errorf("%w: operands must be the same size", check.ErrInvalidArgument)
	ErrDimensionMismatch = fmt.Errorf("%w: columns of the left operand must equal rows of the right operand", check.ErrInvalidArgument)
)

// Number is the element constraint for arithmetic operations.
type Number = check.Number

// Valid reports whether v is a valid vector.
func Valid[T any](v []T) bool {
	return len(v) != 0
}

// Valid2D reports whether m is a valid matrix.
func Valid2D[T any](m [][]T) bool {
	if len(m) == 0 {
		return false
	}
	cols := len(m[0])
	if cols == 0 {
		return false
	}
	for _, row := range m {
		if len(row) != cols {
			return false
		}
	}
	return true
}

// Dims returns the number of rows and columns of m. The result is only
// meaningful for a valid matrix.
func Dims[T any](m [][]T) (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

func alloc[T any](rows, cols int) [][]T {
	backing := make([]T, rows*cols)
	m := make([][]T, rows)
	for r := range m {
		m[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return m
}

func validate[T any](name string, v []T) error {
	if !Valid(v) {
		return fmt.Errorf("%s: %w", name, ErrInvalidMatrix)
	}
	return nil
}

func validate2D[T any](name string, m [][]T) error {
	if !Valid2D(m) {
		return fmt.Errorf("%s: %w", name, ErrInvalidMatrix)
	}
	return nil
}
