package matrix

import "fmt"

// Transpose turns the row vector v into a column matrix of len(v) rows.
func Transpose[T any](v []T) ([][]T, error) {
	if err := validate("Transpose", v); err != nil {
		return nil, err
	}
	result := alloc[T](len(v), 1)
	for i, e := range v {
		result[i][0] = e
	}
	return result, nil
}

// Transpose2D returns the transpose of m.
func Transpose2D[T any](m [][]T) ([][]T, error) {
	if err := validate2D("Transpose2D", m); err != nil {
		return nil, err
	}
	rows, cols := Dims(m)
	result := alloc[T](cols, rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			result[c][r] = m[r][c]
		}
	}
	return result, nil
}

// Add returns the element-wise sum of two vectors of the same length.
func Add[T Number](a, b []T) ([]T, error) {
	if err := validate("Add", a); err != nil {
		return nil, err
	}
	if err := validate("Add", b); err != nil {
		return nil, err
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("Add: %d != %d: %w", len(a), len(b), ErrSizeMismatch)
	}
	result := make([]T, len(a))
	for i := range a {
		result[i] = a[i] + b[i]
	}
	return result, nil
}

// Add2D returns the element-wise sum of two matrices of the same shape.
func Add2D[T Number](a, b [][]T) ([][]T, error) {
	if err := validate2D("Add2D", a); err != nil {
		return nil, err
	}
	if err := validate2D("Add2D", b); err != nil {
		return nil, err
	}
	rows, cols := Dims(a)
	if rowsB, colsB := Dims(b); rows != rowsB || cols != colsB {
		return nil, fmt.Errorf("Add2D: %dx%d != %dx%d: %w", rows, cols, rowsB, colsB, ErrSizeMismatch)
	}
	result := alloc[T](rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			result[r][c] = a[r][c] + b[r][c]
		}
	}
	return result, nil
}

// MultiplyVector multiplies the row vector v (1×n) by the matrix m (n×k) and
// returns a row vector of length k.
func MultiplyVector[T Number](v []T, m [][]T) ([]T, error) {
	if err := validate("MultiplyVector", v); err != nil {
		return nil, err
	}
	if err := validate2D("MultiplyVector", m); err != nil {
		return nil, err
	}
	rows, cols := Dims(m)
	if len(v) != rows {
		return nil, fmt.Errorf("MultiplyVector: 1x%d * %dx%d: %w", len(v), rows, cols, ErrDimensionMismatch)
	}
	result := make([]T, cols)
	for r, e := range v {
		for c := 0; c < cols; c++ {
			result[c] += e * m[r][c]
		}
	}
	return result, nil
}

// MultiplyColumn multiplies the column matrix m (n×1) by the row vector v
// (1×k) and returns their n×k outer product.
func MultiplyColumn[T Number](m [][]T, v []T) ([][]T, error) {
	if err := validate2D("MultiplyColumn", m); err != nil {
		return nil, err
	}
	if err := validate("MultiplyColumn", v); err != nil {
		return nil, err
	}
	rows, cols := Dims(m)
	if cols != 1 {
		return nil, fmt.Errorf("MultiplyColumn: %dx%d * 1x%d: %w", rows, cols, len(v), ErrDimensionMismatch)
	}
	result := alloc[T](rows, len(v))
	for r := 0; r < rows; r++ {
		for c, e := range v {
			result[r][c] = m[r][0] * e
		}
	}
	return result, nil
}

// Multiply returns the matrix product a×b.
func Multiply[T Number](a, b [][]T) ([][]T, error) {
	if err := validate2D("Multiply", a); err != nil {
		return nil, err
	}
	if err := validate2D("Multiply", b); err != nil {
		return nil, err
	}
	rowsA, colsA := Dims(a)
	rowsB, colsB := Dims(b)
	if colsA != rowsB {
		return nil, fmt.Errorf("Multiply: %dx%d * %dx%d: %w", rowsA, colsA, rowsB, colsB, ErrDimensionMismatch)
	}
	result := alloc[T](rowsA, colsB)
	for r := 0; r < rowsA; r++ {
		for k := 0; k < colsA; k++ {
			for c := 0; c < colsB; c++ {
				result[r][c] += a[r][k] * b[k][c]
			}
		}
	}
	return result, nil
}

// Scale multiplies every element of v by scalar.
func Scale[T Number](v []T, scalar T) ([]T, error) {
	if err := validate("Scale", v); err != nil {
		return nil, err
	}
	result := make([]T, len(v))
	for i, e := range v {
		result[i] = e * scalar
	}
	return result, nil
}

// Scale2D multiplies every element of m by scalar.
func Scale2D[T Number](m [][]T, scalar T) ([][]T, error) {
	if err := validate2D("Scale2D", m); err != nil {
		return nil, err
	}
	rows, cols := Dims(m)
	result := alloc[T](rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			result[r][c] = m[r][c] * scalar
		}
	}
	return result, nil
}
