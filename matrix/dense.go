// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is the owning, row-major counterpart of View, storing elements in a
// flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T Float] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense[T Float](rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity[T Float](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromRows copies a rectangular [][]T into a new Dense.
// Returns ErrBadShape for zero rows, zero columns, or ragged input.
// Complexity: O(r*c).
func FromRows[T Float](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: empty input: %w", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense[T]{r: r, c: c, data: make([]T, 0, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Raw returns the row-major backing slice. Writes through it modify m.
func (m *Dense[T]) Raw() []T {
	return m.data
}

// View returns a read-only View over m's storage without copying.
func (m *Dense[T]) View() View[T] {
	return View[T]{data: m.data, rows: m.r, cols: m.c, stride: m.c}
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// ToRows copies m into a freshly allocated [][]float64, the shape JSON
// encoders and host runtimes expect.
func (m *Dense[T]) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		row := make([]float64, m.c)
		for j := range row {
			row[j] = float64(m.data[i*m.c+j])
		}
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
