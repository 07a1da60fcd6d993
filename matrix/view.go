// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// viewErrorf wraps an underlying error with View constructor context.
func viewErrorf(method string, rows, cols, stride int, err error) error {
	return fmt.Errorf("%s(%dx%d, stride %d): %w", method, rows, cols, stride, err)
}

// View is a non-owning, read-only row-major window over caller memory.
// Element (i, j) lives at data[i*stride+j].
//
// A View borrows its backing slice: it never copies on construction and
// nothing in vitrix writes through it. Callers must not mutate the backing
// slice while a kernel is reading the View.
type View[T Float] struct {
	data       []T
	rows, cols int
	stride     int
}

// NewView wraps data as a rows×cols matrix with stride == cols.
// Returns ErrBadShape if rows or cols is non-positive or len(data) < rows*cols.
// Complexity: O(1), no allocation.
func NewView[T Float](data []T, rows, cols int) (View[T], error) {
	return NewStridedView(data, rows, cols, cols)
}

// NewStridedView wraps data as a rows×cols matrix whose consecutive rows are
// stride elements apart. That is the layout of gonum's blas64.General and of
// row slices of larger buffers.
// Stage 1 (Validate): rows, cols > 0; stride >= cols; data long enough.
// Stage 2 (Finalize): return the View header.
// Complexity: O(1), no allocation.
func NewStridedView[T Float](data []T, rows, cols, stride int) (View[T], error) {
	if rows <= 0 || cols <= 0 || stride < cols {
		return View[T]{}, viewErrorf("NewStridedView", rows, cols, stride, ErrBadShape)
	}
	if need := (rows-1)*stride + cols; len(data) < need {
		return View[T]{}, viewErrorf("NewStridedView", rows, cols, stride, ErrBadShape)
	}

	return View[T]{data: data, rows: rows, cols: cols, stride: stride}, nil
}

// Rows returns the number of rows in the view.
func (v View[T]) Rows() int { return v.rows }

// Cols returns the number of columns in the view.
func (v View[T]) Cols() int { return v.cols }

// Stride returns the distance between the starts of consecutive rows.
func (v View[T]) Stride() int { return v.stride }

// IsZero reports whether v is the zero View (no backing data, no shape).
func (v View[T]) IsZero() bool { return v.rows == 0 && v.cols == 0 }

// At retrieves the element at (row, col).
// Returns ErrOutOfRange for indices outside the view.
// Complexity: O(1).
func (v View[T]) At(row, col int) (T, error) {
	if row < 0 || row >= v.rows || col < 0 || col >= v.cols {
		return 0, fmt.Errorf("View.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return v.data[row*v.stride+col], nil
}

// Row returns row i as a sub-slice of the borrowed buffer (capacity clipped
// to the row). The slice aliases caller memory and must be treated as
// read-only. Panics if i is out of range, like slice indexing.
func (v View[T]) Row(i int) []T {
	off := i * v.stride
	if i < 0 || i >= v.rows {
		panic(fmt.Sprintf("matrix: View.Row(%d) out of range [0,%d)", i, v.rows))
	}

	return v.data[off : off+v.cols : off+v.cols]
}
