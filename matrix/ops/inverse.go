// Package ops provides advanced matrix operations for the vitrix/matrix package.
// Inverse computes the inverse of a square matrix using pivoted LU decomposition
// and forward/backward substitution against the identity.
package ops

import (
	"fmt"

	"github.com/katalvlaran/vitrix/matrix"
)

// Inverse returns the inverse of the square matrix m, or an error if m is
// not square (ErrNonSquare) or singular within tolerance (ErrSingular).
// Blueprint:
//
//	Stage 1 (Decompose): P·A = L·U with partial pivoting.
//	Stage 2 (Prepare): build the n×n identity as right-hand side.
//	Stage 3 (Execute): solve A·X = I for all columns at once.
//
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Inverse[T matrix.Float](m matrix.View[T]) (*matrix.Dense[T], error) {
	// Stage 1: LU decomposition
	f, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	// Stage 2: identity right-hand side
	id, err := matrix.Identity[T](f.Dim())
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	// Stage 3: solve
	inv, err := f.Solve(id.View())
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	return inv, nil
}
