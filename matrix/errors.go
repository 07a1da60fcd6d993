// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with context via
// fmt.Errorf("ctx: %w", ErrX)); callers and tests match them with errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// ERROR PRIORITY (enforced in tests):
// shape -> dimension mismatch -> square -> numeric (singular).

var (
	// ErrBadShape is returned when a shape is invalid (rows<=0, cols<=0,
	// stride<cols, ragged rows, or a backing slice too short for the shape).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when LU finds a pivot at or below the
	// singularity tolerance (see ops.PivotTolerance).
	ErrSingular = errors.New("matrix: singular matrix")
)
