// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape checks used by ops and dynamics.
//   - Return wrapped sentinels so call sites can match with errors.Is.
//
// All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNonEmpty ensures m has at least one row and one column.
// The zero View is rejected here.
// Complexity: O(1).
func ValidateNonEmpty(m Shape) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrBadShape)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Shape) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: rows %d != %d", a.Rows(), b.Rows()), ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: cols %d != %d", a.Cols(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Shape) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols == b.Rows for a·b.
// Complexity: O(1).
func ValidateMulCompatible(a, b Shape) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateTransMulCompatible checks a.Rows == b.Rows for aᵗ·b.
// Complexity: O(1).
func ValidateTransMulCompatible(a, b Shape) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateTransMulCompatible: (%dx%d)ᵗ · %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}
