// SPDX-License-Identifier: MIT

package dynamics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vitrix/matrix"
	"github.com/katalvlaran/vitrix/matrix/ops"
)

// validateBonds is the single shape gate for every entry point: both
// matrices non-empty and of identical N×D shape. N < D is left to the
// Gram inversion, which reports it as ErrSingularMatrix.
func validateBonds[T matrix.Float](initial, final matrix.View[T]) error {
	if err := matrix.ValidateNonEmpty(initial); err != nil {
		return fmt.Errorf("initial %dx%d: %w", initial.Rows(), initial.Cols(), ErrShapeMismatch)
	}
	if err := matrix.ValidateNonEmpty(final); err != nil {
		return fmt.Errorf("final %dx%d: %w", final.Rows(), final.Cols(), ErrShapeMismatch)
	}
	if err := matrix.ValidateSameShape(initial, final); err != nil {
		return fmt.Errorf("initial %dx%d vs final %dx%d: %w",
			initial.Rows(), initial.Cols(), final.Rows(), final.Cols(), ErrShapeMismatch)
	}

	return nil
}

// AffineLocalStrain calculates the affine local strain of a particle given
// its local configurations (bond vectors, one per row) at two times.
//
// The result J (D×D) is the normal-equations solution of initial·J = final:
//
//	J = (initialᵗ·initial)⁻¹ · (initialᵗ·final)
//
// Errors:
//   - ErrShapeMismatch  if the inputs are empty or differ in shape.
//   - ErrSingularMatrix if initialᵗ·initial is singular within tolerance.
//
// Complexity: O(N·D² + D³).
func AffineLocalStrain[T matrix.Float](initial, final matrix.View[T]) (*matrix.Dense[T], error) {
	if err := validateBonds(initial, final); err != nil {
		return nil, fmt.Errorf("AffineLocalStrain: %w", err)
	}

	v, err := ops.MulTransA(initial, initial)
	if err != nil {
		return nil, fmt.Errorf("AffineLocalStrain: %w", err)
	}
	w, err := ops.MulTransA(initial, final)
	if err != nil {
		return nil, fmt.Errorf("AffineLocalStrain: %w", err)
	}

	vInv, err := ops.Inverse(v.View())
	if errors.Is(err, matrix.ErrSingular) {
		return nil, fmt.Errorf("AffineLocalStrain: %w", ErrSingularMatrix)
	}
	if err != nil {
		return nil, fmt.Errorf("AffineLocalStrain: %w", err)
	}

	j, err := ops.Mul(vInv.View(), w.View())
	if err != nil {
		return nil, fmt.Errorf("AffineLocalStrain: %w", err)
	}

	return j, nil
}

// NonaffineAndAffineLocalStrain calculates the non-affine and affine local
// strain of a particle given its local configurations at two times.
//
// Returns:
//   - D²_min = Σ_ij (initial·J − final)_ij², always ≥ 0.
//   - J, as returned by AffineLocalStrain.
//
// Errors of AffineLocalStrain are returned unchanged with (0, nil).
func NonaffineAndAffineLocalStrain[T matrix.Float](initial, final matrix.View[T]) (T, *matrix.Dense[T], error) {
	j, err := AffineLocalStrain(initial, final)
	if err != nil {
		return 0, nil, err
	}

	d2min, err := residual(initial, final, j)
	if err != nil {
		return 0, nil, fmt.Errorf("NonaffineAndAffineLocalStrain: %w", err)
	}

	return d2min, j, nil
}

// NonaffineLocalStrain calculates D²_min only; see
// NonaffineAndAffineLocalStrain.
func NonaffineLocalStrain[T matrix.Float](initial, final matrix.View[T]) (T, error) {
	d2min, _, err := NonaffineAndAffineLocalStrain(initial, final)
	if err != nil {
		return 0, err
	}

	return d2min, nil
}

// residual returns Σ (initial·J − final)².
func residual[T matrix.Float](initial, final matrix.View[T], j *matrix.Dense[T]) (T, error) {
	predicted, err := ops.Mul(initial, j.View())
	if err != nil {
		return 0, err
	}
	r, err := ops.Sub(predicted.View(), final)
	if err != nil {
		return 0, err
	}

	return ops.FrobeniusSq(r.View()), nil
}
