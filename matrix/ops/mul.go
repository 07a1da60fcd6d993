package ops

import (
	"fmt"

	"github.com/katalvlaran/vitrix/matrix"
)

// Mul returns the product a·b.
// Returns ErrDimensionMismatch if a.Cols() != b.Rows().
// Complexity: O(r·k·c) time, O(r·c) memory.
func Mul[T matrix.Float](a, b matrix.View[T]) (*matrix.Dense[T], error) {
	// Stage 1: Validate
	if err := matrix.ValidateNonEmpty(a); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if err := matrix.ValidateNonEmpty(b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}

	// Stage 2: Prepare
	out, err := matrix.NewDense[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	dst := out.Raw()
	c := b.Cols()

	// Stage 3: Execute (i-k-j order keeps b and dst rows hot)
	for i := 0; i < a.Rows(); i++ {
		ai := a.Row(i)
		di := dst[i*c : (i+1)*c]
		for k, aik := range ai {
			if aik == 0 {
				continue
			}
			for j, bkj := range b.Row(k) {
				di[j] += aik * bkj
			}
		}
	}

	return out, nil
}

// MulTransA returns aᵗ·b without materializing aᵗ.
// With a == b this is the Gram matrix of a's rows.
// Returns ErrDimensionMismatch if a.Rows() != b.Rows().
// Complexity: O(n·ca·cb) time, O(ca·cb) memory.
func MulTransA[T matrix.Float](a, b matrix.View[T]) (*matrix.Dense[T], error) {
	// Stage 1: Validate
	if err := matrix.ValidateNonEmpty(a); err != nil {
		return nil, fmt.Errorf("MulTransA: %w", err)
	}
	if err := matrix.ValidateNonEmpty(b); err != nil {
		return nil, fmt.Errorf("MulTransA: %w", err)
	}
	if err := matrix.ValidateTransMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("MulTransA: %w", err)
	}

	// Stage 2: Prepare
	out, err := matrix.NewDense[T](a.Cols(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("MulTransA: %w", err)
	}
	dst := out.Raw()
	c := b.Cols()

	// Stage 3: Execute, one rank-1 update per shared row
	for n := 0; n < a.Rows(); n++ {
		an, bn := a.Row(n), b.Row(n)
		for i, ani := range an {
			if ani == 0 {
				continue
			}
			di := dst[i*c : (i+1)*c]
			for j, bnj := range bn {
				di[j] += ani * bnj
			}
		}
	}

	return out, nil
}

// Sub returns a − b.
// Returns ErrDimensionMismatch if shapes differ.
// Complexity: O(r·c).
func Sub[T matrix.Float](a, b matrix.View[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNonEmpty(a); err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}
	out, err := matrix.NewDense[T](a.Rows(), a.Cols())
	if err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}
	dst := out.Raw()
	c := a.Cols()
	for i := 0; i < a.Rows(); i++ {
		bi := b.Row(i)
		for j, aij := range a.Row(i) {
			dst[i*c+j] = aij - bi[j]
		}
	}

	return out, nil
}

// FrobeniusSq returns Σ a_ij², the squared Frobenius norm. Always ≥ 0.
// The zero View yields 0.
// Complexity: O(r·c).
func FrobeniusSq[T matrix.Float](a matrix.View[T]) T {
	var sum T
	for i := 0; i < a.Rows(); i++ {
		for _, x := range a.Row(i) {
			sum += x * x
		}
	}

	return sum
}
