// Package ops provides advanced matrix operations for the vitrix/matrix package.
package ops

import (
	"fmt"

	"github.com/katalvlaran/vitrix/matrix"
)

// PivotTolerance returns the threshold at or below which an LU pivot of an
// n×n matrix with largest entry magnitude maxAbs counts as zero:
// n · ε(T) · maxAbs.
func PivotTolerance[T matrix.Float](n int, maxAbs T) T {
	return T(n) * matrix.Epsilon[T]() * maxAbs
}

// LUFactors holds P·A = L·U packed in one n×n buffer: the strict lower
// triangle stores L (unit diagonal implied), the upper triangle stores U.
// perm[i] is the row of A that ended up in row i.
type LUFactors[T matrix.Float] struct {
	n    int
	lu   []T
	perm []int
	sign int // +1 or −1, parity of perm
}

// LU performs Doolittle LU decomposition with partial (row) pivoting on a
// square matrix m. The input is copied; m is never modified.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is non-empty and square.
//	Stage 2 (Prepare): copy m into the packed buffer, perm = identity.
//	Stage 3 (Execute): for each column k pick the row with max |a_ik|,
//	                   swap it up, reject it if ≤ PivotTolerance, eliminate below.
//
// Returns ErrNonSquare for non-square input and ErrSingular when a pivot is
// at or below tolerance (this includes the all-zero matrix).
// Complexity: O(n³) time, O(n²) memory.
func LU[T matrix.Float](m matrix.View[T]) (*LUFactors[T], error) {
	// Stage 1: Validate input shape
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, fmt.Errorf("LU: %w", err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("LU: %w", err)
	}
	n := m.Rows()

	// Stage 2: Prepare packed working copy
	f := &LUFactors[T]{n: n, lu: make([]T, n*n), perm: make([]int, n), sign: 1}
	for i := 0; i < n; i++ {
		copy(f.lu[i*n:(i+1)*n], m.Row(i))
		f.perm[i] = i
	}
	tol := PivotTolerance(n, matrix.MaxAbs(f.lu))

	// Stage 3: Execute elimination
	var (
		i, j, k, p int // loop indices and pivot row
		pivot, big T   // pivot value and its magnitude
		factor     T   // elimination multiplier l_ik
	)
	a := f.lu
	for k = 0; k < n; k++ {
		// 3.1: choose pivot row p = argmax_{i≥k} |a_ik|
		p, big = k, absT(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := absT(a[i*n+k]); v > big {
				p, big = i, v
			}
		}
		// big <= tol also catches maxAbs == 0 (tol == 0, big == 0)
		if !(big > tol) {
			return nil, fmt.Errorf("LU: pivot %d |%g| <= tolerance %g: %w", k, float64(big), float64(tol), matrix.ErrSingular)
		}

		// 3.2: swap rows k and p
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.sign = -f.sign
		}

		// 3.3: eliminate below the pivot
		pivot = a[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = a[i*n+k] / pivot
			a[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= factor * a[k*n+j]
			}
		}
	}

	// Stage 4: Finalize
	return f, nil
}

// Dim returns n for the n×n decomposed matrix.
func (f *LUFactors[T]) Dim() int { return f.n }

// Det returns det(A) = sign · Π u_ii.
func (f *LUFactors[T]) Det() T {
	d := T(f.sign)
	for i := 0; i < f.n; i++ {
		d *= f.lu[i*f.n+i]
	}

	return d
}

// Solve returns X with A·X = B, column by column via forward (L·y = P·b)
// and backward (U·x = y) substitution.
// Returns ErrDimensionMismatch if b.Rows() != n.
// Complexity: O(n²·c) time, O(n·c) memory.
func (f *LUFactors[T]) Solve(b matrix.View[T]) (*matrix.Dense[T], error) {
	// Stage 1: Validate
	if err := matrix.ValidateNonEmpty(b); err != nil {
		return nil, fmt.Errorf("LUFactors.Solve: %w", err)
	}
	if b.Rows() != f.n {
		return nil, fmt.Errorf("LUFactors.Solve: rhs has %d rows, want %d: %w", b.Rows(), f.n, matrix.ErrDimensionMismatch)
	}

	// Stage 2: Prepare, rows of B permuted by P
	n, c := f.n, b.Cols()
	x, err := matrix.NewDense[T](n, c)
	if err != nil {
		return nil, fmt.Errorf("LUFactors.Solve: %w", err)
	}
	dst := x.Raw()
	for i := 0; i < n; i++ {
		copy(dst[i*c:(i+1)*c], b.Row(f.perm[i]))
	}

	// Stage 3: Execute on all columns at once
	var (
		i, k, j int
		l, u    T
	)
	a := f.lu
	// Forward substitution: L·Y = P·B (unit diagonal)
	for i = 1; i < n; i++ {
		for k = 0; k < i; k++ {
			if l = a[i*n+k]; l == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				dst[i*c+j] -= l * dst[k*c+j]
			}
		}
	}
	// Backward substitution: U·X = Y
	for i = n - 1; i >= 0; i-- {
		for k = i + 1; k < n; k++ {
			if u = a[i*n+k]; u == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				dst[i*c+j] -= u * dst[k*c+j]
			}
		}
		u = a[i*n+i]
		for j = 0; j < c; j++ {
			dst[i*c+j] /= u
		}
	}

	// Stage 4: Finalize
	return x, nil
}

// Solve returns X with a·X = b for square a.
// Errors are those of LU and LUFactors.Solve.
func Solve[T matrix.Float](a, b matrix.View[T]) (*matrix.Dense[T], error) {
	f, err := LU(a)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return x, nil
}

func absT[T matrix.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
