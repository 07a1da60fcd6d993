// Package dynamics computes the local strain of a particle neighborhood
// between two configurations.
//
// 🚀 What is local strain?
//
//	Given the bond vectors from a central particle to its N neighbors at two
//	instants (initial and final, both N×D), the best-fit affine tensor J
//	minimizes Σ |initial_n·J − final_n|². Whatever J cannot explain is the
//	non-affine residual D²_min, the standard local-disorder measure in
//	granular, glassy and molecular deformation analysis.
//
// Algorithm Outline:
//  1. V = initialᵗ·initial   (D×D Gram matrix)
//  2. W = initialᵗ·final     (D×D cross matrix)
//  3. J = V⁻¹·W              (pivoted LU inverse)
//  4. R = initial·J − final
//  5. D²_min = Σ R_ij²
//
// ⚙️ Usage:
//
//	initial, _ := matrix.NewView(bonds0, n, 3)
//	final, _ := matrix.NewView(bonds1, n, 3)
//
//	d2min, j, err := dynamics.NonaffineAndAffineLocalStrain(initial, final)
//	if errors.Is(err, dynamics.ErrSingularMatrix) {
//	  // neighborhood is degenerate (collinear, coplanar, or N < D)
//	}
//
// Errors:
//   - ErrShapeMismatch  — initial and final differ in shape, or are empty.
//   - ErrSingularMatrix — the Gram matrix is singular or ill-conditioned.
//
// Every function is generic over matrix.Float and runs entirely in that
// precision. Functions are pure: inputs are read through non-owning views,
// results are freshly allocated, and nothing is cached between calls, so
// concurrent calls need no coordination.
//
// Complexity: O(N·D²) time, O(N·D) memory per call.
package dynamics
