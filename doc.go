// Package vitrix measures how particle neighborhoods deform between two
// snapshots of a simulation.
//
// 🚀 What is vitrix?
//
//	A small, pure-Go library for local strain analysis:
//		• Affine fit: best-fit deformation tensor J of a neighborhood
//		• Non-affine residual: D²_min, what J cannot explain
//		• Generic over float32 and float64, one precision per call
//		• Zero-copy views over caller buffers (and gonum matrices)
//
// Under the hood, everything is organized under three packages:
//
//	dynamics/   — AffineLocalStrain, NonaffineLocalStrain, NonaffineAndAffineLocalStrain
//	matrix/     — Float constraint, View (borrowed) and Dense (owned) matrices, errors
//	matrix/ops/ — Mul, MulTransA, Sub, FrobeniusSq, pivoted LU, Solve, Inverse
//
// The vitrix command (cmd/vitrix) streams JSON neighborhoods through the
// same three operations.
//
//	go get github.com/katalvlaran/vitrix
package vitrix
