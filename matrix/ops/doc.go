// Package ops provides the generic dense kernels used by the dynamics package:
// products (Mul, MulTransA), residuals (Sub, FrobeniusSq), and an LU
// decomposition with partial pivoting backing Solve and Inverse.
//
// Every kernel reads its operands through matrix.View, never writes to them,
// and returns a freshly allocated *matrix.Dense. Kernels are pure and safe
// for concurrent use.
//
// Precision: a call instantiated at T accumulates in T. There is no hidden
// promotion to float64 for float32 inputs.
package ops
