// Package matrix provides the numeric containers shared by vitrix packages.
//
// The matrix package provides:
//
//   - Float, the element constraint (~float32 | ~float64) every kernel is
//     generic over. One instantiation means one precision for the whole call.
//   - View, a non-owning, read-only window (data + shape + stride) over
//     caller memory. Creating a View never copies.
//   - Dense, an owning row-major matrix returned by kernels.
//   - Sentinel errors and shape validators used by matrix/ops and dynamics.
//   - Zero-copy interop with gonum (FromGonum, ToGonum) for float64 data.
//
// Views are read-only by contract: kernels in this module never write through
// a View, so the same View may be shared by concurrent callers.
package matrix
