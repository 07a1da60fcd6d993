// SPDX-License-Identifier: MIT

package dynamics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vitrix/matrix"
)

var (
	// ErrSingularMatrix indicates that the Gram matrix initialᵗ·initial is
	// not invertible: fewer than D independent bond vectors. It wraps
	// matrix.ErrSingular, so errors.Is matches either sentinel.
	ErrSingularMatrix = fmt.Errorf("dynamics: gram matrix not invertible: %w", matrix.ErrSingular)

	// ErrShapeMismatch indicates initial and final are empty or differ in
	// shape. It wraps matrix.ErrDimensionMismatch.
	ErrShapeMismatch = fmt.Errorf("dynamics: bond matrices shape mismatch: %w", matrix.ErrDimensionMismatch)
)

// Kind classifies an error returned by this package. Boundary adapters map
// kinds onto their own error vocabulary instead of matching sentinels.
type Kind int

const (
	// KindNone is the Kind of a nil error.
	KindNone Kind = iota

	// KindSingularMatrix matches ErrSingularMatrix.
	KindSingularMatrix

	// KindShapeMismatch matches ErrShapeMismatch.
	KindShapeMismatch

	// KindUnknown is any other non-nil error.
	KindUnknown
)

// String returns the snake_case name used on the wire.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSingularMatrix:
		return "singular_matrix"
	case KindShapeMismatch:
		return "shape_mismatch"
	default:
		return "unknown"
	}
}

// KindOf classifies err.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrSingularMatrix):
		return KindSingularMatrix
	case errors.Is(err, ErrShapeMismatch):
		return KindShapeMismatch
	default:
		return KindUnknown
	}
}
