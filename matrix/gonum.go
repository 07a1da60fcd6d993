package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum borrows the storage of a gonum matrix as a View without copying.
// gonum's RawMatrix is row-major with an explicit stride, so the layouts match.
// Returns ErrBadShape for a nil or empty matrix.
func FromGonum(m *mat.Dense) (View[float64], error) {
	if m == nil || m.IsEmpty() {
		return View[float64]{}, fmt.Errorf("FromGonum: %w", ErrBadShape)
	}
	raw := m.RawMatrix()

	return NewStridedView(raw.Data, raw.Rows, raw.Cols, raw.Stride)
}

// ToGonum exposes d as a *mat.Dense sharing d's storage.
// Writes through either value are visible in both.
func ToGonum(d *Dense[float64]) *mat.Dense {
	return mat.NewDense(d.r, d.c, d.data)
}
