package matrix_test

import (
	"testing"

	"github.com/katalvlaran/vitrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](0, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense[float32](5, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestSetGet validates Set followed by At, and bounds errors on both.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestFromRows covers copying, ragged input and empty input.
func TestFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Raw())

	src[0][0] = 100 // FromRows copies
	require.Equal(t, 1.0, m.Raw()[0])

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows([][]float64{})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestIdentityAndClone checks Identity contents and Clone independence.
func TestIdentityAndClone(t *testing.T) {
	id, err := matrix.Identity[float64](3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.ToRows())

	c := id.Clone()
	require.NoError(t, c.Set(0, 0, 5))
	v, _ := id.At(0, 0)
	require.Equal(t, 1.0, v)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestGonumRoundTrip verifies both directions share storage.
func TestGonumRoundTrip(t *testing.T) {
	g := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	sub := g.Slice(1, 3, 1, 3).(*mat.Dense) // 2x2 window, stride 3
	v, err := matrix.FromGonum(sub)
	require.NoError(t, err)
	require.Equal(t, 3, v.Stride())
	require.Equal(t, []float64{5, 6}, v.Row(0))
	require.Equal(t, []float64{8, 9}, v.Row(1))

	g.Set(2, 2, -9)
	x, _ := v.At(1, 1)
	require.Equal(t, -9.0, x)

	d, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	gd := matrix.ToGonum(d)
	gd.Set(0, 1, 20)
	y, _ := d.At(0, 1)
	require.Equal(t, 20.0, y)

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromGonum(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
