// SPDX-License-Identifier: MIT

package matrix

import "unsafe"

// Float is the element constraint of every matrix and kernel in vitrix.
// Named types over float32/float64 are accepted.
type Float interface {
	~float32 | ~float64
}

// Shape is satisfied by View and *Dense. Validators only need dimensions.
type Shape interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int
}

// Epsilon returns the machine epsilon of T: 2⁻²³ for 32-bit types and
// 2⁻⁵² for 64-bit types.
func Epsilon[T Float]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(1.0 / (1 << 23))
	}

	return T(1.0 / (1 << 52))
}

// abs avoids a float64 round-trip through math.Abs for 32-bit callers.
func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// MaxAbs returns max |s[i]| (0 for an empty slice).
// Complexity: O(len(s)).
func MaxAbs[T Float](s []T) T {
	var m T
	for _, x := range s {
		if a := abs(x); a > m {
			m = a
		}
	}

	return m
}
