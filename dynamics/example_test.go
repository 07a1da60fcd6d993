package dynamics_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vitrix/dynamics"
	"github.com/katalvlaran/vitrix/matrix"
)

// ExampleNonaffineAndAffineLocalStrain measures a uniform 2× dilation of a
// three-neighbor 2-D neighborhood: the map is purely affine, so D²_min = 0.
func ExampleNonaffineAndAffineLocalStrain() {
	initial, _ := matrix.NewView([]float64{
		1, 0,
		0, 1,
		1, 1,
	}, 3, 2)
	final, _ := matrix.NewView([]float64{
		2, 0,
		0, 2,
		2, 2,
	}, 3, 2)

	d2min, j, err := dynamics.NonaffineAndAffineLocalStrain(initial, final)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range j.ToRows() {
		fmt.Printf("[%.3f %.3f]\n", row[0], row[1])
	}
	fmt.Printf("D2min=%.6f\n", d2min)
	// Output:
	// [2.000 0.000]
	// [0.000 2.000]
	// D2min=0.000000
}

// ExampleAffineLocalStrain_singular shows the failure for collinear bonds.
func ExampleAffineLocalStrain_singular() {
	initial, _ := matrix.NewView([]float64{
		1, 0,
		2, 0,
		3, 0,
	}, 3, 2)

	_, err := dynamics.AffineLocalStrain(initial, initial)
	fmt.Println(errors.Is(err, dynamics.ErrSingularMatrix))
	fmt.Println(dynamics.KindOf(err))
	// Output:
	// true
	// singular_matrix
}
