package matrix_test

import (
	"fmt"

	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/matrix"
)

// ExampleFromRows multiplies two matrices and prints the product.
func ExampleFromRows() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})

	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Print(p)

	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleInverse inverts an upper-triangular 2x2 matrix.
func ExampleInverse() {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {0, 4}})

	inv, err := matrix.Inverse(m)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Print(inv)

	// Output:
	// [1, -0.5]
	// [0, 0.25]
}
