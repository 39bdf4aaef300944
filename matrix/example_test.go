// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/jobohobobobo/linmod/matrix"
)

// ExampleMul multiplies two small dense matrices.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})

	prod, _ := matrix.Mul(a, b)
	fmt.Print(prod)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleCrossprod builds the Gram matrix XᵀX of a tall design matrix — the
// first step of a normal-equation least-squares fit.
func ExampleCrossprod() {
	x, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0},
		{0, 1},
		{1, 1},
		{2, 1},
	})

	gram, _ := matrix.Crossprod(x)
	fmt.Print(gram)
	// Output:
	// [6, 3]
	// [3, 3]
}

// ExampleInverse inverts a 2×2 matrix via LU factorization.
func ExampleInverse() {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 1}})

	inv, _ := matrix.Inverse(a)
	fmt.Print(inv)
	// Output:
	// [1, -1]
	// [-1, 2]
}
