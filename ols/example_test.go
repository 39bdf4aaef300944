package ols_test

import (
	"fmt"

	"github.com/jobohobobobo/linmod/matrix"
	"github.com/jobohobobobo/linmod/ols"
)

// ExampleFit estimates a two-predictor model and prints the headline
// quantities.
func ExampleFit() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0},
		{0, 1},
		{1, 1},
		{2, 1},
	})
	y := []float64{1, 2, 3, 5}

	res, err := ols.Fit(X, y)
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}

	fmt.Printf("coeffs: [%.4f %.4f]\n", res.Coeffs[0], res.Coeffs[1])
	fmt.Printf("ssr: %.4f  sigma2: %.4f  df: %d\n", res.SSR, res.Sigma2, res.DF)
	// Output:
	// coeffs: [1.3333 2.0000]
	// ssr: 0.3333  sigma2: 0.3333  df: 1
}

// ExampleFit_qrSolver runs the same model through the QR path.
func ExampleFit_qrSolver() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0},
		{0, 1},
		{1, 1},
		{2, 1},
	})
	y := []float64{1, 2, 3, 5}

	res, err := ols.Fit(X, y, ols.WithSolver(ols.SolverQR))
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}

	fmt.Printf("solver: %s\n", res.Solver)
	fmt.Printf("coeffs: [%.4f %.4f]\n", res.Coeffs[0], res.Coeffs[1])
	// Output:
	// solver: qr
	// coeffs: [1.3333 2.0000]
}
