package ols

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/jobohobobobo/linmod/matrix"
)

// solveQR estimates Bhat from a QR factorization of the design, using
// gonum as an independent solver. The crossproduct inverse needed for the
// covariance matrix is also computed through gonum, so the whole path
// shares no arithmetic with solveNormal.
func solveQR(X matrix.Matrix, y []float64) ([]float64, matrix.Matrix, error) {
	n, p := X.Rows(), X.Cols()

	flat, err := flatten(X)
	if err != nil {
		return nil, nil, olsErrorf(opSolve, err)
	}
	xd := mat.NewDense(n, p, flat)
	yv := mat.NewVecDense(n, append([]float64(nil), y...))

	var qr mat.QR
	qr.Factorize(xd)

	var betaVec mat.VecDense
	if err := classifyQR(opSolve, qr.SolveVecTo(&betaVec, false, yv)); err != nil {
		return nil, nil, err
	}

	var gram, inv mat.Dense
	gram.Mul(xd.T(), xd)
	if err := classifyQR(opInvert, inv.Inverse(&gram)); err != nil {
		return nil, nil, err
	}

	beta := make([]float64, p)
	for j := range beta {
		beta[j] = betaVec.AtVec(j)
	}

	invGram, err := matrix.NewDenseFromData(p, p, inv.RawMatrix().Data)
	if err != nil {
		return nil, nil, olsErrorf(opInvert, err)
	}

	return beta, invGram, nil
}

// classifyQR maps gonum's error conventions onto the package sentinels.
// An infinite mat.Condition means the factorization found the matrix
// exactly singular. A finite condition number is only a conditioning
// warning and still carries a usable solution, so it is swallowed.
func classifyQR(stage string, err error) error {
	if err == nil {
		return nil
	}
	var cond mat.Condition
	if !errors.As(err, &cond) {
		return fmt.Errorf("ols: %s: qr: %w", stage, err)
	}
	if math.IsInf(float64(cond), 1) {
		return fmt.Errorf("ols: %s: qr: %w", stage, ErrSingularModel)
	}

	return nil
}

// flatten copies X into row-major order for gonum. Dense inputs are
// copied straight from their backing slice.
func flatten(X matrix.Matrix) ([]float64, error) {
	if d, ok := X.(*matrix.Dense); ok {
		raw := d.RawData()
		out := make([]float64, len(raw))
		copy(out, raw)

		return out, nil
	}

	rows, cols := X.Rows(), X.Cols()
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}
