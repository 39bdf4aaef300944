package ols

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jobohobobobo/linmod/matrix"
)

// Stage tags used to prefix wrapped errors, so a failed fit reports which
// step of the pipeline rejected the inputs.
const (
	opValidate = "validate"
	opGram     = "crossproduct"
	opInvert   = "invert crossproduct"
	opSolve    = "solve"
)

// olsErrorf wraps err with the pipeline stage that produced it.
func olsErrorf(stage string, err error) error {
	return fmt.Errorf("ols: %s: %w", stage, err)
}

// Fit estimates the ordinary-least-squares model y = X·B + e.
//
// X is the n×p design matrix and y the response vector of length n. The
// inputs are never mutated and the returned Result shares no storage with
// them. On any failure Fit returns (nil, err): there is no partial result.
//
// The pipeline is
//
//	XᵀX → (XᵀX)⁻¹ → Xᵀy → Bhat → fitted → residuals → SSR → sigma² →
//	Cov = sigma²·(XᵀX)⁻¹ → standard errors → t, p, R².
//
// Dimensions are checked before any arithmetic; a design with zero rows or
// columns, or a response of the wrong length, yields ErrDimensionMismatch.
// A rank-deficient design yields ErrSingularModel, and a model with no
// residual degrees of freedom yields ErrInsufficientDF.
func Fit(X matrix.Matrix, y []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	if X == nil {
		return nil, olsErrorf(opValidate, matrix.ErrNilMatrix)
	}
	n, p := X.Rows(), X.Cols()
	if n == 0 || p == 0 {
		return nil, fmt.Errorf("ols: %s: empty design (%d×%d): %w", opValidate, n, p, ErrDimensionMismatch)
	}
	if len(y) != n {
		return nil, fmt.Errorf("ols: %s: design has %d rows, response has %d: %w",
			opValidate, n, len(y), ErrDimensionMismatch)
	}

	df := n - p
	if o.ImplicitIntercept {
		df--
	}
	if df <= 0 {
		return nil, fmt.Errorf("ols: %s: n=%d, p=%d gives df=%d: %w",
			opValidate, n, p, df, ErrInsufficientDF)
	}

	var (
		beta    []float64
		invGram matrix.Matrix
		err     error
	)
	switch o.Solver {
	case SolverQR:
		beta, invGram, err = solveQR(X, y)
	default:
		beta, invGram, err = solveNormal(X, y, o.PivotTol)
	}
	if err != nil {
		return nil, err
	}

	return assemble(X, y, beta, invGram, df, o)
}

// solveNormal computes Bhat = (XᵀX)⁻¹Xᵀy with the dense matrix kernels.
// It returns the coefficient vector and the inverted crossproduct, which
// the caller reuses for the covariance matrix.
func solveNormal(X matrix.Matrix, y []float64, pivTol float64) ([]float64, matrix.Matrix, error) {
	gram, err := matrix.Crossprod(X)
	if err != nil {
		return nil, nil, olsErrorf(opGram, err)
	}

	invGram, err := matrix.InverseTol(gram, pivTol)
	if err != nil {
		// Surface the package sentinel while keeping the matrix-level
		// cause visible to errors.Is.
		return nil, nil, fmt.Errorf("ols: %s: %w: %w", opInvert, ErrSingularModel, err)
	}

	xty, err := matrix.CrossprodVec(X, y)
	if err != nil {
		return nil, nil, olsErrorf(opGram, err)
	}

	beta, err := matrix.MatVec(invGram, xty)
	if err != nil {
		return nil, nil, olsErrorf(opSolve, err)
	}

	return beta, invGram, nil
}

// assemble derives every Result field from the solved coefficients.
// Shared by both solvers so their outputs are directly comparable.
func assemble(X matrix.Matrix, y, beta []float64, invGram matrix.Matrix, df int, o Options) (*Result, error) {
	n, p := X.Rows(), X.Cols()

	fitted, err := matrix.MatVec(X, beta)
	if err != nil {
		return nil, olsErrorf(opSolve, err)
	}
	resid := make([]float64, n)
	for i := range resid {
		resid[i] = y[i] - fitted[i]
	}

	// SSR is a plain scalar from the start, never a 1×1 matrix.
	ssr := floats.Dot(resid, resid)
	sigma2 := ssr / float64(df)

	cov, err := matrix.Scale(invGram, sigma2)
	if err != nil {
		return nil, olsErrorf(opSolve, err)
	}
	diag, err := matrix.Diagonal(cov)
	if err != nil {
		return nil, olsErrorf(opSolve, err)
	}

	se := make([]float64, p)
	tStats := make([]float64, p)
	pVals := make([]float64, p)
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	for j := range se {
		se[j] = math.Sqrt(diag[j])
		tStats[j] = beta[j] / se[j]
		pVals[j] = 2 * tDist.Survival(math.Abs(tStats[j]))
	}

	yMean := stat.Mean(y, nil)
	tss := 0.0
	for _, v := range y {
		d := v - yMean
		tss += d * d
	}
	r2, adjR2 := 0.0, 0.0
	if tss > 0 {
		r2 = 1 - ssr/tss
		adjR2 = 1 - (1-r2)*float64(n-1)/float64(df)
	}

	res := &Result{
		Coeffs:  beta,
		StdErrs: se,
		TStats:  tStats,
		PValues: pVals,
		Cov:     cov.(*matrix.Dense),
		SSR:     ssr,
		Sigma2:  sigma2,
		R2:      r2,
		AdjR2:   adjR2,
		N:       n,
		P:       p,
		DF:      df,
		Solver:  o.Solver,
	}
	if o.KeepResiduals {
		res.Fitted = fitted
		res.Residuals = resid
	}

	return res, nil
}
