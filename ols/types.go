package ols

import "github.com/jobohobobobo/linmod/matrix"

// Solver selects the algorithm Fit uses to estimate the coefficients.
type Solver int

const (
	// SolverNormal solves the normal equations Bhat = (XᵀX)⁻¹Xᵀy with the
	// package's own dense kernels. It is the default and the fastest path
	// for well-conditioned designs.
	SolverNormal Solver = iota

	// SolverQR estimates Bhat from a QR factorization of X. It avoids
	// forming XᵀX for the solve step and is preferable when the design is
	// ill-conditioned.
	SolverQR
)

// String implements fmt.Stringer for log and test output.
func (s Solver) String() string {
	switch s {
	case SolverNormal:
		return "normal-equations"
	case SolverQR:
		return "qr"
	default:
		return "unknown"
	}
}

// Result holds every quantity produced by a single call to Fit.
// All slices have length P and all per-observation slices length N,
// and none of them alias the inputs.
type Result struct {
	// Coeffs holds the estimated coefficients Bhat, one per design column.
	Coeffs []float64

	// StdErrs holds the coefficient standard errors, sqrt of the diagonal
	// of Cov.
	StdErrs []float64

	// TStats holds Coeffs[i]/StdErrs[i]. A perfectly fitting model has
	// zero residual variance and therefore zero standard errors, so the
	// ratio is ±Inf for nonzero coefficients (and NaN for a coefficient
	// that is exactly zero).
	TStats []float64

	// PValues holds two-sided p-values for each t-statistic under the
	// Student-t distribution with DF degrees of freedom. An infinite
	// t-statistic yields a p-value of exactly zero.
	PValues []float64

	// Cov is the coefficient covariance matrix sigma²·(XᵀX)⁻¹ (p×p).
	Cov *matrix.Dense

	// Fitted and Residuals hold X·Bhat and y − X·Bhat respectively.
	// Both are nil when the fit ran with WithoutResiduals.
	Fitted    []float64
	Residuals []float64

	// SSR is the residual sum of squares eᵀe, a plain scalar.
	SSR float64

	// Sigma2 is the residual variance SSR/DF.
	Sigma2 float64

	// R2 and AdjR2 are the coefficient of determination and its
	// degrees-of-freedom adjusted form. R2 is zero for a constant
	// response, where total variance is zero.
	R2    float64
	AdjR2 float64

	// N and P are the observation and predictor counts of the design.
	// DF is the residual degrees of freedom used for Sigma2 and the
	// p-values: n−p−1 with the implicit intercept, n−p without.
	N, P, DF int

	// Solver records which algorithm produced the estimates.
	Solver Solver
}
