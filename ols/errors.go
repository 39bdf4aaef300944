package ols

import "errors"

// Sentinel errors returned by Fit. Callers should test with errors.Is,
// since Fit wraps each sentinel with the pipeline stage that failed.
var (
	// ErrDimensionMismatch is returned when the design matrix and the
	// response vector do not describe the same observations: len(y)
	// differs from the row count of X, or X has zero rows or columns.
	ErrDimensionMismatch = errors.New("ols: design/response dimension mismatch")

	// ErrSingularModel is returned when the crossproduct matrix XᵀX cannot
	// be inverted, typically because two predictors are exactly collinear
	// or a column is constant zero. The wrapped cause carries the solver's
	// own diagnostic (matrix.ErrSingular for the normal-equation path).
	ErrSingularModel = errors.New("ols: singular model (collinear predictors)")

	// ErrInsufficientDF is returned when the residual degrees of freedom
	// are not positive, so sigma² and the standard errors are undefined.
	ErrInsufficientDF = errors.New("ols: non-positive residual degrees of freedom")
)
