// Package ols fits linear models by ordinary least squares.
//
// The package provides:
//
//   - Fit, which estimates coefficients, standard errors and residual
//     variance for a design matrix X (n×p) and response vector y (length n).
//   - Two interchangeable solvers: SolverNormal computes the textbook
//     closed form Bhat = (XᵀX)⁻¹Xᵀy from explicit matrix primitives, and
//     SolverQR delegates to a QR factorization for numerically harder
//     designs. Both produce the same Result shape, so their outputs can be
//     diffed against each other for validation.
//   - Per-coefficient inference: t-statistics and two-sided p-values from
//     the Student-t distribution with the model's residual degrees of
//     freedom, plus R² and adjusted R².
//
// The computation is a pure function of (X, y): inputs are never mutated,
// repeated fits yield identical results, and no partial Result is returned
// on failure. Dimension mismatches are rejected before any multiplication;
// collinear predictors surface ErrSingularModel rather than NaN estimates.
//
// The denominator of the residual variance follows the survey-statistics
// convention of the source material: by default one extra degree of freedom
// is charged for an implicit intercept fitted outside the design matrix
// (sigma² = SSR/(n−p−1)). Designs that already carry their intercept column
// opt out via WithoutImplicitIntercept.
package ols
