package ols

import (
	"errors"
	"math"

	"github.com/jobohobobobo/linmod/matrix"
)

// ErrBadPivotTolerance indicates that WithPivotTolerance received a
// negative, NaN or infinite value.
var ErrBadPivotTolerance = errors.New("ols: pivot tolerance must be a finite non-negative number")

// Options configures a single Fit call.
//
// Solver            – estimation algorithm (SolverNormal or SolverQR).
// ImplicitIntercept – charge one extra degree of freedom for an intercept
//
//	fitted outside the design, giving DF = n−p−1. Disable when the design
//	matrix already carries its own intercept column, giving DF = n−p.
//
// KeepResiduals     – populate Result.Fitted and Result.Residuals.
// PivotTol          – pivot magnitude below which the normal-equation
//
//	solver declares XᵀX singular.
type Options struct {
	Solver            Solver
	ImplicitIntercept bool
	KeepResiduals     bool
	PivotTol          float64
}

// Option represents a functional option for configuring Fit.
type Option func(*Options)

// WithSolver selects the estimation algorithm.
func WithSolver(s Solver) Option {
	return func(o *Options) {
		o.Solver = s
	}
}

// WithImplicitIntercept restores the default degrees-of-freedom
// accounting (df = n−p−1) after a WithoutImplicitIntercept earlier in the
// option list.
func WithImplicitIntercept() Option {
	return func(o *Options) {
		o.ImplicitIntercept = true
	}
}

// WithoutImplicitIntercept tells Fit that the design matrix already
// contains its intercept column (or that the model is deliberately fit
// through the origin), so the residual degrees of freedom are n−p rather
// than n−p−1.
func WithoutImplicitIntercept() Option {
	return func(o *Options) {
		o.ImplicitIntercept = false
	}
}

// WithResiduals restores the default retention of the Fitted and
// Residuals slices.
func WithResiduals() Option {
	return func(o *Options) {
		o.KeepResiduals = true
	}
}

// WithoutResiduals skips the per-observation Fitted and Residuals slices
// in the Result. SSR, Sigma2 and the standard errors are still computed.
func WithoutResiduals() Option {
	return func(o *Options) {
		o.KeepResiduals = false
	}
}

// WithPivotTolerance overrides the singularity threshold of the
// normal-equation solver. Pivots with absolute value at or below tol are
// treated as zero, surfacing ErrSingularModel. tol must be finite and
// non-negative; an invalid value is a programming error and panics with
// ErrBadPivotTolerance's message.
func WithPivotTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			panic(ErrBadPivotTolerance.Error())
		}
		o.PivotTol = tol
	}
}

// DefaultOptions returns the Options used when Fit is called without
// overrides.
//
// Defaults:
//   - Solver:            SolverNormal.
//   - ImplicitIntercept: true (DF = n−p−1).
//   - KeepResiduals:     true.
//   - PivotTol:          matrix.DefaultPivotTol.
func DefaultOptions() Options {
	return Options{
		Solver:            SolverNormal,
		ImplicitIntercept: true,
		KeepResiduals:     true,
		PivotTol:          matrix.DefaultPivotTol,
	}
}

// gatherOptions folds the provided functional options over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
