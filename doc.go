// Package linmod is an ordinary-least-squares toolkit built on explicit
// matrix algebra — from dense primitives to fitted models with full
// inference.
//
// 🚀 What is linmod?
//
//	A small, deterministic library that brings together:
//		• Dense primitives: construction, Add/Sub/Mul, transpose, crossproducts
//		• Factorization: LU decomposition and tolerance-guarded inversion
//		• Estimation: Bhat = (XᵀX)⁻¹Xᵀy plus a QR cross-check solver
//		• Inference: standard errors, t-statistics, p-values, R²
//		• Data handling: CSV tables, design-matrix assembly, summaries
//
// ✨ Why choose linmod?
//
//   - Transparent – every step of the fit is an inspectable matrix operation
//   - Rock-solid guarantees – pure functions, no mutation, no partial results
//   - Honest failures – collinear designs and bad shapes return sentinel
//     errors instead of NaN estimates
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/  — dense matrices, arithmetic kernels, LU/inverse, column stats
//	ols/     — the estimator: Fit, solvers, Result with full inference
//	dataset/ — CSV loading, labeled tables, design matrices, summaries
//
// Quick sketch of the pipeline:
//
//	X, y ──► XᵀX ──► (XᵀX)⁻¹ ──► Bhat ──► residuals ──► sigma² ──► se, t, p
//
//	go get github.com/jobohobobobo/linmod
package linmod
