// SPDX-License-Identifier: MIT

// Package matrix provides dense linear-algebra primitives for statistical
// computation.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with O(1) element access and a flat
//     backing slice for cache-friendly kernels.
//   - Elementwise and matrix arithmetic (Add, Sub, Mul, Transpose, Scale,
//     MatVec, Dot) with strict fail-fast validation.
//   - Cross-product kernels (Crossprod, CrossprodVec) and LU-based inversion
//     with a tolerance-aware singularity guard, the building blocks of
//     normal-equation estimators.
//   - Column statistics (ColumnMeans, CenterColumns, Covariance, Correlation)
//     for inspecting design matrices before fitting.
//
// All kernels validate through the central validators, return the package
// sentinel errors, and use deterministic loop orders: identical inputs always
// produce identical outputs. Operands are never mutated; every kernel
// allocates a fresh result.
//
// See the ols package for the estimators built on these primitives.
package matrix
