// SPDX-License-Identifier: MIT
// Package matrix: LU factorization and LU-based inversion.
//
// Purpose:
//   - Factor A = L·U (Doolittle, unit diagonal on L, no pivoting) with a
//     deterministic traversal order.
//   - Invert square matrices by solving against the canonical basis columns
//     with forward/backward substitution.
//
// Notes:
//   - No pivoting keeps results bit-reproducible; singularity is detected via
//     a tolerance guard on the U diagonal. Callers inverting products of noisy
//     data (e.g. XᵀX from near-collinear columns) should widen the tolerance
//     through InverseTol.
package matrix

import (
	"fmt"
	"math"
)

// DefaultPivotTol is the default magnitude below which a U diagonal entry is
// treated as a zero pivot: |U[i,i]| <= DefaultPivotTol ⇒ ErrSingular.
const DefaultPivotTol = 1e-12

// Operation tags for error wrapping.
const (
	opLU      = "LU"
	opInverse = "Inverse"
)

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order,
//     guarding each pivot with pivTol.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (|U[i,i]| <= pivTol).
//
// Complexity: Time O(n^3), Space O(n^2).
func LU(m Matrix) (Matrix, Matrix, error) { return luTol(m, DefaultPivotTol) }

func luTol(m Matrix, pivTol float64) (*Dense, *Dense, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Allocate L and U
	n := m.Rows()
	l, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular)
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	// Detect fast-path on *Dense
	md, useFast := m.(*Dense)
	var i, j, k int
	var sum, pivot, a float64
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			if useFast {
				a = md.data[i*n+j]
			} else {
				a, err = m.At(i, j)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
			}
			u.data[i*n+j] = a - sum
		}

		// Pivot guard (deterministic singularity detection within tolerance)
		pivot = u.data[i*n+i]
		if math.Abs(pivot) <= pivTol {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			if useFast {
				a = md.data[j*n+i]
			} else {
				a, err = m.At(j, i)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, i, err))
				}
			}
			l.data[j*n+i] = (a - sum) / pivot
		}
	}

	return l, u, nil
}

// Inverse computes A⁻¹ via Doolittle LU and triangular solves, using
// DefaultPivotTol as the singularity guard. Shorthand for InverseTol.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity: Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) { return InverseTol(m, DefaultPivotTol) }

// InverseTol computes A⁻¹ with an explicit pivot tolerance pivTol.
// A diagonal entry of U with |U[i,i]| <= pivTol is treated as a zero pivot
// and surfaces ErrSingular. Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: Factorize via luTol(m, pivTol) → L (unit lower), U (upper).
//   - Stage 2: For each canonical basis column e_col:
//     forward solve L*y = e_col (top-down), backward solve U*x = y
//     (bottom-up), write x into column col of the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation), ErrSingular (pivTol guard).
//
// Complexity: Time O(n^3), Space O(n^2).
func InverseTol(m Matrix, pivTol float64) (Matrix, error) {
	// Factor first; validation happens inside luTol.
	l, u, err := luTol(m, pivTol)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Prepare result container and scratch vectors.
	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y
		// Pivots were already guarded in luTol; division is safe here.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += u.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / u.data[i*n+i]
		}
		// Write x into column col of inv
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
