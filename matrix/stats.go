// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide common column statistics (means, centering, covariance,
//     correlation) as deterministic compositions over the canonical kernels.
//   - Give callers a cheap way to inspect a design matrix for near-collinear
//     predictors before attempting a normal-equation fit.
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
package matrix

import (
	"fmt"
	"math"
)

// Operation tags for error wrapping.
const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// ColumnMeans returns the per-column means of m (length Cols).
//
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(c).
func ColumnMeans(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := m.Rows(), m.Cols()
	means := make([]float64, c)

	// Dense fast-path: accumulate over the flat buffer.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opColumnMeans, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				means[j] += v
			}
		}
	}
	inv := 1.0 / float64(r)
	for j := 0; j < c; j++ {
		means[j] *= inv
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element and returns
// the centered copy together with the means.
//
// Errors: ErrNilMatrix and wrapped kernel errors.
// Complexity: Time O(r*c), Space O(r*c) output + O(c) means.
func CenterColumns(m Matrix) (Matrix, []float64, error) {
	means, err := ColumnMeans(m)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] - means[j]
			}
		}

		return out, means, nil
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opCenterColumns, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*c+j] = v - means[j]
		}
	}

	return out, means, nil
}

// Covariance returns the sample covariance matrix of the columns of m:
// Cov = (Xcᵀ·Xc) / (r−1) where Xc is the column-centered copy of m.
// Requires at least two rows.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (fewer than two rows).
//
// Complexity: Time O(r*c²), Space O(c²).
func Covariance(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	if m.Rows() < 2 {
		return nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}
	centered, _, err := CenterColumns(m)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	gram, err := Crossprod(centered)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(gram, 1.0/float64(m.Rows()-1))
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}

	return cov, nil
}

// Correlation returns the Pearson correlation matrix of the columns of m.
// A degenerate column (zero variance) yields zero off-diagonal entries and a
// unit diagonal entry, so the result stays finite for constant columns such
// as an intercept.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (fewer than two rows).
//
// Complexity: Time O(r*c²), Space O(c²).
func Correlation(m Matrix) (Matrix, error) {
	cov, err := Covariance(m)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	c := cov.Cols()
	covd := cov.(*Dense) // Covariance always returns *Dense

	// Standard deviations from the covariance diagonal.
	std := make([]float64, c)
	for j := 0; j < c; j++ {
		std[j] = math.Sqrt(covd.data[j*c+j])
	}

	out, err := NewDense(c, c)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	var i, j int
	for i = 0; i < c; i++ {
		for j = 0; j < c; j++ {
			switch {
			case i == j:
				out.data[i*c+j] = 1.0
			case std[i] == 0 || std[j] == 0:
				out.data[i*c+j] = 0.0 // degenerate column: no defined correlation
			default:
				out.data[i*c+j] = covd.data[i*c+j] / (std[i] * std[j])
			}
		}
	}

	return out, nil
}
