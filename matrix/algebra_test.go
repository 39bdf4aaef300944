// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/jobohobobobo/linmod/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDense builds a *Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// assertMatrixEqual compares every element of got against want within delta.
func assertMatrixEqual(t *testing.T, want [][]float64, got matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i][j], v, delta, "element (%d,%d)", i, j)
		}
	}
}

// TestAddSub_Elementwise verifies elementwise sums and differences.
func TestAddSub_Elementwise(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{6, 8}, {10, 12}}, sum, 0)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{4, 4}, {4, 4}}, diff, 0)
}

// TestAddSub_ShapeMismatch verifies the fail-fast shape guard.
func TestAddSub_ShapeMismatch(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}})
	b := mustDense(t, [][]float64{{1}, {2}})

	_, err := matrix.Add(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestHadamard verifies the element-wise product and its shape guard.
func TestHadamard(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{5, 6}, {7, 8}})

	prod, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{5, 12}, {21, 32}}, prod, 0)

	_, err = matrix.Hadamard(a, mustDense(t, [][]float64{{1, 2}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_Known verifies a hand-computed 2×2 product.
func TestMul_Known(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{5, 6}, {7, 8}})

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{19, 22}, {43, 50}}, prod, 0)
}

// TestMul_InnerMismatch verifies that incompatible inner dimensions error
// before any multiplication.
func TestMul_InnerMismatch(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}})
	b := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTranspose verifies dimensions flip and elements relocate.
func TestTranspose(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at, 0)
}

// TestScale verifies scalar multiplication.
func TestScale(t *testing.T) {
	a := mustDense(t, [][]float64{{1, -2}, {0.5, 4}})

	s, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{2, -4}, {1, 8}}, s, 0)
}

// TestMatVec verifies the matrix-vector product and its length guard.
func TestMatVec(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7, 11}, y)

	_, err = matrix.MatVec(a, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDot verifies the inner product and its guards.
func TestDot(t *testing.T) {
	v, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, v)

	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Dot(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCrossprod_MatchesComposition checks the symmetric fast-path against the
// Transpose+Mul composition on a tall design matrix.
func TestCrossprod_MatchesComposition(t *testing.T) {
	x := mustDense(t, [][]float64{{1, 0}, {0, 1}, {1, 1}, {2, 1}})

	gram, err := matrix.Crossprod(x)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{6, 3}, {3, 3}}, gram, 1e-12)

	xt, err := matrix.Transpose(x)
	require.NoError(t, err)
	ref, err := matrix.Mul(xt, x)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{6, 3}, {3, 3}}, ref, 1e-12)
}

// TestCrossprodVec verifies Xᵀy without materializing the transpose.
func TestCrossprodVec(t *testing.T) {
	x := mustDense(t, [][]float64{{1, 0}, {0, 1}, {1, 1}, {2, 1}})

	v, err := matrix.CrossprodVec(x, []float64{1, 2, 3, 5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{14, 10}, v, 1e-12)

	_, err = matrix.CrossprodVec(x, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDiagonal verifies extraction and the square-shape guard.
func TestDiagonal(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	d, err := matrix.Diagonal(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4}, d)

	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = matrix.Diagonal(rect)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
