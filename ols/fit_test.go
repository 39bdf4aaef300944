package ols_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobohobobobo/linmod/matrix"
	"github.com/jobohobobobo/linmod/ols"
)

// fixtureX and fixtureY form a small regression with hand-checkable
// algebra: XᵀX = [[6,3],[3,3]], Xᵀy = [14,10], Bhat = (4/3, 2),
// SSR = 1/3 on a single residual degree of freedom.
var (
	fixtureX = [][]float64{
		{1, 0},
		{0, 1},
		{1, 1},
		{2, 1},
	}
	fixtureY = []float64{1, 2, 3, 5}
)

// mustDesign builds a dense design matrix or fails the test.
func mustDesign(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// emptyDesign is a stub Matrix with zero rows, which the dense
// constructors refuse to build.
type emptyDesign struct{}

func (emptyDesign) Rows() int                    { return 0 }
func (emptyDesign) Cols() int                    { return 2 }
func (emptyDesign) At(_, _ int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (emptyDesign) Set(_, _ int, _ float64) error {
	return matrix.ErrOutOfRange
}
func (emptyDesign) Clone() matrix.Matrix { return emptyDesign{} }

// TestFit_Fixture checks every Result field of the normal-equation path
// against values derived by hand.
func TestFit_Fixture(t *testing.T) {
	X := mustDesign(t, fixtureX)

	res, err := ols.Fit(X, fixtureY)
	require.NoError(t, err)

	assert.Equal(t, 4, res.N)
	assert.Equal(t, 2, res.P)
	assert.Equal(t, 1, res.DF)
	assert.Equal(t, ols.SolverNormal, res.Solver)

	assert.InDelta(t, 4.0/3.0, res.Coeffs[0], 1e-9)
	assert.InDelta(t, 2.0, res.Coeffs[1], 1e-9)

	wantResid := []float64{-1.0 / 3.0, 0, -1.0 / 3.0, 1.0 / 3.0}
	require.Len(t, res.Residuals, 4)
	for i, want := range wantResid {
		assert.InDelta(t, want, res.Residuals[i], 1e-9, "residual %d", i)
	}

	assert.InDelta(t, 1.0/3.0, res.SSR, 1e-9)
	assert.InDelta(t, 1.0/3.0, res.Sigma2, 1e-9)

	// Cov = sigma²·(XᵀX)⁻¹ = (1/3)·[[1/3,−1/3],[−1/3,2/3]].
	wantCov := [][]float64{
		{1.0 / 9.0, -1.0 / 9.0},
		{-1.0 / 9.0, 2.0 / 9.0},
	}
	for i := range wantCov {
		for j := range wantCov[i] {
			got, atErr := res.Cov.At(i, j)
			require.NoError(t, atErr)
			assert.InDelta(t, wantCov[i][j], got, 1e-9, "cov[%d][%d]", i, j)
		}
	}

	assert.InDelta(t, 1.0/3.0, res.StdErrs[0], 1e-9)
	assert.InDelta(t, math.Sqrt(2)/3.0, res.StdErrs[1], 1e-9)
	assert.InDelta(t, 4.0, res.TStats[0], 1e-9)
	assert.InDelta(t, 3.0*math.Sqrt(2), res.TStats[1], 1e-9)

	wantR2 := 1.0 - (1.0/3.0)/8.75
	assert.InDelta(t, wantR2, res.R2, 1e-9)
	assert.InDelta(t, 1.0-(1.0-wantR2)*3.0, res.AdjR2, 1e-9)

	for j, p := range res.PValues {
		assert.GreaterOrEqual(t, p, 0.0, "p-value %d", j)
		assert.LessOrEqual(t, p, 1.0, "p-value %d", j)
	}
}

// TestFit_ResidualOrthogonality verifies the defining property of least
// squares: the residual vector is orthogonal to every design column.
func TestFit_ResidualOrthogonality(t *testing.T) {
	X := mustDesign(t, fixtureX)

	res, err := ols.Fit(X, fixtureY)
	require.NoError(t, err)

	xe, err := matrix.CrossprodVec(X, res.Residuals)
	require.NoError(t, err)
	for j, v := range xe {
		assert.InDelta(t, 0, v, 1e-9, "Xᵀe component %d", j)
	}
}

// syntheticRegression builds a deterministic n-row design with an
// explicit intercept column and a response with small pseudo-noise.
func syntheticRegression(t *testing.T, n int) (*matrix.Dense, []float64) {
	t.Helper()
	rows := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x1 := float64(i)
		x2 := float64(i % 7)
		rows[i] = []float64{1, x1, x2}
		y[i] = 2 + 1.5*x1 - 0.7*x2 + 0.5*math.Sin(float64(i)*12.9898)
	}

	return mustDesign(t, rows), y
}

// TestFit_NormalVsQRAgree cross-checks the two solvers on the same data.
func TestFit_NormalVsQRAgree(t *testing.T) {
	X, y := syntheticRegression(t, 40)

	normal, err := ols.Fit(X, y, ols.WithoutImplicitIntercept())
	require.NoError(t, err)
	viaQR, err := ols.Fit(X, y,
		ols.WithoutImplicitIntercept(), ols.WithSolver(ols.SolverQR))
	require.NoError(t, err)

	assert.Equal(t, ols.SolverQR, viaQR.Solver)
	assert.Equal(t, normal.DF, viaQR.DF)
	require.Len(t, viaQR.Coeffs, len(normal.Coeffs))
	for j := range normal.Coeffs {
		assert.InDelta(t, normal.Coeffs[j], viaQR.Coeffs[j], 1e-6, "coeff %d", j)
		assert.InDelta(t, normal.StdErrs[j], viaQR.StdErrs[j], 1e-6, "stderr %d", j)
	}
	assert.InDelta(t, normal.SSR, viaQR.SSR, 1e-6)
	assert.InDelta(t, normal.R2, viaQR.R2, 1e-9)
}

// TestFit_CollinearDesign duplicates a column so XᵀX is exactly singular.
func TestFit_CollinearDesign(t *testing.T) {
	X := mustDesign(t, [][]float64{
		{1, 2, 2},
		{2, 1, 1},
		{3, 4, 4},
		{4, 2, 2},
		{5, 6, 6},
	})
	y := []float64{1, 2, 3, 4, 5}

	_, err := ols.Fit(X, y)
	require.Error(t, err)
	assert.ErrorIs(t, err, ols.ErrSingularModel)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = ols.Fit(X, y, ols.WithSolver(ols.SolverQR))
	require.Error(t, err)
	assert.ErrorIs(t, err, ols.ErrSingularModel)
}

// TestFit_DimensionMismatch rejects mismatched shapes before any algebra.
func TestFit_DimensionMismatch(t *testing.T) {
	X := mustDesign(t, [][]float64{
		{1, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1},
	})

	_, err := ols.Fit(X, []float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, ols.ErrDimensionMismatch)

	_, err = ols.Fit(emptyDesign{}, nil)
	assert.ErrorIs(t, err, ols.ErrDimensionMismatch)

	_, err = ols.Fit(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFit_InsufficientDF covers the df accounting of both intercept
// conventions.
func TestFit_InsufficientDF(t *testing.T) {
	X := mustDesign(t, [][]float64{
		{1, 0}, {0, 1}, {1, 2},
	})
	y := []float64{1, 2, 3}

	// n=3, p=2 leaves df=0 once the implicit intercept is charged.
	_, err := ols.Fit(X, y)
	assert.ErrorIs(t, err, ols.ErrInsufficientDF)

	res, err := ols.Fit(X, y, ols.WithoutImplicitIntercept())
	require.NoError(t, err)
	assert.Equal(t, 1, res.DF)
}

// TestFit_Idempotent runs the same fit twice and expects bit-identical
// results.
func TestFit_Idempotent(t *testing.T) {
	X := mustDesign(t, fixtureX)

	first, err := ols.Fit(X, fixtureY)
	require.NoError(t, err)
	second, err := ols.Fit(X, fixtureY)
	require.NoError(t, err)

	assert.Equal(t, first.Coeffs, second.Coeffs)
	assert.Equal(t, first.StdErrs, second.StdErrs)
	assert.Equal(t, first.Residuals, second.Residuals)
	assert.Equal(t, first.SSR, second.SSR)
	assert.Equal(t, first.PValues, second.PValues)
}

// TestFit_InputsNotMutated guards the purity contract.
func TestFit_InputsNotMutated(t *testing.T) {
	X := mustDesign(t, fixtureX)
	y := append([]float64(nil), fixtureY...)
	before := append([]float64(nil), X.RawData()...)

	_, err := ols.Fit(X, y)
	require.NoError(t, err)

	assert.Equal(t, before, X.RawData())
	assert.Equal(t, fixtureY, y)
}

// TestFit_WithoutResiduals drops the per-observation slices but keeps the
// scalar summaries.
func TestFit_WithoutResiduals(t *testing.T) {
	X := mustDesign(t, fixtureX)

	res, err := ols.Fit(X, fixtureY, ols.WithoutResiduals())
	require.NoError(t, err)

	assert.Nil(t, res.Fitted)
	assert.Nil(t, res.Residuals)
	assert.InDelta(t, 1.0/3.0, res.SSR, 1e-9)
	assert.InDelta(t, 1.0/3.0, res.Sigma2, 1e-9)
}

// TestFit_PerfectFit pins the degenerate inference values of a model
// with zero residuals: sigma² collapses to zero, so every standard error
// is zero and the t-statistics diverge. The design uses powers of two so
// the whole pipeline is exact in floating point.
func TestFit_PerfectFit(t *testing.T) {
	X := mustDesign(t, [][]float64{
		{1, 0}, {0, 1}, {1, 0}, {0, 1},
	})
	y := []float64{3, 5, 3, 5}

	res, err := ols.Fit(X, y)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.SSR)
	assert.Equal(t, 0.0, res.Sigma2)
	assert.Equal(t, 1.0, res.R2)
	for j := range res.Coeffs {
		assert.Equal(t, 0.0, res.StdErrs[j], "stderr %d", j)
		assert.True(t, math.IsInf(res.TStats[j], 1), "t-stat %d", j)
		assert.Equal(t, 0.0, res.PValues[j], "p-value %d", j)
	}
}

// TestFit_PivotTolerance widens the singularity guard until a merely
// ill-scaled design is rejected.
func TestFit_PivotTolerance(t *testing.T) {
	X := mustDesign(t, [][]float64{
		{1, 0}, {0, 1e-5}, {1, 0}, {2, 1e-5}, {1, 2e-5},
	})
	y := []float64{1, 2, 3, 4, 5}

	_, err := ols.Fit(X, y)
	require.NoError(t, err)

	_, err = ols.Fit(X, y, ols.WithPivotTolerance(1e-6))
	assert.ErrorIs(t, err, ols.ErrSingularModel)
}

// TestWithPivotTolerance_Invalid documents the option's panic contract.
func TestWithPivotTolerance_Invalid(t *testing.T) {
	assert.PanicsWithValue(t, ols.ErrBadPivotTolerance.Error(), func() {
		_, _ = ols.Fit(mustDesign(t, fixtureX), fixtureY, ols.WithPivotTolerance(-1))
	})
	assert.PanicsWithValue(t, ols.ErrBadPivotTolerance.Error(), func() {
		ols.WithPivotTolerance(math.NaN())(&ols.Options{})
	})
}

// TestSolver_String pins the log names of the solver constants.
func TestSolver_String(t *testing.T) {
	assert.Equal(t, "normal-equations", ols.SolverNormal.String())
	assert.Equal(t, "qr", ols.SolverQR.String())
	assert.Equal(t, "unknown", ols.Solver(99).String())
}
