package dataset

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jobohobobobo/linmod/matrix"
)

// Summary holds the descriptive statistics of a single column. Std is the
// sample standard deviation (n−1 denominator) and is zero for a single
// observation.
type Summary struct {
	Label string
	N     int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

// Describe summarizes every column in table order.
func (t *Table) Describe() []Summary {
	out := make([]Summary, len(t.cols))
	for j, col := range t.cols {
		s := Summary{
			Label: t.labels[j],
			N:     len(col),
			Mean:  stat.Mean(col, nil),
			Min:   floats.Min(col),
			Max:   floats.Max(col),
		}
		if len(col) > 1 {
			s.Std = stat.StdDev(col, nil)
		}
		out[j] = s
	}

	return out
}

// Histogram bins the named column into the given number of equal-width
// bins and returns the bin edges (length bins+1) and counts (length
// bins). The last edge is nudged past the column maximum so the maximum
// falls in the final bin. A constant column yields a single occupied
// first bin over a unit-width range.
//
// Errors: ErrUnknownColumn, ErrBadBins.
func (t *Table) Histogram(label string, bins int) (edges, counts []float64, err error) {
	if bins < 1 {
		return nil, nil, fmt.Errorf("dataset: %d bins: %w", bins, ErrBadBins)
	}
	col, err := t.Column(label)
	if err != nil {
		return nil, nil, err
	}
	sort.Float64s(col)

	lo, hi := col[0], col[len(col)-1]
	if lo == hi {
		hi = lo + 1
	}
	edges = floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram requires max < last edge.
	edges[bins] = math.Nextafter(edges[bins], math.Inf(1))
	counts = stat.Histogram(nil, edges, col, nil)

	return edges, counts, nil
}

// Correlation returns the Pearson correlation matrix of the named
// columns, or of all columns when none are given. The matrix is k×k in
// selection order.
//
// Errors: ErrUnknownColumn; wrapped matrix errors when the table has
// fewer than two rows.
func (t *Table) Correlation(labels ...string) (*matrix.Dense, error) {
	if len(labels) == 0 {
		labels = t.labels
	}
	design, err := t.Design(labels)
	if err != nil {
		return nil, err
	}

	corr, err := matrix.Correlation(design)
	if err != nil {
		return nil, fmt.Errorf("dataset: correlation: %w", err)
	}

	return corr.(*matrix.Dense), nil
}
