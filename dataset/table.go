package dataset

import (
	"fmt"

	"github.com/jobohobobobo/linmod/matrix"
)

// Table is an immutable, column-major store of labeled float64 columns.
// Every column has the same length. Construct one with NewTable, ReadCSV
// or LoadCSV.
type Table struct {
	labels []string
	index  map[string]int
	cols   [][]float64
	rows   int
}

// NewTable builds a Table from parallel label and column slices. Both
// inputs are copied.
//
// Errors: ErrDuplicateColumn, ErrRaggedColumns, ErrEmptyTable, and a
// labeled/column count mismatch reported as ErrRaggedColumns.
func NewTable(labels []string, cols [][]float64) (*Table, error) {
	if len(labels) != len(cols) {
		return nil, fmt.Errorf("dataset: %d labels for %d columns: %w",
			len(labels), len(cols), ErrRaggedColumns)
	}
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrEmptyTable
	}

	rows := len(cols[0])
	t := &Table{
		labels: append([]string(nil), labels...),
		index:  make(map[string]int, len(labels)),
		cols:   make([][]float64, len(cols)),
		rows:   rows,
	}
	for j, label := range labels {
		if _, dup := t.index[label]; dup {
			return nil, fmt.Errorf("dataset: %q: %w", label, ErrDuplicateColumn)
		}
		t.index[label] = j

		if len(cols[j]) != rows {
			return nil, fmt.Errorf("dataset: column %q has %d rows, want %d: %w",
				label, len(cols[j]), rows, ErrRaggedColumns)
		}
		t.cols[j] = append([]float64(nil), cols[j]...)
	}

	return t, nil
}

// Rows returns the number of observations.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return len(t.cols) }

// Labels returns a copy of the column labels in table order.
func (t *Table) Labels() []string {
	return append([]string(nil), t.labels...)
}

// Column returns a copy of the named column.
//
// Errors: ErrUnknownColumn.
func (t *Table) Column(label string) ([]float64, error) {
	j, ok := t.index[label]
	if !ok {
		return nil, fmt.Errorf("dataset: %q: %w", label, ErrUnknownColumn)
	}

	return append([]float64(nil), t.cols[j]...), nil
}

// Response is Column under the name model-fitting code reads naturally:
// it extracts the dependent variable y.
func (t *Table) Response(label string) ([]float64, error) {
	return t.Column(label)
}

// DesignOption configures Design.
type DesignOption func(*designOptions)

type designOptions struct {
	intercept bool
}

// WithIntercept prepends a column of ones to the design matrix. Fits on
// such a design should use ols.WithoutImplicitIntercept, since the
// intercept is now a real column of X.
func WithIntercept() DesignOption {
	return func(o *designOptions) {
		o.intercept = true
	}
}

// Design assembles a dense n×k design matrix from the named columns, in
// the order given. With WithIntercept the matrix is n×(k+1) and its first
// column is all ones.
//
// Errors: ErrUnknownColumn, ErrEmptyTable (no labels selected).
func (t *Table) Design(labels []string, opts ...DesignOption) (*matrix.Dense, error) {
	var o designOptions
	for _, opt := range opts {
		opt(&o)
	}

	if len(labels) == 0 {
		return nil, fmt.Errorf("dataset: no columns selected: %w", ErrEmptyTable)
	}

	sel := make([]int, len(labels))
	for k, label := range labels {
		j, ok := t.index[label]
		if !ok {
			return nil, fmt.Errorf("dataset: %q: %w", label, ErrUnknownColumn)
		}
		sel[k] = j
	}

	width := len(sel)
	offset := 0
	if o.intercept {
		width++
		offset = 1
	}

	data := make([]float64, t.rows*width)
	for i := 0; i < t.rows; i++ {
		if o.intercept {
			data[i*width] = 1
		}
		for k, j := range sel {
			data[i*width+offset+k] = t.cols[j][i]
		}
	}

	return matrix.NewDenseFromData(t.rows, width, data)
}
