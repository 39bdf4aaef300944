package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadOptions configures CSV parsing.
//
// Header  – treat the first record as column labels.
// Comma   – field delimiter.
// Comment – lines starting with this rune are skipped (0 disables).
type ReadOptions struct {
	Header  bool
	Comma   rune
	Comment rune
}

// ReadOption represents a functional option for ReadCSV and LoadCSV.
type ReadOption func(*ReadOptions)

// WithoutHeader treats the first record as data; columns are labeled
// x0, x1, ... in file order.
func WithoutHeader() ReadOption {
	return func(o *ReadOptions) {
		o.Header = false
	}
}

// WithComma sets the field delimiter, e.g. ';' for European CSV exports.
func WithComma(c rune) ReadOption {
	return func(o *ReadOptions) {
		o.Comma = c
	}
}

// WithComment skips lines beginning with the given rune.
func WithComment(c rune) ReadOption {
	return func(o *ReadOptions) {
		o.Comment = c
	}
}

// DefaultReadOptions returns the options ReadCSV uses without overrides:
// header row present, comma-delimited, no comment lines.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Header: true, Comma: ',', Comment: 0}
}

// ReadCSV parses numeric CSV data into a Table. Every cell must parse as
// a finite float64; the encoding/csv reader already enforces a
// rectangular record shape.
//
// Errors: ErrEmptyTable, ErrDuplicateColumn, ErrBadValue (with row and
// column context), plus raw csv.Reader errors for malformed input.
func ReadCSV(r io.Reader, opts ...ReadOption) (*Table, error) {
	o := DefaultReadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Comma
	cr.Comment = o.Comment
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	var labels []string
	if o.Header {
		labels = make([]string, len(records[0]))
		for j, label := range records[0] {
			labels[j] = strings.TrimSpace(label)
		}
		records = records[1:]
	} else {
		labels = make([]string, len(records[0]))
		for j := range labels {
			labels[j] = fmt.Sprintf("x%d", j)
		}
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	cols := make([][]float64, len(labels))
	for j := range cols {
		cols[j] = make([]float64, len(records))
	}
	for i, record := range records {
		for j, cell := range record {
			v, parseErr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			// ParseFloat accepts "NaN" and "Inf" spellings, which would
			// poison every downstream kernel; only finite cells are data.
			if parseErr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("dataset: row %d, column %q: %q: %w",
					i+1, labels[j], cell, ErrBadValue)
			}
			cols[j][i] = v
		}
	}

	return NewTable(labels, cols)
}

// LoadCSV reads a CSV file from disk. See ReadCSV.
func LoadCSV(path string, opts ...ReadOption) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f, opts...)
}
