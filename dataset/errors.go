package dataset

import "errors"

// Sentinel errors returned by the dataset package. Wrapped errors carry
// row/column context; test with errors.Is.
var (
	// ErrEmptyTable indicates input with no data rows.
	ErrEmptyTable = errors.New("dataset: table has no rows")

	// ErrUnknownColumn indicates a label that does not exist in the table.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrDuplicateColumn indicates a repeated label in a header or in the
	// columns passed to NewTable.
	ErrDuplicateColumn = errors.New("dataset: duplicate column label")

	// ErrRaggedColumns indicates columns of unequal length passed to
	// NewTable.
	ErrRaggedColumns = errors.New("dataset: columns have unequal lengths")

	// ErrBadValue indicates a CSV cell that does not parse as a float.
	ErrBadValue = errors.New("dataset: cannot parse numeric value")

	// ErrBadBins indicates a non-positive bin count passed to Histogram.
	ErrBadBins = errors.New("dataset: bin count must be positive")
)
