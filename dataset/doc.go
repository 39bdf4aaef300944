// Package dataset loads tabular numeric data and prepares it for model
// fitting.
//
// A Table is an immutable column store keyed by label. Tables are built
// from CSV input (ReadCSV, LoadCSV) or directly from columns (NewTable),
// and feed the rest of the module:
//
//   - Design assembles a dense matrix from named columns, optionally with
//     a leading intercept column, ready for ols.Fit.
//   - Response extracts a single column as the dependent variable.
//   - Describe, Histogram and Correlation provide quick numeric summaries
//     for inspecting a dataset before modeling.
//
// All accessors return copies, so callers cannot corrupt a Table through
// the slices they receive.
package dataset
