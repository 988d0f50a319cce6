// Package errs defines the error taxonomy for database build failures. Every
// failure is fatal to the run; these types exist so a failed run can name the
// stage and the table a curator needs to look at before re-running.
package errs

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable indicates a workbook path could not be opened or read.
var ErrSourceUnavailable = errors.New("source workbook unavailable")

// ErrSchemaMismatch indicates an expected table is absent from a source, or
// the two sources disagree on a table's column set.
var ErrSchemaMismatch = errors.New("schema mismatch")

// ErrWriteFailure indicates the output directory could not be cleared or a
// table file could not be written. The output directory may be left partially
// written; the run is idempotent, so the fix is to re-run after correcting
// the cause.
var ErrWriteFailure = errors.New("write failure")

// StageError tags an underlying error with the pipeline stage, and the table
// name when one is known.
type StageError struct {
	Stage string // "load-primary", "load-secondary", "merge", "export"
	Table string // empty when the failure is not table-specific
	Err   error
}

func (e *StageError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s: table %q: %v", e.Stage, e.Table, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a StageError for the given stage and table.
func NewStageError(stage, table string, err error) *StageError {
	return &StageError{Stage: stage, Table: table, Err: err}
}
