package errors

import (
	"errors"
	"fmt"
)

// Common error types
var (
	// Result loading errors
	ErrResultNotFound  = errors.New("result file not found")
	ErrResultMalformed = errors.New("malformed result file")
	ErrNoResults       = errors.New("no result files found")

	// Metric table errors
	ErrTableEmpty         = errors.New("metric table is empty")
	ErrUnknownMetricKey   = errors.New("unknown metric key")
	ErrDuplicateMetricKey = errors.New("duplicate metric key")
	ErrNegativeThreshold  = errors.New("threshold must not be negative")

	// Comparison errors
	ErrNoPairs = errors.New("no comparable result pairs")

	// Report errors
	ErrReportWriteFailed = errors.New("failed to write report")
)

// LoadError represents a failure to load one result file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// TableError represents an invalid metric table definition.
type TableError struct {
	Path string
	Err  error
}

func (e *TableError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("metric table %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("metric table: %v", e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// ReportError represents a failure to write a report artifact.
type ReportError struct {
	Path   string
	Format string
	Err    error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("%s report %s: %v", e.Format, e.Path, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}
