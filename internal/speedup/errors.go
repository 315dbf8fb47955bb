// internal/speedup/errors.go
package speedup

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchema matches any *SchemaError.
	ErrSchema = errors.New("missing required columns")
	// ErrNoBaseline matches any *NoBaselineError.
	ErrNoBaseline = errors.New("no sequential data found for speedup calculation")
	// ErrInvalidTime matches any *InvalidTimeError.
	ErrInvalidTime = errors.New("invalid time value")
)

// SchemaError reports columns absent from a table header.
type SchemaError struct {
	Table   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s [%s]", e.Table, ErrSchema, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// NoBaselineError reports a table without any sequential row.
type NoBaselineError struct {
	Table string
}

func (e *NoBaselineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Table, ErrNoBaseline)
}

func (e *NoBaselineError) Is(target error) bool { return target == ErrNoBaseline }

// InvalidTimeError reports a row whose time cannot be used as a divisor.
type InvalidTimeError struct {
	Table  string
	Index  int
	Method string
	NbProc int
	Time   float64
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("%s: %s %v at row %d (method=%s nb_proc=%d)", e.Table, ErrInvalidTime, e.Time, e.Index, e.Method, e.NbProc)
}

func (e *InvalidTimeError) Is(target error) bool { return target == ErrInvalidTime }

// IsSkippable reports whether err describes table content the caller should
// skip rather than treat as a processing failure.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrSchema) || errors.Is(err, ErrNoBaseline) || errors.Is(err, ErrInvalidTime)
}
