package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrInputUnavailable reports that the source cannot be opened or read further.
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrRowCapacityExceeded reports more data rows than the configured bound.
	ErrRowCapacityExceeded = errors.New("row capacity exceeded")
	// ErrNoHeader reports an input without a header line.
	ErrNoHeader = errors.New("missing header row")
)

// InputError wraps a failure to open or read the table source.
type InputError struct {
	Source string
	Err    error
}

func (e *InputError) Error() string {
	if e == nil {
		return ErrInputUnavailable.Error()
	}
	if e.Source != "" {
		return fmt.Sprintf("input unavailable: %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("input unavailable: %v", e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Is matches ErrInputUnavailable.
func (e *InputError) Is(target error) bool { return target == ErrInputUnavailable }

// CapacityError indicates the table has more data rows than Limit.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("row capacity exceeded: more than %d data rows (raise max_rows)", e.Limit)
}

// Is matches ErrRowCapacityExceeded.
func (e *CapacityError) Is(target error) bool { return target == ErrRowCapacityExceeded }
