package funcfmt

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMismatchedBrackets is returned by Compile when a placeholder is opened
	// inside another one, closed without being opened, or never closed.
	ErrMismatchedBrackets = errors.New("mismatched brackets in format")

	// ErrOverflow is returned when index or capacity arithmetic would wrap.
	ErrOverflow = errors.New("integer overflow/underflow")
)

func newMismatchedBrackets(offset int) error {
	return errors.WithMessagef(ErrMismatchedBrackets, "offset %d", offset)
}

// UnknownFieldError reports a placeholder whose key is not registered.
type UnknownFieldError struct {
	Key string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field '%s'", e.Key)
}

// NoDataError reports a callback that had nothing to produce for the data it
// was given.
type NoDataError struct {
	Key string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data for field '%s'", e.Key)
}

// WriteError wraps a failure of the writer passed to RenderTo.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "write formatted output: " + e.Err.Error()
}

func (e *WriteError) Cause() error {
	return e.Err
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
