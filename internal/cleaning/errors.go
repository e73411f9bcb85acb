package cleaning

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an engine failure.
type ErrorKind string

const (
	// KindOpen covers an input that cannot be opened or an output that
	// cannot be created.
	KindOpen ErrorKind = "open"
	// KindMap covers mapping-specific failures: stat or mmap errors on
	// the input file.
	KindMap ErrorKind = "map"
)

// Error is the only error type an engine run returns. Both kinds are fatal
// to the run that produced them; there is no partial-success mode.
type Error struct {
	Kind  ErrorKind
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "unknown cleaning error"
	}
	return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewOpenError wraps a failure to open the input or create the output.
func NewOpenError(path string, cause error) *Error {
	return &Error{Kind: KindOpen, Path: path, Cause: cause}
}

// NewMapError wraps a failure to stat or map the input file.
func NewMapError(path string, cause error) *Error {
	return &Error{Kind: KindMap, Path: path, Cause: cause}
}

// IsOpenError reports whether err is a KindOpen engine error.
func IsOpenError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindOpen
}

// IsMapError reports whether err is a KindMap engine error.
func IsMapError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindMap
}
