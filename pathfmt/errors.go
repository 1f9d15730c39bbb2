package pathfmt

import (
	"errors"
	"fmt"
)

// ErrInvalidText is the sentinel for use with errors.Is(). It matches any
// *InvalidTextError returned by the normalization functions.
var ErrInvalidText = errors.New("invalid text")

// InvalidTextError reports that the bytes remaining after escape-sequence
// stripping were not valid UTF-8. It is the only error kind this package
// produces, and only when Config.StripEscapes is enabled.
type InvalidTextError struct {
	// Offset is the byte offset of the first invalid sequence in the
	// stripped output.
	Offset int
	// Cause is the underlying decode failure.
	Cause error
}

// Error returns a human-readable error message.
func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("invalid text after escape stripping: %v", e.Cause)
}

// Unwrap returns the underlying decode failure for error chaining.
func (e *InvalidTextError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InvalidTextError) Is(target error) bool {
	return target == ErrInvalidText
}

// newInvalidText builds an InvalidTextError for the invalid byte at offset.
func newInvalidText(b byte, offset int) *InvalidTextError {
	return &InvalidTextError{
		Offset: offset,
		Cause:  fmt.Errorf("invalid UTF-8 byte 0x%02x at offset %d", b, offset),
	}
}
