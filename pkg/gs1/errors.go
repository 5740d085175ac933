// SPDX-License-Identifier: MPL-2.0

package gs1

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidField is the sentinel error wrapped by InvalidFieldError.
	ErrInvalidField = errors.New("invalid field")

	// ErrSyntax is the sentinel error wrapped by SyntaxError.
	ErrSyntax = errors.New("syntax error")
)

type (
	// InvalidFieldError is returned when a record field does not satisfy the format
	// of its Application Identifier.
	InvalidFieldError struct {
		AI     AI
		Value  string
		Reason string
		// Cause is an optional underlying error (for example a GTIN check digit failure).
		Cause error
	}

	// SyntaxError describes a segment of an element string that could not be tokenized.
	SyntaxError struct {
		// Offset is the byte offset of the segment in the input.
		Offset int
		// Text is the skipped segment.
		Text   string
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field (%s) %q: %s", e.AI, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidField and the cause, if any, so errors.Is matches both.
func (e *InvalidFieldError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrInvalidField, e.Cause}
	}
	return []error{ErrInvalidField}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d near %q: %s", e.Offset, e.Text, e.Reason)
}

// Unwrap returns ErrSyntax for errors.Is() compatibility.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }
