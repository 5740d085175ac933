// SPDX-License-Identifier: MPL-2.0

package gtin

import (
	"errors"
	"fmt"

	"github.com/gs1kit/gs1kit/pkg/checkdigit"
)

var (
	// ErrInvalidInput is returned (wrapped) when digits are required but something else
	// was supplied. It is the same sentinel as checkdigit.ErrInvalidInput.
	ErrInvalidInput = checkdigit.ErrInvalidInput
	// ErrInvalidCheckDigit is the sentinel error wrapped by InvalidCheckDigitError.
	ErrInvalidCheckDigit = errors.New("invalid check digit")
	// ErrFieldOverflow is the sentinel error wrapped by FieldOverflowError.
	ErrFieldOverflow = errors.New("field overflow")
	// ErrInvalidPackagingLevel is the sentinel error wrapped by InvalidPackagingLevelError.
	ErrInvalidPackagingLevel = errors.New("invalid packaging level")
)

type (
	// InvalidCheckDigitError is returned when a supplied check digit does not match
	// the digit computed from the rest of the number.
	InvalidCheckDigitError struct {
		Number string
		Got    int
		Want   int
	}

	// FieldOverflowError is returned when the company prefix and item reference do
	// not fit the digit budget of the requested type.
	FieldOverflowError struct {
		Type          Type
		CompanyPrefix string
		ItemReference string
		MaxDigits     int
	}

	// InvalidPackagingLevelError is returned for indicator digits outside 0-9.
	InvalidPackagingLevelError struct {
		Value int
	}

	// invalidItemNumberError reports a negative item number. It wraps ErrInvalidInput.
	invalidItemNumberError struct {
		Value int
	}
)

// Error implements the error interface.
func (e *InvalidCheckDigitError) Error() string {
	return fmt.Sprintf("invalid check digit in %q: got %d, want %d", e.Number, e.Got, e.Want)
}

// Unwrap returns ErrInvalidCheckDigit for errors.Is() compatibility.
func (e *InvalidCheckDigitError) Unwrap() error { return ErrInvalidCheckDigit }

// Error implements the error interface.
func (e *FieldOverflowError) Error() string {
	return fmt.Sprintf("company prefix %q and item reference %q exceed the %d digits allowed for %s",
		e.CompanyPrefix, e.ItemReference, e.MaxDigits, e.Type)
}

// Unwrap returns ErrFieldOverflow for errors.Is() compatibility.
func (e *FieldOverflowError) Unwrap() error { return ErrFieldOverflow }

// Error implements the error interface.
func (e *InvalidPackagingLevelError) Error() string {
	return fmt.Sprintf("invalid packaging level %d (must be a single digit 0-9)", e.Value)
}

// Unwrap returns ErrInvalidPackagingLevel for errors.Is() compatibility.
func (e *InvalidPackagingLevelError) Unwrap() error { return ErrInvalidPackagingLevel }

func (e *invalidItemNumberError) Error() string {
	return fmt.Sprintf("invalid input: item number %d is negative", e.Value)
}

func (e *invalidItemNumberError) Unwrap() error { return ErrInvalidInput }
