// SPDX-License-Identifier: MPL-2.0

package gtin

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// GTIN8 is the 8-digit GTIN (EAN-8).
	GTIN8 Type = "GTIN-8"
	// GTIN12 is the 12-digit GTIN (UPC-A). It carries no indicator digit.
	GTIN12 Type = "GTIN-12"
	// GTIN13 is the 13-digit GTIN (EAN-13). It carries no indicator digit.
	GTIN13 Type = "GTIN-13"
	// GTIN14 is the 14-digit GTIN (EAN-14, ITF-14). The most significant digit is
	// the packaging indicator.
	GTIN14 Type = "GTIN-14"

	// EAN8 is an alias of GTIN8.
	EAN8 Type = "EAN-8"
	// UPCA is an alias of GTIN12.
	UPCA Type = "UPC-A"
	// EAN13 is an alias of GTIN13.
	EAN13 Type = "EAN-13"
	// EAN14 is an alias of GTIN14.
	EAN14 Type = "EAN-14"
	// ITF14 is an alias of GTIN14.
	ITF14 Type = "ITF-14"

	// defaultMaxDigits applies to unrecognized types.
	defaultMaxDigits = 12
)

// ErrInvalidType is the sentinel error wrapped by InvalidTypeError.
var ErrInvalidType = errors.New("invalid GTIN type")

type (
	// Type names a GTIN format. Names are case-insensitive; compare after Canonical().
	Type string

	// InvalidTypeError is returned when a type name is not recognized.
	InvalidTypeError struct {
		Value string
	}
)

// ParseType parses a type name case-insensitively and returns its canonical form.
func ParseType(s string) (Type, error) {
	t := Type(strings.TrimSpace(s)).Canonical()
	if err := t.Validate(); err != nil {
		return "", &InvalidTypeError{Value: s}
	}
	return t, nil
}

// Canonical maps aliases to their GTIN name, ignoring case. Unknown values are
// returned unchanged.
func (t Type) Canonical() Type {
	switch Type(strings.ToUpper(string(t))) {
	case GTIN14, EAN14, ITF14:
		return GTIN14
	case GTIN13, EAN13:
		return GTIN13
	case GTIN12, UPCA:
		return GTIN12
	case GTIN8, EAN8:
		return GTIN8
	default:
		return t
	}
}

// Validate returns an *InvalidTypeError if t is neither a canonical type nor an alias.
func (t Type) Validate() error {
	switch t.Canonical() {
	case GTIN8, GTIN12, GTIN13, GTIN14:
		return nil
	default:
		return &InvalidTypeError{Value: string(t)}
	}
}

// Length is the number of digits in a complete GTIN of this type, check digit included.
func (t Type) Length() int {
	n := MaxDigits(t) + 1
	if t.HasIndicator() {
		n++
	}
	return n
}

// HasIndicator reports whether the type carries a leading packaging indicator digit.
func (t Type) HasIndicator() bool { return t.Canonical() == GTIN14 }

// String returns the string representation of the Type.
func (t Type) String() string { return string(t) }

// TypeForLength returns the canonical type whose complete numbers have n digits.
func TypeForLength(n int) (Type, bool) {
	switch n {
	case 8:
		return GTIN8, true
	case 12:
		return GTIN12, true
	case 13:
		return GTIN13, true
	case 14:
		return GTIN14, true
	default:
		return "", false
	}
}

// MaxDigits returns the digit budget shared by the company prefix and the item reference.
// It excludes the check digit and, for GTIN-14, the indicator digit.
func MaxDigits(t Type) int {
	switch t.Canonical() {
	case GTIN14, GTIN13:
		return 12
	case GTIN12:
		return 11
	case GTIN8:
		return 7
	default:
		return defaultMaxDigits
	}
}

// Error implements the error interface.
func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid GTIN type %q (expected one of GTIN-8, GTIN-12, GTIN-13, GTIN-14, EAN-8, UPC-A, EAN-13, EAN-14, ITF-14)", e.Value)
}

// Unwrap returns ErrInvalidType for errors.Is() compatibility.
func (e *InvalidTypeError) Unwrap() error { return ErrInvalidType }
