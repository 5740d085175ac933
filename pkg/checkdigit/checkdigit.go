// SPDX-License-Identifier: MPL-2.0

// Package checkdigit implements the GS1 mod-10 check digit used by GTIN, SSCC and the
// other fixed-length GS1 keys.
//
// The base number is left-padded with zeros to 15 characters. Walking the padded string
// from the left, odd 1-based positions weigh 3 and even positions weigh 1, so the rightmost
// digit of any base up to 15 digits always carries weight 3. Longer bases (the 17-digit SSCC
// body) are padded to the next odd width, which keeps that alignment.
//
// This package is a leaf dependency: it imports only the standard library.
package checkdigit

import (
	"errors"
	"fmt"
	"strconv"
)

// PaddedWidth is the minimum width the base number is padded to before weighting.
const PaddedWidth = 15

// ErrInvalidInput is the sentinel error wrapped by InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError is returned when a base number is empty or contains a
// character that is not an ASCII digit.
type InvalidInputError struct {
	Value string
	// Position is the byte offset of the first offending character, or -1 when
	// the value is empty.
	Position int
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if e.Position < 0 {
		return "invalid input: empty digit string"
	}
	return fmt.Sprintf("invalid input %q: non-digit character %q at position %d",
		e.Value, e.Value[e.Position], e.Position)
}

// Unwrap returns ErrInvalidInput so callers can use errors.Is for programmatic detection.
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// Compute returns the check digit (0-9) for base.
func Compute(base string) (int, error) {
	if err := CheckDigits(base); err != nil {
		return 0, err
	}

	width := max(PaddedWidth, len(base))
	if width%2 == 0 {
		width++
	}
	offset := width - len(base)

	sum := 0
	for i := offset; i < width; i++ {
		digit := int(base[i-offset] - '0')
		sum += ((i+1)%2*2 + 1) * digit
	}
	return (10 - sum%10) % 10, nil
}

// Append returns base followed by its check digit.
func Append(base string) (string, error) {
	digit, err := Compute(base)
	if err != nil {
		return "", err
	}
	return base + strconv.Itoa(digit), nil
}

// Verify reports whether the last digit of number is the check digit of the
// digits before it. Malformed input yields false.
func Verify(number string) bool {
	if len(number) < 2 {
		return false
	}
	last := number[len(number)-1]
	if last < '0' || last > '9' {
		return false
	}
	digit, err := Compute(number[:len(number)-1])
	if err != nil {
		return false
	}
	return digit == int(last-'0')
}

// CheckDigits returns an *InvalidInputError unless s is a non-empty run of ASCII digits.
func CheckDigits(s string) error {
	if s == "" {
		return &InvalidInputError{Value: s, Position: -1}
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return &InvalidInputError{Value: s, Position: i}
		}
	}
	return nil
}
