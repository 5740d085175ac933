// SPDX-License-Identifier: MPL-2.0

// Package gtin builds and validates Global Trade Item Numbers.
//
// A GTIN is laid out as
//
//	[indicator] company-prefix item-reference check-digit
//
// where the indicator (packaging level) exists only for GTIN-14 and the company prefix
// plus item reference always fill exactly MaxDigits(type) digits. The check digit is the
// GS1 mod-10 digit over everything before it, indicator included (see package checkdigit).
//
// Create and Parse fail with errors wrapping ErrInvalidInput, ErrInvalidCheckDigit or
// ErrFieldOverflow, so an inconsistent Number cannot be constructed. Validate is the
// lenient counterpart: it only answers true or false.
package gtin
