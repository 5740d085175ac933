// SPDX-License-Identifier: MPL-2.0

package gtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gs1kit/gs1kit/pkg/checkdigit"
)

// DefaultPackagingLevel is the GTIN-14 indicator digit used when none is given.
const DefaultPackagingLevel = 1

type (
	// Number is a complete, check-digit-consistent GTIN. The zero value is not a valid
	// number; obtain one from Create, Parse or the NewGTIN* helpers.
	Number struct {
		typ            Type
		packagingLevel int
		companyPrefix  string
		itemReference  string
		checkDigit     int
		full           string
	}

	// Option configures Create.
	Option func(*createOptions)

	// ParseOption configures Parse.
	ParseOption func(*parseOptions)

	createOptions struct {
		packagingLevel int
	}

	parseOptions struct {
		companyPrefixLength int
	}
)

// WithPackagingLevel sets the GTIN-14 indicator digit (0-9). Other types ignore it.
func WithPackagingLevel(level int) Option {
	return func(o *createOptions) { o.packagingLevel = level }
}

// WithCompanyPrefixLength tells Parse how many digits after the indicator belong to
// the company prefix. Without it the whole body is reported as the item reference.
func WithCompanyPrefixLength(n int) ParseOption {
	return func(o *parseOptions) { o.companyPrefixLength = n }
}

// Create builds a GTIN of type t from an item number and an optional company prefix.
//
// When the prefix and item number together fit the type's digit budget, the item
// reference is zero-padded on the left and the check digit is computed. When they are
// one digit longer, the last digit is taken as a supplied check digit and verified.
// For GTIN-14, a further leading digit is accepted as the indicator, so a complete
// 14-digit number passes through unchanged.
func Create(itemNumber int, companyPrefix string, t Type, opts ...Option) (Number, error) {
	o := createOptions{packagingLevel: DefaultPackagingLevel}
	for _, opt := range opts {
		opt(&o)
	}

	if err := t.Validate(); err != nil {
		return Number{}, err
	}
	t = t.Canonical()
	if itemNumber < 0 {
		return Number{}, &invalidItemNumberError{Value: itemNumber}
	}
	if companyPrefix != "" {
		if err := checkdigit.CheckDigits(companyPrefix); err != nil {
			return Number{}, err
		}
	}
	if o.packagingLevel < 0 || o.packagingLevel > 9 {
		return Number{}, &InvalidPackagingLevelError{Value: o.packagingLevel}
	}

	maxDigits := MaxDigits(t)
	item := strconv.Itoa(itemNumber)
	combined := companyPrefix + item

	if len(companyPrefix) > maxDigits {
		return Number{}, &FieldOverflowError{Type: t, CompanyPrefix: companyPrefix, ItemReference: item, MaxDigits: maxDigits}
	}

	indicator := ""
	if t.HasIndicator() {
		indicator = strconv.Itoa(o.packagingLevel)
	}

	switch {
	case len(combined) <= maxDigits:
		itemReference := strings.Repeat("0", maxDigits-len(combined)) + item
		return assemble(t, indicator, companyPrefix, itemReference)

	case len(combined) == maxDigits+1:
		supplied := int(combined[len(combined)-1] - '0')
		itemReference := combined[len(companyPrefix) : len(combined)-1]
		n, err := assemble(t, indicator, companyPrefix, itemReference)
		if err != nil {
			return Number{}, err
		}
		if supplied != n.checkDigit {
			return Number{}, &InvalidCheckDigitError{Number: indicator + combined, Got: supplied, Want: n.checkDigit}
		}
		return n, nil

	case len(combined) == maxDigits+2 && t.HasIndicator():
		supplied := int(combined[len(combined)-1] - '0')
		prefix, itemReference := "", combined[1:len(combined)-1]
		if companyPrefix != "" {
			prefix = companyPrefix[1:]
			itemReference = combined[len(companyPrefix) : len(combined)-1]
		}
		n, err := assemble(t, combined[:1], prefix, itemReference)
		if err != nil {
			return Number{}, err
		}
		if supplied != n.checkDigit {
			return Number{}, &InvalidCheckDigitError{Number: combined, Got: supplied, Want: n.checkDigit}
		}
		return n, nil

	default:
		return Number{}, &FieldOverflowError{Type: t, CompanyPrefix: companyPrefix, ItemReference: item, MaxDigits: maxDigits}
	}
}

// Validate reports whether number carries a correct trailing check digit. Numbers shorter
// than MaxDigits(t)+1, or containing anything but digits, are invalid. Validate never
// fails; use Parse to learn why a number is rejected.
func Validate(number string, t Type) bool {
	if len(number) < MaxDigits(t)+1 {
		return false
	}
	return checkdigit.Verify(number)
}

// Parse decodes a complete GTIN of exactly t.Length() digits.
func Parse(number string, t Type, opts ...ParseOption) (Number, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := t.Validate(); err != nil {
		return Number{}, err
	}
	t = t.Canonical()
	if err := checkdigit.CheckDigits(number); err != nil {
		return Number{}, err
	}
	if len(number) != t.Length() {
		return Number{}, &InvalidLengthError{Number: number, Type: t, Want: t.Length()}
	}

	maxDigits := MaxDigits(t)
	if o.companyPrefixLength < 0 || o.companyPrefixLength > maxDigits {
		return Number{}, &FieldOverflowError{Type: t, CompanyPrefix: number, MaxDigits: maxDigits}
	}

	indicator, body := "", number[:len(number)-1]
	if t.HasIndicator() {
		indicator, body = body[:1], body[1:]
	}
	n, err := assemble(t, indicator, body[:o.companyPrefixLength], body[o.companyPrefixLength:])
	if err != nil {
		return Number{}, err
	}
	if supplied := int(number[len(number)-1] - '0'); supplied != n.checkDigit {
		return Number{}, &InvalidCheckDigitError{Number: number, Got: supplied, Want: n.checkDigit}
	}
	return n, nil
}

// NewGTIN8 creates an EAN-8 / GTIN-8 number.
func NewGTIN8(itemNumber int, companyPrefix string) (Number, error) {
	return Create(itemNumber, companyPrefix, GTIN8)
}

// NewGTIN12 creates a UPC-A / GTIN-12 number.
func NewGTIN12(itemNumber int, companyPrefix string) (Number, error) {
	return Create(itemNumber, companyPrefix, GTIN12)
}

// NewGTIN13 creates an EAN-13 / GTIN-13 number.
func NewGTIN13(itemNumber int, companyPrefix string) (Number, error) {
	return Create(itemNumber, companyPrefix, GTIN13)
}

// NewGTIN14 creates a GTIN-14 number with the given packaging level.
func NewGTIN14(itemNumber int, companyPrefix string, packagingLevel int) (Number, error) {
	return Create(itemNumber, companyPrefix, GTIN14, WithPackagingLevel(packagingLevel))
}

func assemble(t Type, indicator, companyPrefix, itemReference string) (Number, error) {
	base := indicator + companyPrefix + itemReference
	digit, err := checkdigit.Compute(base)
	if err != nil {
		return Number{}, err
	}
	level := 0
	if indicator != "" {
		level = int(indicator[0] - '0')
	}
	return Number{
		typ:            t,
		packagingLevel: level,
		companyPrefix:  companyPrefix,
		itemReference:  itemReference,
		checkDigit:     digit,
		full:           base + strconv.Itoa(digit),
	}, nil
}

// Type returns the canonical GTIN type.
func (n Number) Type() Type { return n.typ }

// PackagingLevel returns the indicator digit of a GTIN-14, or 0 for other types.
func (n Number) PackagingLevel() int { return n.packagingLevel }

// CompanyPrefix returns the company prefix as supplied (may be empty).
func (n Number) CompanyPrefix() string { return n.companyPrefix }

// ItemReference returns the zero-padded item reference.
func (n Number) ItemReference() string { return n.itemReference }

// CheckDigit returns the check digit.
func (n Number) CheckDigit() int { return n.checkDigit }

// Base returns the number without its check digit.
func (n Number) Base() string {
	if n.full == "" {
		return ""
	}
	return n.full[:len(n.full)-1]
}

// String returns the complete fixed-width number. This is the payload handed to
// barcode renderers.
func (n Number) String() string { return n.full }

// IsZero reports whether n is the zero Number.
func (n Number) IsZero() bool { return n.full == "" }

// GTIN14 returns the number left-padded with zeros to 14 digits, the form carried
// in GS1 AI (01).
func (n Number) GTIN14() string {
	if len(n.full) >= 14 {
		return n.full
	}
	return strings.Repeat("0", 14-len(n.full)) + n.full
}

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.full), nil
}

// InvalidLengthError is returned by Parse when a number does not have the type's length.
// It wraps ErrInvalidInput.
type InvalidLengthError struct {
	Number string
	Type   Type
	Want   int
}

// Error implements the error interface.
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid input: %s must have %d digits, got %d (%q)", e.Type, e.Want, len(e.Number), e.Number)
}

// Unwrap returns ErrInvalidInput for errors.Is() compatibility.
func (e *InvalidLengthError) Unwrap() error { return ErrInvalidInput }
