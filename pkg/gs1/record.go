// SPDX-License-Identifier: MPL-2.0

package gs1

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gs1kit/gs1kit/pkg/checkdigit"
	"github.com/gs1kit/gs1kit/pkg/gtin"
)

// maxPieces is the largest count AI (37) can carry.
const maxPieces = 99999999

var maxWeight = decimal.New(999999, -2)

type (
	// Record is the decoded content of a GS1 element string. Zero values mean the
	// field is absent. Serialization is a pure function of the fields.
	Record struct {
		SSCC           string              `json:"sscc,omitempty"`
		GTIN           string              `json:"gtin,omitempty"`
		Content        string              `json:"content,omitempty"`
		Batch          string              `json:"batch,omitempty"`
		NetWeight      decimal.NullDecimal `json:"net_weight"`
		GrossWeight    decimal.NullDecimal `json:"gross_weight"`
		ProductionDate Date                `json:"production_date,omitempty"`
		ExpirationDate Date                `json:"expiration_date,omitempty"`
		Serial         string              `json:"serial,omitempty"`
		Pieces         int                 `json:"pieces,omitempty"`
	}

	// Element is one present field of a Record in its encoded form.
	Element struct {
		AI    AI     `json:"ai"`
		Title string `json:"title"`
		Value string `json:"value"`
	}
)

// Serialize returns the bracketed element string of r. It is equivalent to r.String().
func Serialize(r Record) string { return r.String() }

// String returns the bracketed element string, e.g. "(01)10012345678902(10)ABC123",
// with present fields in canonical order.
func (r Record) String() string {
	var sb strings.Builder
	for _, e := range r.Elements() {
		sb.WriteByte('(')
		sb.WriteString(string(e.AI))
		sb.WriteByte(')')
		sb.WriteString(e.Value)
	}
	return sb.String()
}

// Payload returns the raw GS1-128 data handed to a barcode renderer: no brackets, and
// a GS character after every variable-length value that is followed by another element.
func (r Record) Payload() string {
	elems := r.Elements()
	var sb strings.Builder
	for i, e := range elems {
		sb.WriteString(string(e.AI))
		sb.WriteString(e.Value)
		if !definitions[e.AI].Fixed() && i < len(elems)-1 {
			sb.WriteByte(GroupSeparator)
		}
	}
	return sb.String()
}

// Get returns the bracketed element string of the requested AIs only, in the order
// given. Absent and unknown AIs are omitted.
func (r Record) Get(codes ...AI) string {
	var sb strings.Builder
	for _, ai := range codes {
		if v := r.value(ai); v != "" {
			sb.WriteString("(" + string(ai) + ")" + v)
		}
	}
	return sb.String()
}

// Elements returns the present fields in canonical order.
func (r Record) Elements() []Element {
	elems := make([]Element, 0, len(canonicalOrder))
	for _, ai := range canonicalOrder {
		if v := r.value(ai); v != "" {
			elems = append(elems, Element{AI: ai, Title: definitions[ai].Title, Value: v})
		}
	}
	return elems
}

// Values returns the encoded value of every present field keyed by AI.
func (r Record) Values() map[AI]string {
	values := make(map[AI]string)
	for _, e := range r.Elements() {
		values[e.AI] = e.Value
	}
	return values
}

// IsZero reports whether no field is present.
func (r Record) IsZero() bool { return r.Equal(Record{}) }

// Equal reports whether r and o hold the same fields. Weights compare numerically.
func (r Record) Equal(o Record) bool {
	return r.SSCC == o.SSCC &&
		r.GTIN == o.GTIN &&
		r.Content == o.Content &&
		r.Batch == o.Batch &&
		weightEqual(r.NetWeight, o.NetWeight) &&
		weightEqual(r.GrossWeight, o.GrossWeight) &&
		r.ProductionDate == o.ProductionDate &&
		r.ExpirationDate == o.ExpirationDate &&
		r.Serial == o.Serial &&
		r.Pieces == o.Pieces
}

// GTINNumber decodes AI (01) as a GTIN-14.
func (r Record) GTINNumber() (gtin.Number, error) {
	if r.GTIN == "" {
		return gtin.Number{}, &InvalidFieldError{AI: AIGTIN, Reason: "not present"}
	}
	return gtin.Parse(r.GTIN, gtin.GTIN14)
}

// Validate checks every present field against its AI definition. All failures are
// returned together; each is an *InvalidFieldError.
func (r Record) Validate() error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if r.SSCC != "" {
		add(validateNumeric(AISSCC, r.SSCC))
		if isDigits(r.SSCC) && len(r.SSCC) == definitions[AISSCC].Length && !checkdigit.Verify(r.SSCC) {
			add(&InvalidFieldError{AI: AISSCC, Value: r.SSCC, Reason: "invalid check digit"})
		}
	}
	if r.GTIN != "" {
		if err := validateNumeric(AIGTIN, r.GTIN); err != nil {
			add(err)
		} else if _, err := gtin.Parse(r.GTIN, gtin.GTIN14); err != nil {
			add(&InvalidFieldError{AI: AIGTIN, Value: r.GTIN, Reason: "invalid GTIN-14", Cause: err})
		}
	}
	if r.Content != "" {
		add(validateNumeric(AIContent, r.Content))
	}
	if r.Batch != "" {
		add(validateText(AIBatch, r.Batch))
	}
	if r.Serial != "" {
		add(validateText(AISerial, r.Serial))
	}
	add(validateWeight(AINetWeight, r.NetWeight))
	add(validateWeight(AIGrossWeight, r.GrossWeight))
	add(validateDate(AIProductionDate, r.ProductionDate))
	add(validateDate(AIExpirationDate, r.ExpirationDate))
	if r.Pieces < 0 || r.Pieces > maxPieces {
		add(&InvalidFieldError{AI: AIPieces, Value: strconv.Itoa(r.Pieces), Reason: fmt.Sprintf("must be between 1 and %d", maxPieces)})
	}

	return errors.Join(errs...)
}

// value returns the encoded value of ai, or "" when the field is absent.
func (r Record) value(ai AI) string {
	switch ai {
	case AISSCC:
		return r.SSCC
	case AIGTIN:
		return r.GTIN
	case AIContent:
		return r.Content
	case AIBatch:
		return r.Batch
	case AINetWeight:
		return formatWeight(r.NetWeight)
	case AIGrossWeight:
		return formatWeight(r.GrossWeight)
	case AIProductionDate:
		return string(r.ProductionDate)
	case AIExpirationDate:
		return string(r.ExpirationDate)
	case AISerial:
		return r.Serial
	case AIPieces:
		if r.Pieces > 0 {
			return strconv.Itoa(r.Pieces)
		}
		return ""
	default:
		return ""
	}
}

// formatWeight encodes kilograms as six digits of hundredths.
func formatWeight(w decimal.NullDecimal) string {
	if !w.Valid {
		return ""
	}
	return fmt.Sprintf("%06d", w.Decimal.Shift(2).Round(0).IntPart())
}

func weightEqual(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Decimal.Equal(b.Decimal)
}

func validateNumeric(ai AI, v string) error {
	def := definitions[ai]
	if len(v) != def.Length || !isDigits(v) {
		return &InvalidFieldError{AI: ai, Value: v, Reason: fmt.Sprintf("expected %d digits", def.Length)}
	}
	return nil
}

func validateText(ai AI, v string) error {
	def := definitions[ai]
	if len(v) > def.MaxLength || !isValueString(v) {
		return &InvalidFieldError{AI: ai, Value: v, Reason: fmt.Sprintf("expected 1 to %d letters, digits, '-', '.' or '/'", def.MaxLength)}
	}
	return nil
}

func validateWeight(ai AI, w decimal.NullDecimal) error {
	if !w.Valid {
		return nil
	}
	switch {
	case w.Decimal.IsNegative():
		return &InvalidFieldError{AI: ai, Value: w.Decimal.String(), Reason: "weight must not be negative"}
	case w.Decimal.GreaterThan(maxWeight):
		return &InvalidFieldError{AI: ai, Value: w.Decimal.String(), Reason: "weight exceeds " + maxWeight.StringFixed(2) + " kg"}
	case !w.Decimal.Equal(w.Decimal.Round(2)):
		return &InvalidFieldError{AI: ai, Value: w.Decimal.String(), Reason: "weight has more than 2 decimals"}
	}
	return nil
}

func validateDate(ai AI, d Date) error {
	if d.IsZero() {
		return nil
	}
	if err := d.Validate(); err != nil {
		return &InvalidFieldError{AI: ai, Value: string(d), Reason: "expected YYMMDD", Cause: err}
	}
	return nil
}
