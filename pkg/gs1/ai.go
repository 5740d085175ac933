// SPDX-License-Identifier: MPL-2.0

package gs1

import (
	"slices"
	"strconv"
	"strings"
)

const (
	// AISSCC is the Serial Shipping Container Code.
	AISSCC AI = "00"
	// AIGTIN is the GTIN of the trade item.
	AIGTIN AI = "01"
	// AIContent is the GTIN of the trade items contained in a logistic unit.
	AIContent AI = "02"
	// AIBatch is the batch or lot number.
	AIBatch AI = "10"
	// AIProductionDate is the production date (YYMMDD).
	AIProductionDate AI = "11"
	// AIExpirationDate is the expiration date (YYMMDD).
	AIExpirationDate AI = "17"
	// AISerial is the serial number.
	AISerial AI = "21"
	// AIPieces is the count of trade items contained in a logistic unit.
	AIPieces AI = "37"
	// AINetWeight is the net weight in kilograms with 2 implied decimals.
	AINetWeight AI = "3102"
	// AINetWeightPounds is the net weight in pounds with 1 implied decimal. It is accepted
	// on input and converted to AINetWeight; it is never emitted.
	AINetWeightPounds AI = "3201"
	// AIGrossWeight is the gross weight in kilograms with 2 implied decimals.
	AIGrossWeight AI = "3302"

	// GroupSeparator is the ASCII GS character standing in for FNC1 inside raw
	// GS1-128 data.
	GroupSeparator = '\x1d'
	// SymbologyIdentifier prefixes data read from a GS1-128 scanner.
	SymbologyIdentifier = "]C1"

	// weightWidth is the fixed width of every weight AI value.
	weightWidth = 6
	// dateWidth is the fixed width of every date AI value.
	dateWidth = 6
)

const (
	// KindNumeric is a fixed-length run of digits.
	KindNumeric Kind = iota + 1
	// KindAlphanumeric is a variable-length run of letters, digits and '-', '.', '/'.
	KindAlphanumeric
	// KindCount is a variable-length run of digits.
	KindCount
	// KindDate is a YYMMDD date.
	KindDate
	// KindWeight is a 6-digit quantity with implied decimals.
	KindWeight
)

type (
	// AI is a GS1 Application Identifier code such as "01" or "3102".
	AI string

	// Kind classifies how an AI's value is scanned and decoded.
	Kind int

	// Definition describes the wire format of one supported AI.
	Definition struct {
		AI    AI
		Title string
		Kind  Kind
		// Length is the fixed value length, or 0 for variable-length AIs.
		Length int
		// MaxLength bounds variable-length values. It equals Length for fixed AIs.
		MaxLength int
		// Decimals is the number of implied decimal places of weight AIs.
		Decimals int
		// InputOnly marks AIs that Parse accepts but Serialize never emits.
		InputOnly bool
	}
)

// canonicalOrder is the emission order of Serialize and Payload.
var canonicalOrder = []AI{
	AISSCC, AIGTIN, AIContent, AIBatch, AINetWeight, AIGrossWeight,
	AIProductionDate, AIExpirationDate, AISerial, AIPieces,
}

var definitions = map[AI]Definition{
	AISSCC:            {AI: AISSCC, Title: "SSCC", Kind: KindNumeric, Length: 18, MaxLength: 18},
	AIGTIN:            {AI: AIGTIN, Title: "GTIN", Kind: KindNumeric, Length: 14, MaxLength: 14},
	AIContent:         {AI: AIContent, Title: "CONTENT", Kind: KindNumeric, Length: 14, MaxLength: 14},
	AIBatch:           {AI: AIBatch, Title: "BATCH/LOT", Kind: KindAlphanumeric, MaxLength: 20},
	AIProductionDate:  {AI: AIProductionDate, Title: "PROD DATE", Kind: KindDate, Length: dateWidth, MaxLength: dateWidth},
	AIExpirationDate:  {AI: AIExpirationDate, Title: "USE BY OR EXPIRY", Kind: KindDate, Length: dateWidth, MaxLength: dateWidth},
	AISerial:          {AI: AISerial, Title: "SERIAL", Kind: KindAlphanumeric, MaxLength: 20},
	AIPieces:          {AI: AIPieces, Title: "COUNT", Kind: KindCount, MaxLength: 8},
	AINetWeight:       {AI: AINetWeight, Title: "NET WEIGHT (kg)", Kind: KindWeight, Length: weightWidth, MaxLength: weightWidth, Decimals: 2},
	AINetWeightPounds: {AI: AINetWeightPounds, Title: "NET WEIGHT (lb)", Kind: KindWeight, Length: weightWidth, MaxLength: weightWidth, Decimals: 1, InputOnly: true},
	AIGrossWeight:     {AI: AIGrossWeight, Title: "GROSS WEIGHT (kg)", Kind: KindWeight, Length: weightWidth, MaxLength: weightWidth, Decimals: 2},
}

// codesByLength lists every AI, longest first, for prefix matching.
var codesByLength = func() []AI {
	codes := make([]AI, 0, len(definitions))
	for ai := range definitions {
		codes = append(codes, ai)
	}
	slices.SortFunc(codes, func(a, b AI) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(string(a), string(b))
	})
	return codes
}()

// CanonicalOrder returns the AIs Serialize emits, in emission order.
func CanonicalOrder() []AI { return slices.Clone(canonicalOrder) }

// Definitions returns every supported AI definition: the canonical AIs in emission
// order followed by input-only AIs.
func Definitions() []Definition {
	defs := make([]Definition, 0, len(definitions))
	for _, ai := range canonicalOrder {
		defs = append(defs, definitions[ai])
	}
	for _, ai := range codesByLength {
		if definitions[ai].InputOnly {
			defs = append(defs, definitions[ai])
		}
	}
	return defs
}

// Lookup returns the definition of ai.
func Lookup(ai AI) (Definition, bool) {
	def, ok := definitions[ai]
	return def, ok
}

// String returns the string representation of the AI.
func (ai AI) String() string { return string(ai) }

// Fixed reports whether values of this AI have a predefined length. Variable-length
// values need a separator when another element follows them in raw data.
func (d Definition) Fixed() bool { return d.Length > 0 }

// String returns a short description of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindAlphanumeric:
		return "alphanumeric"
	case KindCount:
		return "count"
	case KindDate:
		return "date"
	case KindWeight:
		return "weight"
	default:
		return "unknown"
	}
}

// Format describes the value format in GS1 notation (n18, an..20, n6).
func (d Definition) Format() string {
	prefix := "n"
	if d.Kind == KindAlphanumeric {
		prefix = "an"
	}
	if d.Fixed() {
		return prefix + strconv.Itoa(d.Length)
	}
	return prefix + ".." + strconv.Itoa(d.MaxLength)
}

// matchAI returns the longest known AI that prefixes s.
func matchAI(s string) (Definition, bool) {
	for _, ai := range codesByLength {
		if strings.HasPrefix(s, string(ai)) {
			return definitions[ai], true
		}
	}
	return Definition{}, false
}

// scan reads this AI's value from the start of s and returns it. A non-empty reason
// means no valid value starts at s.
func (d Definition) scan(s string) (value, reason string) {
	if d.Fixed() {
		if len(s) < d.Length {
			return "", "expected " + strconv.Itoa(d.Length) + " digits"
		}
		value = s[:d.Length]
		if !isDigits(value) {
			return "", "expected " + strconv.Itoa(d.Length) + " digits"
		}
		if d.Kind == KindDate {
			if err := Date(value).Validate(); err != nil {
				return "", "invalid date " + value
			}
		}
		return value, ""
	}

	accept := isValueChar
	if d.Kind == KindCount {
		accept = isDigit
	}
	n := 0
	for n < len(s) && n < d.MaxLength && accept(s[n]) {
		n++
	}
	if n == 0 {
		return "", "empty value"
	}
	return s[:n], ""
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isValueChar(c byte) bool {
	switch {
	case isDigit(c), c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return true
	case c == '-', c == '.', c == '/':
		return true
	default:
		return false
	}
}

func isDigits(s string) bool {
	for i := range len(s) {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}

func isValueString(s string) bool {
	for i := range len(s) {
		if !isValueChar(s[i]) {
			return false
		}
	}
	return s != ""
}
