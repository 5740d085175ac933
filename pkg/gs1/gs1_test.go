// SPDX-License-Identifier: MPL-2.0

package gs1

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gs1kit/gs1kit/pkg/gtin"
)

const (
	testGTIN = "10012345678902"
	testSSCC = "106141411234567897"
)

func kg(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func fullRecord() Record {
	return Record{
		SSCC:           testSSCC,
		GTIN:           testGTIN,
		Content:        "09506000134352",
		Batch:          "LOT-7/A",
		NetWeight:      kg("12.5"),
		GrossWeight:    kg("13.75"),
		ProductionDate: "230101",
		ExpirationDate: "250630",
		Serial:         "SN123456",
		Pieces:         10,
	}
}

func TestParseElementString(t *testing.T) {
	t.Parallel()

	r := Parse("(01)10012345678902(10)ABC123(3302)000700(17)250630(21)SN123456(37)10(11)230101")

	want := Record{
		GTIN:           testGTIN,
		Batch:          "ABC123",
		GrossWeight:    kg("7"),
		ExpirationDate: "250630",
		Serial:         "SN123456",
		Pieces:         10,
		ProductionDate: "230101",
	}
	if !r.Equal(want) {
		t.Fatalf("Parse() = %+v, want %+v", r, want)
	}
	if !r.GrossWeight.Decimal.Equal(decimal.NewFromInt(7)) {
		t.Errorf("GrossWeight = %s, want 7", r.GrossWeight.Decimal)
	}

	const canonical = "(01)10012345678902(10)ABC123(3302)000700(11)230101(17)250630(21)SN123456(37)10"
	if got := Serialize(r); got != canonical {
		t.Errorf("Serialize() = %q, want %q", got, canonical)
	}
}

func TestParseForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Record
	}{
		{
			name:  "raw payload with symbology identifier",
			input: "]C10110012345678902" + "10ABC123\x1d" + "3102001250" + "17250630",
			want:  Record{GTIN: testGTIN, Batch: "ABC123", NetWeight: kg("12.5"), ExpirationDate: "250630"},
		},
		{
			name:  "mixed bracketed and raw",
			input: "(00)106141411234567897" + "37" + "24",
			want:  Record{SSCC: testSSCC, Pieces: 24},
		},
		{
			name:  "surrounding whitespace",
			input: "  (21)SN-1 \n",
			want:  Record{Serial: "SN-1"},
		},
		{
			name:  "invalid GTIN goes to content",
			input: "(01)10012345678903",
			want:  Record{Content: "10012345678903"},
		},
		{
			name:  "explicit content",
			input: "(02)09506000134352(37)5",
			want:  Record{Content: "09506000134352", Pieces: 5},
		},
		{
			name:  "first occurrence wins",
			input: "(10)FIRST(10)SECOND(3102)000100(3102)000200",
			want:  Record{Batch: "FIRST", NetWeight: kg("1")},
		},
		{
			name:  "pounds converted to kilograms",
			input: "(3201)000500",
			want:  Record{NetWeight: kg("22.68")},
		},
		{
			name:  "kilograms take precedence over pounds",
			input: "(3201)000500(3102)001000",
			want:  Record{NetWeight: kg("10")},
		},
		{
			name:  "unknown AI skipped",
			input: "(99)XYZ(10)ABC",
			want:  Record{Batch: "ABC"},
		},
		{
			name:  "invalid date skipped",
			input: "(17)251340(11)240229",
			want:  Record{ProductionDate: "240229"},
		},
		{
			name:  "day zero accepted",
			input: "(17)250600",
			want:  Record{ExpirationDate: "250600"},
		},
		{
			name:  "truncated fixed value skipped",
			input: "(01)1001234(21)X",
			want:  Record{Serial: "X"},
		},
		{
			name:  "empty input",
			input: "",
			want:  Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Parse(tt.input); !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPoundsConversionSerializesAsKilograms(t *testing.T) {
	t.Parallel()

	if got := Parse("(3201)000500").String(); got != "(3102)002268" {
		t.Errorf("String() = %q, want %q", got, "(3102)002268")
	}
	if got := PoundsToKilograms(decimal.NewFromInt(50)); !got.Equal(decimal.RequireFromString("22.68")) {
		t.Errorf("PoundsToKilograms(50) = %s, want 22.68", got)
	}
}

func TestParseStrict(t *testing.T) {
	t.Parallel()

	r, err := ParseStrict("(01)10012345678902(99)XYZ(10)ABC(17)251340")
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("ParseStrict() error = %v, want ErrSyntax", err)
	}
	if want := (Record{GTIN: testGTIN, Batch: "ABC"}); !r.Equal(want) {
		t.Errorf("ParseStrict() record = %+v, want %+v", r, want)
	}

	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("error should contain *SyntaxError, got %T", err)
	}
	if synErr.Offset != 18 || synErr.Text != "(99)XYZ" {
		t.Errorf("first SyntaxError = {Offset: %d, Text: %q}, want {18, %q}", synErr.Offset, synErr.Text, "(99)XYZ")
	}
	if !strings.Contains(err.Error(), "invalid date 251340") {
		t.Errorf("error should report the invalid date, got %v", err)
	}

	if _, err := ParseStrict(fullRecord().String()); err != nil {
		t.Errorf("ParseStrict(valid) unexpected error: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record Record
	}{
		{"all fields", fullRecord()},
		{"gtin only", Record{GTIN: testGTIN}},
		{"batch before weight", Record{Batch: "B1", NetWeight: kg("0.05")}},
		{"serial before count", Record{Serial: "S.1", Pieces: 99999999}},
		{"zero weight", Record{GrossWeight: kg("0")}},
		{"dates only", Record{ProductionDate: "991231", ExpirationDate: "000100"}},
		{"empty", Record{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Parse(tt.record.String()); !got.Equal(tt.record) {
				t.Errorf("Parse(String()) = %+v, want %+v", got, tt.record)
			}
			if got := Parse(tt.record.Payload()); !got.Equal(tt.record) {
				t.Errorf("Parse(Payload()) = %+v, want %+v", got, tt.record)
			}
		})
	}
}

func TestSerializeCanonicalOrder(t *testing.T) {
	t.Parallel()

	want := "(00)106141411234567897(01)10012345678902(02)09506000134352(10)LOT-7/A" +
		"(3102)001250(3302)001375(11)230101(17)250630(21)SN123456(37)10"
	if got := fullRecord().String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{
			name:   "separator after variable field followed by another",
			record: Record{GTIN: testGTIN, Batch: "ABC123", NetWeight: kg("1.5")},
			want:   "0110012345678902" + "10ABC123\x1d" + "3102000150",
		},
		{
			name:   "no separator after last field",
			record: Record{GTIN: testGTIN, Batch: "ABC123"},
			want:   "0110012345678902" + "10ABC123",
		},
		{
			name:   "no separator after fixed fields",
			record: Record{SSCC: testSSCC, ExpirationDate: "250630", Pieces: 3},
			want:   "00106141411234567897" + "17250630" + "373",
		},
		{
			name:   "serial and count",
			record: Record{Serial: "X1", Pieces: 3},
			want:   "21X1\x1d" + "373",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.record.Payload(); got != tt.want {
				t.Errorf("Payload() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	r := fullRecord()
	tests := []struct {
		codes []AI
		want  string
	}{
		{[]AI{AISerial, AIGTIN}, "(21)SN123456(01)10012345678902"},
		{[]AI{AIPieces, AINetWeight, AIBatch}, "(37)10(3102)001250(10)LOT-7/A"},
		{[]AI{AINetWeightPounds, AI("99")}, ""},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := r.Get(tt.codes...); got != tt.want {
			t.Errorf("Get(%v) = %q, want %q", tt.codes, got, tt.want)
		}
	}

	if got := (Record{Batch: "A"}).Get(AIGTIN, AIBatch); got != "(10)A" {
		t.Errorf("Get() should omit absent fields, got %q", got)
	}
}

func TestElementsAndValues(t *testing.T) {
	t.Parallel()

	r := Record{GTIN: testGTIN, GrossWeight: kg("7"), Batch: "B"}
	elems := r.Elements()
	want := []Element{
		{AI: AIGTIN, Title: "GTIN", Value: testGTIN},
		{AI: AIBatch, Title: "BATCH/LOT", Value: "B"},
		{AI: AIGrossWeight, Title: "GROSS WEIGHT (kg)", Value: "000700"},
	}
	if len(elems) != len(want) {
		t.Fatalf("Elements() returned %d elements, want %d", len(elems), len(want))
	}
	for i := range want {
		if elems[i] != want[i] {
			t.Errorf("Elements()[%d] = %+v, want %+v", i, elems[i], want[i])
		}
	}

	values := r.Values()
	if len(values) != 3 || values[AIGrossWeight] != "000700" {
		t.Errorf("Values() = %v", values)
	}
}

func TestRecordEqual(t *testing.T) {
	t.Parallel()

	a := Record{NetWeight: kg("7")}
	b := Record{NetWeight: kg("7.00")}
	if !a.Equal(b) {
		t.Error("weights should compare numerically")
	}
	if a.Equal(Record{}) {
		t.Error("present and absent weights should differ")
	}
	if !(Record{}).IsZero() || a.IsZero() {
		t.Error("IsZero() mismatch")
	}
}

func TestGTINNumber(t *testing.T) {
	t.Parallel()

	n, err := Record{GTIN: testGTIN}.GTINNumber()
	if err != nil {
		t.Fatalf("GTINNumber() unexpected error: %v", err)
	}
	if n.String() != testGTIN || n.PackagingLevel() != 1 {
		t.Errorf("GTINNumber() = %s (level %d)", n, n.PackagingLevel())
	}

	if _, err := (Record{}).GTINNumber(); !errors.Is(err, ErrInvalidField) {
		t.Errorf("GTINNumber() on empty record error = %v, want ErrInvalidField", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		record  Record
		wantAIs []AI
	}{
		{name: "valid", record: fullRecord()},
		{name: "empty", record: Record{}},
		{name: "sscc check digit", record: Record{SSCC: "106141411234567890"}, wantAIs: []AI{AISSCC}},
		{name: "sscc length", record: Record{SSCC: "1234"}, wantAIs: []AI{AISSCC}},
		{name: "gtin check digit", record: Record{GTIN: "10012345678903"}, wantAIs: []AI{AIGTIN}},
		{name: "content letters", record: Record{Content: "1001234567890X"}, wantAIs: []AI{AIContent}},
		{name: "batch too long", record: Record{Batch: strings.Repeat("A", 21)}, wantAIs: []AI{AIBatch}},
		{name: "serial charset", record: Record{Serial: "SN 1"}, wantAIs: []AI{AISerial}},
		{name: "negative weight", record: Record{NetWeight: kg("-1")}, wantAIs: []AI{AINetWeight}},
		{name: "weight too large", record: Record{GrossWeight: kg("10000")}, wantAIs: []AI{AIGrossWeight}},
		{name: "weight precision", record: Record{NetWeight: kg("1.005")}, wantAIs: []AI{AINetWeight}},
		{name: "bad date", record: Record{ProductionDate: "231301"}, wantAIs: []AI{AIProductionDate}},
		{name: "negative pieces", record: Record{Pieces: -1}, wantAIs: []AI{AIPieces}},
		{
			name:    "several failures",
			record:  Record{GTIN: "1", ExpirationDate: "2506", Pieces: 100000000},
			wantAIs: []AI{AIGTIN, AIExpirationDate, AIPieces},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.record.Validate()
			if len(tt.wantAIs) == 0 {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidField) {
				t.Fatalf("Validate() error = %v, want ErrInvalidField", err)
			}
			joined, ok := err.(interface{ Unwrap() []error })
			if !ok {
				t.Fatalf("Validate() should return a joined error, got %T", err)
			}
			errs := joined.Unwrap()
			if len(errs) != len(tt.wantAIs) {
				t.Fatalf("Validate() returned %d errors, want %d: %v", len(errs), len(tt.wantAIs), err)
			}
			for i, e := range errs {
				var fieldErr *InvalidFieldError
				if !errors.As(e, &fieldErr) || fieldErr.AI != tt.wantAIs[i] {
					t.Errorf("error %d = %v, want field (%s)", i, e, tt.wantAIs[i])
				}
			}
		})
	}
}

func TestValidateGTINWrapsCheckDigitError(t *testing.T) {
	t.Parallel()

	err := Record{GTIN: "10012345678903"}.Validate()
	if !errors.Is(err, gtin.ErrInvalidCheckDigit) {
		t.Errorf("Validate() error = %v, want it to wrap gtin.ErrInvalidCheckDigit", err)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	n, err := gtin.NewGTIN12(1, "614141")
	if err != nil {
		t.Fatalf("NewGTIN12() unexpected error: %v", err)
	}

	r, err := New(
		WithGTINNumber(n),
		WithBatch("ABC123"),
		WithNetWeightPounds(decimal.NewFromInt(50)),
		WithGrossWeight(decimal.RequireFromString("23.1")),
		WithExpirationDate("250630"),
		WithPieces(12),
	)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	want := "(01)00614141000012(10)ABC123(3102)002268(3302)002310(17)250630(37)12"
	if got := r.String(); got != want {
		t.Errorf("New().String() = %q, want %q", got, want)
	}

	r, err = New(WithSSCC(testSSCC), WithContent("09506000134352"), WithSerial("S1"),
		WithNetWeight(decimal.NewFromInt(1)), WithProductionDate(DateOf(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC))), WithGTIN(testGTIN))
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if r.ProductionDate != "240229" || r.SSCC != testSSCC {
		t.Errorf("New() = %+v", r)
	}

	r, err = New(WithGTIN("10012345678903"), WithBatch("OK"))
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("New() error = %v, want ErrInvalidField", err)
	}
	if !r.IsZero() {
		t.Errorf("New() should return the zero Record on failure, got %+v", r)
	}
}
