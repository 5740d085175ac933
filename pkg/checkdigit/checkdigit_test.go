// SPDX-License-Identifier: MPL-2.0

package checkdigit

import (
	"errors"
	"strconv"
	"testing"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		want int
	}{
		{name: "GTIN-14 indicator 1", base: "1000000045678", want: 1},
		{name: "GTIN-14 from validate example", base: "1123000045678", want: 1},
		{name: "GTIN-14 indicator 0", base: "0001234567890", want: 5},
		{name: "GTIN-14 element string example", base: "1001234567890", want: 2},
		{name: "GTIN-12", base: "61414100001", want: 2},
		{name: "GTIN-13", base: "400638133393", want: 1},
		{name: "GTIN-8", base: "9638507", want: 4},
		{name: "SSCC body", base: "10614141123456789", want: 7},
		{name: "all zeros", base: "0000000000000", want: 0},
		{name: "single digit", base: "5", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Compute(tt.base)
			if err != nil {
				t.Fatalf("Compute(%q) unexpected error: %v", tt.base, err)
			}
			if got != tt.want {
				t.Errorf("Compute(%q) = %d, want %d", tt.base, got, tt.want)
			}
		})
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     string
		position int
	}{
		{name: "empty", base: "", position: -1},
		{name: "letter", base: "12A4", position: 2},
		{name: "leading space", base: " 123", position: 0},
		{name: "minus sign", base: "-1", position: 0},
		{name: "non-ascii digit", base: "12٣", position: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Compute(tt.base)
			if err == nil {
				t.Fatalf("Compute(%q) expected error", tt.base)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error should wrap ErrInvalidInput, got: %v", err)
			}
			var inErr *InvalidInputError
			if !errors.As(err, &inErr) {
				t.Fatalf("error should be *InvalidInputError, got: %T", err)
			}
			if inErr.Position != tt.position {
				t.Errorf("Position = %d, want %d", inErr.Position, tt.position)
			}
			if inErr.Error() == "" {
				t.Error("Error() should not be empty")
			}
		})
	}
}

func TestCompute_PaddingIsTransparent(t *testing.T) {
	t.Parallel()

	// Leading zeros never change the result for bases that fit the padded width.
	base := "45678"
	want, err := Compute(base)
	if err != nil {
		t.Fatal(err)
	}
	for pad := "0"; len(pad)+len(base) <= PaddedWidth; pad += "0" {
		got, err := Compute(pad + base)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Compute(%q) = %d, want %d", pad+base, got, want)
		}
	}
}

func TestAppendVerify(t *testing.T) {
	t.Parallel()

	// Every 13-digit base yields a single digit that makes Verify succeed.
	for i := range 2000 {
		base := strconv.FormatInt(int64(i)*7919+1000000000000, 10)
		full, err := Append(base)
		if err != nil {
			t.Fatalf("Append(%q) unexpected error: %v", base, err)
		}
		if len(full) != len(base)+1 {
			t.Fatalf("Append(%q) = %q, want one extra digit", base, full)
		}
		if !Verify(full) {
			t.Errorf("Verify(%q) = false, want true", full)
		}
		last := full[len(full)-1]
		wrong := base + strconv.Itoa((int(last-'0')+1)%10)
		if Verify(wrong) {
			t.Errorf("Verify(%q) = true, want false", wrong)
		}
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "7", "123x", "x1234", "12 34"} {
		if Verify(in) {
			t.Errorf("Verify(%q) = true, want false", in)
		}
	}
}

func TestAppend_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := Append("12a"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Append error = %v, want ErrInvalidInput", err)
	}
}
