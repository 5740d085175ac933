// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/gs1kit/gs1kit/internal/config"
)

func TestWrite_TextCallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	app := NewApp(Dependencies{Stdout: &buf})

	called := false
	err := app.write(struct{}{}, func(w io.Writer) error {
		called = true
		_, err := io.WriteString(w, "plain\n")
		return err
	})
	if err != nil {
		t.Fatalf("write() unexpected error: %v", err)
	}
	if !called || buf.String() != "plain\n" {
		t.Errorf("text output = %q, callback called = %v", buf.String(), called)
	}
}

func TestWrite_StructuredSkipsCallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format config.OutputFormat
		want   string
	}{
		{config.OutputFormatJSON, `"max_digits": 11`},
		{config.OutputFormatYAML, "max_digits: 11"},
		{config.OutputFormatTOML, "max_digits = 11"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			app := NewApp(Dependencies{Stdout: &buf})
			app.format = tt.format

			view := maxDigitsView{Type: "GTIN-12", MaxDigits: 11, Length: 12}
			err := app.write(view, func(io.Writer) error {
				t.Error("text callback should not run for structured formats")
				return nil
			})
			if err != nil {
				t.Fatalf("write() unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output should contain %q:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestWriteKeyValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeKeyValues(&buf, [][2]string{{"a", "1"}, {"long_key", "2"}}); err != nil {
		t.Fatalf("writeKeyValues() unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if strings.Index(lines[0], "1") != strings.Index(lines[1], "2") {
		t.Errorf("values should be aligned:\n%s", buf.String())
	}
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeTable(&buf, []string{"AI", "Title"}, [][]string{{"01", "GTIN"}, {"10", "BATCH/LOT"}}); err != nil {
		t.Fatalf("writeTable() unexpected error: %v", err)
	}
	for _, want := range []string{"AI", "Title", "01", "GTIN", "BATCH/LOT"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("table should contain %q:\n%s", want, buf.String())
		}
	}
}
