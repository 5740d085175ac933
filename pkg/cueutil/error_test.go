// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "labels.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filepath", func(t *testing.T) {
		t.Parallel()

		original := errors.New("some error")
		err := FormatError(original, "labels.cue")
		if !errors.Is(err, original) {
			t.Fatalf("error should wrap the original, got %v", err)
		}
		if !strings.HasPrefix(err.Error(), "labels.cue: ") {
			t.Errorf("error should start with the filepath, got: %v", err)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "empty path", path: []string{}, expected: ""},
		{name: "single element", path: []string{"defaults"}, expected: "defaults"},
		{name: "nested path", path: []string{"defaults", "type"}, expected: "defaults.type"},
		{name: "array index", path: []string{"labels", "0", "gtin"}, expected: "labels[0].gtin"},
		{name: "nested arrays", path: []string{"labels", "2", "codes", "1"}, expected: "labels[2].codes[1]"},
		{name: "leading digits are not an index", path: []string{"0", "name"}, expected: "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "empty", size: 0},
		{name: "within limit", size: 11},
		{name: "exact limit", size: 100},
		{name: "over limit", size: 101, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(make([]byte, tt.size), 100, "labels.cue")
			if !tt.wantErr {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, ErrFileTooLarge) {
				t.Fatalf("error = %v, want ErrFileTooLarge", err)
			}
			for _, want := range []string{"labels.cue", "101", "100"} {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error should contain %q, got: %v", want, err)
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	withPath := &ValidationError{FilePath: "config.cue", CUEPath: "output.format", Message: "invalid value"}
	if got, want := withPath.Error(), "config.cue: output.format: invalid value"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	withoutPath := &ValidationError{FilePath: "config.cue", Message: "syntax error"}
	if got, want := withoutPath.Error(), "config.cue: syntax error"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
