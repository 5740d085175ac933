// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gs1kit/gs1kit/internal/config"
	"github.com/gs1kit/gs1kit/internal/issue"
	"github.com/gs1kit/gs1kit/pkg/gs1"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

const sampleElementString = "(01)10012345678902(10)ABC123(17)250630"

func TestGS1Parse(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "--format", "json", "gs1", "parse", "]C1011001234567890210ABC123\x1d17250630")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}

	var view recordView
	if err := json.Unmarshal([]byte(res.stdout), &view); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, res.stdout)
	}
	if view.ElementString != sampleElementString {
		t.Errorf("ElementString = %q, want %q", view.ElementString, sampleElementString)
	}
	if view.Payload != "0110012345678902"+"10ABC123\x1d"+"17250630" {
		t.Errorf("Payload = %q", view.Payload)
	}

	want := []elementView{
		{AI: "01", Title: "GTIN", Value: "10012345678902"},
		{AI: "10", Title: "BATCH/LOT", Value: "ABC123"},
		{AI: "17", Title: "USE BY OR EXPIRY", Value: "250630", Decoded: "2025-06-30"},
	}
	if len(view.Elements) != len(want) {
		t.Fatalf("Elements = %+v, want %d elements", view.Elements, len(want))
	}
	for i, w := range want {
		if view.Elements[i].AI != w.AI || view.Elements[i].Value != w.Value || view.Elements[i].Decoded != w.Decoded {
			t.Errorf("element %d = %+v, want %+v", i, view.Elements[i], w)
		}
	}
}

func TestGS1Parse_DecodesWeights(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "--format", "json", "gs1", "parse", "(3201)000500(3302)001250")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}

	var view recordView
	if err := json.Unmarshal([]byte(res.stdout), &view); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, res.stdout)
	}
	if view.ElementString != "(3102)002268(3302)001250" {
		t.Errorf("ElementString = %q", view.ElementString)
	}
	if len(view.Elements) != 2 || view.Elements[0].Decoded != "22.68 kg" || view.Elements[1].Decoded != "12.50 kg" {
		t.Errorf("Elements = %+v", view.Elements)
	}
}

func TestGS1Parse_SkipsBadSegments(t *testing.T) {
	t.Parallel()

	input := "(01)10012345678902(99)XYZ(10)ABC123"

	res := runCLI(t, nil, "gs1", "parse", input)
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "(01)10012345678902(10)ABC123") {
		t.Errorf("stdout should show the readable fields:\n%s", res.stdout)
	}
	if !strings.Contains(res.stderr, "skipped segment") {
		t.Errorf("stderr should warn about the skipped segment:\n%s", res.stderr)
	}

	res = runCLI(t, nil, "gs1", "parse", "--strict", input)
	if !errors.Is(res.err, gs1.ErrSyntax) {
		t.Fatalf("error = %v, want ErrSyntax", res.err)
	}
	requireIssue(t, res.err, issue.InvalidElementStringId)
}

func TestGS1Parse_StructuredFormats(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "--format", "yaml", "gs1", "parse", sampleElementString)
		if res.err != nil {
			t.Fatalf("unexpected error: %v", res.err)
		}
		var view recordView
		if err := yaml.Unmarshal([]byte(res.stdout), &view); err != nil {
			t.Fatalf("output is not YAML: %v\n%s", err, res.stdout)
		}
		if view.ElementString != sampleElementString || len(view.Elements) != 3 {
			t.Errorf("view = %+v", view)
		}
	})

	t.Run("toml", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, nil, "--format", "toml", "gs1", "parse", sampleElementString)
		if res.err != nil {
			t.Fatalf("unexpected error: %v", res.err)
		}
		var view recordView
		if err := toml.Unmarshal([]byte(res.stdout), &view); err != nil {
			t.Fatalf("output is not TOML: %v\n%s", err, res.stdout)
		}
		if view.ElementString != sampleElementString || len(view.Elements) != 3 {
			t.Errorf("view = %+v", view)
		}
	})
}

func TestGS1Encode(t *testing.T) {
	t.Parallel()

	withCodes := config.DefaultConfig()
	withCodes.Codes = []gs1.AI{gs1.AIGTIN}

	tests := []struct {
		name string
		cfg  *config.Config
		args []string
		want string
	}{
		{
			name: "canonical order",
			args: []string{"--net-weight", "7.25", "--batch", "ABC123", "--gtin", "10012345678902"},
			want: "(01)10012345678902(10)ABC123(3102)000725",
		},
		{
			name: "payload",
			args: []string{"--gtin", "10012345678902", "--batch", "ABC123", "--net-weight", "7.25", "--payload"},
			want: "0110012345678902" + "10ABC123\x1d" + "3102000725",
		},
		{
			name: "pounds",
			args: []string{"--sscc", "106141411234567897", "--net-weight-lb", "50"},
			want: "(00)106141411234567897(3102)002268",
		},
		{
			name: "codes flag",
			args: []string{"--gtin", "10012345678902", "--batch", "X", "--codes", "10,01"},
			want: "(10)X(01)10012345678902",
		},
		{
			name: "codes from config",
			cfg:  withCodes,
			args: []string{"--gtin", "10012345678902", "--batch", "X"},
			want: "(01)10012345678902",
		},
		{
			name: "dates and pieces",
			args: []string{"--content", "10012345678902", "--pieces", "12", "--expiration-date", "250630", "--production-date", "250101"},
			want: "(02)10012345678902(11)250101(17)250630(37)12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCLI(t, tt.cfg, append([]string{"gs1", "encode"}, tt.args...)...)
			if res.err != nil {
				t.Fatalf("unexpected error: %v", res.err)
			}
			if got := strings.TrimSuffix(res.stdout, "\n"); got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGS1Encode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		target error
		id     issue.Id
	}{
		{"nothing to encode", nil, errNothingToEncode, 0},
		{"weight not a number", []string{"--net-weight", "heavy"}, gs1.ErrInvalidField, issue.InvalidFieldId},
		{"batch charset", []string{"--batch", "A B"}, gs1.ErrInvalidField, issue.InvalidFieldId},
		{"bad date", []string{"--expiration-date", "251301"}, gs1.ErrInvalidField, issue.InvalidFieldId},
		{"unknown code", []string{"--gtin", "10012345678902", "--codes", "99"}, errUnknownAI, issue.InvalidElementStringId},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCLI(t, nil, append([]string{"gs1", "encode"}, tt.args...)...)
			if !errors.Is(res.err, tt.target) {
				t.Fatalf("error = %v, want %v", res.err, tt.target)
			}
			requireIssue(t, res.err, tt.id)
		})
	}
}

func TestGS1Get(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "gs1", "get", sampleElementString, "17", "01")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if got := strings.TrimSpace(res.stdout); got != "(17)250630(01)10012345678902" {
		t.Errorf("stdout = %q", got)
	}

	res = runCLI(t, nil, "gs1", "get", sampleElementString, "99")
	if !errors.Is(res.err, errUnknownAI) {
		t.Errorf("error = %v, want errUnknownAI", res.err)
	}
}

func TestGS1AIs(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "--format", "json", "gs1", "ais")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}

	var view aisView
	if err := json.Unmarshal([]byte(res.stdout), &view); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, res.stdout)
	}
	if len(view.AIs) != len(gs1.Definitions()) {
		t.Fatalf("listed %d AIs, want %d", len(view.AIs), len(gs1.Definitions()))
	}
	for _, ai := range view.AIs {
		if (ai.AI == string(gs1.AINetWeightPounds)) != ai.InputOnly {
			t.Errorf("AI %s InputOnly = %v", ai.AI, ai.InputOnly)
		}
	}

	res = runCLI(t, nil, "gs1", "ais")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	for _, want := range []string{"3102", "NET WEIGHT (kg)", "parse only"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("table should contain %q:\n%s", want, res.stdout)
		}
	}
}
