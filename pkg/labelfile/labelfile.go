// SPDX-License-Identifier: MPL-2.0

package labelfile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/gs1kit/gs1kit/pkg/cueutil"
	"github.com/gs1kit/gs1kit/pkg/gs1"
	"github.com/gs1kit/gs1kit/pkg/gtin"
)

//go:embed labelfile_schema.cue
var schemaBytes []byte

type (
	// LabelFile is a decoded label file.
	LabelFile struct {
		Defaults Defaults `json:"defaults"`
		Labels   []Label  `json:"labels"`

		// FilePath is the file the labels were read from, if any.
		FilePath string `json:"-"`
	}

	// Defaults apply to every label that does not set the field itself.
	Defaults struct {
		CompanyPrefix  string    `json:"company_prefix,omitempty"`
		Type           gtin.Type `json:"type,omitempty"`
		PackagingLevel *int      `json:"packaging_level,omitempty"`
		Codes          []gs1.AI  `json:"codes,omitempty"`
	}

	// Label describes one GS1-128 label.
	Label struct {
		Name string `json:"name"`

		ItemNumber     *int      `json:"item_number,omitempty"`
		GTIN           string    `json:"gtin,omitempty"`
		CompanyPrefix  string    `json:"company_prefix,omitempty"`
		Type           gtin.Type `json:"type,omitempty"`
		PackagingLevel *int      `json:"packaging_level,omitempty"`

		SSCC           string   `json:"sscc,omitempty"`
		Content        string   `json:"content,omitempty"`
		Batch          string   `json:"batch,omitempty"`
		Serial         string   `json:"serial,omitempty"`
		NetWeightKg    *float64 `json:"net_weight_kg,omitempty"`
		NetWeightLb    *float64 `json:"net_weight_lb,omitempty"`
		GrossWeightKg  *float64 `json:"gross_weight_kg,omitempty"`
		ProductionDate gs1.Date `json:"production_date,omitempty"`
		ExpirationDate gs1.Date `json:"expiration_date,omitempty"`
		Pieces         int      `json:"pieces,omitempty"`

		Codes []gs1.AI `json:"codes,omitempty"`
	}
)

// ParseFile reads and parses the label file at path.
func ParseFile(path string) (*LabelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read label file at %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse validates data against the label file schema and decodes it. filename is
// used in error messages only.
func Parse(data []byte, filename string) (*LabelFile, error) {
	result, err := cueutil.ParseAndDecode[LabelFile](schemaBytes, data, "#LabelFile", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}
	f := result.Value
	f.FilePath = filename
	return f, nil
}

// Schema returns the CUE schema label files are validated against.
func Schema() string { return string(schemaBytes) }

// companyPrefix returns the label's company prefix, falling back to the defaults.
func (l *Label) companyPrefix(d Defaults) string {
	if l.CompanyPrefix != "" {
		return l.CompanyPrefix
	}
	return d.CompanyPrefix
}

func (l *Label) gtinType(d Defaults) gtin.Type {
	if l.Type != "" {
		return l.Type
	}
	return d.Type
}

func (l *Label) packagingLevel(d Defaults) int {
	switch {
	case l.PackagingLevel != nil:
		return *l.PackagingLevel
	case d.PackagingLevel != nil:
		return *d.PackagingLevel
	default:
		return gtin.DefaultPackagingLevel
	}
}

func (l *Label) codes(d Defaults) []gs1.AI {
	if len(l.Codes) > 0 {
		return l.Codes
	}
	return d.Codes
}

// number builds the label's GTIN. It returns the zero Number when the label has none.
func (l *Label) number(d Defaults) (gtin.Number, error) {
	typ := l.gtinType(d)
	switch {
	case l.GTIN != "" && l.ItemNumber != nil:
		return gtin.Number{}, ErrAmbiguousGTIN
	case l.GTIN != "":
		if typ == "" {
			typ, _ = gtin.TypeForLength(len(l.GTIN))
		}
		return gtin.Parse(l.GTIN, typ)
	case l.ItemNumber != nil:
		if typ == "" {
			typ = gtin.GTIN14
		}
		return gtin.Create(*l.ItemNumber, l.companyPrefix(d), typ, gtin.WithPackagingLevel(l.packagingLevel(d)))
	default:
		return gtin.Number{}, nil
	}
}

var (
	// ErrAmbiguousGTIN is returned for a label that sets both gtin and item_number.
	ErrAmbiguousGTIN = errors.New("gtin and item_number are mutually exclusive")

	// ErrEmptyLabel is returned for a label without any GS1 field.
	ErrEmptyLabel = errors.New("label has no GS1 fields")
)

// LabelError reports a label that could not be encoded.
type LabelError struct {
	Index int
	Name  string
	Err   error
}

// Error implements the error interface.
func (e *LabelError) Error() string {
	return fmt.Sprintf("label %q (labels[%d]): %v", e.Name, e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *LabelError) Unwrap() error { return e.Err }
