// SPDX-License-Identifier: MPL-2.0

package labelfile

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/gs1kit/gs1kit/pkg/gs1"
)

// Result is one encoded label.
type Result struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	// GTIN is the full GTIN of the label in its own type's width, if any.
	GTIN   string     `json:"gtin,omitempty" yaml:"gtin,omitempty" toml:"gtin,omitempty"`
	Record gs1.Record `json:"-" yaml:"-" toml:"-"`
	// ElementString is the bracketed human-readable text printed under the barcode.
	ElementString string `json:"element_string" yaml:"element_string" toml:"element_string"`
	// Payload is the raw GS1-128 data for the barcode renderer.
	Payload string `json:"payload" yaml:"payload" toml:"payload"`
}

// Encode builds every label of f. Labels that fail are reported as *LabelError values
// joined into the returned error; the results of the others are still returned, in
// file order.
func Encode(f *LabelFile) ([]Result, error) {
	results := make([]Result, 0, len(f.Labels))
	var errs []error
	for i := range f.Labels {
		l := &f.Labels[i]
		res, err := encodeLabel(l, f.Defaults)
		if err != nil {
			errs = append(errs, &LabelError{Index: i, Name: l.Name, Err: err})
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

func encodeLabel(l *Label, d Defaults) (Result, error) {
	number, err := l.number(d)
	if err != nil {
		return Result{}, err
	}

	var opts []gs1.Option
	if !number.IsZero() {
		opts = append(opts, gs1.WithGTINNumber(number))
	}
	if l.SSCC != "" {
		opts = append(opts, gs1.WithSSCC(l.SSCC))
	}
	if l.Content != "" {
		opts = append(opts, gs1.WithContent(l.Content))
	}
	if l.Batch != "" {
		opts = append(opts, gs1.WithBatch(l.Batch))
	}
	if l.Serial != "" {
		opts = append(opts, gs1.WithSerial(l.Serial))
	}
	switch {
	case l.NetWeightKg != nil:
		opts = append(opts, gs1.WithNetWeight(decimal.NewFromFloat(*l.NetWeightKg)))
	case l.NetWeightLb != nil:
		opts = append(opts, gs1.WithNetWeightPounds(decimal.NewFromFloat(*l.NetWeightLb)))
	}
	if l.GrossWeightKg != nil {
		opts = append(opts, gs1.WithGrossWeight(decimal.NewFromFloat(*l.GrossWeightKg)))
	}
	if !l.ProductionDate.IsZero() {
		opts = append(opts, gs1.WithProductionDate(l.ProductionDate))
	}
	if !l.ExpirationDate.IsZero() {
		opts = append(opts, gs1.WithExpirationDate(l.ExpirationDate))
	}
	if l.Pieces > 0 {
		opts = append(opts, gs1.WithPieces(l.Pieces))
	}

	record, err := gs1.New(opts...)
	if err != nil {
		return Result{}, err
	}
	if record.IsZero() {
		return Result{}, ErrEmptyLabel
	}

	res := Result{
		Name:          l.Name,
		GTIN:          number.String(),
		Record:        record,
		ElementString: record.String(),
		Payload:       record.Payload(),
	}
	if codes := l.codes(d); len(codes) > 0 {
		res.ElementString = record.Get(codes...)
		res.Payload = gs1.Parse(res.ElementString).Payload()
	}
	return res, nil
}
