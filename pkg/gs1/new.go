// SPDX-License-Identifier: MPL-2.0

package gs1

import (
	"github.com/shopspring/decimal"

	"github.com/gs1kit/gs1kit/pkg/gtin"
)

// Option sets one field of a Record built by New.
type Option func(*Record)

// WithSSCC sets AI (00).
func WithSSCC(sscc string) Option { return func(r *Record) { r.SSCC = sscc } }

// WithGTIN sets AI (01) from a 14-digit string.
func WithGTIN(number string) Option { return func(r *Record) { r.GTIN = number } }

// WithGTINNumber sets AI (01) from a Number of any type, padded to 14 digits.
func WithGTINNumber(n gtin.Number) Option { return func(r *Record) { r.GTIN = n.GTIN14() } }

// WithContent sets AI (02).
func WithContent(number string) Option { return func(r *Record) { r.Content = number } }

// WithBatch sets AI (10).
func WithBatch(batch string) Option { return func(r *Record) { r.Batch = batch } }

// WithSerial sets AI (21).
func WithSerial(serial string) Option { return func(r *Record) { r.Serial = serial } }

// WithNetWeight sets AI (3102) in kilograms.
func WithNetWeight(kg decimal.Decimal) Option {
	return func(r *Record) { r.NetWeight = decimal.NewNullDecimal(kg) }
}

// WithNetWeightPounds sets AI (3102) from a weight in pounds, converted with
// PoundsToKilograms.
func WithNetWeightPounds(lb decimal.Decimal) Option {
	return func(r *Record) { r.NetWeight = decimal.NewNullDecimal(PoundsToKilograms(lb)) }
}

// WithGrossWeight sets AI (3302) in kilograms.
func WithGrossWeight(kg decimal.Decimal) Option {
	return func(r *Record) { r.GrossWeight = decimal.NewNullDecimal(kg) }
}

// WithProductionDate sets AI (11).
func WithProductionDate(d Date) Option { return func(r *Record) { r.ProductionDate = d } }

// WithExpirationDate sets AI (17).
func WithExpirationDate(d Date) Option { return func(r *Record) { r.ExpirationDate = d } }

// WithPieces sets AI (37).
func WithPieces(n int) Option { return func(r *Record) { r.Pieces = n } }

// New builds a Record from options and validates it. On failure the error joins one
// *InvalidFieldError per offending field and the returned Record is the zero value.
func New(opts ...Option) (Record, error) {
	var r Record
	for _, opt := range opts {
		opt(&r)
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}
