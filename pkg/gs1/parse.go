// SPDX-License-Identifier: MPL-2.0

package gs1

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/gs1kit/gs1kit/pkg/gtin"
)

// PoundsPerKilogram is the divisor applied to AI (3201) pound weights. Encoded data in
// circulation was produced with this approximation rather than the exact 0.45359237
// kg/lb factor, so it must not be changed.
var PoundsPerKilogram = decimal.RequireFromString("2.205")

// PoundsToKilograms converts a weight in pounds to kilograms rounded to 2 decimals.
func PoundsToKilograms(lb decimal.Decimal) decimal.Decimal {
	return lb.Div(PoundsPerKilogram).Round(2)
}

// Parse decodes an element string. It never fails: unknown or malformed segments are
// skipped and missing fields stay absent.
//
// A (01) value that is not a valid GTIN-14 is stored as Content. When an AI occurs
// more than once the first occurrence wins, and (3102) takes precedence over (3201).
func Parse(input string) Record {
	r, _ := decode(Tokenize(input))
	return r
}

// ParseStrict decodes an element string like Parse, but also returns every skipped
// segment as a *SyntaxError, joined with errors.Join. The returned Record holds the
// fields that could be decoded.
func ParseStrict(input string) (Record, error) {
	r, errs := decode(Tokenize(input))
	return r, errors.Join(errs...)
}

func decode(tokens []Token) (Record, []error) {
	var (
		r      Record
		errs   []error
		pounds decimal.NullDecimal
	)
	for _, tok := range tokens {
		if tok.Err != nil {
			errs = append(errs, tok.Err)
			continue
		}
		v := tok.Value
		switch tok.AI {
		case AISSCC:
			setOnce(&r.SSCC, v)
		case AIGTIN:
			if gtin.Validate(v, gtin.GTIN14) {
				setOnce(&r.GTIN, v)
			} else {
				setOnce(&r.Content, v)
			}
		case AIContent:
			setOnce(&r.Content, v)
		case AIBatch:
			setOnce(&r.Batch, v)
		case AISerial:
			setOnce(&r.Serial, v)
		case AIProductionDate:
			setOnce((*string)(&r.ProductionDate), v)
		case AIExpirationDate:
			setOnce((*string)(&r.ExpirationDate), v)
		case AINetWeight:
			setWeightOnce(&r.NetWeight, v, definitions[AINetWeight].Decimals)
		case AIGrossWeight:
			setWeightOnce(&r.GrossWeight, v, definitions[AIGrossWeight].Decimals)
		case AINetWeightPounds:
			setWeightOnce(&pounds, v, definitions[AINetWeightPounds].Decimals)
		case AIPieces:
			if n, err := strconv.Atoi(v); err == nil && r.Pieces == 0 {
				r.Pieces = n
			}
		}
	}
	if !r.NetWeight.Valid && pounds.Valid {
		r.NetWeight = decimal.NewNullDecimal(PoundsToKilograms(pounds.Decimal))
	}
	return r, errs
}

func setOnce(field *string, v string) {
	if *field == "" {
		*field = v
	}
}

// setWeightOnce decodes a fixed-width weight with the given implied decimals.
func setWeightOnce(field *decimal.NullDecimal, v string, decimals int) {
	if field.Valid {
		return
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return
	}
	*field = decimal.NewNullDecimal(decimal.New(n, int32(-decimals)))
}
