// SPDX-License-Identifier: MPL-2.0

package gs1

import (
	"errors"
	"fmt"
	"time"
)

// dateLayout is the Go reference layout of a GS1 date.
const dateLayout = "060102"

// ErrInvalidDate is the sentinel error wrapped by InvalidDateError.
var ErrInvalidDate = errors.New("invalid date")

type (
	// Date is a GS1 YYMMDD date as carried by AI (11) and AI (17). The zero value ("")
	// means no date. Day "00" is allowed and stands for the last day of the month.
	Date string

	// InvalidDateError is returned when a Date is not a YYMMDD value with a month
	// in 01-12 and a day in 00-31.
	InvalidDateError struct {
		Value Date
	}
)

// DateOf returns the GS1 date of t.
func DateOf(t time.Time) Date { return Date(t.Format(dateLayout)) }

// IsZero reports whether d is empty.
func (d Date) IsZero() bool { return d == "" }

// String returns the string representation of the Date.
func (d Date) String() string { return string(d) }

// Validate returns an error if d is not a well-formed YYMMDD value.
func (d Date) Validate() error {
	if len(d) != dateWidth || !isDigits(string(d)) {
		return &InvalidDateError{Value: d}
	}
	month := (d[2]-'0')*10 + d[3] - '0'
	day := (d[4]-'0')*10 + d[5] - '0'
	if month < 1 || month > 12 || day > 31 {
		return &InvalidDateError{Value: d}
	}
	return nil
}

// Time resolves d to a calendar date. The century is chosen with the GS1 sliding
// window: the year lies between 49 years before and 50 years after now. Day "00"
// resolves to the last day of the month.
func (d Date) Time(now time.Time) (time.Time, error) {
	if err := d.Validate(); err != nil {
		return time.Time{}, err
	}
	yy := int(d[0]-'0')*10 + int(d[1]-'0')
	month := time.Month(int(d[2]-'0')*10 + int(d[3]-'0'))
	day := int(d[4]-'0')*10 + int(d[5]-'0')

	current := now.Year()
	century := current - current%100
	switch diff := yy - current%100; {
	case diff >= 51:
		century -= 100
	case diff <= -50:
		century += 100
	}
	year := century + yy

	if day == 0 {
		// Day 0 of the following month is the last day of this one.
		return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC), nil
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month {
		return time.Time{}, &InvalidDateError{Value: d}
	}
	return t, nil
}

// Error implements the error interface.
func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q (expected YYMMDD with month 01-12 and day 00-31)", string(e.Value))
}

// Unwrap returns ErrInvalidDate for errors.Is() compatibility.
func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }
