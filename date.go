package dateglob

import (
	"fmt"
	"slices"
	"time"
)

// Years representable by a Date. The bounds match the four-digit %Y
// directive; anything outside them fails validation.
const (
	MinYear = 1
	MaxYear = 9999
)

// Date is a calendar date with no time-of-day and no location. The zero
// value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for the given calendar day. It does not
// validate; call Validate or let Compress report the error.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the Date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// DatesOf converts a slice of instants to their calendar dates, each in its
// own location.
func DatesOf(ts []time.Time) []Date {
	dates := make([]Date, len(ts))
	for i, t := range ts {
		dates[i] = DateOf(t)
	}
	return dates
}

// Validate checks that d names a real calendar day, honoring leap years.
// It returns an *InvalidDateError otherwise.
func (d Date) Validate() error {
	if d.Year < MinYear || d.Year > MaxYear {
		return &InvalidDateError{Date: d}
	}
	if d.Month < time.January || d.Month > time.December {
		return &InvalidDateError{Date: d}
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return &InvalidDateError{Date: d}
	}
	return nil
}

// Time returns midnight UTC of d. Only meaningful for valid dates.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String renders d as yyyy-mm-dd.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare orders dates chronologically. It returns a negative number when
// d precedes o, zero when they are equal and a positive number otherwise.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return d.Year - o.Year
	case d.Month != o.Month:
		return int(d.Month) - int(o.Month)
	default:
		return d.Day - o.Day
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Next returns the day after d, rolling over month and year ends.
func (d Date) Next() Date {
	if d.Day < DaysInMonth(d.Year, d.Month) {
		return Date{d.Year, d.Month, d.Day + 1}
	}
	if d.Month < time.December {
		return Date{d.Year, d.Month + 1, 1}
	}
	return Date{d.Year + 1, time.January, 1}
}

// Range returns every date from first through last inclusive, in order.
// It returns nil when first is after last. Both bounds must be valid.
func Range(first, last Date) []Date {
	if first.After(last) {
		return nil
	}
	n := int(last.Time().Sub(first.Time()).Hours())/24 + 1
	dates := make([]Date, 0, n)
	for d := first; !d.After(last); d = d.Next() {
		dates = append(dates, d)
	}
	return dates
}

func minDate(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

func maxDate(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}

// normalizeDates validates every date, then returns a sorted copy with
// duplicates removed. The input slice is left untouched.
func normalizeDates(dates []Date) ([]Date, error) {
	for _, d := range dates {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	norm := slices.Clone(dates)
	slices.SortFunc(norm, Date.Compare)
	return slices.Compact(norm), nil
}
