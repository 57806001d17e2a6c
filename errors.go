package dateglob

import "fmt"

// InvalidDateError reports a date that does not name a real calendar day,
// such as February 30th or a date outside the supported year range.
type InvalidDateError struct {
	Date Date
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("dateglob: invalid calendar date %s", e.Date)
}

// FormatError reports a malformed strftime format string.
type FormatError struct {
	Format    string // the offending format string
	Pos       int    // byte offset of the bad directive, when there is one
	Directive byte   // the unknown directive letter, 0 for a trailing '%'
}

func (e *FormatError) Error() string {
	if e.Format == "" {
		return "dateglob: empty format string"
	}
	if e.Directive == 0 {
		return fmt.Sprintf("dateglob: format %q ends with an incomplete directive", e.Format)
	}
	return fmt.Sprintf("dateglob: unknown directive %%%c at offset %d of format %q", e.Directive, e.Pos, e.Format)
}
