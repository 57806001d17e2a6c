package dateglob

import "strings"

// FieldMask is a bit set of calendar fields that a Unit leaves unspecified.
// A renderer replaces the value of every masked field with a wildcard.
type FieldMask uint8

const (
	// MaskDay marks the day of month as covered in full, as in "any day of
	// the anchor's month".
	MaskDay FieldMask = 1 << iota
	// MaskMonth marks the month as covered in full. Compression only ever
	// sets it together with MaskDay, meaning "any day of the anchor's year".
	MaskMonth
	// MaskTenDay marks the anchor's ten-day slice of the month as covered
	// in full. The tens digit of the day stays significant.
	MaskTenDay
)

// String renders the mask for diagnostics, e.g. "day|month".
func (m FieldMask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	if m&MaskDay != 0 {
		parts = append(parts, "day")
	}
	if m&MaskMonth != 0 {
		parts = append(parts, "month")
	}
	if m&MaskTenDay != 0 {
		parts = append(parts, "tenday")
	}
	return strings.Join(parts, "|")
}

// Unit is one compressed element of a date set: a concrete anchor date plus
// the mask of fields that range over their whole span. A zero mask is a
// single day; MaskTenDay is the anchor's ten-day slice; MaskDay is the
// anchor's whole month; MaskDay|MaskMonth is the anchor's whole year. The
// anchor is always the first day of the span.
type Unit struct {
	Anchor Date
	Mask   FieldMask
}

// Dates expands the unit back into the days it stands for, in order.
func (u Unit) Dates() []Date {
	var span Run
	switch {
	case u.Mask&MaskMonth != 0:
		span = yearSpan(u.Anchor.Year)
	case u.Mask&MaskDay != 0:
		span = monthSpan(u.Anchor.Year, u.Anchor.Month)
	case u.Mask&MaskTenDay != 0:
		span = tenDaySpan(u.Anchor.Year, u.Anchor.Month, tenDayIndex(u.Anchor.Day))
	default:
		return []Date{u.Anchor}
	}
	return Range(span.Start, span.End)
}
