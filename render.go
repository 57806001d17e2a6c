package dateglob

import "strings"

// Wildcard is the glob token substituted for masked fields.
const Wildcard = "*"

// RenderUnits renders every unit through the template, preserving unit
// order and dropping strings that an earlier unit already produced.
// Neighboring wildcards inside one rendering merge, so a year unit under
// "%Y%m%d" comes out as "2010*".
func RenderUnits(units []Unit, t Template) []string {
	segs := t.Segments()
	out := make([]string, 0, len(units))
	seen := make(map[string]struct{}, len(units))
	for _, u := range units {
		s := renderUnit(u, segs)
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// wildcarded reports whether a unit mask wipes out a directive of the
// given class. Any directive the mask touches turns into a wildcard, even
// when that widens the pattern: a weekday or week number has no single
// value across a masked span, and a ten-day mask still hides which exact
// day a day-of-year or locale date would show.
func wildcarded(c FieldClass, m FieldMask) bool {
	switch c {
	case FieldTime:
		return true
	case FieldYear:
		return false
	case FieldMonth:
		return m&MaskMonth != 0
	case FieldDay:
		return m&(MaskDay|MaskTenDay|MaskMonth) != 0
	case FieldYearDay:
		return m&(MaskDay|MaskTenDay|MaskMonth) != 0
	case FieldWeekday, FieldWeek, FieldWholeDate:
		return m != 0
	}
	return false
}

func renderUnit(u Unit, segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		if seg.Dir == nil {
			b.WriteString(seg.Text)
			continue
		}
		dir := seg.Dir
		if !wildcarded(dir.Class, u.Mask) {
			b.WriteString(dir.Render(u.Anchor))
			continue
		}
		// A ten-day mask keeps the tens digit of %d: days 11-20 of a month
		// render as "1*". The anchor is the first day of the slice, so its
		// tens digit is the shared one. A broader mask drops the digit too.
		if dir.Code == 'd' && u.Mask&MaskTenDay != 0 && u.Mask&(MaskDay|MaskMonth) == 0 {
			b.WriteByte('0' + byte(u.Anchor.Day/tenDayLen))
		}
		b.WriteString(Wildcard)
	}
	return collapseWildcards(b.String())
}

// collapseWildcards merges adjacent stars, including stars the template
// carried as literal text.
func collapseWildcards(s string) string {
	if !strings.Contains(s, "**") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	star := false
	for i := 0; i < len(s); i++ {
		if s[i] == '*' {
			if star {
				continue
			}
			star = true
		} else {
			star = false
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
