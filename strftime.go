package dateglob

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTemplate parses a strftime format string into a Template. The
// directive set mirrors the one documented for Python's time.strftime,
// including %f for microseconds. %% produces a literal percent sign, %n a
// newline and %t a tab. The composites %F, %D, %T, %R and %r expand to
// their component directives at parse time. An unknown directive or a
// trailing lone percent sign yields a *FormatError, as does an empty
// format string.
func ParseTemplate(format string) (Template, error) {
	return parseTemplate(format, true)
}

// ParseTemplateLenient is ParseTemplate except that unknown directives pass
// through as opaque literal text instead of failing, so "%q-%Y" renders as
// "%q-" followed by the year. A trailing lone percent sign is still an
// error.
func ParseTemplateLenient(format string) (Template, error) {
	return parseTemplate(format, false)
}

// strftimeTemplate is the Template produced by ParseTemplate.
type strftimeTemplate struct {
	format string
	segs   []Segment
}

func (t *strftimeTemplate) Segments() []Segment { return t.segs }

func (t *strftimeTemplate) String() string { return t.format }

// expansions are directives that stand for a fixed sequence of other
// directives and expand before rendering.
var expansions = map[byte]string{
	'F': "%Y-%m-%d",
	'D': "%m/%d/%y",
	'T': "%H:%M:%S",
	'R': "%H:%M",
	'r': "%I:%M:%S %p",
}

func parseTemplate(format string, strict bool) (*strftimeTemplate, error) {
	if format == "" {
		return nil, &FormatError{Format: format}
	}
	var (
		segs []Segment
		lit  strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, Segment{Text: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			lit.WriteByte(c)
			continue
		}
		i++
		if i == len(format) {
			return nil, &FormatError{Format: format, Pos: i - 1}
		}
		code := format[i]
		switch code {
		case '%':
			lit.WriteByte('%')
		case 'n':
			lit.WriteByte('\n')
		case 't':
			lit.WriteByte('\t')
		default:
			if exp, ok := expansions[code]; ok {
				sub, err := parseTemplate(exp, true)
				if err != nil {
					return nil, err
				}
				flush()
				segs = append(segs, sub.segs...)
				continue
			}
			dir, ok := directives[code]
			if !ok {
				if strict {
					return nil, &FormatError{Format: format, Pos: i, Directive: code}
				}
				lit.WriteByte('%')
				lit.WriteByte(code)
				continue
			}
			flush()
			segs = append(segs, Segment{Dir: dir})
		}
	}
	flush()
	return &strftimeTemplate{format: format, segs: segs}, nil
}

// directives maps each conversion letter to its calendar field and
// renderer. %h is the usual alias for %b.
var directives = map[byte]*Directive{
	'a': {Code: 'a', Class: FieldWeekday, Render: renderWeekdayAbbr},
	'A': {Code: 'A', Class: FieldWeekday, Render: renderWeekdayFull},
	'w': {Code: 'w', Class: FieldWeekday, Render: renderWeekdayNumber},
	'd': {Code: 'd', Class: FieldDay, Render: renderDay},
	'b': {Code: 'b', Class: FieldMonth, Render: renderMonthAbbr},
	'h': {Code: 'b', Class: FieldMonth, Render: renderMonthAbbr},
	'B': {Code: 'B', Class: FieldMonth, Render: renderMonthFull},
	'm': {Code: 'm', Class: FieldMonth, Render: renderMonthNumber},
	'y': {Code: 'y', Class: FieldYear, Render: renderYearShort},
	'Y': {Code: 'Y', Class: FieldYear, Render: renderYear},
	'j': {Code: 'j', Class: FieldYearDay, Render: renderYearDay},
	'U': {Code: 'U', Class: FieldWeek, Render: renderWeekSunday},
	'W': {Code: 'W', Class: FieldWeek, Render: renderWeekMonday},
	'c': {Code: 'c', Class: FieldWholeDate, Render: renderDateTime},
	'x': {Code: 'x', Class: FieldWholeDate, Render: renderLocaleDate},
	'H': {Code: 'H', Class: FieldTime, Render: renderFixed("00")},
	'I': {Code: 'I', Class: FieldTime, Render: renderFixed("12")},
	'p': {Code: 'p', Class: FieldTime, Render: renderFixed("AM")},
	'M': {Code: 'M', Class: FieldTime, Render: renderFixed("00")},
	'S': {Code: 'S', Class: FieldTime, Render: renderFixed("00")},
	'f': {Code: 'f', Class: FieldTime, Render: renderFixed("000000")},
	'X': {Code: 'X', Class: FieldTime, Render: renderFixed("00:00:00")},
	'z': {Code: 'z', Class: FieldTime, Render: renderFixed("")},
	'Z': {Code: 'Z', Class: FieldTime, Render: renderFixed("")},
}

func renderYear(d Date) string      { return fmt.Sprintf("%04d", d.Year) }
func renderYearShort(d Date) string { return fmt.Sprintf("%02d", d.Year%100) }

func renderMonthNumber(d Date) string { return fmt.Sprintf("%02d", int(d.Month)) }
func renderMonthAbbr(d Date) string   { return d.Month.String()[:3] }
func renderMonthFull(d Date) string   { return d.Month.String() }

func renderDay(d Date) string     { return fmt.Sprintf("%02d", d.Day) }
func renderYearDay(d Date) string { return fmt.Sprintf("%03d", d.Time().YearDay()) }

func renderWeekdayAbbr(d Date) string { return d.Time().Weekday().String()[:3] }
func renderWeekdayFull(d Date) string { return d.Time().Weekday().String() }

// renderWeekdayNumber counts from 0 for Sunday, matching strftime's %w.
func renderWeekdayNumber(d Date) string {
	return strconv.Itoa(int(d.Time().Weekday()))
}

// renderWeekSunday numbers weeks from the first Sunday of the year; days
// before it fall in week 00.
func renderWeekSunday(d Date) string {
	t := d.Time()
	return fmt.Sprintf("%02d", (t.YearDay()-1+7-int(t.Weekday()))/7)
}

// renderWeekMonday numbers weeks from the first Monday of the year; days
// before it fall in week 00.
func renderWeekMonday(d Date) string {
	t := d.Time()
	wday := (int(t.Weekday()) + 6) % 7
	return fmt.Sprintf("%02d", (t.YearDay()-1+7-wday)/7)
}

// renderDateTime is %c. Dates have no time of day, so it reads midnight.
func renderDateTime(d Date) string {
	return d.Time().Format(time.ANSIC)
}

func renderLocaleDate(d Date) string {
	return d.Time().Format("01/02/06")
}

// renderFixed serves time-of-day directives, which have one constant value
// at midnight. These only ever surface through Directive.Render; inside
// the renderer a time directive is always a wildcard.
func renderFixed(s string) func(Date) string {
	return func(Date) string { return s }
}
