package dateglob

// FieldClass is the calendar granularity a directive reads. The renderer
// uses it to decide whether a Unit's mask wipes the directive out.
type FieldClass uint8

const (
	// FieldTime covers hours, minutes, seconds, microseconds, AM/PM and
	// time zones. Dates carry none of these, so time directives always
	// render as a wildcard, even for a single day.
	FieldTime FieldClass = iota
	// FieldWeekday covers day-of-week names and numbers.
	FieldWeekday
	// FieldDay is the day of month.
	FieldDay
	// FieldYearDay is the ordinal day of year.
	FieldYearDay
	// FieldWeek covers week-of-year numbers.
	FieldWeek
	// FieldMonth covers month names and numbers.
	FieldMonth
	// FieldYear covers two- and four-digit years. Compression never masks
	// a year, so year directives always render concretely.
	FieldYear
	// FieldWholeDate covers locale-style composite representations that
	// embed the whole date.
	FieldWholeDate
)

// Directive is one strftime conversion. Render produces the concrete text
// for a date; the renderer only calls it when the Unit's mask leaves the
// directive's FieldClass intact.
type Directive struct {
	Code   byte
	Class  FieldClass
	Render func(Date) string
}

// Segment is one piece of a parsed template: either literal text or a
// directive, never both.
type Segment struct {
	Text string     // literal text, with %% and friends already unescaped
	Dir  *Directive // non-nil for a directive segment
}

// Template is a parsed output format. ParseTemplate returns the strftime
// implementation; anything that can describe itself as literal and
// directive segments can stand in for it.
type Template interface {
	// Segments returns the template's parts in output order. Callers must
	// not modify the returned slice.
	Segments() []Segment
}
