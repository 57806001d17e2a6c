package dateglob

import "time"

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// Every month splits into three ten-day slices: days 1-10, days 11-20 and
// days 21 through month end. The last slice absorbs the 8 to 11 remaining
// days, so all three share a distinct tens digit.
const tenDayLen = 10

// tenDayIndex returns the slice (0, 1 or 2) containing the given day of
// month.
func tenDayIndex(day int) int {
	if day > 2*tenDayLen {
		return 2
	}
	return (day - 1) / tenDayLen
}

// tenDayFirst returns the first day of month of the given slice.
func tenDayFirst(period int) int {
	return period*tenDayLen + 1
}

// tenDayLast returns the last day of month of the given slice.
func tenDayLast(year int, month time.Month, period int) int {
	if period == 2 {
		return DaysInMonth(year, month)
	}
	return (period + 1) * tenDayLen
}

// yearSpan returns the Run covering the whole year.
func yearSpan(year int) Run {
	return Run{Date{year, time.January, 1}, Date{year, time.December, 31}}
}

// monthSpan returns the Run covering the whole month.
func monthSpan(year int, month time.Month) Run {
	return Run{Date{year, month, 1}, Date{year, month, DaysInMonth(year, month)}}
}

// tenDaySpan returns the Run covering the given ten-day slice of the month.
func tenDaySpan(year int, month time.Month, period int) Run {
	return Run{
		Date{year, month, tenDayFirst(period)},
		Date{year, month, tenDayLast(year, month, period)},
	}
}
