package dateglob

// Run is an inclusive interval of consecutive calendar days.
type Run struct {
	Start Date
	End   Date
}

// Days returns the number of days the run covers.
func (r Run) Days() int {
	return int(r.End.Time().Sub(r.Start.Time()).Hours())/24 + 1
}

// covers reports whether r fully contains s.
func (r Run) covers(s Run) bool {
	return !r.Start.After(s.Start) && !r.End.Before(s.End)
}

// clamp returns the intersection of r and s. The result has Start after End
// when the two runs do not overlap.
func (r Run) clamp(s Run) Run {
	return Run{maxDate(r.Start, s.Start), minDate(r.End, s.End)}
}

// Runs groups a collection of dates into maximal runs of consecutive days,
// in chronological order. Duplicates collapse and the input order does not
// matter. It returns an *InvalidDateError if any date is not a real
// calendar day.
func Runs(dates []Date) ([]Run, error) {
	norm, err := normalizeDates(dates)
	if err != nil {
		return nil, err
	}
	return detectRuns(norm), nil
}

// detectRuns splits a sorted, duplicate-free date slice into maximal runs.
func detectRuns(dates []Date) []Run {
	if len(dates) == 0 {
		return nil
	}
	var runs []Run
	start, prev := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d != prev.Next() {
			runs = append(runs, Run{start, prev})
			start = d
		}
		prev = d
	}
	return append(runs, Run{start, prev})
}
