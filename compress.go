package dateglob

// Compress reduces a collection of dates to an equivalent, chronologically
// ordered list of Units. Consecutive days that cover a whole year collapse
// into one year unit, a whole month into one month unit and a whole ten-day
// slice into one ten-day unit; everything else stays a single day. The
// input may be unsorted and contain duplicates. It returns an
// *InvalidDateError if any date is not a real calendar day.
func Compress(dates []Date) ([]Unit, error) {
	norm, err := normalizeDates(dates)
	if err != nil {
		return nil, err
	}
	var units []Unit
	for _, r := range detectRuns(norm) {
		units = append(units, compressRun(r)...)
	}
	return units, nil
}

// compressRun splits a run along year boundaries, emitting a year unit for
// every calendar year the run covers in full.
func compressRun(r Run) []Unit {
	var units []Unit
	for y := r.Start.Year; y <= r.End.Year; y++ {
		span := yearSpan(y)
		if r.covers(span) {
			units = append(units, Unit{Anchor: span.Start, Mask: MaskMonth | MaskDay})
			continue
		}
		units = append(units, compressMonths(r.clamp(span))...)
	}
	return units
}

// compressMonths compresses a run confined to one calendar year, emitting a
// month unit for every month it covers in full.
func compressMonths(r Run) []Unit {
	var units []Unit
	for m := r.Start.Month; m <= r.End.Month; m++ {
		span := monthSpan(r.Start.Year, m)
		if r.covers(span) {
			units = append(units, Unit{Anchor: span.Start, Mask: MaskDay})
			continue
		}
		units = append(units, compressTenDays(r.clamp(span))...)
	}
	return units
}

// compressTenDays compresses a run confined to one calendar month, emitting
// a ten-day unit for every ten-day slice it covers in full and single-day
// units for the rest.
func compressTenDays(r Run) []Unit {
	var units []Unit
	year, month := r.Start.Year, r.Start.Month
	for p := tenDayIndex(r.Start.Day); p <= tenDayIndex(r.End.Day); p++ {
		span := tenDaySpan(year, month, p)
		if r.covers(span) {
			units = append(units, Unit{Anchor: span.Start, Mask: MaskTenDay})
			continue
		}
		rest := r.clamp(span)
		for d := rest.Start; !d.After(rest.End); d = d.Next() {
			units = append(units, Unit{Anchor: d})
		}
	}
	return units
}
