package dateglob_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Yelp/dateglob"
)

func TestCompress_Empty(t *testing.T) {
	units, err := dateglob.Compress(nil)
	assert.NoError(t, err)
	assert.Empty(t, units)
}

func TestCompress_SingleDay(t *testing.T) {
	units, err := dateglob.Compress([]dateglob.Date{dateglob.NewDate(2010, time.June, 6)})
	assert.NoError(t, err)
	assert.Equal(t, []dateglob.Unit{{Anchor: dateglob.NewDate(2010, time.June, 6)}}, units)
}

func TestCompress_WholeYear(t *testing.T) {
	units, err := dateglob.Compress(wholeYear(2010))
	assert.NoError(t, err)
	assert.Equal(t, []dateglob.Unit{
		{Anchor: dateglob.NewDate(2010, time.January, 1), Mask: dateglob.MaskMonth | dateglob.MaskDay},
	}, units)
}

func TestCompress_YearPlusDay(t *testing.T) {
	dates := append(wholeYear(2010), dateglob.NewDate(2011, time.January, 1))

	units, err := dateglob.Compress(dates)
	assert.NoError(t, err)
	assert.Equal(t, []dateglob.Unit{
		{Anchor: dateglob.NewDate(2010, time.January, 1), Mask: dateglob.MaskMonth | dateglob.MaskDay},
		{Anchor: dateglob.NewDate(2011, time.January, 1)},
	}, units, "one day beyond the year must not leak into the year unit")
}

func TestCompress_SurroundedYear(t *testing.T) {
	// One run from 2009-12-31 through 2011-02-01: a straggler day, a whole
	// year, a whole month and another straggler.
	dates := dateglob.Range(dateglob.NewDate(2009, time.December, 31), dateglob.NewDate(2011, time.February, 1))

	units, err := dateglob.Compress(dates)
	assert.NoError(t, err)
	assert.Equal(t, []dateglob.Unit{
		{Anchor: dateglob.NewDate(2009, time.December, 31)},
		{Anchor: dateglob.NewDate(2010, time.January, 1), Mask: dateglob.MaskMonth | dateglob.MaskDay},
		{Anchor: dateglob.NewDate(2011, time.January, 1), Mask: dateglob.MaskDay},
		{Anchor: dateglob.NewDate(2011, time.February, 1)},
	}, units)
}

func TestCompress_LeapFebruary(t *testing.T) {
	// All 29 days of a leap February collapse into a month unit.
	units, err := dateglob.Compress(wholeMonth(2020, time.February))
	assert.NoError(t, err)
	assert.Equal(t, []dateglob.Unit{
		{Anchor: dateglob.NewDate(2020, time.February, 1), Mask: dateglob.MaskDay},
	}, units)

	// The first 28 days of the same month do not: the last ten-day slice
	// misses the 29th, so days 21 through 28 stay single.
	units, err = dateglob.Compress(days(2020, time.February, 1, 28))
	assert.NoError(t, err)

	want := []dateglob.Unit{
		{Anchor: dateglob.NewDate(2020, time.February, 1), Mask: dateglob.MaskTenDay},
		{Anchor: dateglob.NewDate(2020, time.February, 11), Mask: dateglob.MaskTenDay},
	}
	for d := 21; d <= 28; d++ {
		want = append(want, dateglob.Unit{Anchor: dateglob.NewDate(2020, time.February, d)})
	}
	assert.Equal(t, want, units)
}

func TestCompress_PartialMonth(t *testing.T) {
	// March 5th through 25th: only the middle ten-day slice is complete.
	units, err := dateglob.Compress(days(2021, time.March, 5, 25))
	assert.NoError(t, err)

	var want []dateglob.Unit
	for d := 5; d <= 10; d++ {
		want = append(want, dateglob.Unit{Anchor: dateglob.NewDate(2021, time.March, d)})
	}
	want = append(want, dateglob.Unit{Anchor: dateglob.NewDate(2021, time.March, 11), Mask: dateglob.MaskTenDay})
	for d := 21; d <= 25; d++ {
		want = append(want, dateglob.Unit{Anchor: dateglob.NewDate(2021, time.March, d)})
	}
	assert.Equal(t, want, units)
}

func TestCompress_TruncatedMonthEnd(t *testing.T) {
	// January 1st through 30th: the last slice needs the 31st, so it
	// breaks into single days while the first two slices collapse.
	units, err := dateglob.Compress(days(2021, time.January, 1, 30))
	assert.NoError(t, err)

	want := []dateglob.Unit{
		{Anchor: dateglob.NewDate(2021, time.January, 1), Mask: dateglob.MaskTenDay},
		{Anchor: dateglob.NewDate(2021, time.January, 11), Mask: dateglob.MaskTenDay},
	}
	for d := 21; d <= 30; d++ {
		want = append(want, dateglob.Unit{Anchor: dateglob.NewDate(2021, time.January, d)})
	}
	assert.Equal(t, want, units)
}

func TestCompress_DisjointRuns(t *testing.T) {
	dates := []dateglob.Date{
		dateglob.NewDate(2021, time.March, 5),
		dateglob.NewDate(2021, time.March, 7),
		dateglob.NewDate(2021, time.March, 8),
	}

	units, err := dateglob.Compress(dates)
	assert.NoError(t, err)
	assert.Equal(t, []dateglob.Unit{
		{Anchor: dateglob.NewDate(2021, time.March, 5)},
		{Anchor: dateglob.NewDate(2021, time.March, 7)},
		{Anchor: dateglob.NewDate(2021, time.March, 8)},
	}, units)
}

func TestCompress_Deterministic(t *testing.T) {
	base := wholeMonth(2020, time.February)
	want, err := dateglob.Compress(base)
	assert.NoError(t, err)

	reversed := make([]dateglob.Date, 0, len(base))
	for i := len(base) - 1; i >= 0; i-- {
		reversed = append(reversed, base[i])
	}
	rotated := append(append([]dateglob.Date{}, base[14:]...), base[:14]...)
	doubled := append(append([]dateglob.Date{}, base...), base...)

	for name, in := range map[string][]dateglob.Date{
		"reversed": reversed,
		"rotated":  rotated,
		"doubled":  doubled,
	} {
		got, err := dateglob.Compress(in)
		assert.NoError(t, err, name)
		assert.Equal(t, want, got, "input order %s must not change the result", name)
	}
}

func TestCompress_InputUntouched(t *testing.T) {
	in := []dateglob.Date{
		dateglob.NewDate(2021, time.March, 7),
		dateglob.NewDate(2021, time.March, 5),
		dateglob.NewDate(2021, time.March, 6),
	}
	saved := append([]dateglob.Date{}, in...)

	_, err := dateglob.Compress(in)
	assert.NoError(t, err)
	assert.Equal(t, saved, in, "caller's slice must not be reordered")
}

// TestCompress_Expansion checks the core guarantee: expanding every unit
// gives back exactly the distinct input dates, nothing more, nothing less.
func TestCompress_Expansion(t *testing.T) {
	cases := map[string][]dateglob.Date{
		"surrounded year": dateglob.Range(
			dateglob.NewDate(2009, time.December, 31),
			dateglob.NewDate(2011, time.February, 1)),
		"partial month":      days(2021, time.March, 5, 25),
		"truncated february": days(2020, time.February, 1, 28),
		"scattered with duplicates": {
			dateglob.NewDate(2010, time.June, 6),
			dateglob.NewDate(2007, time.May, 6),
			dateglob.NewDate(2010, time.June, 6),
			dateglob.NewDate(2007, time.May, 6),
		},
	}

	for name, dates := range cases {
		t.Run(name, func(t *testing.T) {
			units, err := dateglob.Compress(dates)
			assert.NoError(t, err)

			var expanded []dateglob.Date
			for _, u := range units {
				expanded = append(expanded, u.Dates()...)
			}
			assert.ElementsMatch(t, uniqueDates(dates), expanded)
		})
	}
}

func TestCompress_InvalidDate(t *testing.T) {
	bad := dateglob.NewDate(2021, time.February, 30)
	units, err := dateglob.Compress([]dateglob.Date{
		dateglob.NewDate(2021, time.February, 28),
		bad,
	})

	var invalid *dateglob.InvalidDateError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, bad, invalid.Date)
	assert.Nil(t, units, "no partial output on error")
}

func TestUnitDates(t *testing.T) {
	tests := []struct {
		name  string
		unit  dateglob.Unit
		count int
		first dateglob.Date
		last  dateglob.Date
	}{
		{
			name:  "single day",
			unit:  dateglob.Unit{Anchor: dateglob.NewDate(2021, time.March, 5)},
			count: 1,
			first: dateglob.NewDate(2021, time.March, 5),
			last:  dateglob.NewDate(2021, time.March, 5),
		},
		{
			name:  "ten-day slice at a leap month end",
			unit:  dateglob.Unit{Anchor: dateglob.NewDate(2020, time.February, 21), Mask: dateglob.MaskTenDay},
			count: 9,
			first: dateglob.NewDate(2020, time.February, 21),
			last:  dateglob.NewDate(2020, time.February, 29),
		},
		{
			name:  "whole month",
			unit:  dateglob.Unit{Anchor: dateglob.NewDate(2021, time.June, 1), Mask: dateglob.MaskDay},
			count: 30,
			first: dateglob.NewDate(2021, time.June, 1),
			last:  dateglob.NewDate(2021, time.June, 30),
		},
		{
			name:  "whole leap year",
			unit:  dateglob.Unit{Anchor: dateglob.NewDate(2020, time.January, 1), Mask: dateglob.MaskMonth | dateglob.MaskDay},
			count: 366,
			first: dateglob.NewDate(2020, time.January, 1),
			last:  dateglob.NewDate(2020, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.unit.Dates()
			assert.Len(t, got, tt.count)
			assert.Equal(t, tt.first, got[0])
			assert.Equal(t, tt.last, got[len(got)-1])
		})
	}
}
