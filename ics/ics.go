// Package ics collects calendar dates from iCalendar streams, the usual
// on-disk form of recorded events, so they can be fed to dateglob.
package ics

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"

	"github.com/Yelp/dateglob"
)

const (
	logComponent    = "dateglob/ics"
	logKeyComponent = "component"
	logKeyError     = "error"
)

// Dates decodes every calendar object in the stream and returns the start
// date of each event, in stream order. All-day events keep their stated
// day; timed events resolve to their day in UTC. Events without a usable
// DTSTART are skipped with a debug log line. The result may be unsorted
// and contain duplicates, which Compress and Strftime accept as is.
func Dates(r io.Reader) ([]dateglob.Date, error) {
	dec := ical.NewDecoder(r)
	var dates []dateglob.Date
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dateglob/ics: decode calendar: %w", err)
		}
		for _, event := range cal.Events() {
			// A missing DTSTART comes back as a zero time, not an error.
			start, err := event.DateTimeStart(time.UTC)
			if err != nil || start.IsZero() {
				slog.Debug("Skipping event without a usable start date",
					slog.String(logKeyComponent, logComponent),
					slog.Any(logKeyError, err),
				)
				continue
			}
			dates = append(dates, dateglob.DateOf(start))
		}
	}
	return dates, nil
}
