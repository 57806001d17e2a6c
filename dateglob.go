package dateglob

import (
	"log/slog"
	"time"
)

// Log attribute keys shared by the package's debug records.
const (
	logKeyComponent = "component"
	logKeyFormat    = "format"
	logKeyDates     = "dates"
	logKeyUnits     = "units"
	logKeyGlobs     = "globs"
	logKeyDuration  = "duration_ms"
)

const logComponent = "dateglob"

// Strftime compresses a collection of dates and renders each compressed
// unit through the strftime format, returning the glob patterns in
// chronological order with duplicates removed. The input may be unsorted
// and contain duplicates; it is not modified. An empty input yields an
// empty, non-nil slice.
//
// It returns an *InvalidDateError when a date does not name a real
// calendar day and a *FormatError when the format string is malformed.
// Both are reported before any output is produced.
func Strftime(dates []Date, format string) ([]string, error) {
	start := time.Now()
	tpl, err := ParseTemplate(format)
	if err != nil {
		return nil, err
	}
	units, err := Compress(dates)
	if err != nil {
		return nil, err
	}
	globs := RenderUnits(units, tpl)
	slog.Debug("Date set compressed",
		slog.String(logKeyComponent, logComponent),
		slog.String(logKeyFormat, format),
		slog.Int(logKeyDates, len(dates)),
		slog.Int(logKeyUnits, len(units)),
		slog.Int(logKeyGlobs, len(globs)),
		slog.Int64(logKeyDuration, time.Since(start).Milliseconds()),
	)
	return globs, nil
}
