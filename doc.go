// Package dateglob compresses a set of calendar dates into a short list of
// glob patterns.
//
// Given every day of 2010 plus the days immediately around it, rendering the
// set with the format "%Y-%m-%d" yields:
//
//	["2009-12-31", "2010-*-*", "2011-01-*", "2011-02-01"]
//
// The motivating use case is building compact command lines for tools that
// read day-stamped files, where passing thousands of filenames would
// overflow the argument list:
//
//	args, err := dateglob.Strftime(dates, "/logs/foo/%Y/%m/%d/*.gz")
//
// Strftime is the high-level entry point. The pipeline underneath is exposed
// for callers that want to retarget the compression to something other than
// strftime templates: Compress turns dates into Units (a date plus a mask of
// globbed calendar fields), ParseTemplate turns a format string into a
// Template, and RenderUnits marries the two.
//
// Compression groups dates into complete years, complete months, and
// complete ten-day slices of a month (days 1-10, 11-20, and 21 through
// month end). A ten-day slice renders the day-of-month directive as the
// shared tens digit followed by a star: days 11 through 20 of March 2021
// come out as "2021-03-1*". The tens digit makes the glob approximate
// rather than exact. "1*" also matches day 10 and never matches day 20,
// and the last slice's "2*" misses days 30 and 31, so treat ten-day
// patterns as a documented shorthand, not a precise selection.
//
// Formats use the strftime directives documented for Python's
// time.strftime. Directives finer than a day (%H, %M, %S, %f, %p, %X, %z,
// %Z) never have a usable value on a pure date and always render as "*".
// Adjacent stars produced by neighboring directives collapse into one, so
// a whole year under "%Y%m%d" renders as "2010*" rather than "2010**".
//
// All functions are pure and safe for concurrent use.
package dateglob
