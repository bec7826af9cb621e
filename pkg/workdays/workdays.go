// Package workdays counts Monday-to-Friday days over calendar date ranges.
package workdays

import (
	"fmt"
	"time"
)

// DateLayout is the input format for dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Date reduces t to its calendar date at midnight UTC. The year, month and
// day are taken in t's own location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// IsWorkingDay reports whether t falls on Monday through Friday.
func IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// Count returns the number of working days from start to end, both
// inclusive. A start after end yields 0.
func Count(start, end time.Time) int {
	from, to := Date(start), Date(end)

	n := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d) {
			n++
		}
	}
	return n
}

// CountBetween is Count over YYYY-MM-DD strings.
func CountBetween(start, end string) (int, error) {
	from, err := ParseDate(start)
	if err != nil {
		return 0, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return 0, err
	}
	return Count(from, to), nil
}

// FormatDisplay renders t as "Mon, Jan 1, 2024".
func FormatDisplay(t time.Time) string {
	return t.Format("Mon, Jan 2, 2006")
}
