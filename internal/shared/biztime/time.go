// Package biztime provides date helpers for membership calculations.
// All storage and transport use UTC; membership windows are whole calendar
// days, so comparisons happen on date-truncated UTC times.
package biztime

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns the current calendar day as a date-truncated UTC time.
func Today() time.Time {
	return DateOf(NowUTC())
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a calendar date in DateLayout, returning a
// date-truncated UTC time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
