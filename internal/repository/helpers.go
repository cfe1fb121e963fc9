package repository

import (
	"time"
)

// timeLayout is fixed-width so TEXT columns sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// nowUTC returns the current UTC time in timeLayout.
func nowUTC() string {
	return time.Now().UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp, returning the zero time when the
// column holds something unparseable.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
