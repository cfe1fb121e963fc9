package domain

import "time"

// EpochMillis is a Unix timestamp in milliseconds, the resolution used by
// the persisted progress blob.
type EpochMillis int64

// MillisOf converts t to EpochMillis, dropping sub-millisecond precision.
func MillisOf(t time.Time) EpochMillis {
	return EpochMillis(t.UnixMilli())
}

// Time returns the instant as a time.Time in the local zone.
func (m EpochMillis) Time() time.Time {
	return time.UnixMilli(int64(m))
}

// MillisPtr is a convenience for optional timestamps.
func MillisPtr(t time.Time) *EpochMillis {
	m := MillisOf(t)
	return &m
}

// CalendarDayDiff returns the number of local-midnight boundaries between
// from and to in loc. Same calendar day is 0, the next day is 1; negative
// when to is before from.
func CalendarDayDiff(from, to time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	y1, m1, d1 := from.In(loc).Date()
	y2, m2, d2 := to.In(loc).Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
