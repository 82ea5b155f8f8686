package domain

import "time"

// Clock is injected into services so tests control "now".
type Clock func() time.Time

// SystemClock truncates to microseconds, the resolution Postgres keeps, so a
// value read back compares equal to the one written.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// DateOf returns midnight of t's calendar day in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts calendar days from a to b. Both are dates as produced
// by DateOf; drivers may hand them back in another zone, so they are read
// in UTC.
func DaysBetween(a, b time.Time) int {
	a, b = a.UTC(), b.UTC()
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
