// Package analytics turns the raw append-only intake and workout logs into
// date-bucketed statistics, goal percentages and streaks. Everything in this
// package is a pure function over value snapshots: callers resolve entries,
// members and settings first, then hand them in together with an explicit
// reference time and timezone. Nothing here reads the clock or touches a
// store, so calls are deterministic and safe to run concurrently.
package analytics

import "time"

const DateKeyLayout = "2006-01-02"

// RangeKind selects a trailing window of calendar days ending today.
type RangeKind string

const (
	RangeWeek  RangeKind = "week"
	RangeMonth RangeKind = "month"
	RangeYear  RangeKind = "year"
)

// Days returns the window length. Unknown kinds fall back to a week so a
// bad selector degrades instead of producing an empty report.
func (k RangeKind) Days() int {
	switch k {
	case RangeMonth:
		return 30
	case RangeYear:
		return 365
	default:
		return 7
	}
}

// LocalDateKey renders the calendar day of an instant in the given timezone
// as "YYYY-MM-DD". Two entries a minute apart can land on different keys when
// midnight falls between them; that is the intended household-local view.
func LocalDateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateKeyLayout)
}

// StartOfDay returns midnight of t's calendar day in the given timezone.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// WeekStart returns midnight of the Sunday on or before t. Weeks run
// Sunday through Saturday.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	day := StartOfDay(t, loc)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekEnd returns the last representable instant of the Saturday ending
// t's week.
func WeekEnd(t time.Time, loc *time.Location) time.Time {
	return WeekStart(t, loc).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// DateRange resolves a range kind to inclusive start/end days: today minus
// (n-1) days through today, both normalized to start of day.
func DateRange(kind RangeKind, now time.Time, loc *time.Location) (start, end time.Time) {
	end = StartOfDay(now, loc)
	start = end.AddDate(0, 0, -(kind.Days() - 1))
	return start, end
}

// DayKeysInRange lists every calendar day key from start to end inclusive.
// The result has no gaps even across DST transitions, since iteration is by
// calendar day rather than 24-hour steps.
func DayKeysInRange(start, end time.Time, loc *time.Location) []string {
	keys := []string{}
	for d := StartOfDay(start, loc); !d.After(end); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(DateKeyLayout))
	}
	return keys
}
