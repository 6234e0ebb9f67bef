// Package dateutil holds the calendar arithmetic the planner and the
// events endpoint share: day offsets, ISO formatting and month overlap
// checks for projected events.
package dateutil

import (
	"fmt"
	"time"
)

const ISODate = "2006-01-02"

// MonthRange returns the inclusive UTC range covering the first through
// last calendar day of the given month (1-12).
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// day 0 of the next month is the last day of this one
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	return start, end
}

// EventRange returns the UTC instant range an event occupies. All-day
// events expand to the full day span of their start/end dates; timed
// events use their literal instants. An empty end falls back to start.
func EventRange(allDay bool, start, end string) (time.Time, time.Time, error) {
	if end == "" {
		end = start
	}
	if allDay {
		s, err := time.ParseInLocation(ISODate, start, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse all-day start %q: %w", start, err)
		}
		e, err := time.ParseInLocation(ISODate, end, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse all-day end %q: %w", end, err)
		}
		return s, e.Add(24*time.Hour - time.Millisecond), nil
	}
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start %q: %w", start, err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse end %q: %w", end, err)
	}
	return s, e, nil
}

// OverlapsMonth reports whether the event range intersects the month
// range, inclusive on both ends. Unparseable events don't overlap.
func OverlapsMonth(allDay bool, start, end string, year, month int) bool {
	mStart, mEnd := MonthRange(year, month)
	eStart, eEnd, err := EventRange(allDay, start, end)
	if err != nil {
		return false
	}
	return !eEnd.Before(mStart) && !eStart.After(mEnd)
}

// AddDays shifts a date by n calendar days.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// AddMinutes shifts an instant by n minutes.
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}

// FormatDate renders the local calendar fields of d as "YYYY-MM-DD".
func FormatDate(d time.Time) string {
	return d.Format(ISODate)
}

// ParseDate parses a "YYYY-MM-DD" string in the local time zone, so
// FormatDate(ParseDate(s)) == s for any well-formed input.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(ISODate, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// ClampInt clamps v into [min, max]. Workout durations from the model
// pass through here before they become event lengths.
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
