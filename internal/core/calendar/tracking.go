// Package calendar holds the day model shared by the tracker grid and the
// analytics engine: the tracking day with its early-morning cutoff, date keys
// and month grids.
//
// Dates are represented as time.Time values at midnight UTC. Only the
// year/month/day components carry meaning, so adding days never drifts across
// daylight saving transitions.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DateKeyLayout is the canonical YYYY-MM-DD layout of a date key.
	DateKeyLayout = "2006-01-02"

	// CutoffHour is the local hour before which the tracking day is still yesterday.
	CutoffHour = 5

	secondsPerDay = 24 * 60 * 60
)

var ErrInvalidDateKey = errors.New("invalid date key (expected YYYY-MM-DD)")

// DayStatus is the position of a date relative to the tracking day.
type DayStatus string

const (
	Past   DayStatus = "past"
	Today  DayStatus = "today"
	Future DayStatus = "future"
)

// Date builds a date-only value. Out-of-range components normalize the same
// way time.Date does.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the time of day of t, keeping the calendar date t has in its
// own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// ResolveTrackingDay returns the day completions are recorded under at the
// instant now, read on now's wall clock. Before CutoffHour it is still the
// previous calendar day.
func ResolveTrackingDay(now time.Time) time.Time {
	today := DateOf(now)
	if now.Hour() < CutoffHour {
		return today.AddDate(0, 0, -1)
	}
	return today
}

// FormatDateKey is the only place a date is turned into its YYYY-MM-DD key.
func FormatDateKey(date time.Time) string {
	return date.Format(DateKeyLayout)
}

// ParseDateKey maps the key's components straight onto a date, with no
// timezone shift.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	return t, nil
}

// ClassifyDate compares a date with the tracking day at day granularity.
func ClassifyDate(date time.Time, now time.Time) DayStatus {
	day := DateOf(date)
	tracking := ResolveTrackingDay(now)

	switch {
	case day.Before(tracking):
		return Past
	case day.After(tracking):
		return Future
	default:
		return Today
	}
}

// Classify parses key and classifies it relative to the tracking day.
func Classify(key string, now time.Time) (DayStatus, error) {
	date, err := ParseDateKey(key)
	if err != nil {
		return "", err
	}
	return ClassifyDate(date, now), nil
}

// DaysBetween counts the days of the inclusive range [start, end]. It is zero
// when start is after end.
func DaysBetween(start, end time.Time) int {
	start, end = DateOf(start), DateOf(end)
	if start.After(end) {
		return 0
	}
	return int((end.Unix()-start.Unix())/secondsPerDay) + 1
}

// EachDay lists every date of [start, end] in ascending order.
func EachDay(start, end time.Time) []time.Time {
	n := DaysBetween(start, end)
	days := make([]time.Time, 0, n)

	current := DateOf(start)
	for i := 0; i < n; i++ {
		days = append(days, current)
		current = current.AddDate(0, 0, 1)
	}
	return days
}

// WeekStart returns the Sunday on or before date.
func WeekStart(date time.Time) time.Time {
	date = DateOf(date)
	return date.AddDate(0, 0, -int(date.Weekday()))
}

// WeekEnd returns the Saturday on or after date.
func WeekEnd(date time.Time) time.Time {
	date = DateOf(date)
	return date.AddDate(0, 0, int(time.Saturday-date.Weekday()))
}

// MinDate returns the earlier of a and b.
func MinDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxDate returns the later of a and b.
func MaxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
