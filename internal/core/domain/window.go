package domain

import (
	"errors"
	"time"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
)

var ErrInvalidWindow = errors.New("invalid analytics window")

type WindowSelector string

const (
	WindowAllTime     WindowSelector = "all"
	WindowLast7Days   WindowSelector = "last7"
	WindowLast30Days  WindowSelector = "last30"
	WindowLast3Months WindowSelector = "last3months"
	WindowThisYear    WindowSelector = "year"
	WindowCustom      WindowSelector = "custom"
)

func (s WindowSelector) Valid() bool {
	switch s {
	case WindowAllTime, WindowLast7Days, WindowLast30Days, WindowLast3Months, WindowThisYear, WindowCustom:
		return true
	}
	return false
}

// Window is an inclusive range of days. A window whose start is after its
// end holds no days.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) Window {
	return Window{Start: calendar.DateOf(start), End: calendar.DateOf(end)}
}

func (w Window) Days() int {
	return calendar.DaysBetween(w.Start, w.End)
}

func (w Window) IsEmpty() bool {
	return w.Days() == 0
}

func (w Window) Contains(date time.Time) bool {
	day := calendar.DateOf(date)
	return !day.Before(w.Start) && !day.After(w.End)
}

// WindowRequest is the caller's description of the range to aggregate.
// Start and End are only read for WindowCustom. Months is the list of months
// shown in the tracker; when present it anchors the all-time window.
type WindowRequest struct {
	Selector WindowSelector
	Start    time.Time
	End      time.Time
	Months   []calendar.YearMonth
}

// Resolve turns the request into concrete days relative to the tracking day
// at now. An unknown selector resolves like WindowAllTime.
func (r WindowRequest) Resolve(now time.Time, completions *CompletionSet) Window {
	today := calendar.ResolveTrackingDay(now)

	switch r.Selector {
	case WindowLast7Days:
		return NewWindow(today.AddDate(0, 0, -6), today)
	case WindowLast30Days:
		return NewWindow(today.AddDate(0, 0, -29), today)
	case WindowLast3Months:
		return NewWindow(today.AddDate(0, -3, 0), today)
	case WindowThisYear:
		return NewWindow(calendar.Date(today.Year(), time.January, 1), today)
	case WindowCustom:
		return NewWindow(r.Start, r.End)
	}

	start := today
	if first, ok := earliestMonth(r.Months); ok {
		start = first.First()
	} else if earliest := completions.Earliest(); !earliest.IsZero() {
		start = earliest
	}
	return NewWindow(calendar.MinDate(start, today), today)
}

func earliestMonth(months []calendar.YearMonth) (calendar.YearMonth, bool) {
	if len(months) == 0 {
		return calendar.YearMonth{}, false
	}

	first := months[0]
	for _, m := range months[1:] {
		if m.First().Before(first.First()) {
			first = m
		}
	}
	return first, true
}
