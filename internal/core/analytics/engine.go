// Package analytics aggregates goals and a sparse completion set over a
// resolved window into KPIs and chart series.
//
// The engine is pure: it does no I/O, keeps no state between calls and never
// fails. It knows nothing about plans; callers apply entitlements to the goal
// list and the window before calling Compute.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

// MaxWeeks caps the weekly series.
const MaxWeeks = 12

// Input is everything one aggregation reads.
type Input struct {
	Goals       []*domain.Goal
	Completions *domain.CompletionSet
	Window      domain.Window

	// Months overrides the months of the monthly comparison. When empty the
	// months overlapping the window are used.
	Months []calendar.YearMonth

	// Now bounds the current streak to the tracking day: the walk starts at
	// the earlier of the window end and the tracking day of Now, not at the
	// window end alone, so days after today never break the streak. A zero
	// Now anchors the streak on the window end.
	Now time.Time
}

// grid is the goals x days matrix flattened to what every metric needs.
type grid struct {
	goals  []*domain.Goal
	days   []time.Time
	keys   []string
	perDay []int
}

func newGrid(goals []*domain.Goal, set *domain.CompletionSet, w domain.Window) *grid {
	g := &grid{days: calendar.EachDay(w.Start, w.End)}

	for _, goal := range goals {
		if goal != nil {
			g.goals = append(g.goals, goal)
		}
	}

	g.keys = make([]string, len(g.days))
	for i, d := range g.days {
		g.keys[i] = calendar.FormatDateKey(d)
	}

	g.perDay = make([]int, len(g.days))
	for _, goal := range g.goals {
		for i, key := range g.keys {
			if set.Has(goal.ID, key) {
				g.perDay[i]++
			}
		}
	}
	return g
}

func (g *grid) full(i int) bool {
	return len(g.goals) > 0 && g.perDay[i] == len(g.goals)
}

// Compute builds the report for in. Identical inputs always give identical
// reports.
func Compute(in Input) Report {
	g := newGrid(in.Goals, in.Completions, in.Window)

	report := Report{
		WindowStart: calendar.FormatDateKey(in.Window.Start),
		WindowEnd:   calendar.FormatDateKey(in.Window.End),
		TotalDays:   len(g.days),
		TotalGoals:  len(g.goals),
		Goals:       make([]GoalStat, 0, len(g.goals)),
		Weekdays:    make([]WeekdayStat, 0, 7),
		Months:      []MonthStat{},
		Weeks:       []WeekStat{},
		Daily:       make([]DailyPoint, 0, len(g.days)),
	}

	activeDays := 0
	for i, n := range g.perDay {
		report.TotalCompletions += n
		if n > 0 {
			activeDays++
		}
		report.Daily = append(report.Daily, DailyPoint{
			Date:      g.keys[i],
			Completed: n,
			Total:     len(g.goals),
		})
	}

	report.CompletionRate = percent(report.TotalCompletions, len(g.goals)*len(g.days))
	report.ConsistencyScore = percent(activeDays, len(g.days))
	if activeDays > 0 {
		report.AverageDailyCompletions = round1(float64(report.TotalCompletions) / float64(activeDays))
	}

	report.CurrentStreak = g.currentStreak(in.Now)
	report.LongestStreak = g.longestStreak()

	for _, goal := range g.goals {
		completed := 0
		for _, key := range g.keys {
			if in.Completions.Has(goal.ID, key) {
				completed++
			}
		}
		report.Goals = append(report.Goals, GoalStat{
			GoalID:    goal.ID,
			Title:     goal.Title,
			Completed: completed,
			Rate:      percent(completed, len(g.days)),
		})
	}

	report.Weekdays = g.weekdays()
	report.Weeks = g.weeks(in.Window)

	months := in.Months
	if len(months) == 0 {
		months = overlappingMonths(in.Window)
	}
	for _, m := range months {
		report.Months = append(report.Months, monthStat(g.goals, in.Completions, m))
	}

	return report
}

// Streaks returns only the current and longest streak of Compute.
func Streaks(goals []*domain.Goal, set *domain.CompletionSet, w domain.Window, now time.Time) (current, longest int) {
	g := newGrid(goals, set, w)
	return g.currentStreak(now), g.longestStreak()
}

// currentStreak walks back from the window end, or from the tracking day if
// that comes first, and stops at the first day some goal is missing.
func (g *grid) currentStreak(now time.Time) int {
	if len(g.days) == 0 {
		return 0
	}

	anchor := len(g.days) - 1
	if !now.IsZero() {
		today := calendar.ResolveTrackingDay(now)
		if today.Before(g.days[0]) {
			return 0
		}
		if idx := calendar.DaysBetween(g.days[0], today) - 1; idx < anchor {
			anchor = idx
		}
	}

	streak := 0
	for i := anchor; i >= 0 && g.full(i); i-- {
		streak++
	}
	return streak
}

func (g *grid) longestStreak() int {
	longest, run := 0, 0
	for i := range g.days {
		if !g.full(i) {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

func (g *grid) weekdays() []WeekdayStat {
	var completed, occurrences [7]int
	for i, d := range g.days {
		wd := d.Weekday()
		completed[wd] += g.perDay[i]
		occurrences[wd]++
	}

	stats := make([]WeekdayStat, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		possible := len(g.goals) * occurrences[wd]
		stats = append(stats, WeekdayStat{
			Weekday:   int(wd),
			Name:      wd.String()[:3],
			Completed: completed[wd],
			Possible:  possible,
			Rate:      percent(completed[wd], possible),
		})
	}
	return stats
}

// weeks buckets the window into Sunday-first weeks, keeping the most recent
// MaxWeeks. Days outside the window do not count towards partial weeks.
func (g *grid) weeks(w domain.Window) []WeekStat {
	if len(g.days) == 0 {
		return []WeekStat{}
	}

	first := calendar.WeekStart(w.Start)
	start := calendar.WeekStart(w.End).AddDate(0, 0, -7*(MaxWeeks-1))
	start = calendar.MaxDate(start, first)

	var stats []WeekStat
	index := make(map[string]int)
	for ws := start; !ws.After(w.End); ws = ws.AddDate(0, 0, 7) {
		key := calendar.FormatDateKey(ws)
		index[key] = len(stats)
		stats = append(stats, WeekStat{WeekStart: key})
	}

	for i, d := range g.days {
		if pos, ok := index[calendar.FormatDateKey(calendar.WeekStart(d))]; ok {
			stats[pos].Completed += g.perDay[i]
		}
	}
	return stats
}

func overlappingMonths(w domain.Window) []calendar.YearMonth {
	if w.IsEmpty() {
		return nil
	}

	var months []calendar.YearMonth
	last := calendar.MonthOf(w.End)
	for m := calendar.MonthOf(w.Start); !m.First().After(last.First()); m = calendar.MonthOf(m.First().AddDate(0, 1, 0)) {
		months = append(months, m)
	}
	return months
}

func monthStat(goals []*domain.Goal, set *domain.CompletionSet, m calendar.YearMonth) MonthStat {
	completed := 0
	for _, d := range calendar.EachDay(m.First(), m.Last()) {
		key := calendar.FormatDateKey(d)
		for _, goal := range goals {
			if set.Has(goal.ID, key) {
				completed++
			}
		}
	}

	total := len(goals) * m.Days()
	return MonthStat{
		Month:     m.String(),
		Label:     calendar.FormatMonthYear(m.Year, m.Month),
		Completed: completed,
		Total:     total,
		Rate:      percent(completed, total),
	}
}

// percent is part/whole*100 rounded for display, or 0 for an empty whole.
func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return round1(float64(part) / float64(whole) * 100)
}

func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
