package domain

import (
	"time"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
)

type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"

	// Unlimited disables the goal cap of an entitlement.
	Unlimited = -1

	DefaultFreeMaxGoals = 3
)

// Entitlement is what a plan unlocks. It is applied to goals and windows
// before analytics run; the analytics engine never sees tiers.
type Entitlement struct {
	MaxGoals         int  `json:"max_goals"`
	CurrentMonthOnly bool `json:"current_month_only"`
}

func FreeEntitlement(maxGoals int) Entitlement {
	return Entitlement{MaxGoals: maxGoals, CurrentMonthOnly: true}
}

func ProEntitlement() Entitlement {
	return Entitlement{MaxGoals: Unlimited}
}

// EntitlementFor maps a tier to its entitlement. Unknown tiers get the free plan.
func EntitlementFor(tier Tier, freeMaxGoals int) Entitlement {
	if tier == TierPro {
		return ProEntitlement()
	}
	return FreeEntitlement(freeMaxGoals)
}

func (e Entitlement) CanAddGoal(current int) bool {
	return e.MaxGoals == Unlimited || current < e.MaxGoals
}

// FilterGoals keeps the first MaxGoals goals by sort order. Locked goals drop
// out of both the numerator and the denominator of every metric.
func (e Entitlement) FilterGoals(goals []*Goal) []*Goal {
	sorted := make([]*Goal, len(goals))
	copy(sorted, goals)
	SortGoals(sorted)

	if e.MaxGoals == Unlimited || len(sorted) <= e.MaxGoals {
		return sorted
	}
	if e.MaxGoals <= 0 {
		return []*Goal{}
	}
	return sorted[:e.MaxGoals]
}

// RestrictWindow replaces the window with the tracking day's whole calendar
// month when history is locked.
func (e Entitlement) RestrictWindow(w Window, now time.Time) Window {
	if !e.CurrentMonthOnly {
		return w
	}

	month := calendar.MonthOf(calendar.ResolveTrackingDay(now))
	return NewWindow(month.First(), month.Last())
}

// RestrictMonths keeps only the tracking day's month when history is locked.
func (e Entitlement) RestrictMonths(months []calendar.YearMonth, now time.Time) []calendar.YearMonth {
	if !e.CurrentMonthOnly {
		return months
	}
	return []calendar.YearMonth{calendar.MonthOf(calendar.ResolveTrackingDay(now))}
}
