package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-goals/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

type AnalyticsService struct {
	userRepo       domain.UserRepository
	goalRepo       domain.GoalRepository
	completionRepo domain.CompletionRepository
	freeMaxGoals   int
}

func NewAnalyticsService(userRepo domain.UserRepository, goalRepo domain.GoalRepository, completionRepo domain.CompletionRepository, freeMaxGoals int) *AnalyticsService {
	return &AnalyticsService{
		userRepo:       userRepo,
		goalRepo:       goalRepo,
		completionRepo: completionRepo,
		freeMaxGoals:   freeMaxGoals,
	}
}

type ReportInput struct {
	UserID string
	Window domain.WindowRequest
	Now    time.Time
}

// Report applies the user's plan to their goals and to the requested window,
// then hands the result to the analytics engine.
func (s *AnalyticsService) Report(ctx context.Context, input ReportInput) (*analytics.Report, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	ent := user.Entitlement(s.freeMaxGoals)

	goals, err := s.goalRepo.ListByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	goals = ent.FilterGoals(goals)

	req := input.Window
	months := req.Months
	if len(months) > 0 {
		months = ent.RestrictMonths(months, input.Now)
	}

	var records []*domain.Completion
	if req.Selector == domain.WindowCustom || (req.Selector.Valid() && req.Selector != domain.WindowAllTime) || ent.CurrentMonthOnly {
		// The window does not depend on the earliest completion, so only
		// the months it touches need loading.
		window := ent.RestrictWindow(req.Resolve(input.Now, nil), input.Now)
		from, to := span(window, months)
		records, err = s.completionRepo.ListByUserIDAndDateRange(ctx, input.UserID, from, to)
	} else {
		records, err = s.completionRepo.ListByUserID(ctx, input.UserID)
	}
	if err != nil {
		return nil, err
	}

	set := domain.CompletionSetFrom(records)
	window := ent.RestrictWindow(req.Resolve(input.Now, set), input.Now)

	report := analytics.Compute(analytics.Input{
		Goals:       goals,
		Completions: set,
		Window:      window,
		Months:      months,
		Now:         input.Now,
	})
	return &report, nil
}

// span covers every whole month the report reads from.
func span(w domain.Window, months []calendar.YearMonth) (time.Time, time.Time) {
	from := calendar.MonthOf(w.Start).First()
	to := calendar.MonthOf(w.End).Last()
	if w.IsEmpty() {
		from, to = calendar.MonthOf(w.End).First(), calendar.MonthOf(w.Start).Last()
	}

	for _, m := range months {
		from = calendar.MinDate(from, m.First())
		to = calendar.MaxDate(to, m.Last())
	}
	return from, to
}
