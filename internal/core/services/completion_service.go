package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-goals/internal/core/workers"
)

type CompletionService struct {
	repo     domain.CompletionRepository
	goalRepo domain.GoalRepository
	worker   *workers.StreakWorker
}

func NewCompletionService(repo domain.CompletionRepository, goalRepo domain.GoalRepository, worker *workers.StreakWorker) *CompletionService {
	return &CompletionService{
		repo:     repo,
		goalRepo: goalRepo,
		worker:   worker,
	}
}

type ToggleInput struct {
	UserID string
	GoalID string

	// Date is a YYYY-MM-DD key. Empty means the tracking day.
	Date string
}

type ToggleResult struct {
	GoalID    string `json:"goal_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// Toggle flips the completion of a goal on a day: an existing record is
// removed, a missing one is created. Days after the tracking day at now are
// rejected.
func (s *CompletionService) Toggle(ctx context.Context, input ToggleInput, now time.Time) (*ToggleResult, error) {
	day := calendar.ResolveTrackingDay(now)
	if input.Date != "" {
		parsed, err := calendar.ParseDateKey(input.Date)
		if err != nil {
			return nil, err
		}
		if calendar.ClassifyDate(parsed, now) == calendar.Future {
			return nil, domain.ErrFutureDate
		}
		day = parsed
	}
	key := calendar.FormatDateKey(day)

	if err := s.checkOwner(ctx, input.GoalID, input.UserID); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, input.GoalID, key)
	if err != nil {
		return nil, err
	}

	if exists {
		err = s.repo.Delete(ctx, input.GoalID, key)
	} else {
		err = s.repo.Create(ctx, domain.NewCompletion(input.GoalID, input.UserID, day))
	}
	if err != nil {
		return nil, err
	}

	if s.worker != nil {
		s.worker.Enqueue(input.UserID)
	}

	return &ToggleResult{GoalID: input.GoalID, Date: key, Completed: !exists}, nil
}

func (s *CompletionService) ToggleToday(ctx context.Context, userID, goalID string, now time.Time) (*ToggleResult, error) {
	return s.Toggle(ctx, ToggleInput{UserID: userID, GoalID: goalID}, now)
}

func (s *CompletionService) IsCompleted(ctx context.Context, userID, goalID, date string) (bool, error) {
	if _, err := calendar.ParseDateKey(date); err != nil {
		return false, err
	}
	if err := s.checkOwner(ctx, goalID, userID); err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, goalID, date)
}

// List returns the user's completions in [from, to], the data behind the
// checkbox grid.
func (s *CompletionService) List(ctx context.Context, userID string, from, to time.Time) ([]*domain.Completion, error) {
	if calendar.DateOf(from).After(calendar.DateOf(to)) {
		return []*domain.Completion{}, nil
	}
	return s.repo.ListByUserIDAndDateRange(ctx, userID, calendar.DateOf(from), calendar.DateOf(to))
}

func (s *CompletionService) checkOwner(ctx context.Context, goalID, userID string) error {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return err
	}
	if goal.UserID != userID {
		return domain.ErrUnauthorized
	}
	return nil
}
