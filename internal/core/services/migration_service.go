package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-goals/internal/core/workers"
)

type LocalGoal struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type LocalCompletion struct {
	GoalID string `json:"goal_id"`
	Date   string `json:"date"`
}

// LocalData is what a guest client kept in its own storage before signing in.
type LocalData struct {
	Goals       []LocalGoal       `json:"goals"`
	Completions []LocalCompletion `json:"completions"`
	Motivation  string            `json:"motivation"`
}

type ImportResult struct {
	GoalsImported       int  `json:"goals_imported"`
	GoalsSkipped        int  `json:"goals_skipped"`
	CompletionsImported int  `json:"completions_imported"`
	CompletionsSkipped  int  `json:"completions_skipped"`
	MotivationImported  bool `json:"motivation_imported"`
}

type MigrationService struct {
	userRepo       domain.UserRepository
	goalRepo       domain.GoalRepository
	completionRepo domain.CompletionRepository
	worker         *workers.StreakWorker
}

func NewMigrationService(userRepo domain.UserRepository, goalRepo domain.GoalRepository, completionRepo domain.CompletionRepository, worker *workers.StreakWorker) *MigrationService {
	return &MigrationService{
		userRepo:       userRepo,
		goalRepo:       goalRepo,
		completionRepo: completionRepo,
		worker:         worker,
	}
}

// ImportLocal copies guest goals and their completions into the user's
// account under fresh ids. Only goals with a guest id are taken; completions
// pointing at anything else are dropped. The motivation line is kept only
// when the account has none. Calling it twice imports the data twice.
func (s *MigrationService) ImportLocal(ctx context.Context, userID string, data LocalData) (*ImportResult, error) {
	if utf8.RuneCountInString(data.Motivation) > domain.MaxMotivationLen {
		return nil, domain.ErrMotivationTooLong
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	ids := make(map[string]string, len(data.Goals))

	for _, lg := range data.Goals {
		if !domain.IsGuestID(lg.ID) {
			result.GoalsSkipped++
			continue
		}
		if _, dup := ids[lg.ID]; dup {
			result.GoalsSkipped++
			continue
		}

		goal, err := domain.NewGoal(userID, lg.Title, lg.SortOrder)
		if err != nil {
			result.GoalsSkipped++
			continue
		}
		if !lg.CreatedAt.IsZero() {
			goal.CreatedAt = lg.CreatedAt.UTC()
		}

		if err := s.goalRepo.Create(ctx, goal); err != nil {
			return nil, fmt.Errorf("migration service: failed to import goal %s: %w", lg.ID, err)
		}
		ids[lg.ID] = goal.ID
		result.GoalsImported++
	}

	seen := make(map[domain.CompletionKey]struct{}, len(data.Completions))
	for _, lc := range data.Completions {
		goalID, ok := ids[lc.GoalID]
		if !ok {
			result.CompletionsSkipped++
			continue
		}

		date, err := calendar.ParseDateKey(lc.Date)
		if err != nil {
			result.CompletionsSkipped++
			continue
		}

		c := domain.NewCompletion(goalID, userID, date)
		if _, dup := seen[c.Key()]; dup {
			result.CompletionsSkipped++
			continue
		}
		seen[c.Key()] = struct{}{}

		if err := s.completionRepo.Create(ctx, c); err != nil {
			if errors.Is(err, domain.ErrCompletionExists) {
				result.CompletionsSkipped++
				continue
			}
			return nil, fmt.Errorf("migration service: failed to import completion: %w", err)
		}
		result.CompletionsImported++
	}

	if user.Motivation == "" && data.Motivation != "" {
		if err := user.SetMotivation(data.Motivation); err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdateMotivation(ctx, userID, user.Motivation); err != nil {
			return nil, err
		}
		result.MotivationImported = user.Motivation != ""
	}

	if result.CompletionsImported > 0 && s.worker != nil {
		s.worker.Enqueue(userID)
	}

	log.Printf("[MIGRATION] user %s: %d goals, %d completions imported (%d/%d skipped)",
		userID, result.GoalsImported, result.CompletionsImported, result.GoalsSkipped, result.CompletionsSkipped)

	return result, nil
}
