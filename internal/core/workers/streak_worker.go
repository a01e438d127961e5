package workers

import (
	"context"
	"log"
	"time"

	"github.com/comitanigiacomo/kanso-goals/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

type GoalRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error)
}

type CompletionRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]*domain.Completion, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

type StreakJob struct {
	UserID string
}

// StreakWorker keeps the streak summary on each user record in sync with
// their completions. Jobs are queued after every toggle.
type StreakWorker struct {
	goalRepo       GoalRepository
	completionRepo CompletionRepository
	userRepo       UserRepository
	freeMaxGoals   int
	now            func() time.Time
	jobs           chan StreakJob
}

func NewStreakWorker(gRepo GoalRepository, cRepo CompletionRepository, uRepo UserRepository, freeMaxGoals int) *StreakWorker {
	return &StreakWorker{
		goalRepo:       gRepo,
		completionRepo: cRepo,
		userRepo:       uRepo,
		freeMaxGoals:   freeMaxGoals,
		now:            time.Now,
		jobs:           make(chan StreakJob, 100),
	}
}

// WithClock replaces the clock the tracking day is read from.
func (w *StreakWorker) WithClock(now func() time.Time) *StreakWorker {
	w.now = now
	return w
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("[WORKER] Streak worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("[WORKER] Streak worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(userID string) {
	select {
	case w.jobs <- StreakJob{UserID: userID}:
	default:
		log.Printf("[WORKER] Queue full! Dropping streak job for user %s", userID)
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	user, err := w.userRepo.GetByID(ctx, job.UserID)
	if err != nil {
		log.Printf("[WORKER] Error fetching user %s: %v", job.UserID, err)
		return
	}

	goals, err := w.goalRepo.ListByUserID(ctx, job.UserID)
	if err != nil {
		log.Printf("[WORKER] Error fetching goals for %s: %v", job.UserID, err)
		return
	}

	records, err := w.completionRepo.ListByUserID(ctx, job.UserID)
	if err != nil {
		log.Printf("[WORKER] Error fetching completions for %s: %v", job.UserID, err)
		return
	}

	current, longest := calculateStreaks(user.Entitlement(w.freeMaxGoals), goals, records, w.now())

	if user.CurrentStreak == current && user.LongestStreak == longest {
		return
	}
	if err := w.userRepo.UpdateStreaks(ctx, user.ID, current, longest); err != nil {
		log.Printf("[WORKER] Failed to update streaks for %s: %v", job.UserID, err)
		return
	}
	log.Printf("[WORKER] Streaks updated for %s: Current=%d, Longest=%d", job.UserID, current, longest)
}

// calculateStreaks runs the engine's streak rules over the user's all-time
// window as their plan sees it.
func calculateStreaks(ent domain.Entitlement, goals []*domain.Goal, records []*domain.Completion, now time.Time) (int, int) {
	goals = ent.FilterGoals(goals)
	set := domain.CompletionSetFrom(records)

	window := domain.WindowRequest{Selector: domain.WindowAllTime}.Resolve(now, set)
	window = ent.RestrictWindow(window, now)

	return analytics.Streaks(goals, set, window, now)
}
