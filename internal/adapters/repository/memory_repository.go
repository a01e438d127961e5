package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-goals/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

// The in-memory repositories back guest mode and tests. They store copies so
// callers cannot mutate stored records through returned pointers.

type InMemoryGoalRepository struct {
	store       map[string]domain.Goal
	completions *InMemoryCompletionRepository

	mu sync.RWMutex
}

// NewInMemoryGoalRepository cascades goal deletes into completions.
func NewInMemoryGoalRepository(completions *InMemoryCompletionRepository) *InMemoryGoalRepository {
	return &InMemoryGoalRepository{
		store:       make(map[string]domain.Goal),
		completions: completions,
	}
}

func (r *InMemoryGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[goal.ID] = *goal
	return nil
}

func (r *InMemoryGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, ok := r.store[id]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	return &goal, nil
}

func (r *InMemoryGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := []*domain.Goal{}
	for _, g := range r.store {
		if g.UserID == userID {
			g := g
			goals = append(goals, &g)
		}
	}

	domain.SortGoals(goals)
	return goals, nil
}

func (r *InMemoryGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[goal.ID]; !ok {
		return domain.ErrGoalNotFound
	}

	r.store[goal.ID] = *goal
	return nil
}

func (r *InMemoryGoalRepository) UpdateOrder(ctx context.Context, userID string, goals []*domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, g := range goals {
		stored, ok := r.store[g.ID]
		if !ok || stored.UserID != userID {
			continue
		}
		stored.SortOrder = g.SortOrder
		stored.UpdatedAt = now
		r.store[g.ID] = stored
	}
	return nil
}

func (r *InMemoryGoalRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrGoalNotFound
	}

	delete(r.store, id)
	if r.completions != nil {
		r.completions.deleteByGoal(id)
	}
	return nil
}

type InMemoryCompletionRepository struct {
	store map[domain.CompletionKey]domain.Completion

	mu sync.RWMutex
}

func NewInMemoryCompletionRepository() *InMemoryCompletionRepository {
	return &InMemoryCompletionRepository{
		store: make(map[domain.CompletionKey]domain.Completion),
	}
}

func (r *InMemoryCompletionRepository) Create(ctx context.Context, c *domain.Completion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[c.Key()]; exists {
		return domain.ErrCompletionExists
	}
	r.store[c.Key()] = *c
	return nil
}

func (r *InMemoryCompletionRepository) Delete(ctx context.Context, goalID, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.CompletionKey{GoalID: goalID, Date: date}
	if _, ok := r.store[key]; !ok {
		return domain.ErrCompletionNotFound
	}
	delete(r.store, key)
	return nil
}

func (r *InMemoryCompletionRepository) Exists(ctx context.Context, goalID, date string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.store[domain.CompletionKey{GoalID: goalID, Date: date}]
	return ok, nil
}

func (r *InMemoryCompletionRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Completion, error) {
	return r.list(userID, "", ""), nil
}

func (r *InMemoryCompletionRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Completion, error) {
	return r.list(userID, calendar.FormatDateKey(from), calendar.FormatDateKey(to)), nil
}

// list filters by user and, when bounds are given, by date key. Keys sort
// chronologically so string comparison is enough.
func (r *InMemoryCompletionRepository) list(userID, from, to string) []*domain.Completion {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*domain.Completion{}
	for _, c := range r.store {
		if c.UserID != userID {
			continue
		}
		if from != "" && (c.Date < from || c.Date > to) {
			continue
		}
		c := c
		out = append(out, &c)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].GoalID < out[j].GoalID
	})
	return out
}

func (r *InMemoryCompletionRepository) deleteByGoal(goalID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.store {
		if key.GoalID == goalID {
			delete(r.store, key)
		}
	}
}

type InMemoryUserRepository struct {
	store map[string]domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.store[user.ID] = *user
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *InMemoryUserRepository) UpdateMotivation(ctx context.Context, id, motivation string) error {
	return r.update(id, func(u *domain.User) { u.Motivation = motivation })
}

func (r *InMemoryUserRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	return r.update(id, func(u *domain.User) {
		u.CurrentStreak = current
		u.LongestStreak = longest
	})
}

func (r *InMemoryUserRepository) update(id string, apply func(*domain.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.store[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	apply(&u)
	u.UpdatedAt = time.Now().UTC()
	r.store[id] = u
	return nil
}
