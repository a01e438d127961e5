package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrUnauthorized = errors.New("unauthorized access to resource")
)

type GoalRepository interface {
	// Create persists a new goal.
	Create(ctx context.Context, goal *Goal) error

	// GetByID retrieves a goal by its unique identifier.
	GetByID(ctx context.Context, id string) (*Goal, error)

	// ListByUserID retrieves the user's goals ordered by sort order, then creation time.
	ListByUserID(ctx context.Context, userID string) ([]*Goal, error)

	// Update persists a new title or sort order.
	Update(ctx context.Context, goal *Goal) error

	// UpdateOrder persists the sort order of several goals of one user at once.
	UpdateOrder(ctx context.Context, userID string, goals []*Goal) error

	// Delete removes a goal together with every completion referencing it.
	Delete(ctx context.Context, id string) error
}

type CompletionRepository interface {
	// Create stores a completion. A second record for the same goal and day is rejected.
	Create(ctx context.Context, c *Completion) error

	// Delete removes the completion of a goal on a day.
	Delete(ctx context.Context, goalID, date string) error

	// Exists reports whether the goal is completed on the day.
	Exists(ctx context.Context, goalID, date string) (bool, error)

	// ListByUserID returns every completion of the user.
	ListByUserID(ctx context.Context, userID string) ([]*Completion, error)

	// ListByUserIDAndDateRange returns the user's completions within [from, to].
	ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]*Completion, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)

	// UpdateMotivation stores the user's motivation line.
	UpdateMotivation(ctx context.Context, id, motivation string) error

	// UpdateStreaks stores the streak summary computed by the streak worker.
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}
