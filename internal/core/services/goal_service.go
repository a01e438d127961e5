package services

import (
	"context"
	"fmt"

	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

// DefaultGoalTitles are seeded for every new account, in this order.
var DefaultGoalTitles = []string{"Reading", "Fitness"}

type GoalService struct {
	repo         domain.GoalRepository
	userRepo     domain.UserRepository
	freeMaxGoals int
}

func NewGoalService(repo domain.GoalRepository, userRepo domain.UserRepository, freeMaxGoals int) *GoalService {
	return &GoalService{
		repo:         repo,
		userRepo:     userRepo,
		freeMaxGoals: freeMaxGoals,
	}
}

type CreateGoalInput struct {
	UserID string
	Title  string
}

type RenameGoalInput struct {
	ID     string
	UserID string
	Title  string
}

type ReorderGoalsInput struct {
	UserID   string
	ActiveID string
	OverID   string
}

func (s *GoalService) Create(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	goals, err := s.repo.ListByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !user.Entitlement(s.freeMaxGoals).CanAddGoal(len(goals)) {
		return nil, domain.ErrGoalLimitReached
	}

	goal, err := domain.NewGoal(input.UserID, input.Title, domain.NextSortOrder(goals))
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID string) ([]*domain.Goal, error) {
	goals, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	domain.SortGoals(goals)
	return goals, nil
}

func (s *GoalService) Rename(ctx context.Context, input RenameGoalInput) (*domain.Goal, error) {
	goal, err := s.owned(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := goal.Rename(input.Title); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Reorder moves the active goal to the position of the over goal. Unknown ids
// leave the order unchanged.
func (s *GoalService) Reorder(ctx context.Context, input ReorderGoalsInput) ([]*domain.Goal, error) {
	goals, err := s.List(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	reordered, moved := domain.MoveGoal(goals, input.ActiveID, input.OverID)
	if !moved {
		return goals, nil
	}

	if err := s.repo.UpdateOrder(ctx, input.UserID, reordered); err != nil {
		return nil, err
	}
	return reordered, nil
}

// Delete removes the goal and, through the repository, all its completions.
func (s *GoalService) Delete(ctx context.Context, id string, userID string) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *GoalService) SeedDefaults(ctx context.Context, userID string) ([]*domain.Goal, error) {
	seeded := make([]*domain.Goal, 0, len(DefaultGoalTitles))
	for i, title := range DefaultGoalTitles {
		goal, err := domain.NewGoal(userID, title, i)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Create(ctx, goal); err != nil {
			return nil, fmt.Errorf("goal service: failed to seed %q: %w", title, err)
		}
		seeded = append(seeded, goal)
	}
	return seeded, nil
}

func (s *GoalService) owned(ctx context.Context, id, userID string) (*domain.Goal, error) {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, domain.ErrGoalNotFound
	}
	return goal, nil
}
