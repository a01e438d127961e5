package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

type MockGoalRepo struct {
	mock.Mock
}

func (m *MockGoalRepo) Create(ctx context.Context, goal *domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *MockGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Goal), args.Error(1)
}

func (m *MockGoalRepo) Update(ctx context.Context, goal *domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *MockGoalRepo) UpdateOrder(ctx context.Context, userID string, goals []*domain.Goal) error {
	return m.Called(ctx, userID, goals).Error(0)
}

func (m *MockGoalRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCompletionRepo struct {
	mock.Mock
}

func (m *MockCompletionRepo) Create(ctx context.Context, c *domain.Completion) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompletionRepo) Delete(ctx context.Context, goalID, date string) error {
	return m.Called(ctx, goalID, date).Error(0)
}

func (m *MockCompletionRepo) Exists(ctx context.Context, goalID, date string) (bool, error) {
	args := m.Called(ctx, goalID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompletionRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Completion, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Completion), args.Error(1)
}

func (m *MockCompletionRepo) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Completion, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Completion), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdateMotivation(ctx context.Context, id, motivation string) error {
	return m.Called(ctx, id, motivation).Error(0)
}

func (m *MockUserRepo) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	return m.Called(ctx, id, current, longest).Error(0)
}

type MockGoalSeeder struct {
	mock.Mock
}

func (m *MockGoalSeeder) SeedDefaults(ctx context.Context, userID string) ([]*domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Goal), args.Error(1)
}
