package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

// GoalSeeder creates the starter goals of a new account.
type GoalSeeder interface {
	SeedDefaults(ctx context.Context, userID string) ([]*domain.Goal, error)
}

type AuthService struct {
	repo   domain.UserRepository
	seeder GoalSeeder
}

func NewAuthService(repo domain.UserRepository, seeder GoalSeeder) *AuthService {
	return &AuthService{
		repo:   repo,
		seeder: seeder,
	}
}

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	id := uuid.NewString()
	user, err := domain.NewUser(id, input.Email)
	if err != nil {
		return nil, err
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth service: failed to create user: %w", err)
	}

	if s.seeder != nil {
		if _, err := s.seeder.SeedDefaults(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("auth service: failed to seed goals: %w", err)
		}
	}

	return user, nil
}

// Login returns ErrInvalidCredentials for both an unknown email and a wrong
// password.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: failed to load user: %w", err)
	}

	if err := user.CheckPassword(input.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
