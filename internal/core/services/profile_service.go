package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

type ProfileService struct {
	repo         domain.UserRepository
	freeMaxGoals int
}

func NewProfileService(repo domain.UserRepository, freeMaxGoals int) *ProfileService {
	return &ProfileService{
		repo:         repo,
		freeMaxGoals: freeMaxGoals,
	}
}

type Profile struct {
	User        *domain.User       `json:"user"`
	Entitlement domain.Entitlement `json:"entitlement"`
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, Entitlement: user.Entitlement(s.freeMaxGoals)}, nil
}

func (s *ProfileService) Motivation(ctx context.Context, userID string) (string, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Motivation, nil
}

func (s *ProfileService) UpdateMotivation(ctx context.Context, userID, text string) (string, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := user.SetMotivation(text); err != nil {
		return "", err
	}

	if err := s.repo.UpdateMotivation(ctx, userID, user.Motivation); err != nil {
		return "", err
	}
	return user.Motivation, nil
}
