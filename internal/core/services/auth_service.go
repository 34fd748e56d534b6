package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

type AuthService struct {
	repo    domain.UserProfileRepository
	privacy domain.PrivacySettingsRepository
}

func NewAuthService(repo domain.UserProfileRepository, privacy domain.PrivacySettingsRepository) *AuthService {
	return &AuthService{
		repo:    repo,
		privacy: privacy,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.UserProfile, error) {
	id := uuid.NewString()
	profile, err := domain.NewUserProfile(id, input.Name, input.Email)
	if err != nil {
		return nil, err
	}
	profile.Phone = input.Phone

	if err := profile.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("auth service: failed to create profile: %w", err)
	}

	// New accounts start with the conservative sharing defaults so the
	// privacy filter has an explicit record to read.
	if err := s.privacy.Upsert(ctx, domain.DefaultPrivacySettings(profile.ID)); err != nil {
		return nil, fmt.Errorf("auth service: failed to seed privacy settings: %w", err)
	}

	return profile, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	profile, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := profile.CheckPassword(password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return profile, nil
}
