package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

// ProfileService covers the account-facing surface: profile reads and
// updates, goal setup, the weight log, and both settings collections.
type ProfileService struct {
	profiles  domain.UserProfileRepository
	goals     domain.GoalRepository
	weights   domain.WeightEntryRepository
	privacy   domain.PrivacySettingsRepository
	reminders domain.ReminderSettingsRepository
}

func NewProfileService(
	profiles domain.UserProfileRepository,
	goals domain.GoalRepository,
	weights domain.WeightEntryRepository,
	privacy domain.PrivacySettingsRepository,
	reminders domain.ReminderSettingsRepository,
) *ProfileService {
	return &ProfileService{
		profiles:  profiles,
		goals:     goals,
		weights:   weights,
		privacy:   privacy,
		reminders: reminders,
	}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return s.profiles.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	UserID          string
	Name            string
	Phone           string
	RecordIntensity domain.RecordIntensity
	StylePreference domain.Tone
}

func (s *ProfileService) Update(ctx context.Context, input UpdateProfileInput) (*domain.UserProfile, error) {
	profile, err := s.profiles.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		profile.Name = input.Name
	}
	if input.Phone != "" {
		profile.Phone = input.Phone
	}
	if input.RecordIntensity != "" || input.StylePreference != "" {
		intensity := profile.RecordIntensity
		if input.RecordIntensity != "" {
			intensity = input.RecordIntensity
		}
		style := profile.StylePreference
		if input.StylePreference != "" {
			style = input.StylePreference
		}
		if err := profile.SetPreferences(intensity, style); err != nil {
			return nil, err
		}
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("profile service: failed to update profile: %w", err)
	}
	return profile, nil
}

type SetWeightGoalInput struct {
	UserID       string
	StartWeight  float64
	TargetWeight float64
	PeriodDays   int
}

// SetWeightGoal records the goal parameters on the profile and upserts the
// weight goal the milestone tracker evaluates against.
func (s *ProfileService) SetWeightGoal(ctx context.Context, input SetWeightGoalInput) (*domain.Goal, error) {
	profile, err := s.profiles.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := profile.SetGoal(input.StartWeight, input.TargetWeight, input.PeriodDays); err != nil {
		return nil, err
	}
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("profile service: failed to update profile: %w", err)
	}

	goal, err := s.goals.GetByUserAndType(ctx, input.UserID, domain.GoalWeight)
	if err != nil {
		if !errors.Is(err, domain.ErrGoalNotFound) {
			return nil, err
		}
		goal, err = domain.NewGoal(input.UserID, domain.GoalWeight, input.TargetWeight, input.PeriodDays)
		if err != nil {
			return nil, err
		}
		goal.ID = uuid.NewString()
	} else {
		goal.TargetValue = input.TargetWeight
		goal.PeriodDays = input.PeriodDays
	}
	goal.CurrentValue = input.StartWeight

	if err := s.goals.Upsert(ctx, goal); err != nil {
		return nil, fmt.Errorf("profile service: failed to save goal: %w", err)
	}
	return goal, nil
}

func (s *ProfileService) ListGoals(ctx context.Context, userID string) ([]*domain.Goal, error) {
	return s.goals.ListByUserID(ctx, userID)
}

type AddWeightInput struct {
	UserID string
	Date   domain.Date
	Weight float64
	Note   string
}

func (s *ProfileService) AddWeight(ctx context.Context, input AddWeightInput) (*domain.WeightEntry, error) {
	date := input.Date
	if date.IsZero() {
		date = domain.Today()
	}

	entry, err := domain.NewWeightEntry(input.UserID, date, input.Weight)
	if err != nil {
		return nil, err
	}
	entry.ID = uuid.NewString()
	entry.Note = input.Note

	if err := s.weights.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("profile service: failed to save weight entry: %w", err)
	}
	return entry, nil
}

func (s *ProfileService) ListWeights(ctx context.Context, userID string) ([]*domain.WeightEntry, error) {
	return s.weights.ListByUserID(ctx, userID)
}

func (s *ProfileService) DeleteWeight(ctx context.Context, id, userID string) error {
	return s.weights.Delete(ctx, id, userID)
}

// GetPrivacy returns the stored sharing settings, or the defaults when the
// user never saved any.
func (s *ProfileService) GetPrivacy(ctx context.Context, userID string) (*domain.PrivacySettings, error) {
	settings, err := s.privacy.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return domain.DefaultPrivacySettings(userID), nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *ProfileService) UpdatePrivacy(ctx context.Context, settings *domain.PrivacySettings) error {
	if err := s.privacy.Upsert(ctx, settings); err != nil {
		return fmt.Errorf("profile service: failed to save privacy settings: %w", err)
	}
	return nil
}

func (s *ProfileService) GetReminders(ctx context.Context, userID string) (*domain.ReminderSettings, error) {
	settings, err := s.reminders.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return domain.DefaultReminderSettings(userID), nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *ProfileService) UpdateReminders(ctx context.Context, settings *domain.ReminderSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.reminders.Upsert(ctx, settings); err != nil {
		return fmt.Errorf("profile service: failed to save reminder settings: %w", err)
	}
	return nil
}
