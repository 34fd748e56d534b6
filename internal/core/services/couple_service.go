package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

// CoupleService assembles the partner-facing couple-space reads and the
// shared couple goals. Every partner read goes through the privacy filter.
type CoupleService struct {
	bindings    *BindingService
	checkins    domain.CheckInRepository
	privacy     domain.PrivacySettingsRepository
	coupleGoals domain.CoupleGoalRepository
	filter      *PrivacyFilter
}

func NewCoupleService(
	bindings *BindingService,
	checkins domain.CheckInRepository,
	privacy domain.PrivacySettingsRepository,
	coupleGoals domain.CoupleGoalRepository,
	filter *PrivacyFilter,
) *CoupleService {
	return &CoupleService{
		bindings:    bindings,
		checkins:    checkins,
		privacy:     privacy,
		coupleGoals: coupleGoals,
		filter:      filter,
	}
}

// PartnerToday is what the couple space shows about the partner's day.
type PartnerToday struct {
	PartnerID   string             `json:"partner_id"`
	PartnerName string             `json:"partner_name"`
	CheckIn     PartnerCheckInView `json:"check_in"`
}

// PartnerToday resolves the active partner and returns their
// privacy-filtered check-in for today. A partner who has not checked in
// yields a view with CheckedIn=false and no facet data.
func (s *CoupleService) PartnerToday(ctx context.Context, userID string) (*PartnerToday, error) {
	partner, err := s.bindings.PartnerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &PartnerToday{
		PartnerID:   partner.ID,
		PartnerName: partner.Name,
		CheckIn:     PartnerCheckInView{Date: domain.Today()},
	}

	entry, err := s.checkins.GetByUserAndDate(ctx, partner.ID, domain.Today())
	if err != nil {
		if errors.Is(err, domain.ErrCheckInNotFound) {
			return result, nil
		}
		return nil, err
	}

	settings, err := s.privacy.Get(ctx, partner.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrSettingsNotFound) {
			return nil, err
		}
		settings = nil
	}

	result.CheckIn = s.filter.FilterCheckIn(entry, settings)
	return result, nil
}

type UpsertCoupleGoalInput struct {
	UserID       string
	Type         domain.GoalType
	TargetValue  float64
	CurrentValue float64
}

// UpsertCoupleGoal creates or refreshes the shared goal for the caller's
// active binding and recomputes its progress.
func (s *CoupleService) UpsertCoupleGoal(ctx context.Context, input UpsertCoupleGoalInput) (*domain.CoupleGoal, error) {
	binding, err := s.bindings.Active(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	goals, err := s.coupleGoals.ListByCoupleID(ctx, binding.ID)
	if err != nil {
		return nil, err
	}

	var goal *domain.CoupleGoal
	for _, g := range goals {
		if g.Type == input.Type {
			goal = g
			break
		}
	}

	if goal == nil {
		goal, err = domain.NewCoupleGoal(binding.ID, input.Type, input.TargetValue)
		if err != nil {
			return nil, err
		}
		goal.ID = uuid.NewString()
	} else if input.TargetValue > 0 {
		goal.TargetValue = input.TargetValue
	}

	goal.UpdateProgress(input.CurrentValue)

	if err := s.coupleGoals.Upsert(ctx, goal); err != nil {
		return nil, fmt.Errorf("couple service: failed to save goal: %w", err)
	}
	return goal, nil
}

func (s *CoupleService) ListCoupleGoals(ctx context.Context, userID string) ([]*domain.CoupleGoal, error) {
	binding, err := s.bindings.Active(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.coupleGoals.ListByCoupleID(ctx, binding.ID)
}
