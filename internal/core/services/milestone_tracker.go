package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

// MilestoneTracker computes check-in streaks and weight-goal progress, and
// records the milestones they earn. Milestone creation is idempotent: a
// threshold crossed twice never yields a second record.
type MilestoneTracker struct {
	checkins   domain.CheckInRepository
	milestones domain.MilestoneRepository
	goals      domain.GoalRepository
	weights    domain.WeightEntryRepository
	profiles   domain.UserProfileRepository
}

func NewMilestoneTracker(
	checkins domain.CheckInRepository,
	milestones domain.MilestoneRepository,
	goals domain.GoalRepository,
	weights domain.WeightEntryRepository,
	profiles domain.UserProfileRepository,
) *MilestoneTracker {
	return &MilestoneTracker{
		checkins:   checkins,
		milestones: milestones,
		goals:      goals,
		weights:    weights,
		profiles:   profiles,
	}
}

// CurrentStreak counts consecutive check-in days ending at today. The walk
// is anchored at today by product rule: a history with every day present
// except today counts as 0.
func (t *MilestoneTracker) CurrentStreak(ctx context.Context, userID string, today domain.Date) (int, error) {
	entries, err := t.checkins.ListByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.Date.String()] = true
	}

	streak := 0
	expected := today
	for days[expected.String()] {
		streak++
		expected = expected.Prev()
	}
	return streak, nil
}

// Evaluate runs once per check-in save and returns only the milestones
// created by this call. Absent data degrades to "no milestone", never to
// an error.
func (t *MilestoneTracker) Evaluate(ctx context.Context, userID string, today domain.Date) ([]*domain.Milestone, error) {
	var earned []*domain.Milestone

	streak, err := t.CurrentStreak(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	for _, m := range domain.StreakMilestones {
		if streak < m.Days {
			break
		}
		created, err := t.record(ctx, userID, m.Type)
		if err != nil {
			return earned, err
		}
		if created != nil {
			earned = append(earned, created)
		}
	}

	progress, ok, err := t.goalProgress(ctx, userID)
	if err != nil {
		return earned, err
	}
	if ok {
		for _, m := range domain.GoalMilestones {
			if progress < m.Percent {
				break
			}
			created, err := t.record(ctx, userID, m.Type)
			if err != nil {
				return earned, err
			}
			if created != nil {
				earned = append(earned, created)
			}
		}
	}

	return earned, nil
}

func (t *MilestoneTracker) record(ctx context.Context, userID string, milestoneType domain.MilestoneType) (*domain.Milestone, error) {
	milestone := domain.NewMilestone(userID, milestoneType)
	created, err := t.milestones.CreateIfAbsent(ctx, milestone)
	if err != nil {
		return nil, fmt.Errorf("milestone tracker: failed to record %s: %w", milestoneType, err)
	}
	if !created {
		return nil, nil
	}
	return milestone, nil
}

// goalProgress returns |start-latest| / |start-target| * 100. The second
// return is false when no weight goal is set or the goal span is zero
// (start == target), in which case progress milestones are not evaluated.
func (t *MilestoneTracker) goalProgress(ctx context.Context, userID string) (float64, bool, error) {
	goal, err := t.goals.GetByUserAndType(ctx, userID, domain.GoalWeight)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	startWeight := goal.CurrentValue
	if profile, err := t.profiles.GetByID(ctx, userID); err == nil && profile.StartWeight != nil {
		startWeight = *profile.StartWeight
	}

	targetWeight := goal.TargetValue
	if startWeight == 0 || targetWeight == 0 || startWeight == targetWeight {
		return 0, false, nil
	}

	// No weigh-in yet means no movement from the start weight.
	latestWeight := startWeight
	if latest, err := t.weights.LatestByUserID(ctx, userID); err == nil {
		latestWeight = latest.Weight
	} else if !errors.Is(err, domain.ErrWeightEntryNotFound) {
		return 0, false, err
	}

	totalSpan := math.Abs(startWeight - targetWeight)
	moved := math.Abs(startWeight - latestWeight)

	return moved / totalSpan * 100, true, nil
}
