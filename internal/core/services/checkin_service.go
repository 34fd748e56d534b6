package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/workers"
)

// classifierHistoryWindow is how many prior entries feed the classifier.
const classifierHistoryWindow = 7

// CheckInService owns the submit flow: validate the day, classify, attach
// feedback, upsert the entry, evaluate milestones and refresh the weekly
// recap in the background.
type CheckInService struct {
	repo        domain.CheckInRepository
	profiles    domain.UserProfileRepository
	classifier  *StateClassifier
	feedback    *FeedbackGenerator
	tracker     *MilestoneTracker
	recapWorker *workers.RecapWorker
}

func NewCheckInService(
	repo domain.CheckInRepository,
	profiles domain.UserProfileRepository,
	classifier *StateClassifier,
	feedback *FeedbackGenerator,
	tracker *MilestoneTracker,
	recapWorker *workers.RecapWorker,
) *CheckInService {
	return &CheckInService{
		repo:        repo,
		profiles:    profiles,
		classifier:  classifier,
		feedback:    feedback,
		tracker:     tracker,
		recapWorker: recapWorker,
	}
}

type SubmitCheckInInput struct {
	UserID       string
	Date         domain.Date
	Exercises    []domain.ExerciseType
	Diet         domain.DietType
	Water        *bool
	Sleep        domain.SleepQuality
	Mood         domain.MoodType
	Note         string
	Weight       *float64
	Measurements *domain.Measurements
	Photo        string
}

type SubmitCheckInResult struct {
	Entry         *domain.CheckInEntry `json:"entry"`
	Feedback      domain.FeedbackCard  `json:"feedback"`
	NewMilestones []*domain.Milestone  `json:"new_milestones"`
}

// Submit saves one day's check-in. A second submit for the same day
// overwrites the first. The date must fall inside the backfill window:
// today back through today minus BackfillWindowDays, never in the future.
func (s *CheckInService) Submit(ctx context.Context, input SubmitCheckInInput) (*SubmitCheckInResult, error) {
	today := domain.Today()

	date := input.Date
	if date.IsZero() {
		date = today
	}
	if date.After(today) || date.Before(today.AddDays(-domain.BackfillWindowDays)) {
		return nil, domain.ErrDateOutOfWindow
	}

	entry := domain.NewCheckInEntry(input.UserID, date)
	entry.ID = uuid.NewString()
	entry.Exercises = input.Exercises
	entry.Diet = input.Diet
	entry.Water = input.Water
	entry.Sleep = input.Sleep
	entry.Mood = input.Mood
	entry.Note = input.Note
	entry.Weight = input.Weight
	entry.Measurements = input.Measurements
	entry.Photo = input.Photo

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	history, err := s.repo.ListBefore(ctx, input.UserID, date, classifierHistoryWindow)
	if err != nil {
		return nil, err
	}

	classification := s.classifier.Classify(entry, history)
	entry.Classification = &classification

	feedback := s.feedback.Generate(classification, s.feedbackTone(ctx, input.UserID, classification))
	entry.FeedbackCard = &feedback

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("check-in service: failed to save entry: %w", err)
	}

	milestones, err := s.tracker.Evaluate(ctx, input.UserID, today)
	if err != nil {
		return nil, err
	}

	if s.recapWorker != nil {
		s.recapWorker.Enqueue(input.UserID)
	}

	return &SubmitCheckInResult{
		Entry:         entry,
		Feedback:      feedback,
		NewMilestones: milestones,
	}, nil
}

// feedbackTone prefers the user's saved style preference and falls back to
// the classification's recommended tone.
func (s *CheckInService) feedbackTone(ctx context.Context, userID string, state domain.StateClassification) domain.Tone {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err == nil && domain.ValidTone(profile.StylePreference) {
		return profile.StylePreference
	}
	return state.RecommendedTone
}

func (s *CheckInService) GetByDate(ctx context.Context, userID string, date domain.Date) (*domain.CheckInEntry, error) {
	return s.repo.GetByUserAndDate(ctx, userID, date)
}

func (s *CheckInService) HasCheckedInToday(ctx context.Context, userID string) (bool, error) {
	_, err := s.repo.GetByUserAndDate(ctx, userID, domain.Today())
	if err != nil {
		if errors.Is(err, domain.ErrCheckInNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *CheckInService) ListRange(ctx context.Context, userID string, from, to domain.Date) ([]*domain.CheckInEntry, error) {
	return s.repo.ListByUserAndDateRange(ctx, userID, from, to)
}

// Streak exposes the current consecutive-day count for the progress view.
func (s *CheckInService) Streak(ctx context.Context, userID string) (int, error) {
	return s.tracker.CurrentStreak(ctx, userID, domain.Today())
}

// ChurnRisk scores the user's drop-off risk from their latest check-in.
func (s *CheckInService) ChurnRisk(ctx context.Context, userID string) (ChurnRisk, error) {
	entries, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return ChurnRisk{}, err
	}

	var last *domain.Date
	for _, e := range entries {
		if last == nil || e.Date.After(*last) {
			d := e.Date
			last = &d
		}
	}

	return PredictChurnRisk(last, domain.Today()), nil
}
