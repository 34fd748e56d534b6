package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

// recapGoodWeekThreshold is the check-in count at which a week counts as
// an excellent one: it adds the qualitative bullet and switches the
// micro-goal to the maintain-pace variant.
const recapGoodWeekThreshold = 5

// RecapService folds one ISO week of check-ins into a short summary.
type RecapService struct {
	checkins domain.CheckInRepository
	recaps   domain.WeeklyRecapRepository
	bindings domain.CoupleBindingRepository
}

func NewRecapService(
	checkins domain.CheckInRepository,
	recaps domain.WeeklyRecapRepository,
	bindings domain.CoupleBindingRepository,
) *RecapService {
	return &RecapService{
		checkins: checkins,
		recaps:   recaps,
		bindings: bindings,
	}
}

// Generate builds the recap for the ISO week containing anchor (Monday
// start) and saves it, overwriting any earlier recap for that week.
func (s *RecapService) Generate(ctx context.Context, userID string, anchor domain.Date) (*domain.WeeklyRecap, error) {
	weekStart := anchor.StartOfWeek()
	weekEnd := weekStart.AddDays(6)

	entries, err := s.checkins.ListByUserAndDateRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	checkInCount := len(entries)
	exerciseDays := 0
	goodMoodDays := 0
	for _, e := range entries {
		if len(e.Exercises) > 0 {
			exerciseDays++
		}
		if e.MoodIsGood() {
			goodMoodDays++
		}
	}

	var progress []string
	if exerciseDays > 0 {
		progress = append(progress, fmt.Sprintf("运动%d天", exerciseDays))
	}
	if goodMoodDays > 0 {
		progress = append(progress, fmt.Sprintf("心情不错的日子有%d天", goodMoodDays))
	}
	if checkInCount >= recapGoodWeekThreshold {
		progress = append(progress, "连续打卡表现优秀")
	}

	microGoal := "争取打卡5天以上"
	if checkInCount >= recapGoodWeekThreshold {
		microGoal = "继续保持这个节奏"
	}

	recap := &domain.WeeklyRecap{
		ID:                uuid.NewString(),
		UserID:            userID,
		WeekStart:         weekStart,
		WeekEnd:           weekEnd,
		Highlight:         fmt.Sprintf("本周打卡%d天，坚持得很好！", checkInCount),
		Progress:          progress,
		NextWeekMicroGoal: microGoal,
	}

	moment, err := s.coupleMoment(ctx, userID, weekStart, weekEnd, checkInCount)
	if err != nil {
		return nil, err
	}
	recap.CoupleMoment = moment

	if err := s.recaps.Upsert(ctx, recap); err != nil {
		return nil, fmt.Errorf("recap service: failed to save recap: %w", err)
	}
	return recap, nil
}

// GetForWeek retrieves the stored recap for the ISO week containing
// anchor, without generating one.
func (s *RecapService) GetForWeek(ctx context.Context, userID string, anchor domain.Date) (*domain.WeeklyRecap, error) {
	return s.recaps.GetByUserAndWeek(ctx, userID, anchor.StartOfWeek())
}

// coupleMoment returns the shared-week line when the user is actively
// bound and both sides checked in at least once during the week.
func (s *RecapService) coupleMoment(ctx context.Context, userID string, weekStart, weekEnd domain.Date, ownCount int) (string, error) {
	if ownCount == 0 {
		return "", nil
	}

	binding, err := s.bindings.FindActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrBindingNotFound) {
			return "", nil
		}
		return "", err
	}

	partnerID, ok := binding.PartnerOf(userID)
	if !ok {
		return "", nil
	}

	partnerEntries, err := s.checkins.ListByUserAndDateRange(ctx, partnerID, weekStart, weekEnd)
	if err != nil {
		return "", err
	}
	if len(partnerEntries) == 0 {
		return "", nil
	}

	return "本周你们一起坚持打卡，互相鼓励，很棒！", nil
}
