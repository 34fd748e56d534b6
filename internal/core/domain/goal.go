package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrGoalNotFound        = errors.New("goal not found")
	ErrCoupleGoalNotFound  = errors.New("couple goal not found")
	ErrInvalidGoalType     = errors.New("invalid goal type")
	ErrInvalidTargetValue  = errors.New("target value must be positive")
	ErrWeightEntryNotFound = errors.New("weight entry not found")
	ErrInvalidWeight       = errors.New("weight must be positive")
)

type GoalType string

const (
	GoalWeight   GoalType = "weight"
	GoalExercise GoalType = "exercise"
	GoalWater    GoalType = "water"
	GoalSleep    GoalType = "sleep"
	GoalCheckIn  GoalType = "checkin"
)

func validGoalType(t GoalType) bool {
	switch t {
	case GoalWeight, GoalExercise, GoalWater, GoalSleep, GoalCheckIn:
		return true
	}
	return false
}

type Goal struct {
	ID           string   `json:"id" db:"id"`
	UserID       string   `json:"user_id" db:"user_id"`
	Type         GoalType `json:"type" db:"type"`
	TargetValue  float64  `json:"target_value" db:"target_value"`
	CurrentValue float64  `json:"current_value" db:"current_value"`
	PeriodDays   int      `json:"period_days,omitempty" db:"period_days"`
	StartDate    Date     `json:"start_date" db:"start_date"`
	EndDate      *Date    `json:"end_date,omitempty" db:"end_date"`
	IsShared     bool     `json:"is_shared" db:"is_shared"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewGoal(userID string, goalType GoalType, target float64, periodDays int) (*Goal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrCheckInInvalidUserID
	}
	if !validGoalType(goalType) {
		return nil, ErrInvalidGoalType
	}
	if target <= 0 {
		return nil, ErrInvalidTargetValue
	}

	now := time.Now().UTC()
	return &Goal{
		UserID:      userID,
		Type:        goalType,
		TargetValue: target,
		PeriodDays:  periodDays,
		StartDate:   Today(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// CoupleGoalThresholds are the fixed progress percentages at which
// goal-progress milestones are earned.
var CoupleGoalThresholds = []int{10, 50, 100}

// CoupleGoal is a target the pair works toward together. Progress is kept
// in [0,100].
type CoupleGoal struct {
	ID           string   `json:"id" db:"id"`
	CoupleID     string   `json:"couple_id" db:"couple_id"`
	Type         GoalType `json:"type" db:"type"`
	TargetValue  float64  `json:"target_value" db:"target_value"`
	CurrentValue float64  `json:"current_value" db:"current_value"`
	Progress     float64  `json:"progress" db:"progress"`
	Milestones   []int    `json:"milestones"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewCoupleGoal(coupleID string, goalType GoalType, target float64) (*CoupleGoal, error) {
	if strings.TrimSpace(coupleID) == "" {
		return nil, ErrBindingNotFound
	}
	if !validGoalType(goalType) {
		return nil, ErrInvalidGoalType
	}
	if target <= 0 {
		return nil, ErrInvalidTargetValue
	}

	now := time.Now().UTC()
	return &CoupleGoal{
		CoupleID:    coupleID,
		Type:        goalType,
		TargetValue: target,
		Milestones:  append([]int(nil), CoupleGoalThresholds...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateProgress records a new current value and recomputes the clamped
// progress percentage.
func (g *CoupleGoal) UpdateProgress(current float64) {
	g.CurrentValue = current

	progress := 0.0
	if g.TargetValue > 0 {
		progress = current / g.TargetValue * 100
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	g.Progress = progress
	g.UpdatedAt = time.Now().UTC()
}

// WeightEntry is one weigh-in. Unlike check-ins the weight log is
// append-only; several entries per day are allowed.
type WeightEntry struct {
	ID     string  `json:"id" db:"id"`
	UserID string  `json:"user_id" db:"user_id"`
	Date   Date    `json:"date" db:"date"`
	Weight float64 `json:"weight" db:"weight"`
	Note   string  `json:"note,omitempty" db:"note"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewWeightEntry(userID string, date Date, weight float64) (*WeightEntry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrCheckInInvalidUserID
	}
	if date.IsZero() {
		return nil, ErrCheckInDateMissing
	}
	if weight <= 0 {
		return nil, ErrInvalidWeight
	}

	return &WeightEntry{
		UserID:    userID,
		Date:      date,
		Weight:    weight,
		CreatedAt: time.Now().UTC(),
	}, nil
}
