package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrNoFacetSelected      = errors.New("check-in must record at least one facet")
	ErrDateOutOfWindow      = errors.New("check-in date outside the allowed window")
	ErrInvalidFacetValue    = errors.New("invalid facet value")
	ErrNoteTooLong          = errors.New("note exceeds the maximum length")
	ErrCheckInInvalidUserID = errors.New("user id cannot be empty")
	ErrCheckInDateMissing   = errors.New("check-in date is required")
)

const (
	// BackfillWindowDays is how many days back a check-in may be
	// submitted. Today plus the two previous days are accepted.
	BackfillWindowDays = 2

	// MaxNoteLen bounds the free-text note, counted in runes.
	MaxNoteLen = 200
)

type ExerciseType string

const (
	ExerciseRunning  ExerciseType = "running"
	ExerciseWalking  ExerciseType = "walking"
	ExerciseYoga     ExerciseType = "yoga"
	ExerciseGym      ExerciseType = "gym"
	ExerciseSwimming ExerciseType = "swimming"
	ExerciseCycling  ExerciseType = "cycling"
	ExerciseOther    ExerciseType = "other"
)

func validExerciseType(t ExerciseType) bool {
	switch t {
	case ExerciseRunning, ExerciseWalking, ExerciseYoga, ExerciseGym,
		ExerciseSwimming, ExerciseCycling, ExerciseOther:
		return true
	}
	return false
}

// ExerciseList is the set of exercises logged on one day. Stored as JSONB.
type ExerciseList []ExerciseType

func (l ExerciseList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]ExerciseType{})
	}
	return json.Marshal(l)
}

func (l *ExerciseList) Scan(src any) error {
	return scanJSON(src, l)
}

type DietType string

const (
	DietControlled DietType = "controlled"
	DietNormal     DietType = "normal"
	DietOvereat    DietType = "overeat"
	DietBinge      DietType = "binge"
)

func validDietType(t DietType) bool {
	switch t {
	case DietControlled, DietNormal, DietOvereat, DietBinge:
		return true
	}
	return false
}

type SleepQuality string

const (
	SleepGood SleepQuality = "good"
	SleepFair SleepQuality = "fair"
	SleepBad  SleepQuality = "bad"
)

func validSleepQuality(q SleepQuality) bool {
	switch q {
	case SleepGood, SleepFair, SleepBad:
		return true
	}
	return false
}

type MoodType string

const (
	MoodHappy   MoodType = "happy"
	MoodExcited MoodType = "excited"
	MoodCalm    MoodType = "calm"
	MoodTired   MoodType = "tired"
	MoodSad     MoodType = "sad"
	MoodAnxious MoodType = "anxious"
)

func validMoodType(m MoodType) bool {
	switch m {
	case MoodHappy, MoodExcited, MoodCalm, MoodTired, MoodSad, MoodAnxious:
		return true
	}
	return false
}

// Measurements are optional body circumference readings, in centimeters.
type Measurements struct {
	Waist *float64 `json:"waist,omitempty"`
	Chest *float64 `json:"chest,omitempty"`
	Hip   *float64 `json:"hip,omitempty"`
	Arm   *float64 `json:"arm,omitempty"`
	Thigh *float64 `json:"thigh,omitempty"`
}

func (m Measurements) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *Measurements) Scan(src any) error {
	return scanJSON(src, m)
}

// CheckInEntry is one day's record. Every facet is optional on its own,
// but at least one must be present. There is exactly one entry per
// (UserID, Date); re-submitting a day replaces it.
type CheckInEntry struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`
	Date   Date   `json:"date" db:"date"`

	Exercises    ExerciseList  `json:"exercises,omitempty" db:"exercises"`
	Diet         DietType      `json:"diet,omitempty" db:"diet"`
	Water        *bool         `json:"water,omitempty" db:"water"`
	Sleep        SleepQuality  `json:"sleep,omitempty" db:"sleep"`
	Mood         MoodType      `json:"mood,omitempty" db:"mood"`
	Note         string        `json:"note,omitempty" db:"note"`
	Weight       *float64      `json:"weight,omitempty" db:"weight"`
	Measurements *Measurements `json:"measurements,omitempty" db:"measurements"`
	Photo        string        `json:"photo,omitempty" db:"photo"`

	Classification *StateClassification `json:"classification,omitempty" db:"classification"`
	FeedbackCard   *FeedbackCard        `json:"feedback_card,omitempty" db:"feedback_card"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewCheckInEntry(userID string, date Date) *CheckInEntry {
	now := time.Now().UTC()
	return &CheckInEntry{
		UserID:    userID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasFacet reports whether any facet carries data. A note alone counts.
func (e *CheckInEntry) HasFacet() bool {
	return len(e.Exercises) > 0 ||
		e.Diet != "" ||
		e.Water != nil ||
		e.Sleep != "" ||
		e.Mood != "" ||
		e.Note != "" ||
		e.Weight != nil ||
		e.Measurements != nil ||
		e.Photo != ""
}

func (e *CheckInEntry) Validate() error {
	if strings.TrimSpace(e.UserID) == "" {
		return ErrCheckInInvalidUserID
	}
	if e.Date.IsZero() {
		return ErrCheckInDateMissing
	}
	if !e.HasFacet() {
		return ErrNoFacetSelected
	}

	for _, ex := range e.Exercises {
		if !validExerciseType(ex) {
			return ErrInvalidFacetValue
		}
	}
	if e.Diet != "" && !validDietType(e.Diet) {
		return ErrInvalidFacetValue
	}
	if e.Sleep != "" && !validSleepQuality(e.Sleep) {
		return ErrInvalidFacetValue
	}
	if e.Mood != "" && !validMoodType(e.Mood) {
		return ErrInvalidFacetValue
	}
	if utf8.RuneCountInString(e.Note) > MaxNoteLen {
		return ErrNoteTooLong
	}

	return nil
}

// MoodIsGood reports whether the reported mood is one of the positive
// ones. Weekly recaps count these days.
func (e *CheckInEntry) MoodIsGood() bool {
	return e.Mood == MoodHappy || e.Mood == MoodExcited
}
