package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrProfileNotFound    = errors.New("user profile not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrNameEmpty          = errors.New("name cannot be empty")
	ErrInvalidIntensity   = errors.New("invalid record intensity (must be light, standard, or advanced)")
	ErrInvalidStyle       = errors.New("invalid style preference (must be cute, calm, funny, or serious)")
	ErrInvalidGoalWeight  = errors.New("start and target weight must be positive")
	ErrInvalidGoalPeriod  = errors.New("goal period must be positive")
)

type RecordIntensity string

const (
	IntensityLight    RecordIntensity = "light"
	IntensityStandard RecordIntensity = "standard"
	IntensityAdvanced RecordIntensity = "advanced"
)

// UserProfile carries identity, weight-goal parameters and the preferences
// that drive tone selection. Profiles are created at registration and
// mutated by goal setup and settings; they are never deleted.
type UserProfile struct {
	ID           string `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	Phone        string `json:"phone,omitempty" db:"phone"`
	PasswordHash string `json:"-" db:"password_hash"`

	StartWeight    *float64 `json:"start_weight,omitempty" db:"start_weight"`
	TargetWeight   *float64 `json:"target_weight,omitempty" db:"target_weight"`
	GoalPeriodDays int      `json:"goal_period_days,omitempty" db:"goal_period_days"`

	RecordIntensity RecordIntensity `json:"record_intensity" db:"record_intensity"`
	StylePreference Tone            `json:"style_preference" db:"style_preference"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewUserProfile(id, name, email string) (*UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameEmpty
	}

	email = strings.TrimSpace(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	now := time.Now().UTC()
	return &UserProfile{
		ID:              id,
		Name:            name,
		Email:           strings.ToLower(email),
		RecordIntensity: IntensityStandard,
		StylePreference: ToneCalm,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (u *UserProfile) SetPassword(plainPassword string) error {
	if utf8.RuneCountInString(plainPassword) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), 12)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (u *UserProfile) CheckPassword(plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plainPassword))
}

// SetGoal records the weight-goal parameters that goal-progress milestones
// are evaluated against.
func (u *UserProfile) SetGoal(startWeight, targetWeight float64, periodDays int) error {
	if startWeight <= 0 || targetWeight <= 0 {
		return ErrInvalidGoalWeight
	}
	if periodDays <= 0 {
		return ErrInvalidGoalPeriod
	}

	u.StartWeight = &startWeight
	u.TargetWeight = &targetWeight
	u.GoalPeriodDays = periodDays
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (u *UserProfile) SetPreferences(intensity RecordIntensity, style Tone) error {
	switch intensity {
	case IntensityLight, IntensityStandard, IntensityAdvanced:
	default:
		return ErrInvalidIntensity
	}
	if !ValidTone(style) {
		return ErrInvalidStyle
	}

	u.RecordIntensity = intensity
	u.StylePreference = style
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
