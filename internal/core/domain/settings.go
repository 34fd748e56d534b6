package domain

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrSettingsNotFound = errors.New("settings not found")
	ErrInvalidReminder  = errors.New("invalid reminder time (must be HH:MM 24h)")
)

var reminderTimeRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

// PrivacySettings controls which of a user's fields the paired partner may
// see. The defaults are deliberately conservative: only mood is visible.
type PrivacySettings struct {
	UserID            string `json:"user_id" db:"user_id"`
	ShareWeight       bool   `json:"share_weight" db:"share_weight"`
	ShareMeasurements bool   `json:"share_measurements" db:"share_measurements"`
	SharePhoto        bool   `json:"share_photo" db:"share_photo"`
	ShareMood         bool   `json:"share_mood" db:"share_mood"`
	ShareNote         bool   `json:"share_note" db:"share_note"`

	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func DefaultPrivacySettings(userID string) *PrivacySettings {
	return &PrivacySettings{
		UserID:    userID,
		ShareMood: true,
		UpdatedAt: time.Now().UTC(),
	}
}

// ReminderSettings stores the check-in reminder preferences. The core only
// persists them; scheduling is the notification layer's concern.
type ReminderSettings struct {
	UserID                     string   `json:"user_id" db:"user_id"`
	CheckInReminderEnabled     bool     `json:"check_in_reminder_enabled" db:"check_in_reminder_enabled"`
	CheckInReminderTimes       []string `json:"check_in_reminder_times"`
	PartnerCheckInNotification bool     `json:"partner_check_in_notification" db:"partner_check_in_notification"`
	WeeklyRecapEnabled         bool     `json:"weekly_recap_enabled" db:"weekly_recap_enabled"`

	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func DefaultReminderSettings(userID string) *ReminderSettings {
	return &ReminderSettings{
		UserID:                     userID,
		CheckInReminderEnabled:     true,
		CheckInReminderTimes:       []string{"20:00"},
		PartnerCheckInNotification: true,
		WeeklyRecapEnabled:         true,
		UpdatedAt:                  time.Now().UTC(),
	}
}

func (s *ReminderSettings) Validate() error {
	for _, t := range s.CheckInReminderTimes {
		if !reminderTimeRegex.MatchString(t) {
			return ErrInvalidReminder
		}
	}
	return nil
}
