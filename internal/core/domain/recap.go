package domain

import (
	"errors"
	"time"
)

var ErrRecapNotFound = errors.New("weekly recap not found")

// WeeklyRecap is the generated summary for one ISO week (Monday start).
// There is one per (UserID, WeekStart); regenerating overwrites the
// previous version rather than appending.
type WeeklyRecap struct {
	ID        string `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	WeekStart Date   `json:"week_start" db:"week_start"`
	WeekEnd   Date   `json:"week_end" db:"week_end"`

	Highlight         string   `json:"highlight" db:"highlight"`
	Progress          []string `json:"progress"`
	NextWeekMicroGoal string   `json:"next_week_micro_goal" db:"next_week_micro_goal"`
	CoupleMoment      string   `json:"couple_moment,omitempty" db:"couple_moment"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
