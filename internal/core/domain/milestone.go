package domain

import (
	"errors"
	"time"
)

var ErrMilestoneNotFound = errors.New("milestone not found")

type MilestoneType string

const (
	MilestoneStreak7  MilestoneType = "streak_7"
	MilestoneStreak14 MilestoneType = "streak_14"
	MilestoneStreak30 MilestoneType = "streak_30"
	MilestoneGoal10   MilestoneType = "goal_10"
	MilestoneGoal50   MilestoneType = "goal_50"
	MilestoneGoal100  MilestoneType = "goal_100"
)

// StreakMilestones maps streak lengths to the milestone they earn,
// ordered ascending.
var StreakMilestones = []struct {
	Days int
	Type MilestoneType
}{
	{7, MilestoneStreak7},
	{14, MilestoneStreak14},
	{30, MilestoneStreak30},
}

// GoalMilestones maps goal-progress percentages to the milestone they
// earn, ordered ascending.
var GoalMilestones = []struct {
	Percent float64
	Type    MilestoneType
}{
	{10, MilestoneGoal10},
	{50, MilestoneGoal50},
	{100, MilestoneGoal100},
}

// Milestone is a one-time achievement. At most one exists per
// (UserID, Type); once earned it is never re-created or revoked.
type Milestone struct {
	ID         string        `json:"id" db:"id"`
	UserID     string        `json:"user_id" db:"user_id"`
	Type       MilestoneType `json:"type" db:"type"`
	AchievedAt time.Time     `json:"achieved_at" db:"achieved_at"`
	IsShared   bool          `json:"is_shared" db:"is_shared"`
}

func NewMilestone(userID string, milestoneType MilestoneType) *Milestone {
	return &Milestone{
		UserID:     userID,
		Type:       milestoneType,
		AchievedAt: time.Now().UTC(),
		IsShared:   true,
	}
}
