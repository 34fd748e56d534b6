package domain

import "context"

type GoalRepository interface {
	// Upsert saves a goal keyed by (UserID, Type); one goal per type.
	Upsert(ctx context.Context, goal *Goal) error

	ListByUserID(ctx context.Context, userID string) ([]*Goal, error)

	GetByUserAndType(ctx context.Context, userID string, goalType GoalType) (*Goal, error)
}

type CoupleGoalRepository interface {
	// Upsert saves a couple goal keyed by (CoupleID, Type).
	Upsert(ctx context.Context, goal *CoupleGoal) error

	ListByCoupleID(ctx context.Context, coupleID string) ([]*CoupleGoal, error)
}

type CheerCardRepository interface {
	Create(ctx context.Context, card *CheerCard) error

	// ListByUserID retrieves cards touching a user, filtered by direction,
	// newest first.
	ListByUserID(ctx context.Context, userID string, direction CheerDirection) ([]*CheerCard, error)

	// MarkRead flips the read flag. Only the recipient may mark a card.
	MarkRead(ctx context.Context, id string, userID string) error
}

type MilestoneRepository interface {
	// CreateIfAbsent persists the milestone unless one of the same
	// (UserID, Type) already exists. Returns true when a row was created.
	// This is what makes milestone tracking idempotent.
	CreateIfAbsent(ctx context.Context, milestone *Milestone) (bool, error)

	ListByUserID(ctx context.Context, userID string) ([]*Milestone, error)

	ExistsByUserAndType(ctx context.Context, userID string, milestoneType MilestoneType) (bool, error)
}

type WeeklyRecapRepository interface {
	// Upsert saves a recap keyed by (UserID, WeekStart), overwriting any
	// earlier recap for the same week.
	Upsert(ctx context.Context, recap *WeeklyRecap) error

	GetByUserAndWeek(ctx context.Context, userID string, weekStart Date) (*WeeklyRecap, error)

	ListByUserID(ctx context.Context, userID string) ([]*WeeklyRecap, error)
}

type PrivacySettingsRepository interface {
	// Get retrieves a user's privacy settings; ErrSettingsNotFound when
	// the user never saved any.
	Get(ctx context.Context, userID string) (*PrivacySettings, error)

	Upsert(ctx context.Context, settings *PrivacySettings) error
}

type ReminderSettingsRepository interface {
	Get(ctx context.Context, userID string) (*ReminderSettings, error)

	Upsert(ctx context.Context, settings *ReminderSettings) error
}
