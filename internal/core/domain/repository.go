package domain

import (
	"context"
	"errors"
)

var (
	ErrCheckInNotFound = errors.New("check-in entry not found")
	ErrUnauthorized    = errors.New("user does not own this resource")
)

type UserProfileRepository interface {
	// Create persists a new profile. Fails on duplicate email.
	Create(ctx context.Context, profile *UserProfile) error

	// GetByID retrieves a profile by its unique identifier.
	GetByID(ctx context.Context, id string) (*UserProfile, error)

	// GetByEmail retrieves a profile by its (lower-cased) email.
	GetByEmail(ctx context.Context, email string) (*UserProfile, error)

	// Update modifies the state of an existing profile.
	Update(ctx context.Context, profile *UserProfile) error
}

type CheckInRepository interface {
	// Upsert saves an entry keyed by (UserID, Date). A later save for the
	// same day overwrites the earlier one; the entry ID is preserved.
	Upsert(ctx context.Context, entry *CheckInEntry) error

	// GetByUserAndDate retrieves the single entry for one calendar day.
	GetByUserAndDate(ctx context.Context, userID string, date Date) (*CheckInEntry, error)

	// ListByUserID retrieves all entries for a user, newest first.
	ListByUserID(ctx context.Context, userID string) ([]*CheckInEntry, error)

	// ListByUserAndDateRange retrieves entries with from <= Date <= to,
	// newest first. Used by weekly recaps and the couple space.
	ListByUserAndDateRange(ctx context.Context, userID string, from, to Date) ([]*CheckInEntry, error)

	// ListBefore retrieves up to limit entries strictly before the given
	// date, newest first. Feeds the classifier's history window.
	ListBefore(ctx context.Context, userID string, before Date, limit int) ([]*CheckInEntry, error)
}

type WeightEntryRepository interface {
	// Create appends a weigh-in. The weight log is append-only.
	Create(ctx context.Context, entry *WeightEntry) error

	// ListByUserID retrieves all weigh-ins for a user, newest first.
	ListByUserID(ctx context.Context, userID string) ([]*WeightEntry, error)

	// LatestByUserID retrieves the most recent weigh-in.
	LatestByUserID(ctx context.Context, userID string) (*WeightEntry, error)

	// Delete removes a weigh-in. It requires userID to ensure the user
	// owns the entry being deleted.
	Delete(ctx context.Context, id string, userID string) error
}

type CoupleBindingRepository interface {
	// Create persists a new (usually pending) binding.
	Create(ctx context.Context, binding *CoupleBinding) error

	// Update modifies an existing binding (join and unbind transitions).
	Update(ctx context.Context, binding *CoupleBinding) error

	// GetByID retrieves a binding by its unique identifier.
	GetByID(ctx context.Context, id string) (*CoupleBinding, error)

	// FindPendingByCode retrieves the pending binding with the given
	// normalized code. Active and inactive bindings never match.
	FindPendingByCode(ctx context.Context, code string) (*CoupleBinding, error)

	// FindActiveByUserID retrieves the active binding a user belongs to,
	// on either side. The invariant is at most one per user.
	FindActiveByUserID(ctx context.Context, userID string) (*CoupleBinding, error)
}
