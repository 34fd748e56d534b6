package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

// The in-memory repositories mirror the single-process store the app was
// designed around. Every method takes the collection lock, so the
// single-writer assumption of the core holds even when handlers run on
// concurrent goroutines.

type InMemoryProfileRepository struct {
	store map[string]*domain.UserProfile

	mu sync.RWMutex
}

func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{
		store: make(map[string]*domain.UserProfile),
	}
}

func (r *InMemoryProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.store {
		if p.Email == profile.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	clone := *profile
	r.store[profile.ID] = &clone
	return nil
}

func (r *InMemoryProfileRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.store[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *profile
	return &clone, nil
}

func (r *InMemoryProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, p := range r.store {
		if p.Email == email {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *InMemoryProfileRepository) Update(ctx context.Context, profile *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[profile.ID]; !ok {
		return domain.ErrProfileNotFound
	}

	clone := *profile
	r.store[profile.ID] = &clone
	return nil
}

type InMemoryCheckInRepository struct {
	// keyed by userID + "|" + date
	store map[string]*domain.CheckInEntry

	mu sync.RWMutex
}

func NewInMemoryCheckInRepository() *InMemoryCheckInRepository {
	return &InMemoryCheckInRepository{
		store: make(map[string]*domain.CheckInEntry),
	}
}

func checkInKey(userID string, date domain.Date) string {
	return userID + "|" + date.String()
}

func (r *InMemoryCheckInRepository) Upsert(ctx context.Context, entry *domain.CheckInEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := checkInKey(entry.UserID, entry.Date)
	if existing, ok := r.store[key]; ok {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	}

	clone := *entry
	r.store[key] = &clone
	return nil
}

func (r *InMemoryCheckInRepository) GetByUserAndDate(ctx context.Context, userID string, date domain.Date) (*domain.CheckInEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.store[checkInKey(userID, date)]
	if !ok {
		return nil, domain.ErrCheckInNotFound
	}
	clone := *entry
	return &clone, nil
}

func (r *InMemoryCheckInRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.CheckInEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*domain.CheckInEntry
	for _, e := range r.store {
		if e.UserID == userID {
			clone := *e
			entries = append(entries, &clone)
		}
	}

	sortCheckInsDesc(entries)
	return entries, nil
}

func (r *InMemoryCheckInRepository) ListByUserAndDateRange(ctx context.Context, userID string, from, to domain.Date) ([]*domain.CheckInEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*domain.CheckInEntry
	for _, e := range r.store {
		if e.UserID != userID {
			continue
		}
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		clone := *e
		entries = append(entries, &clone)
	}

	sortCheckInsDesc(entries)
	return entries, nil
}

func (r *InMemoryCheckInRepository) ListBefore(ctx context.Context, userID string, before domain.Date, limit int) ([]*domain.CheckInEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*domain.CheckInEntry
	for _, e := range r.store {
		if e.UserID == userID && e.Date.Before(before) {
			clone := *e
			entries = append(entries, &clone)
		}
	}

	sortCheckInsDesc(entries)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func sortCheckInsDesc(entries []*domain.CheckInEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

type InMemoryWeightRepository struct {
	store map[string]*domain.WeightEntry

	mu sync.RWMutex
}

func NewInMemoryWeightRepository() *InMemoryWeightRepository {
	return &InMemoryWeightRepository{
		store: make(map[string]*domain.WeightEntry),
	}
}

func (r *InMemoryWeightRepository) Create(ctx context.Context, entry *domain.WeightEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *entry
	r.store[entry.ID] = &clone
	return nil
}

func (r *InMemoryWeightRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.WeightEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*domain.WeightEntry
	for _, e := range r.store {
		if e.UserID == userID {
			clone := *e
			entries = append(entries, &clone)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date.Equal(entries[j].Date) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

func (r *InMemoryWeightRepository) LatestByUserID(ctx context.Context, userID string) (*domain.WeightEntry, error) {
	entries, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrWeightEntryNotFound
	}
	return entries[0], nil
}

func (r *InMemoryWeightRepository) Delete(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.store[id]
	if !ok || entry.UserID != userID {
		return domain.ErrWeightEntryNotFound
	}

	delete(r.store, id)
	return nil
}
