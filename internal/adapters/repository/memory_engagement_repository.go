package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

type InMemoryGoalRepository struct {
	// keyed by userID + "|" + type
	store map[string]*domain.Goal

	mu sync.RWMutex
}

func NewInMemoryGoalRepository() *InMemoryGoalRepository {
	return &InMemoryGoalRepository{
		store: make(map[string]*domain.Goal),
	}
}

func goalKey(userID string, goalType domain.GoalType) string {
	return userID + "|" + string(goalType)
}

func (r *InMemoryGoalRepository) Upsert(ctx context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := goalKey(goal.UserID, goal.Type)
	if existing, ok := r.store[key]; ok {
		goal.ID = existing.ID
		goal.CreatedAt = existing.CreatedAt
	}

	clone := *goal
	r.store[key] = &clone
	return nil
}

func (r *InMemoryGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var goals []*domain.Goal
	for _, g := range r.store {
		if g.UserID == userID {
			clone := *g
			goals = append(goals, &clone)
		}
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Type < goals[j].Type
	})
	return goals, nil
}

func (r *InMemoryGoalRepository) GetByUserAndType(ctx context.Context, userID string, goalType domain.GoalType) (*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, ok := r.store[goalKey(userID, goalType)]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	clone := *goal
	return &clone, nil
}

type InMemoryCoupleGoalRepository struct {
	// keyed by coupleID + "|" + type
	store map[string]*domain.CoupleGoal

	mu sync.RWMutex
}

func NewInMemoryCoupleGoalRepository() *InMemoryCoupleGoalRepository {
	return &InMemoryCoupleGoalRepository{
		store: make(map[string]*domain.CoupleGoal),
	}
}

func (r *InMemoryCoupleGoalRepository) Upsert(ctx context.Context, goal *domain.CoupleGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := goal.CoupleID + "|" + string(goal.Type)
	if existing, ok := r.store[key]; ok {
		goal.ID = existing.ID
		goal.CreatedAt = existing.CreatedAt
	}

	clone := *goal
	clone.Milestones = append([]int(nil), goal.Milestones...)
	r.store[key] = &clone
	return nil
}

func (r *InMemoryCoupleGoalRepository) ListByCoupleID(ctx context.Context, coupleID string) ([]*domain.CoupleGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var goals []*domain.CoupleGoal
	for _, g := range r.store {
		if g.CoupleID == coupleID {
			clone := *g
			clone.Milestones = append([]int(nil), g.Milestones...)
			goals = append(goals, &clone)
		}
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Type < goals[j].Type
	})
	return goals, nil
}

type InMemoryCheerCardRepository struct {
	store map[string]*domain.CheerCard

	mu sync.RWMutex
}

func NewInMemoryCheerCardRepository() *InMemoryCheerCardRepository {
	return &InMemoryCheerCardRepository{
		store: make(map[string]*domain.CheerCard),
	}
}

func (r *InMemoryCheerCardRepository) Create(ctx context.Context, card *domain.CheerCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *card
	r.store[card.ID] = &clone
	return nil
}

func (r *InMemoryCheerCardRepository) ListByUserID(ctx context.Context, userID string, direction domain.CheerDirection) ([]*domain.CheerCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var cards []*domain.CheerCard
	for _, c := range r.store {
		switch direction {
		case domain.CheerSent:
			if c.FromUserID != userID {
				continue
			}
		case domain.CheerReceived:
			if c.ToUserID != userID {
				continue
			}
		default:
			if c.FromUserID != userID && c.ToUserID != userID {
				continue
			}
		}
		clone := *c
		cards = append(cards, &clone)
	}

	sort.Slice(cards, func(i, j int) bool {
		return cards[i].CreatedAt.After(cards[j].CreatedAt)
	})
	return cards, nil
}

func (r *InMemoryCheerCardRepository) MarkRead(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	card, ok := r.store[id]
	if !ok {
		return domain.ErrCheerCardNotFound
	}
	if card.ToUserID != userID {
		return domain.ErrUnauthorized
	}

	card.IsRead = true
	return nil
}

type InMemoryMilestoneRepository struct {
	// keyed by userID + "|" + type
	store map[string]*domain.Milestone

	mu sync.RWMutex
}

func NewInMemoryMilestoneRepository() *InMemoryMilestoneRepository {
	return &InMemoryMilestoneRepository{
		store: make(map[string]*domain.Milestone),
	}
}

func (r *InMemoryMilestoneRepository) CreateIfAbsent(ctx context.Context, milestone *domain.Milestone) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := milestone.UserID + "|" + string(milestone.Type)
	if _, ok := r.store[key]; ok {
		return false, nil
	}

	clone := *milestone
	r.store[key] = &clone
	return true, nil
}

func (r *InMemoryMilestoneRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Milestone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var milestones []*domain.Milestone
	for _, m := range r.store {
		if m.UserID == userID {
			clone := *m
			milestones = append(milestones, &clone)
		}
	}

	sort.Slice(milestones, func(i, j int) bool {
		return milestones[i].AchievedAt.Before(milestones[j].AchievedAt)
	})
	return milestones, nil
}

func (r *InMemoryMilestoneRepository) ExistsByUserAndType(ctx context.Context, userID string, milestoneType domain.MilestoneType) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.store[userID+"|"+string(milestoneType)]
	return ok, nil
}

type InMemoryRecapRepository struct {
	// keyed by userID + "|" + week start
	store map[string]*domain.WeeklyRecap

	mu sync.RWMutex
}

func NewInMemoryRecapRepository() *InMemoryRecapRepository {
	return &InMemoryRecapRepository{
		store: make(map[string]*domain.WeeklyRecap),
	}
}

func recapKey(userID string, weekStart domain.Date) string {
	return userID + "|" + weekStart.String()
}

func (r *InMemoryRecapRepository) Upsert(ctx context.Context, recap *domain.WeeklyRecap) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := recapKey(recap.UserID, recap.WeekStart)
	if existing, ok := r.store[key]; ok {
		recap.ID = existing.ID
	}

	clone := *recap
	clone.Progress = append([]string(nil), recap.Progress...)
	r.store[key] = &clone
	return nil
}

func (r *InMemoryRecapRepository) GetByUserAndWeek(ctx context.Context, userID string, weekStart domain.Date) (*domain.WeeklyRecap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recap, ok := r.store[recapKey(userID, weekStart)]
	if !ok {
		return nil, domain.ErrRecapNotFound
	}
	clone := *recap
	clone.Progress = append([]string(nil), recap.Progress...)
	return &clone, nil
}

func (r *InMemoryRecapRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.WeeklyRecap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var recaps []*domain.WeeklyRecap
	for _, rec := range r.store {
		if rec.UserID == userID {
			clone := *rec
			clone.Progress = append([]string(nil), rec.Progress...)
			recaps = append(recaps, &clone)
		}
	}

	sort.Slice(recaps, func(i, j int) bool {
		return recaps[i].WeekStart.After(recaps[j].WeekStart)
	})
	return recaps, nil
}

type InMemoryPrivacySettingsRepository struct {
	store map[string]*domain.PrivacySettings

	mu sync.RWMutex
}

func NewInMemoryPrivacySettingsRepository() *InMemoryPrivacySettingsRepository {
	return &InMemoryPrivacySettingsRepository{
		store: make(map[string]*domain.PrivacySettings),
	}
}

func (r *InMemoryPrivacySettingsRepository) Get(ctx context.Context, userID string) (*domain.PrivacySettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings, ok := r.store[userID]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}
	clone := *settings
	return &clone, nil
}

func (r *InMemoryPrivacySettingsRepository) Upsert(ctx context.Context, settings *domain.PrivacySettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *settings
	r.store[settings.UserID] = &clone
	return nil
}

type InMemoryReminderSettingsRepository struct {
	store map[string]*domain.ReminderSettings

	mu sync.RWMutex
}

func NewInMemoryReminderSettingsRepository() *InMemoryReminderSettingsRepository {
	return &InMemoryReminderSettingsRepository{
		store: make(map[string]*domain.ReminderSettings),
	}
}

func (r *InMemoryReminderSettingsRepository) Get(ctx context.Context, userID string) (*domain.ReminderSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings, ok := r.store[userID]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}
	clone := *settings
	clone.CheckInReminderTimes = append([]string(nil), settings.CheckInReminderTimes...)
	return &clone, nil
}

func (r *InMemoryReminderSettingsRepository) Upsert(ctx context.Context, settings *domain.ReminderSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *settings
	clone.CheckInReminderTimes = append([]string(nil), settings.CheckInReminderTimes...)
	r.store[settings.UserID] = &clone
	return nil
}
