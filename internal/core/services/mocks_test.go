package services_test

import (
	"context"
	"sort"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

func ptr[T any](v T) *T {
	return &v
}

type MockCheckInRepo struct {
	store         map[string]*domain.CheckInEntry
	simulateError error
}

func NewMockCheckInRepo() *MockCheckInRepo {
	return &MockCheckInRepo{store: make(map[string]*domain.CheckInEntry)}
}

func (m *MockCheckInRepo) key(userID string, date domain.Date) string {
	return userID + "|" + date.String()
}

func (m *MockCheckInRepo) Upsert(ctx context.Context, entry *domain.CheckInEntry) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	key := m.key(entry.UserID, entry.Date)
	if existing, ok := m.store[key]; ok {
		entry.ID = existing.ID
	}
	clone := *entry
	m.store[key] = &clone
	return nil
}

func (m *MockCheckInRepo) GetByUserAndDate(ctx context.Context, userID string, date domain.Date) (*domain.CheckInEntry, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	entry, ok := m.store[m.key(userID, date)]
	if !ok {
		return nil, domain.ErrCheckInNotFound
	}
	clone := *entry
	return &clone, nil
}

func (m *MockCheckInRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.CheckInEntry, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	var entries []*domain.CheckInEntry
	for _, e := range m.store {
		if e.UserID == userID {
			clone := *e
			entries = append(entries, &clone)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries, nil
}

func (m *MockCheckInRepo) ListByUserAndDateRange(ctx context.Context, userID string, from, to domain.Date) ([]*domain.CheckInEntry, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	var entries []*domain.CheckInEntry
	for _, e := range m.store {
		if e.UserID == userID && !e.Date.Before(from) && !e.Date.After(to) {
			clone := *e
			entries = append(entries, &clone)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries, nil
}

func (m *MockCheckInRepo) ListBefore(ctx context.Context, userID string, before domain.Date, limit int) ([]*domain.CheckInEntry, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	var entries []*domain.CheckInEntry
	for _, e := range m.store {
		if e.UserID == userID && e.Date.Before(before) {
			clone := *e
			entries = append(entries, &clone)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

type MockProfileRepo struct {
	store map[string]*domain.UserProfile
}

func NewMockProfileRepo() *MockProfileRepo {
	return &MockProfileRepo{store: make(map[string]*domain.UserProfile)}
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.UserProfile) error {
	for _, p := range m.store {
		if p.Email == profile.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	clone := *profile
	m.store[profile.ID] = &clone
	return nil
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	p, ok := m.store[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (m *MockProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	for _, p := range m.store {
		if p.Email == email {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.UserProfile) error {
	if _, ok := m.store[profile.ID]; !ok {
		return domain.ErrProfileNotFound
	}
	clone := *profile
	m.store[profile.ID] = &clone
	return nil
}

type MockBindingRepo struct {
	store map[string]*domain.CoupleBinding
}

func NewMockBindingRepo() *MockBindingRepo {
	return &MockBindingRepo{store: make(map[string]*domain.CoupleBinding)}
}

func (m *MockBindingRepo) Create(ctx context.Context, binding *domain.CoupleBinding) error {
	clone := *binding
	m.store[binding.ID] = &clone
	return nil
}

func (m *MockBindingRepo) Update(ctx context.Context, binding *domain.CoupleBinding) error {
	if _, ok := m.store[binding.ID]; !ok {
		return domain.ErrBindingNotFound
	}
	clone := *binding
	m.store[binding.ID] = &clone
	return nil
}

func (m *MockBindingRepo) GetByID(ctx context.Context, id string) (*domain.CoupleBinding, error) {
	b, ok := m.store[id]
	if !ok {
		return nil, domain.ErrBindingNotFound
	}
	clone := *b
	return &clone, nil
}

func (m *MockBindingRepo) FindPendingByCode(ctx context.Context, code string) (*domain.CoupleBinding, error) {
	for _, b := range m.store {
		if b.Status == domain.BindingPending && b.Code == code {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrBindingNotFound
}

func (m *MockBindingRepo) FindActiveByUserID(ctx context.Context, userID string) (*domain.CoupleBinding, error) {
	for _, b := range m.store {
		if b.Status == domain.BindingActive && b.Involves(userID) {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrBindingNotFound
}

type MockMilestoneRepo struct {
	store         map[string]*domain.Milestone
	simulateError error
}

func NewMockMilestoneRepo() *MockMilestoneRepo {
	return &MockMilestoneRepo{store: make(map[string]*domain.Milestone)}
}

func (m *MockMilestoneRepo) CreateIfAbsent(ctx context.Context, milestone *domain.Milestone) (bool, error) {
	if m.simulateError != nil {
		return false, m.simulateError
	}
	key := milestone.UserID + "|" + string(milestone.Type)
	if _, ok := m.store[key]; ok {
		return false, nil
	}
	clone := *milestone
	m.store[key] = &clone
	return true, nil
}

func (m *MockMilestoneRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Milestone, error) {
	var milestones []*domain.Milestone
	for _, ms := range m.store {
		if ms.UserID == userID {
			clone := *ms
			milestones = append(milestones, &clone)
		}
	}
	return milestones, nil
}

func (m *MockMilestoneRepo) ExistsByUserAndType(ctx context.Context, userID string, milestoneType domain.MilestoneType) (bool, error) {
	_, ok := m.store[userID+"|"+string(milestoneType)]
	return ok, nil
}

type MockGoalRepo struct {
	store map[string]*domain.Goal
}

func NewMockGoalRepo() *MockGoalRepo {
	return &MockGoalRepo{store: make(map[string]*domain.Goal)}
}

func (m *MockGoalRepo) key(userID string, goalType domain.GoalType) string {
	return userID + "|" + string(goalType)
}

func (m *MockGoalRepo) Upsert(ctx context.Context, goal *domain.Goal) error {
	clone := *goal
	m.store[m.key(goal.UserID, goal.Type)] = &clone
	return nil
}

func (m *MockGoalRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	var goals []*domain.Goal
	for _, g := range m.store {
		if g.UserID == userID {
			clone := *g
			goals = append(goals, &clone)
		}
	}
	return goals, nil
}

func (m *MockGoalRepo) GetByUserAndType(ctx context.Context, userID string, goalType domain.GoalType) (*domain.Goal, error) {
	g, ok := m.store[m.key(userID, goalType)]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	clone := *g
	return &clone, nil
}

type MockWeightRepo struct {
	store map[string]*domain.WeightEntry
}

func NewMockWeightRepo() *MockWeightRepo {
	return &MockWeightRepo{store: make(map[string]*domain.WeightEntry)}
}

func (m *MockWeightRepo) Create(ctx context.Context, entry *domain.WeightEntry) error {
	clone := *entry
	m.store[entry.ID] = &clone
	return nil
}

func (m *MockWeightRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.WeightEntry, error) {
	var entries []*domain.WeightEntry
	for _, e := range m.store {
		if e.UserID == userID {
			clone := *e
			entries = append(entries, &clone)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries, nil
}

func (m *MockWeightRepo) LatestByUserID(ctx context.Context, userID string) (*domain.WeightEntry, error) {
	entries, _ := m.ListByUserID(ctx, userID)
	if len(entries) == 0 {
		return nil, domain.ErrWeightEntryNotFound
	}
	return entries[0], nil
}

func (m *MockWeightRepo) Delete(ctx context.Context, id string, userID string) error {
	e, ok := m.store[id]
	if !ok || e.UserID != userID {
		return domain.ErrWeightEntryNotFound
	}
	delete(m.store, id)
	return nil
}

type MockCheerRepo struct {
	store map[string]*domain.CheerCard
}

func NewMockCheerRepo() *MockCheerRepo {
	return &MockCheerRepo{store: make(map[string]*domain.CheerCard)}
}

func (m *MockCheerRepo) Create(ctx context.Context, card *domain.CheerCard) error {
	if card.ID == "" {
		card.ID = "card-" + card.FromUserID
	}
	clone := *card
	m.store[card.ID] = &clone
	return nil
}

func (m *MockCheerRepo) ListByUserID(ctx context.Context, userID string, direction domain.CheerDirection) ([]*domain.CheerCard, error) {
	var cards []*domain.CheerCard
	for _, c := range m.store {
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
	return cards, nil
}

func (m *MockCheerRepo) MarkRead(ctx context.Context, id string, userID string) error {
	c, ok := m.store[id]
	if !ok {
		return domain.ErrCheerCardNotFound
	}
	if c.ToUserID != userID {
		return domain.ErrUnauthorized
	}
	c.IsRead = true
	return nil
}

type MockRecapRepo struct {
	store map[string]*domain.WeeklyRecap
}

func NewMockRecapRepo() *MockRecapRepo {
	return &MockRecapRepo{store: make(map[string]*domain.WeeklyRecap)}
}

func (m *MockRecapRepo) key(userID string, weekStart domain.Date) string {
	return userID + "|" + weekStart.String()
}

func (m *MockRecapRepo) Upsert(ctx context.Context, recap *domain.WeeklyRecap) error {
	clone := *recap
	clone.Progress = append([]string(nil), recap.Progress...)
	m.store[m.key(recap.UserID, recap.WeekStart)] = &clone
	return nil
}

func (m *MockRecapRepo) GetByUserAndWeek(ctx context.Context, userID string, weekStart domain.Date) (*domain.WeeklyRecap, error) {
	r, ok := m.store[m.key(userID, weekStart)]
	if !ok {
		return nil, domain.ErrRecapNotFound
	}
	clone := *r
	return &clone, nil
}

func (m *MockRecapRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.WeeklyRecap, error) {
	var recaps []*domain.WeeklyRecap
	for _, r := range m.store {
		if r.UserID == userID {
			clone := *r
			recaps = append(recaps, &clone)
		}
	}
	return recaps, nil
}

type MockPrivacyRepo struct {
	store map[string]*domain.PrivacySettings
}

func NewMockPrivacyRepo() *MockPrivacyRepo {
	return &MockPrivacyRepo{store: make(map[string]*domain.PrivacySettings)}
}

func (m *MockPrivacyRepo) Get(ctx context.Context, userID string) (*domain.PrivacySettings, error) {
	s, ok := m.store[userID]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *MockPrivacyRepo) Upsert(ctx context.Context, settings *domain.PrivacySettings) error {
	clone := *settings
	m.store[settings.UserID] = &clone
	return nil
}

type MockReminderRepo struct {
	store map[string]*domain.ReminderSettings
}

func NewMockReminderRepo() *MockReminderRepo {
	return &MockReminderRepo{store: make(map[string]*domain.ReminderSettings)}
}

func (m *MockReminderRepo) Get(ctx context.Context, userID string) (*domain.ReminderSettings, error) {
	s, ok := m.store[userID]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *MockReminderRepo) Upsert(ctx context.Context, settings *domain.ReminderSettings) error {
	clone := *settings
	m.store[settings.UserID] = &clone
	return nil
}

type MockCoupleGoalRepo struct {
	store map[string]*domain.CoupleGoal
}

func NewMockCoupleGoalRepo() *MockCoupleGoalRepo {
	return &MockCoupleGoalRepo{store: make(map[string]*domain.CoupleGoal)}
}

func (m *MockCoupleGoalRepo) Upsert(ctx context.Context, goal *domain.CoupleGoal) error {
	clone := *goal
	m.store[goal.CoupleID+"|"+string(goal.Type)] = &clone
	return nil
}

func (m *MockCoupleGoalRepo) ListByCoupleID(ctx context.Context, coupleID string) ([]*domain.CoupleGoal, error) {
	var goals []*domain.CoupleGoal
	for _, g := range m.store {
		if g.CoupleID == coupleID {
			clone := *g
			goals = append(goals, &clone)
		}
	}
	return goals, nil
}
