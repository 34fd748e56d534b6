package repository

import (
	"context"
	"sync"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

type InMemoryBindingRepository struct {
	store map[string]*domain.CoupleBinding

	mu sync.RWMutex
}

func NewInMemoryBindingRepository() *InMemoryBindingRepository {
	return &InMemoryBindingRepository{
		store: make(map[string]*domain.CoupleBinding),
	}
}

func (r *InMemoryBindingRepository) Create(ctx context.Context, binding *domain.CoupleBinding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *binding
	r.store[binding.ID] = &clone
	return nil
}

func (r *InMemoryBindingRepository) Update(ctx context.Context, binding *domain.CoupleBinding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[binding.ID]; !ok {
		return domain.ErrBindingNotFound
	}

	clone := *binding
	r.store[binding.ID] = &clone
	return nil
}

func (r *InMemoryBindingRepository) GetByID(ctx context.Context, id string) (*domain.CoupleBinding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	binding, ok := r.store[id]
	if !ok {
		return nil, domain.ErrBindingNotFound
	}
	clone := *binding
	return &clone, nil
}

func (r *InMemoryBindingRepository) FindPendingByCode(ctx context.Context, code string) (*domain.CoupleBinding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.store {
		if b.Status == domain.BindingPending && b.Code == code {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrBindingNotFound
}

func (r *InMemoryBindingRepository) FindActiveByUserID(ctx context.Context, userID string) (*domain.CoupleBinding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.store {
		if b.Status == domain.BindingActive && b.Involves(userID) {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrBindingNotFound
}
