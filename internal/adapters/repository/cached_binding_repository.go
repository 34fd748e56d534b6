package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

var _ domain.CoupleBindingRepository = (*CachedBindingRepository)(nil)

// CachedBindingRepository caches the active-binding lookup, which sits on
// every couple-space read. Writes invalidate both sides of the pair.
type CachedBindingRepository struct {
	next  domain.CoupleBindingRepository
	cache *redis.Client
}

func NewCachedBindingRepository(next domain.CoupleBindingRepository, cache *redis.Client) *CachedBindingRepository {
	return &CachedBindingRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedBindingRepository) cacheKey(userID string) string {
	return fmt.Sprintf("binding:active:%s", userID)
}

func (r *CachedBindingRepository) invalidate(ctx context.Context, binding *domain.CoupleBinding) {
	keys := []string{r.cacheKey(binding.InitiatorID)}
	if binding.PartnerID != "" {
		keys = append(keys, r.cacheKey(binding.PartnerID))
	}

	if err := r.cache.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate binding for %s: %v", binding.InitiatorID, err)
	}
}

func (r *CachedBindingRepository) FindActiveByUserID(ctx context.Context, userID string) (*domain.CoupleBinding, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var binding domain.CoupleBinding
		if err := json.Unmarshal([]byte(val), &binding); err == nil {
			return &binding, nil
		}

		log.Printf("[CACHE] Corrupted binding data for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	binding, err := r.next.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(binding); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 30*time.Minute).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return binding, nil
}

func (r *CachedBindingRepository) Create(ctx context.Context, binding *domain.CoupleBinding) error {
	if err := r.next.Create(ctx, binding); err != nil {
		return err
	}
	r.invalidate(ctx, binding)
	return nil
}

func (r *CachedBindingRepository) Update(ctx context.Context, binding *domain.CoupleBinding) error {
	if err := r.next.Update(ctx, binding); err != nil {
		return err
	}
	r.invalidate(ctx, binding)
	return nil
}

func (r *CachedBindingRepository) GetByID(ctx context.Context, id string) (*domain.CoupleBinding, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedBindingRepository) FindPendingByCode(ctx context.Context, code string) (*domain.CoupleBinding, error) {
	return r.next.FindPendingByCode(ctx, code)
}
