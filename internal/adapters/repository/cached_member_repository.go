package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

var _ domain.HouseholdUserRepository = (*CachedMemberRepository)(nil)

// CachedMemberRepository caches the household member list in Redis. Member
// rows are read on nearly every request (stats, entry writes, auth context)
// and change rarely, so they are the one table worth a cache layer.
type CachedMemberRepository struct {
	next  domain.HouseholdUserRepository
	cache *redis.Client
}

func NewCachedMemberRepository(next domain.HouseholdUserRepository, cache *redis.Client) *CachedMemberRepository {
	return &CachedMemberRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedMemberRepository) cacheKey(householdID string) string {
	return fmt.Sprintf("members:%s", householdID)
}

func (r *CachedMemberRepository) invalidate(ctx context.Context, householdID string) {
	if err := r.cache.Del(ctx, r.cacheKey(householdID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for household %s: %v", householdID, err)
	}
}

func (r *CachedMemberRepository) ListByHouseholdID(ctx context.Context, householdID string) ([]*domain.HouseholdUser, error) {
	key := r.cacheKey(householdID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var users []*domain.HouseholdUser
		if err := json.Unmarshal([]byte(val), &users); err == nil {
			return users, nil
		}

		log.Printf("[CACHE] Corrupted data for household %s, cleaning up key", householdID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	users, err := r.next.ListByHouseholdID(ctx, householdID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(users); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 30*time.Minute).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return users, nil
}

func (r *CachedMemberRepository) GetByID(ctx context.Context, id string) (*domain.HouseholdUser, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedMemberRepository) GetByAuthUserID(ctx context.Context, authUserID string) (*domain.HouseholdUser, error) {
	return r.next.GetByAuthUserID(ctx, authUserID)
}

func (r *CachedMemberRepository) Create(ctx context.Context, user *domain.HouseholdUser) error {
	if err := r.next.Create(ctx, user); err != nil {
		return err
	}
	r.invalidate(ctx, user.HouseholdID)
	return nil
}

func (r *CachedMemberRepository) Update(ctx context.Context, user *domain.HouseholdUser) error {
	if err := r.next.Update(ctx, user); err != nil {
		return err
	}
	r.invalidate(ctx, user.HouseholdID)
	return nil
}

func (r *CachedMemberRepository) Delete(ctx context.Context, id string) error {
	user, err := r.next.GetByID(ctx, id)
	if err == nil && user != nil {
		defer r.invalidate(ctx, user.HouseholdID)
	}

	return r.next.Delete(ctx, id)
}
