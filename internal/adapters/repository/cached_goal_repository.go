package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
)

var _ domain.GoalRepository = (*CachedGoalRepository)(nil)

const goalListTTL = 30 * time.Minute

// CachedGoalRepository caches each user's goal list, the hottest read of the
// tracker and analytics pages. Every write drops the user's entry.
type CachedGoalRepository struct {
	next  domain.GoalRepository
	cache *redis.Client
}

func NewCachedGoalRepository(next domain.GoalRepository, cache *redis.Client) *CachedGoalRepository {
	return &CachedGoalRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedGoalRepository) cacheKey(userID string) string {
	return fmt.Sprintf("goals:%s", userID)
}

func (r *CachedGoalRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate goals for user %s: %v", userID, err)
	}
}

func (r *CachedGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var goals []*domain.Goal
		if err := json.Unmarshal([]byte(val), &goals); err == nil {
			return goals, nil
		}

		log.Printf("[CACHE] Corrupted goal list for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	goals, err := r.next.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(goals); err == nil {
		if setErr := r.cache.Set(ctx, key, data, goalListTTL).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return goals, nil
}

func (r *CachedGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	if err := r.next.Create(ctx, goal); err != nil {
		return err
	}
	r.invalidate(ctx, goal.UserID)
	return nil
}

func (r *CachedGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	if err := r.next.Update(ctx, goal); err != nil {
		return err
	}
	r.invalidate(ctx, goal.UserID)
	return nil
}

func (r *CachedGoalRepository) UpdateOrder(ctx context.Context, userID string, goals []*domain.Goal) error {
	if err := r.next.UpdateOrder(ctx, userID, goals); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *CachedGoalRepository) Delete(ctx context.Context, id string) error {
	goal, err := r.next.GetByID(ctx, id)
	if err == nil && goal != nil {
		defer r.invalidate(ctx, goal.UserID)
	}

	return r.next.Delete(ctx, id)
}
