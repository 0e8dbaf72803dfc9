package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"trip-route-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Redis-backed cache for finished travel plans.
//
// Caching is sound only because planning is deterministic: one fingerprint
// always maps to one plan. The TTL bounds staleness after seed-data
// changes.
type RedisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisPlanCache{client: client, ttl: ttl}
}

// Get returns the cached plan for key, or (nil, nil) on a miss.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (*domain.TravelPlan, error) {
	if c.client == nil {
		return nil, errors.New("plan cache: client is nil")
	}

	raw, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("plan cache: get %q: %w", key, err)
	}

	var plan domain.TravelPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("plan cache: decode %q: %w", key, err)
	}

	return &plan, nil
}

// Put stores a finished plan under key for the cache TTL.
func (c *RedisPlanCache) Put(ctx context.Context, key string, plan *domain.TravelPlan) error {
	if c.client == nil {
		return errors.New("plan cache: client is nil")
	}
	if plan == nil {
		return errors.New("plan cache: plan is nil")
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("plan cache: encode %q: %w", key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("plan cache: set %q: %w", key, err)
	}

	return nil
}
