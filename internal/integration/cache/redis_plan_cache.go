// Package cache implements caching adapters backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/budget-dashboard/backend/internal/application/adapter"
	"github.com/budget-dashboard/backend/internal/domain/entity"
)

// redisPlanCache implements the adapter.PlanCache interface.
type redisPlanCache struct {
	client *redis.Client
}

// NewRedisPlanCache creates a new plan cache on top of a Redis client.
func NewRedisPlanCache(client *redis.Client) adapter.PlanCache {
	return &redisPlanCache{
		client: client,
	}
}

// Get returns the plan stored under key.
func (c *redisPlanCache) Get(ctx context.Context, key string) (*entity.PaymentPlan, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached plan: %w", err)
	}

	var plan entity.PaymentPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached plan: %w", err)
	}
	return &plan, true, nil
}

// Set stores the plan under key. A zero ttl keeps the entry until evicted.
func (c *redisPlanCache) Set(ctx context.Context, key string, plan *entity.PaymentPlan, ttl time.Duration) error {
	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache plan: %w", err)
	}
	return nil
}

// Ping reports whether Redis answers.
func (c *redisPlanCache) Ping(ctx context.Context) bool {
	return c.client.Ping(ctx).Err() == nil
}
