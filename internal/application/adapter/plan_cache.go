package adapter

import (
	"context"
	"time"

	"github.com/budget-dashboard/backend/internal/domain/entity"
)

// PlanCache stores computed payment plans keyed by a fingerprint of their input.
type PlanCache interface {
	// Get returns the cached plan, or false when nothing is stored under key.
	Get(ctx context.Context, key string) (*entity.PaymentPlan, bool, error)

	// Set stores a plan under key for the given time to live.
	Set(ctx context.Context, key string, plan *entity.PaymentPlan, ttl time.Duration) error

	// Ping reports whether the cache backend is reachable.
	Ping(ctx context.Context) bool
}
