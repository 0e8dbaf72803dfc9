package ports

import (
	"context"
	"trip-route-service/internal/domain"
)

// Cache of finished travel plans keyed by a deterministic request
// fingerprint. A miss is (nil, nil), not an error.
type PlanCache interface {
	Get(ctx context.Context, key string) (*domain.TravelPlan, error)
	Put(ctx context.Context, key string, plan *domain.TravelPlan) error
}
