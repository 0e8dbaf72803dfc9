package ports

import (
	"context"
	"trip-route-service/internal/domain"
)

// Port: a boundary for retrieving candidate Location entities from a data
// source.
type LocationRepository interface {
	// Retrieve all locations available for planning.
	ListLocations(ctx context.Context) ([]*domain.Location, error)
}
