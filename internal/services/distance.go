package services

import (
	"fmt"
	"trip-route-service/internal/domain"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the spherical Earth approximation shared by all
// distance math in this package.
const EarthRadiusKm = 6371.0

// DefaultSpeedKmh approximates local urban travel for time estimates.
const DefaultSpeedKmh = 40.0

// Distance returns the great-circle distance between two coordinates in
// kilometers. s2 computes the central angle with the haversine formula;
// the result is symmetric and zero for identical coordinates.
func Distance(a, b domain.Coordinates) float64 {
	p := s2.LatLngFromDegrees(a.Lat, a.Lon)
	q := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p.Distance(q).Radians() * EarthRadiusKm
}

// TravelTime estimates the minutes needed to travel between a and b at the
// given average speed.
func TravelTime(a, b domain.Coordinates, speedKmh float64) (float64, error) {
	if speedKmh <= 0 {
		return 0, fmt.Errorf("%w: average speed must be positive, got %v", domain.ErrInvalidParameter, speedKmh)
	}
	return Distance(a, b) / speedKmh * 60, nil
}
