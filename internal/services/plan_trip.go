package services

import (
	"fmt"
	"trip-route-service/internal/domain"
)

// PlanTripRequest carries everything one planning call needs.
//
// Anchors maps day index -> start location for that day (typically the
// lodging). Days without an entry fall back to the centroid-nearest member
// of that day's cluster, then to FallbackAnchor. SpeedKmh of zero selects
// DefaultSpeedKmh.
type PlanTripRequest struct {
	Locations      []*domain.Location
	DayCount       int
	Anchors        map[int]*domain.Location
	FallbackAnchor *domain.Location
	SpeedKmh       float64
}

// PlanTrip produces a complete multi-day itinerary: cluster the candidate
// locations into day groups, sequence each group from its anchor, and
// aggregate plan totals. Empty clusters keep their day slot with an empty
// route.
//
// All validation happens before any clustering work (fail fast, no partial
// plan). The call is a deterministic pure function of its request:
// identical input yields an identical TravelPlan.
func PlanTrip(req PlanTripRequest) (*domain.TravelPlan, error) {
	if req.DayCount < 1 {
		return nil, fmt.Errorf("%w: day count must be >= 1, got %d", domain.ErrInvalidParameter, req.DayCount)
	}

	speed := req.SpeedKmh
	if speed == 0 {
		speed = DefaultSpeedKmh
	}
	if speed < 0 {
		return nil, fmt.Errorf("%w: average speed must be positive, got %v", domain.ErrInvalidParameter, speed)
	}

	for day, anchor := range req.Anchors {
		if day < 0 || day >= req.DayCount {
			return nil, fmt.Errorf("%w: anchor day index %d outside [0, %d)", domain.ErrInvalidParameter, day, req.DayCount)
		}
		if anchor == nil {
			return nil, fmt.Errorf("%w: anchor for day %d is nil", domain.ErrInvalidParameter, day)
		}
		if err := anchor.Coords.Validate(); err != nil {
			return nil, fmt.Errorf("plan trip: day %d anchor %q: %w", day, anchor.ID, err)
		}
	}

	if req.FallbackAnchor != nil {
		if err := req.FallbackAnchor.Coords.Validate(); err != nil {
			return nil, fmt.Errorf("plan trip: fallback anchor %q: %w", req.FallbackAnchor.ID, err)
		}
	}

	for _, loc := range req.Locations {
		if err := loc.Coords.Validate(); err != nil {
			return nil, fmt.Errorf("plan trip: location %q: %w", loc.ID, err)
		}
	}

	clusters, err := ClusterByDay(req.Locations, req.DayCount)
	if err != nil {
		return nil, fmt.Errorf("plan trip: cluster locations: %w", err)
	}

	plan := &domain.TravelPlan{Routes: make([]*domain.Route, 0, req.DayCount)}
	for _, cluster := range clusters {
		anchor := req.Anchors[cluster.DayIndex]
		if anchor == nil {
			anchor = centroidNearestMember(cluster)
		}
		if anchor == nil {
			anchor = req.FallbackAnchor
		}

		route, err := SequenceRoute(cluster, anchor, speed)
		if err != nil {
			return nil, fmt.Errorf("plan trip: sequence day %d: %w", cluster.DayIndex, err)
		}

		plan.Routes = append(plan.Routes, route)
		plan.TotalKm += route.TotalKm
		plan.TotalMinutes += route.TotalMinutes
	}

	return plan, nil
}

// centroidNearestMember picks the member closest to the cluster centroid,
// ties falling to the lowest ID. Returns nil for an empty cluster.
func centroidNearestMember(c *domain.Cluster) *domain.Location {
	var best *domain.Location
	bestDist := 0.0
	for _, m := range c.Members {
		d := Distance(m.Coords, c.Centroid)
		if best == nil || d < bestDist || (d == bestDist && m.ID < best.ID) {
			best, bestDist = m, d
		}
	}
	return best
}
