package services

import (
	"fmt"
	"slices"
	"strings"
	"trip-route-service/internal/domain"
)

// maxTwoOptPasses bounds tour refinement. Hitting the cap keeps the best
// tour found so far.
const maxTwoOptPasses = 20

// SequenceRoute orders a cluster's members into a visiting tour starting
// from anchor (the anchor itself appears in the output only when it is
// also a cluster member).
//
// Construction is greedy nearest-neighbor followed by a bounded 2-opt
// pass. Nearest-neighbor minimizes each immediate hop but can leave long
// crossing edges; 2-opt reverses tour segments while doing so strictly
// shortens the path. Neither step attempts global optimality — a day's
// stop count is small enough that the heuristic is adequate.
func SequenceRoute(cluster *domain.Cluster, anchor *domain.Location, speedKmh float64) (*domain.Route, error) {
	if speedKmh <= 0 {
		return nil, fmt.Errorf("%w: average speed must be positive, got %v", domain.ErrInvalidParameter, speedKmh)
	}

	route := &domain.Route{
		DayIndex: cluster.DayIndex,
		Anchor:   anchor,
		Stops:    []domain.RouteStop{},
	}

	// An empty day is a valid plan: no stops, zero totals, no anchor needed.
	if len(cluster.Members) == 0 {
		return route, nil
	}

	if anchor == nil {
		return nil, fmt.Errorf("%w: non-empty day %d requires an anchor", domain.ErrInvalidParameter, cluster.DayIndex)
	}
	if err := anchor.Coords.Validate(); err != nil {
		return nil, fmt.Errorf("sequence route: anchor %q: %w", anchor.ID, err)
	}

	order := nearestNeighborOrder(anchor.Coords, cluster.Members)
	order = twoOptImprove(anchor.Coords, order)

	prev := anchor.Coords
	for _, loc := range order {
		leg := Distance(prev, loc.Coords)
		minutes, err := TravelTime(prev, loc.Coords, speedKmh)
		if err != nil {
			return nil, fmt.Errorf("sequence route: %w", err)
		}

		route.Stops = append(route.Stops, domain.RouteStop{
			Location:   loc,
			LegKm:      leg,
			LegMinutes: minutes,
		})
		route.TotalKm += leg
		route.TotalMinutes += minutes
		prev = loc.Coords
	}

	return route, nil
}

// nearestNeighborOrder builds a tour by repeatedly visiting the closest
// unvisited location. Candidates are pre-sorted by ID so distance ties
// fall to the lowest identifier (deterministic ordering).
func nearestNeighborOrder(start domain.Coordinates, members []*domain.Location) []*domain.Location {
	remaining := make([]*domain.Location, len(members))
	copy(remaining, members)
	slices.SortFunc(remaining, func(a, b *domain.Location) int {
		return strings.Compare(a.ID, b.ID)
	})

	order := make([]*domain.Location, 0, len(remaining))
	current := start
	for len(remaining) > 0 {
		best := 0
		bestDist := Distance(current, remaining[0].Coords)
		for i := 1; i < len(remaining); i++ {
			if d := Distance(current, remaining[i].Coords); d < bestDist {
				best, bestDist = i, d
			}
		}

		next := remaining[best]
		order = append(order, next)
		remaining = slices.Delete(remaining, best, best+1)
		current = next.Coords
	}

	return order
}

// twoOptImprove reverses tour segments whenever the reversal strictly
// shortens the path from start through every stop. Passes repeat until no
// swap improves or the pass cap is reached. The epsilon keeps float noise
// from cycling the loop.
func twoOptImprove(start domain.Coordinates, order []*domain.Location) []*domain.Location {
	if len(order) < 3 {
		return order
	}

	best := pathDistance(start, order)
	for pass := 0; pass < maxTwoOptPasses; pass++ {
		improved := false
		for i := 0; i < len(order)-1; i++ {
			for k := i + 1; k < len(order); k++ {
				candidate := reverseSegment(order, i, k)
				if d := pathDistance(start, candidate); d < best-1e-9 {
					order, best = candidate, d
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	return order
}

// reverseSegment returns a copy of order with order[i..k] reversed.
func reverseSegment(order []*domain.Location, i, k int) []*domain.Location {
	out := make([]*domain.Location, len(order))
	copy(out, order[:i])
	for j := i; j <= k; j++ {
		out[j] = order[k-(j-i)]
	}
	copy(out[k+1:], order[k+1:])
	return out
}

// pathDistance sums consecutive-pair distances from start through every
// stop in order.
func pathDistance(start domain.Coordinates, order []*domain.Location) float64 {
	total := 0.0
	prev := start
	for _, loc := range order {
		total += Distance(prev, loc.Coords)
		prev = loc.Coords
	}
	return total
}
