package services

import (
	"fmt"
	"slices"
	"strings"
	"trip-route-service/internal/domain"
)

// maxClusterIterations caps assignment passes. Hitting the cap is a
// heuristic-quality bound, not an error: the last assignment is kept.
const maxClusterIterations = 50

// ClusterByDay partitions locations into dayCount geographic day-groups of
// roughly equal size.
//
// The algorithm is a balanced k-means with deterministic seeding, so
// identical input always yields identical clusters. Plain k-means can
// leave one day with most of the stops and another with one; the
// rebalance step keeps daily workloads within one stop of each other,
// which matters more for itinerary usability than minimal spread.
func ClusterByDay(locations []*domain.Location, dayCount int) ([]*domain.Cluster, error) {
	if dayCount < 1 {
		return nil, fmt.Errorf("%w: day count must be >= 1, got %d", domain.ErrInvalidParameter, dayCount)
	}

	for _, loc := range locations {
		if err := loc.Coords.Validate(); err != nil {
			return nil, fmt.Errorf("cluster by day: location %q: %w", loc.ID, err)
		}
	}

	clusters := make([]*domain.Cluster, dayCount)
	for i := range clusters {
		clusters[i] = &domain.Cluster{DayIndex: i}
	}

	n := len(locations)
	if n == 0 {
		return clusters, nil
	}

	// Sort a copy by (lat, lon, ID) so seeding and assignment never depend
	// on caller ordering.
	sorted := make([]*domain.Location, n)
	copy(sorted, locations)
	slices.SortFunc(sorted, func(a, b *domain.Location) int {
		if a.Coords.Lat != b.Coords.Lat {
			if a.Coords.Lat < b.Coords.Lat {
				return -1
			}
			return 1
		}
		if a.Coords.Lon != b.Coords.Lon {
			if a.Coords.Lon < b.Coords.Lon {
				return -1
			}
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})

	// Fewer locations than days: one member each, the rest stay empty.
	if n < dayCount {
		for i, loc := range sorted {
			clusters[i].Members = []*domain.Location{loc}
			clusters[i].Recenter()
		}
		return clusters, nil
	}

	// Seed centroids by even sampling across the sorted span.
	for i := range clusters {
		clusters[i].Centroid = sorted[i*n/dayCount].Coords
	}

	assignment := make(map[string]int, n)
	for iter := 0; iter < maxClusterIterations; iter++ {
		for i := range clusters {
			clusters[i].Members = clusters[i].Members[:0]
		}

		changed := false
		for _, loc := range sorted {
			best := 0
			bestDist := Distance(loc.Coords, clusters[0].Centroid)
			for ci := 1; ci < dayCount; ci++ {
				// Strict < keeps ties on the lowest day index.
				if d := Distance(loc.Coords, clusters[ci].Centroid); d < bestDist {
					best, bestDist = ci, d
				}
			}

			clusters[best].Members = append(clusters[best].Members, loc)
			if prev, ok := assignment[loc.ID]; !ok || prev != best {
				changed = true
			}
			assignment[loc.ID] = best
		}

		rebalance(clusters, n, assignment)

		for _, c := range clusters {
			c.Recenter()
		}

		// Fixed point: the pass reproduced the previous (balanced)
		// assignment, so further passes cannot change it.
		if !changed {
			break
		}
	}

	return clusters, nil
}

// rebalance repairs a skewed assignment: while any cluster sits above
// ceil(N/D)+1 or below floor(N/D), the farthest member of the fullest
// offending cluster moves into the neediest one with the nearest
// centroid. Every move strictly shrinks the total size violation, so the
// loop terminates; all selections are deterministic.
func rebalance(clusters []*domain.Cluster, n int, assignment map[string]int) {
	d := len(clusters)
	floorSize := n / d
	ceilSize := (n + d - 1) / d

	for {
		over, under := -1, -1
		for i, c := range clusters {
			if len(c.Members) > ceilSize+1 && (over < 0 || len(c.Members) > len(clusters[over].Members)) {
				over = i
			}
			if len(c.Members) < floorSize && (under < 0 || len(c.Members) < len(clusters[under].Members)) {
				under = i
			}
		}
		if over < 0 && under < 0 {
			return
		}

		// Donor: the oversized cluster when one exists, otherwise the
		// fullest cluster (necessarily above floor when another is below).
		donor := over
		if donor < 0 {
			for i, c := range clusters {
				if donor < 0 || len(c.Members) > len(clusters[donor].Members) {
					donor = i
				}
			}
		}

		src := clusters[donor]
		worst := 0
		worstDist := Distance(src.Members[0].Coords, src.Centroid)
		for i := 1; i < len(src.Members); i++ {
			dist := Distance(src.Members[i].Coords, src.Centroid)
			if dist > worstDist || (dist == worstDist && src.Members[i].ID < src.Members[worst].ID) {
				worst, worstDist = i, dist
			}
		}
		moved := src.Members[worst]

		// Recipient: the nearest undersized cluster, or with none the
		// nearest cluster still below ceil(N/D).
		dst := -1
		var dstDist float64
		for i, c := range clusters {
			if under >= 0 && len(c.Members) >= floorSize {
				continue
			}
			if under < 0 && (i == donor || len(c.Members) >= ceilSize) {
				continue
			}
			// Strict < keeps ties on the lowest day index.
			if dist := Distance(moved.Coords, c.Centroid); dst < 0 || dist < dstDist {
				dst, dstDist = i, dist
			}
		}

		src.Members = slices.Delete(src.Members, worst, worst+1)
		clusters[dst].Members = append(clusters[dst].Members, moved)
		assignment[moved.ID] = dst
	}
}
