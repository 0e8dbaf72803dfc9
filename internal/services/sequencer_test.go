package services

import (
	"errors"
	"math"
	"testing"
	"trip-route-service/internal/domain"
)

func TestSequenceRouteEmptyCluster(t *testing.T) {
	cluster := &domain.Cluster{DayIndex: 2}

	route, err := SequenceRoute(cluster, nil, DefaultSpeedKmh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(route.Stops) != 0 {
		t.Fatalf("expected no stops, got %d", len(route.Stops))
	}
	if route.TotalKm != 0 || route.TotalMinutes != 0 {
		t.Fatalf("expected zero totals, got km=%v min=%v", route.TotalKm, route.TotalMinutes)
	}
	if route.DayIndex != 2 {
		t.Fatalf("day index = %d, want 2", route.DayIndex)
	}
}

func TestSequenceRouteSingleMemberAnchoredAtItself(t *testing.T) {
	hotel := loc("hotel", 49.28, -123.12)
	cluster := &domain.Cluster{Members: []*domain.Location{hotel}}

	route, err := SequenceRoute(cluster, hotel, DefaultSpeedKmh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(route.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(route.Stops))
	}
	if route.TotalKm != 0 {
		t.Fatalf("total distance = %v, want 0", route.TotalKm)
	}
}

func TestSequenceRouteVisitsNearestFirst(t *testing.T) {
	anchor := loc("anchor", 0, 0)
	cluster := &domain.Cluster{
		Members: []*domain.Location{
			loc("far", 0, 3),
			loc("near", 0, 1),
			loc("mid", 0, 2),
		},
	}

	route, err := SequenceRoute(cluster, anchor, DefaultSpeedKmh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"near", "mid", "far"}
	if len(route.Stops) != len(want) {
		t.Fatalf("expected %d stops, got %d", len(want), len(route.Stops))
	}
	for i, id := range want {
		if route.Stops[i].Location.ID != id {
			t.Errorf("stop %d = %q, want %q", i, route.Stops[i].Location.ID, id)
		}
	}

	// Totals include the anchor-to-first-stop leg: 3 degrees of arc.
	wantKm := 3 * EarthRadiusKm * math.Pi / 180
	if math.Abs(route.TotalKm-wantKm) > 0.1 {
		t.Fatalf("total km = %v, want %v", route.TotalKm, wantKm)
	}
	wantMin := wantKm / DefaultSpeedKmh * 60
	if math.Abs(route.TotalMinutes-wantMin) > 0.1 {
		t.Fatalf("total minutes = %v, want %v", route.TotalMinutes, wantMin)
	}
}

func TestSequenceRouteBreaksDistanceTiesByLowestID(t *testing.T) {
	anchor := loc("anchor", 0, 0)
	cluster := &domain.Cluster{
		Members: []*domain.Location{
			loc("west", 0, -1),
			loc("east", 0, 1),
		},
	}

	route, err := SequenceRoute(cluster, anchor, DefaultSpeedKmh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both members are one degree away; "east" sorts before "west".
	if route.Stops[0].Location.ID != "east" {
		t.Fatalf("first stop = %q, want %q", route.Stops[0].Location.ID, "east")
	}
}

func TestSequenceRouteRejectsInvalidAnchor(t *testing.T) {
	cluster := &domain.Cluster{Members: []*domain.Location{loc("a", 1, 1)}}

	_, err := SequenceRoute(cluster, loc("bad", 200, 0), DefaultSpeedKmh)
	if !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestSequenceRouteRejectsNonPositiveSpeed(t *testing.T) {
	cluster := &domain.Cluster{Members: []*domain.Location{loc("a", 1, 1)}}

	_, err := SequenceRoute(cluster, loc("anchor", 0, 0), -5)
	if !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestTwoOptImproveUntanglesBadOrder(t *testing.T) {
	start := domain.Coordinates{Lat: 0, Lon: 0}
	a := loc("a", 0, 1)
	b := loc("b", 0, 2)
	c := loc("c", 0, 3)
	d := loc("d", 0, 4)

	// Deliberately zigzagging order: 2 + 1 + 3 + 1 = 7 degrees of arc.
	bad := []*domain.Location{b, a, d, c}
	badDist := pathDistance(start, bad)

	improved := twoOptImprove(start, bad)
	improvedDist := pathDistance(start, improved)

	if improvedDist > badDist {
		t.Fatalf("2-opt worsened the tour: %v > %v", improvedDist, badDist)
	}

	// The straight sweep a, b, c, d (4 degrees) is reachable by two
	// segment reversals.
	wantKm := 4 * EarthRadiusKm * math.Pi / 180
	if math.Abs(improvedDist-wantKm) > 0.1 {
		t.Fatalf("improved distance = %v, want %v", improvedDist, wantKm)
	}
}

func TestTwoOptNeverWorseThanNearestNeighbor(t *testing.T) {
	start := domain.Coordinates{Lat: 0, Lon: 0}

	sets := [][]*domain.Location{
		{loc("a", 0, 0.9), loc("b", 0, 1.8), loc("c", 0, -1)},
		{loc("a", 0.9, 0), loc("b", 0, 1), loc("c", 1, 1), loc("d", 1, 0)},
		{loc("a", 0.5, 0.5), loc("b", 1.2, 0.1), loc("c", 0.2, 1.3), loc("d", 1.4, 1.4), loc("e", 0.8, 0.9)},
	}

	for i, members := range sets {
		nn := nearestNeighborOrder(start, members)
		nnDist := pathDistance(start, nn)

		improved := twoOptImprove(start, nn)
		if got := pathDistance(start, improved); got > nnDist+1e-9 {
			t.Errorf("set %d: 2-opt distance %v exceeds nearest-neighbor %v", i, got, nnDist)
		}
	}
}
