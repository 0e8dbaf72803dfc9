package cache

import (
	"context"
	"testing"
	"time"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testCache(t *testing.T) *RedisPlanCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisPlanCache(client, time.Hour)
}

func testRequest() services.PlanTripRequest {
	return services.PlanTripRequest{
		Locations: []*domain.Location{
			{ID: "hotel", Coords: domain.Coordinates{Lat: 49.2827, Lon: -123.1207}},
			{ID: "park", Coords: domain.Coordinates{Lat: 49.3043, Lon: -123.1443}},
			{ID: "aquarium", Coords: domain.Coordinates{Lat: 49.3004, Lon: -123.1309}},
		},
		DayCount: 2,
	}
}

func TestRedisPlanCacheRoundTrip(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()
	key := services.PlanKey(testRequest())

	// Cold cache: miss, not an error.
	got, err := c.Get(ctx, key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected miss, got %+v", got)
	}

	plan := &domain.TravelPlan{
		Routes: []*domain.Route{
			{
				DayIndex: 0,
				Stops: []domain.RouteStop{
					{Location: &domain.Location{ID: "park"}, LegKm: 3.1, LegMinutes: 4.65},
				},
				TotalKm:      3.1,
				TotalMinutes: 4.65,
			},
			{DayIndex: 1, Stops: []domain.RouteStop{}},
		},
		TotalKm:      3.1,
		TotalMinutes: 4.65,
	}

	if err := c.Put(ctx, key, plan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err = c.Get(ctx, key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected hit, got miss")
	}

	if got.TotalKm != plan.TotalKm {
		t.Errorf("total km = %v, want %v", got.TotalKm, plan.TotalKm)
	}
	if len(got.Routes) != 2 {
		t.Fatalf("routes = %d, want 2", len(got.Routes))
	}
	if got.Routes[0].Stops[0].Location.ID != "park" {
		t.Errorf("first stop = %q, want %q", got.Routes[0].Stops[0].Location.ID, "park")
	}
}
