package services

import (
	"testing"
	"trip-route-service/internal/domain"
)

func keyRequest() PlanTripRequest {
	return PlanTripRequest{
		Locations: []*domain.Location{
			loc("hotel", 49.2827, -123.1207),
			loc("park", 49.3043, -123.1443),
			loc("aquarium", 49.3004, -123.1309),
		},
		DayCount: 2,
	}
}

func TestPlanKeyIgnoresLocationOrder(t *testing.T) {
	req := keyRequest()

	shuffled := keyRequest()
	shuffled.Locations[0], shuffled.Locations[2] = shuffled.Locations[2], shuffled.Locations[0]

	if PlanKey(req) != PlanKey(shuffled) {
		t.Fatal("keys differ across input ordering")
	}
}

func TestPlanKeySensitiveToParameters(t *testing.T) {
	base := keyRequest()

	moreDays := keyRequest()
	moreDays.DayCount = 3

	faster := keyRequest()
	faster.SpeedKmh = 50

	anchored := keyRequest()
	anchored.Anchors = map[int]*domain.Location{0: anchored.Locations[0]}

	for name, other := range map[string]PlanTripRequest{
		"day count": moreDays,
		"speed":     faster,
		"anchor":    anchored,
	} {
		if PlanKey(base) == PlanKey(other) {
			t.Errorf("%s change did not change key", name)
		}
	}
}
