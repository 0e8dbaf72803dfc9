package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"github.com/mmcloughlin/geohash"
)

// PlanKey fingerprints a planning request for cache lookups. Member
// coordinates enter as high-precision geohashes and the member list is
// sorted, so the key is stable across input ordering and float
// formatting. Determinism of PlanTrip makes the fingerprint a sound cache
// key: one key always maps to one plan.
func PlanKey(req PlanTripRequest) string {
	parts := make([]string, 0, len(req.Locations)+req.DayCount+3)
	for _, loc := range req.Locations {
		parts = append(parts, loc.ID+"@"+geohash.EncodeWithPrecision(loc.Coords.Lat, loc.Coords.Lon, 12))
	}
	slices.Sort(parts)

	parts = append(parts,
		fmt.Sprintf("days=%d", req.DayCount),
		fmt.Sprintf("speed=%g", req.SpeedKmh),
	)
	for day := 0; day < req.DayCount; day++ {
		if a, ok := req.Anchors[day]; ok && a != nil {
			parts = append(parts, fmt.Sprintf("anchor%d=%s", day, a.ID))
		}
	}
	if req.FallbackAnchor != nil {
		parts = append(parts, "fallback="+req.FallbackAnchor.ID)
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return "plan:" + hex.EncodeToString(sum[:])
}
