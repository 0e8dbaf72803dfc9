package handlers

import (
	"log"
	"net/http"
	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/ports"
)

// LocationHandler exposes read-only candidate-location endpoints.
type LocationHandler struct {
	Repo ports.LocationRepository
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	locations, err := h.Repo.ListLocations(r.Context())
	if err != nil {
		log.Printf("list locations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationResponse, 0, len(locations)),
	}
	for _, l := range locations {
		res.Locations = append(res.Locations, dto.LocationResponse{
			LocationID: l.ID,
			Name:       l.Name,
			Category:   string(l.Category),
			Latitude:   l.Coords.Lat,
			Longitude:  l.Coords.Lon,
			Price:      l.Price,
			Rating:     l.Rating,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
