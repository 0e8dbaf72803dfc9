package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/services"
)

type PlanHandler struct {
	Repo     ports.LocationRepository
	Cache    ports.PlanCache
	Forecast ports.ForecastProvider
}

// Plan orchestrates clustering and per-day sequencing for a full trip.
// It coordinates repository access, the plan cache, the routing core, and
// optional weather annotation.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	days := req.Days
	if days == 0 {
		days = 3
	}
	if days < 1 || days > 14 {
		writeError(w, r, http.StatusBadRequest, "days must be between 1 and 14")
		return
	}

	if req.SpeedKmh < 0 {
		writeError(w, r, http.StatusBadRequest, "speed_kmh must be positive")
		return
	}

	all, err := h.Repo.ListLocations(r.Context())
	if err != nil {
		log.Printf("list locations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	byID := make(map[string]*domain.Location, len(all))
	for _, l := range all {
		byID[l.ID] = l
	}

	candidates := all
	if len(req.LocationIDs) > 0 {
		candidates = make([]*domain.Location, 0, len(req.LocationIDs))
		for _, id := range req.LocationIDs {
			l, ok := byID[strings.TrimSpace(id)]
			if !ok {
				writeError(w, r, http.StatusBadRequest, "unknown location_id: "+id)
				return
			}
			candidates = append(candidates, l)
		}
	}

	planReq := services.PlanTripRequest{
		Locations: candidates,
		DayCount:  days,
		SpeedKmh:  req.SpeedKmh,
	}

	if id := strings.TrimSpace(req.AnchorID); id != "" {
		anchor, ok := byID[id]
		if !ok {
			writeError(w, r, http.StatusBadRequest, "unknown anchor_id: "+id)
			return
		}

		// One lodging anchors every day of the trip.
		planReq.Anchors = make(map[int]*domain.Location, days)
		for day := 0; day < days; day++ {
			planReq.Anchors[day] = anchor
		}
		planReq.FallbackAnchor = anchor
	}

	key := services.PlanKey(planReq)
	plan, cacheHit := h.cachedPlan(r, key)
	if plan == nil {
		plan, err = services.PlanTrip(planReq)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidParameter) {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			log.Printf("plan trip failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		if h.Cache != nil {
			if err := h.Cache.Put(r.Context(), key, plan); err != nil {
				// Cache failures degrade to planning; never fail the request.
				log.Printf("plan cache put failed: %v", err)
			}
		}
	}

	if req.IncludeWeather && h.Forecast != nil {
		at := forecastPoint(planReq, plan)
		if err := services.AttachForecast(r.Context(), plan, at, h.Forecast); err != nil {
			// Advisories are optional metadata; serve the plan without them.
			log.Printf("attach forecast failed: %v", err)
		}
	}

	writeJSON(w, r, http.StatusOK, planResponse(plan, cacheHit))
}

// cachedPlan consults the plan cache, treating any cache error as a miss.
func (h *PlanHandler) cachedPlan(r *http.Request, key string) (*domain.TravelPlan, bool) {
	if h.Cache == nil {
		return nil, false
	}

	plan, err := h.Cache.Get(r.Context(), key)
	if err != nil {
		log.Printf("plan cache get failed: %v", err)
		return nil, false
	}
	return plan, plan != nil
}

// forecastPoint picks where to ask for weather: the trip anchor when one
// is set, otherwise the first stop of the first non-empty day.
func forecastPoint(req services.PlanTripRequest, plan *domain.TravelPlan) domain.Coordinates {
	if req.FallbackAnchor != nil {
		return req.FallbackAnchor.Coords
	}
	for _, route := range plan.Routes {
		if len(route.Stops) > 0 {
			return route.Stops[0].Location.Coords
		}
	}
	return domain.Coordinates{}
}

func planResponse(plan *domain.TravelPlan, cacheHit bool) dto.PlanResponse {
	res := dto.PlanResponse{
		Days:         make([]dto.DayRouteResponse, 0, len(plan.Routes)),
		TotalKm:      plan.TotalKm,
		TotalMinutes: plan.TotalMinutes,
		CacheHit:     cacheHit,
	}

	for _, route := range plan.Routes {
		day := dto.DayRouteResponse{
			Day:          route.DayIndex,
			Stops:        make([]dto.PlanStopResponse, 0, len(route.Stops)),
			TotalKm:      route.TotalKm,
			TotalMinutes: route.TotalMinutes,
		}
		if route.Anchor != nil {
			day.AnchorID = route.Anchor.ID
		}

		for _, s := range route.Stops {
			day.Stops = append(day.Stops, dto.PlanStopResponse{
				LocationID: s.Location.ID,
				Name:       s.Location.Name,
				Category:   string(s.Location.Category),
				Latitude:   s.Location.Coords.Lat,
				Longitude:  s.Location.Coords.Lon,
				LegKm:      s.LegKm,
				LegMinutes: s.LegMinutes,
			})
		}

		res.Days = append(res.Days, day)
	}

	for _, a := range plan.Advisories {
		res.Weather = append(res.Weather, dto.WeatherAdvisoryResponse{
			Day:     a.DayIndex,
			Summary: a.Summary,
			TempC:   a.TempC,
			Note:    a.Note,
		})
	}

	return res
}
