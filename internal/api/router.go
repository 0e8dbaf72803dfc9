package api

import (
	"net/http"
	"trip-route-service/internal/api/handlers"
	"trip-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// Cache and forecast may be nil; planning works without them.
func NewRouter(repo ports.LocationRepository, cache ports.PlanCache, forecast ports.ForecastProvider) http.Handler {
	mux := http.NewServeMux()

	locHandler := &handlers.LocationHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:     repo,
		Cache:    cache,
		Forecast: forecast,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/locations", locHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)

	return requestIDMiddleware(loggingMiddleware(mux))
}
