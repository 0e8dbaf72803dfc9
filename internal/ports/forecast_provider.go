package ports

import (
	"context"
	"trip-route-service/internal/domain"
)

// One day of forecast data used for itinerary advisories.
type DayForecast struct {
	Summary string
	TempC   float64
	RainMM  float64
}

// Contract for retrieving a daily weather forecast near a coordinate.
type ForecastProvider interface {
	// Return up to days forecast entries, one per day starting today.
	Forecast(ctx context.Context, at domain.Coordinates, days int) ([]DayForecast, error)
}
