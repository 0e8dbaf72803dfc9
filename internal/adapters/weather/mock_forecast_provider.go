package weather

import (
	"context"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// MockForecastProvider serves canned forecasts for tests and for running
// the service without an API key.
type MockForecastProvider struct {
	Days []ports.DayForecast
	Err  error
}

func (p *MockForecastProvider) Forecast(
	ctx context.Context,
	at domain.Coordinates,
	days int,
) ([]ports.DayForecast, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	if days > len(p.Days) {
		days = len(p.Days)
	}
	return p.Days[:days], nil
}
