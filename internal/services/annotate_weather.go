package services

import (
	"context"
	"fmt"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// AttachForecast decorates a finished plan with one weather advisory per
// day. Routing decisions are never revisited: advisories are display
// metadata for the itinerary, fetched after planning completes.
func AttachForecast(
	ctx context.Context,
	plan *domain.TravelPlan,
	at domain.Coordinates,
	provider ports.ForecastProvider,
) error {
	if plan == nil || provider == nil || len(plan.Routes) == 0 {
		return nil
	}

	days, err := provider.Forecast(ctx, at, len(plan.Routes))
	if err != nil {
		return fmt.Errorf("attach forecast: %w", err)
	}

	advisories := make([]domain.WeatherAdvisory, 0, len(plan.Routes))
	for i := range plan.Routes {
		if i >= len(days) {
			break
		}

		advisories = append(advisories, domain.WeatherAdvisory{
			DayIndex: i,
			Summary:  days[i].Summary,
			TempC:    days[i].TempC,
			Note:     advisoryNote(days[i]),
		})
	}

	plan.Advisories = advisories
	return nil
}

func advisoryNote(f ports.DayForecast) string {
	switch {
	case f.RainMM >= 5:
		return "heavy rain expected, prefer indoor stops"
	case f.RainMM > 0:
		return "pack an umbrella"
	case f.TempC >= 30:
		return "hot day, plan water breaks"
	case f.TempC <= 0:
		return "freezing temperatures, dress warmly"
	default:
		return ""
	}
}
