package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// Forecast entries arrive in 3-hour steps; eight of them cover one day.
const entriesPerDay = 8

// OWMForecastProvider implements ForecastProvider using OpenWeatherMap.
//
// It annotates finished plans only: a failed or missing forecast never
// blocks route planning. The provider is safe for concurrent use.
type OWMForecastProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewOWMForecastProvider(apiKey string) (*OWMForecastProvider, error) {
	if apiKey == "" {
		return nil, errors.New("OpenWeatherMap api key is empty")
	}

	return &OWMForecastProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
	}, nil
}

type forecastResponse struct {
	List []struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Rain struct {
			ThreeHours float64 `json:"3h"`
		} `json:"rain"`
	} `json:"list"`
}

// Forecast returns one entry per requested day (capped at the five days
// the endpoint serves), sampling the first 3-hour slot of each day.
func (o *OWMForecastProvider) Forecast(
	ctx context.Context,
	at domain.Coordinates,
	days int,
) (_ []ports.DayForecast, err error) {
	defer obs.Time(ctx, "owm.forecast")(&err)

	if days < 1 {
		return nil, fmt.Errorf("%w: forecast days must be >= 1, got %d", domain.ErrInvalidParameter, days)
	}
	if err := at.Validate(); err != nil {
		return nil, fmt.Errorf("get forecast: %w", err)
	}

	count := days * entriesPerDay
	if count > 40 {
		count = 40
	}

	endpoint := o.baseURL + "/forecast"
	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint)
		if err != nil {
			return nil, err
		}

		q := req.URL.Query()
		q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
		q.Set("lon", strconv.FormatFloat(at.Lon, 'f', -1, 64))
		q.Set("appid", o.apiKey)
		q.Set("units", "metric")
		q.Set("cnt", strconv.Itoa(count))
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("get forecast: execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("get forecast: decode response: %w", err)
	}

	out := make([]ports.DayForecast, 0, days)
	for i := 0; i < len(decoded.List) && len(out) < days; i += entriesPerDay {
		entry := decoded.List[i]

		summary := ""
		if len(entry.Weather) > 0 {
			summary = entry.Weather[0].Description
		}

		out = append(out, ports.DayForecast{
			Summary: summary,
			TempC:   entry.Main.Temp,
			RainMM:  entry.Rain.ThreeHours,
		})
	}

	return out, nil
}
