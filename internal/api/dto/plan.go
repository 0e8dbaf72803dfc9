package dto

type PlanRequest struct {
	Days           int      `json:"days"`
	SpeedKmh       float64  `json:"speed_kmh"`
	AnchorID       string   `json:"anchor_id"`
	LocationIDs    []string `json:"location_ids"`
	IncludeWeather bool     `json:"include_weather"`
}

type PlanStopResponse struct {
	LocationID string  `json:"location_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	LegKm      float64 `json:"leg_km"`
	LegMinutes float64 `json:"leg_minutes"`
}

type DayRouteResponse struct {
	Day          int                `json:"day"`
	AnchorID     string             `json:"anchor_id,omitempty"`
	Stops        []PlanStopResponse `json:"stops"`
	TotalKm      float64            `json:"total_km"`
	TotalMinutes float64            `json:"total_minutes"`
}

type WeatherAdvisoryResponse struct {
	Day     int     `json:"day"`
	Summary string  `json:"summary"`
	TempC   float64 `json:"temp_c"`
	Note    string  `json:"note,omitempty"`
}

type PlanResponse struct {
	Days         []DayRouteResponse        `json:"days"`
	TotalKm      float64                   `json:"total_km"`
	TotalMinutes float64                   `json:"total_minutes"`
	Weather      []WeatherAdvisoryResponse `json:"weather,omitempty"`
	CacheHit     bool                      `json:"cache_hit"`
}
