package domain

// Represents a single stop in a day's tour.
// Leg metrics measure travel from the previous point in the sequence
// (the day's anchor for the first stop). Dwell time at the stop itself is
// a display-layer concern and is never included.
type RouteStop struct {
	Location   *Location
	LegKm      float64
	LegMinutes float64
}

// Represents the planned visiting sequence for a single day.
// A Route is the output of the sequencer and describes the ordered stops
// along with aggregate distance and time metrics. It is immutable planning
// data and contains no side effects.
type Route struct {
	DayIndex     int
	Anchor       *Location
	Stops        []RouteStop
	TotalKm      float64
	TotalMinutes float64
}

// Advisory weather metadata attached to a finished plan. Advisories never
// influence routing decisions.
type WeatherAdvisory struct {
	DayIndex int
	Summary  string
	TempC    float64
	Note     string
}

// Represents a complete multi-day itinerary: one Route per day (index =
// day number) plus plan-level totals. Created fresh per planning request
// and has no identity beyond the call that produced it.
type TravelPlan struct {
	Routes       []*Route
	TotalKm      float64
	TotalMinutes float64
	Advisories   []WeatherAdvisory
}
