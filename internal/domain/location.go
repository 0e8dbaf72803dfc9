package domain

// Category tags a point of interest for display and anchor selection.
type Category string

const (
	CategoryLodging    Category = "lodging"
	CategoryAttraction Category = "attraction"
	CategoryRestaurant Category = "restaurant"
	CategoryOther      Category = "other"
)

// Represents a single point of interest considered for an itinerary.
// A Location is immutable planning input owned by the caller: routing reads
// its identifier and coordinates, never the display fields (price, rating).
type Location struct {
	ID       string
	Name     string
	Category Category
	Coords   Coordinates
	Price    float64
	Rating   float64
}
