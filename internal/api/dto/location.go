package dto

type LocationResponse struct {
	LocationID string  `json:"location_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Price      float64 `json:"price,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
