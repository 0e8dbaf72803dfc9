package domain

// Represents one day-group of locations produced by the clusterer.
// Membership order is irrelevant. The centroid is the mean coordinate of
// the current members; it is stale after a membership change until
// Recenter is called.
type Cluster struct {
	DayIndex int
	Members  []*Location
	Centroid Coordinates
}

// Recenter recomputes the centroid as the mean member coordinate.
// An empty cluster keeps its previous centroid.
func (c *Cluster) Recenter() {
	if len(c.Members) == 0 {
		return
	}

	var lat, lon float64
	for _, m := range c.Members {
		lat += m.Coords.Lat
		lon += m.Coords.Lon
	}

	n := float64(len(c.Members))
	c.Centroid = Coordinates{Lat: lat / n, Lon: lon / n}
}
