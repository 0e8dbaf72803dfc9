package domain

import (
	"errors"
	"testing"
)

func TestClusterRecenter(t *testing.T) {
	// build test data
	a := &Location{ID: "a", Coords: Coordinates{Lat: 49.0, Lon: -123.0}}
	b := &Location{ID: "b", Coords: Coordinates{Lat: 51.0, Lon: -121.0}}

	cluster := &Cluster{DayIndex: 0, Members: []*Location{a, b}}

	// call the method under test
	cluster.Recenter()

	// verify behavior
	if cluster.Centroid.Lat != 50.0 {
		t.Errorf("centroid lat = %v, want 50.0", cluster.Centroid.Lat)
	}
	if cluster.Centroid.Lon != -122.0 {
		t.Errorf("centroid lon = %v, want -122.0", cluster.Centroid.Lon)
	}
}

func TestClusterRecenterEmptyKeepsCentroid(t *testing.T) {
	cluster := &Cluster{DayIndex: 1, Centroid: Coordinates{Lat: 10, Lon: 20}}

	cluster.Recenter()

	if cluster.Centroid.Lat != 10 || cluster.Centroid.Lon != 20 {
		t.Errorf("empty cluster centroid changed: %+v", cluster.Centroid)
	}
}

func TestCoordinatesValidate(t *testing.T) {
	cases := []struct {
		name    string
		coords  Coordinates
		wantErr bool
	}{
		{"valid", Coordinates{Lat: 49.28, Lon: -123.12}, false},
		{"lat boundary", Coordinates{Lat: -90, Lon: 180}, false},
		{"lat too high", Coordinates{Lat: 90.1, Lon: 0}, true},
		{"lat too low", Coordinates{Lat: -90.1, Lon: 0}, true},
		{"lon too high", Coordinates{Lat: 0, Lon: 180.5}, true},
		{"lon too low", Coordinates{Lat: 0, Lon: -181}, true},
	}

	for _, tc := range cases {
		err := tc.coords.Validate()
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("%s: expected ErrInvalidParameter, got %v", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}
