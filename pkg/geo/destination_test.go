package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDestinationPoint(t *testing.T) {
	testCases := []struct {
		name    string
		lat     float64
		lon     float64
		bearing float64
		dist    float64
	}{
		{name: "north", lat: 37.8, lon: -122.4, bearing: 0, dist: 5},
		{name: "east", lat: 37.8, lon: -122.4, bearing: 90, dist: 12.5},
		{name: "across the antimeridian", lat: 10, lon: 179.9, bearing: 90, dist: 50},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon := GetDestinationPoint(tt.lat, tt.lon, tt.bearing, tt.dist)
			assert.InDelta(t, tt.dist, CalculateHaversineDistance(tt.lat, tt.lon, lat, lon), 1e-6)
			assert.GreaterOrEqual(t, lon, -180.0)
			assert.Less(t, lon, 180.0)
		})
	}
}
