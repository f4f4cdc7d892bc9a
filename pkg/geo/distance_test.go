package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHaversineDistance(t *testing.T) {
	testCases := []struct {
		name string
		p, q Coordinate
		want float64
	}{
		{
			name: "identical points",
			p:    NewCoordinate(37.788353, -122.387695),
			q:    NewCoordinate(37.788353, -122.387695),
			want: 0,
		},
		{
			name: "one degree along the equator",
			p:    NewCoordinate(0, 0),
			q:    NewCoordinate(0, 1),
			want: earthRadiusKM * math.Pi / 180.0,
		},
		{
			name: "one degree along a meridian",
			p:    NewCoordinate(10, 20),
			q:    NewCoordinate(11, 20),
			want: earthRadiusKM * math.Pi / 180.0,
		},
		{
			name: "antipodal points",
			p:    NewCoordinate(0, 0),
			q:    NewCoordinate(0, 180),
			want: earthRadiusKM * math.Pi,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceBetween(tt.p, tt.q)
			assert.InDelta(t, tt.want, got, 1e-6)
			assert.False(t, math.IsNaN(got))
		})
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	pairs := [][2]Coordinate{
		{NewCoordinate(37.788353, -122.387695), NewCoordinate(37.829853, -122.294312)},
		{NewCoordinate(-33.86, 151.21), NewCoordinate(51.5, -0.12)},
		{NewCoordinate(89.9, 10), NewCoordinate(-89.9, -170)},
	}

	for _, pq := range pairs {
		d1 := DistanceBetween(pq[0], pq[1])
		d2 := DistanceBetween(pq[1], pq[0])
		assert.InEpsilon(t, d1, d2, 1e-9)
		assert.Greater(t, d1, 0.0)
	}
}

func TestGreatCircleCrossing(t *testing.T) {
	testCases := []struct {
		name       string
		a, b, c, d Coordinate
		want       bool
	}{
		{
			name: "cross near the origin",
			a:    NewCoordinate(-1, 0), b: NewCoordinate(1, 0),
			c: NewCoordinate(0, -1), d: NewCoordinate(0, 1),
			want: true,
		},
		{
			name: "shared endpoint",
			a:    NewCoordinate(0, 0), b: NewCoordinate(1, 0),
			c: NewCoordinate(0, 0), d: NewCoordinate(0, 1),
			want: false,
		},
		{
			name: "disjoint arcs",
			a:    NewCoordinate(0, 0), b: NewCoordinate(1, 0),
			c: NewCoordinate(0, 2), d: NewCoordinate(1, 2),
			want: false,
		},
		{
			name: "endpoint touches the other arc",
			a:    NewCoordinate(0, -1), b: NewCoordinate(0, 1),
			c: NewCoordinate(0, 0), d: NewCoordinate(1, 0),
			want: false,
		},
		{
			name: "collinear overlap",
			a:    NewCoordinate(0, -1), b: NewCoordinate(0, 1),
			c: NewCoordinate(0, 0), d: NewCoordinate(0, 2),
			want: false,
		},
		{
			name: "collinear disjoint",
			a:    NewCoordinate(0, -2), b: NewCoordinate(0, -1),
			c: NewCoordinate(0, 1), d: NewCoordinate(0, 2),
			want: false,
		},
		{
			name: "zero length arc",
			a:    NewCoordinate(0, 0), b: NewCoordinate(0, 0),
			c: NewCoordinate(-1, -1), d: NewCoordinate(1, 1),
			want: false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GreatCircleCrossing(tt.a, tt.b, tt.c, tt.d))
		})
	}
}

func TestPolylineFromCoords(t *testing.T) {
	// example from the encoded polyline algorithm format documentation
	got := PolylineFromCoords([]Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	})
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", got)
}
