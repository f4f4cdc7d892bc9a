package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersect(t *testing.T) {
	ps := []*Point{

		NewPoint(2, 2),
		NewPoint(4, 3),
		NewPoint(2, 4),
		NewPoint(6, 6),
		NewPoint(2, 6),
		NewPoint(6, 5),
		NewPoint(8, 6),
		NewPoint(4, 5),
	}

	testCases := []struct {
		name string
		p1   *Point
		p2   *Point
		p3   *Point
		p4   *Point
		want bool
	}{

		{
			name: "proper crossing",
			p1:   ps[0],
			p2:   ps[6],
			p3:   ps[1],
			p4:   ps[7],
			want: true,
		},
		{
			name: "parallel segments",
			p1:   ps[0],
			p2:   ps[3],
			p3:   NewPoint(3, 2),
			p4:   NewPoint(7, 6),
			want: false,
		},
		{
			name: "shared endpoint",
			p1:   ps[0],
			p2:   ps[1],
			p3:   ps[0],
			p4:   ps[2],
			want: false,
		},
		{
			name: "endpoint touches the other segment",
			p1:   NewPoint(0, 0),
			p2:   NewPoint(4, 0),
			p3:   NewPoint(2, 0),
			p4:   NewPoint(2, 3),
			want: false,
		},
		{
			name: "collinear overlap",
			p1:   NewPoint(0, 0),
			p2:   NewPoint(4, 4),
			p3:   NewPoint(2, 2),
			p4:   NewPoint(6, 6),
			want: false,
		},
		{
			name: "lines cross outside the segments",
			p1:   NewPoint(0, 0),
			p2:   NewPoint(1, 1),
			p3:   NewPoint(3, 0),
			p4:   NewPoint(2, 1),
			want: false,
		},
		{
			name: "zero length segment on the other segment",
			p1:   NewPoint(1, 1),
			p2:   NewPoint(1, 1),
			p3:   NewPoint(0, 0),
			p4:   NewPoint(2, 2),
			want: false,
		},
		{
			name: "geographic coordinates crossing",
			p1:   NewPoint(-122.387695, 37.788353),
			p2:   NewPoint(-122.294312, 37.829853),
			p3:   NewPoint(-122.340000, 37.850000),
			p4:   NewPoint(-122.340000, 37.780000),
			want: true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersect(tt.p1, tt.p2, tt.p3, tt.p4))
			// argument order must not matter
			assert.Equal(t, tt.want, Intersect(tt.p2, tt.p1, tt.p3, tt.p4))
			assert.Equal(t, tt.want, Intersect(tt.p3, tt.p4, tt.p1, tt.p2))
		})
	}
}

func TestOrientation(t *testing.T) {
	p := NewPoint(0, 0)
	q := NewPoint(4, 0)

	assert.True(t, ccw(p, q, NewPoint(2, 1)))
	assert.True(t, cw(p, q, NewPoint(2, -1)))
	assert.True(t, collinear(p, q, NewPoint(8, 0)))
	// tiny offsets must keep their sign
	assert.True(t, ccw(p, q, NewPoint(2, 1e-12)))
}

func TestBoundingBoxOverlaps(t *testing.T) {
	a := NewSegmentBoundingBox(0, 0, 2, 2)
	b := NewSegmentBoundingBox(2, 2, 1, 3)
	c := NewSegmentBoundingBox(3, 3, 4, 4)

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
	assert.Equal(t, 1.0, b.GetMinLat())
	assert.Equal(t, 3.0, b.GetMaxLon())
}
