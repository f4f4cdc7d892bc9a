package datastructure

import (
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/bigxy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// Point is a planar (x, y) point.
type Point struct {
	x, y float64
}

func NewPoint(x, y float64) *Point {
	return &Point{x, y}
}

func (p *Point) GetX() float64 {
	return p.x
}

func (p *Point) GetY() float64 {
	return p.y
}

func (p *Point) coord() geom.Coord {
	return geom.Coord{p.x, p.y}
}

// dir. orientation of point r relative to the directed line pq.
// evaluated exactly, a collinear r is never reported as left or right because of rounding.
func dir(p, q, r *Point) orientation.Type {
	return bigxy.OrientationIndex(p.coord(), q.coord(), r.coord())
}

// counterclockwise test
// returns true if point r is on the left side of line pq
func ccw(p, q, r *Point) bool {
	return dir(p, q, r) == orientation.CounterClockwise
}

func cw(p, q, r *Point) bool {
	return dir(p, q, r) == orientation.Clockwise
}

// returns true if point r is on the same line as the line pq
func collinear(p, q, r *Point) bool {
	return dir(p, q, r) == orientation.Collinear
}

// Intersect. check wether open line segments (ab) and (pq) properly cross.
// p and q must lie strictly on opposite sides of ab, and a and b strictly on opposite sides of pq.
// shared endpoints, an endpoint touching the other segment, collinear overlap and zero-length segments
// are all non-intersecting.
func Intersect(a, b, p, q *Point) bool {
	if collinear(a, b, p) || collinear(a, b, q) {
		return false
	}

	if collinear(p, q, a) || collinear(p, q, b) {
		return false
	}

	if ccw(a, b, p) == ccw(a, b, q) {
		return false
	}
	if ccw(p, q, a) == ccw(p, q, b) {
		return false
	}

	return true
}
