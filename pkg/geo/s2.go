package geo

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

func toS2Point(c Coordinate) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat, c.Lon))
}

// onGreatCircle. true if p lies exactly on the great circle through a and b.
func onGreatCircle(p, a, b s2.Point) bool {
	pa := r3.PreciseVectorFromVector(a.Vector)
	pb := r3.PreciseVectorFromVector(b.Vector)
	pp := r3.PreciseVectorFromVector(p.Vector)
	return pa.Cross(pb).Dot(pp).Sign() == 0
}

// GreatCircleCrossing. reports whether the great-circle arcs ab and cd cross at a point interior to both.
// shared vertices, zero-length arcs, touching endpoints and collinear arcs never count as a crossing.
func GreatCircleCrossing(a, b, c, d Coordinate) bool {
	if a == b || c == d {
		return false
	}
	pa, pb, pc, pd := toS2Point(a), toS2Point(b), toS2Point(c), toS2Point(d)

	// CrossingSign breaks exact ties by symbolic perturbation.
	if onGreatCircle(pc, pa, pb) || onGreatCircle(pd, pa, pb) ||
		onGreatCircle(pa, pc, pd) || onGreatCircle(pb, pc, pd) {
		return false
	}
	return s2.CrossingSign(pa, pb, pc, pd) == s2.Cross
}
