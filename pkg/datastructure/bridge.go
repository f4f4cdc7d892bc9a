package datastructure

import (
	"github.com/lintang-b-s/baybridges/pkg"
	"github.com/lintang-b-s/baybridges/pkg/geo"
)

// Bridge is a candidate segment between two geographic endpoints.
// endpoints and length never change after NewBridge.
type Bridge struct {
	id     int64
	pointA geo.Coordinate
	pointB geo.Coordinate
	length float64 // km
}

func NewBridge(id int64, pointA, pointB geo.Coordinate) *Bridge {
	return &Bridge{
		id:     id,
		pointA: pointA,
		pointB: pointB,
		length: geo.DistanceBetween(pointA, pointB),
	}
}

func (b *Bridge) GetID() int64 {
	return b.id
}

func (b *Bridge) GetPointA() geo.Coordinate {
	return b.pointA
}

func (b *Bridge) GetPointB() geo.Coordinate {
	return b.pointB
}

// GetLength. geodesic length in km
func (b *Bridge) GetLength() float64 {
	return b.length
}

// PlanarView. endpoints as flat (x=lon, y=lat) points, used by the planar crossing test.
func (b *Bridge) PlanarView() (*Point, *Point) {
	return NewPoint(b.pointA.Lon, b.pointA.Lat), NewPoint(b.pointB.Lon, b.pointB.Lat)
}

// GeodesicView. endpoints as points on the sphere, used for length and the geodesic crossing test.
func (b *Bridge) GeodesicView() (geo.Coordinate, geo.Coordinate) {
	return b.pointA, b.pointB
}

// PlanarBoundingBox. bounding box of the planar view.
func (b *Bridge) PlanarBoundingBox() *BoundingBox {
	return NewSegmentBoundingBox(b.pointA.Lat, b.pointA.Lon, b.pointB.Lat, b.pointB.Lon)
}

// BridgesCross. whether p and q properly cross under the given crossing model.
func BridgesCross(p, q *Bridge, model pkg.CrossingModel) bool {
	switch model {
	case pkg.GEODESIC_CROSSING:
		pa, pb := p.GeodesicView()
		qa, qb := q.GeodesicView()
		return geo.GreatCircleCrossing(pa, pb, qa, qb)
	default:
		pa, pb := p.PlanarView()
		qa, qb := q.PlanarView()
		return Intersect(pa, pb, qa, qb)
	}
}
