package datastructure

import "math"

type BoundingBox struct {
	minLat, minLon float64
	maxLat, maxLon float64
}

func NewBoundingBox(minLat, minLon, maxLat, maxLon float64) *BoundingBox {
	return &BoundingBox{minLat: minLat,
		minLon: minLon,
		maxLat: maxLat,
		maxLon: maxLon}
}

// NewSegmentBoundingBox. smallest bounding box containing the segment between the two coordinates.
func NewSegmentBoundingBox(latA, lonA, latB, lonB float64) *BoundingBox {
	return NewBoundingBox(math.Min(latA, latB), math.Min(lonA, lonB),
		math.Max(latA, latB), math.Max(lonA, lonB))
}

func (b *BoundingBox) GetMinCoord() (float64, float64) {
	return b.minLat, b.minLon
}

func (b *BoundingBox) GetMaxCoord() (float64, float64) {
	return b.maxLat, b.maxLon
}

func (b *BoundingBox) GetMinLat() float64 {
	return b.minLat
}

func (b *BoundingBox) GetMinLon() float64 {
	return b.minLon
}

func (b *BoundingBox) GetMaxLat() float64 {
	return b.maxLat
}

func (b *BoundingBox) GetMaxLon() float64 {
	return b.maxLon
}

// Overlaps. closed boxes, touching edges count as overlap.
func (b *BoundingBox) Overlaps(o *BoundingBox) bool {
	return b.minLat <= o.maxLat && o.minLat <= b.maxLat &&
		b.minLon <= o.maxLon && o.minLon <= b.maxLon
}
