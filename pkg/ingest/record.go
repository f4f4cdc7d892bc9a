package ingest

import (
	da "github.com/lintang-b-s/baybridges/pkg/datastructure"
	"github.com/lintang-b-s/baybridges/pkg/geo"
	"github.com/lintang-b-s/baybridges/pkg/util"
)

type Point struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

func (p Point) toCoordinate() geo.Coordinate {
	return geo.NewCoordinate(p.Lat, p.Lon)
}

// Record is one candidate bridge as read from the input.
type Record struct {
	ID     int64 `json:"id" validate:"gte=0"`
	PointA Point `json:"point_a"`
	PointB Point `json:"point_b"`
}

func NewRecord(id int64, latA, lonA, latB, lonB float64) Record {
	return Record{
		ID:     id,
		PointA: Point{Lat: latA, Lon: lonA},
		PointB: Point{Lat: latB, Lon: lonB},
	}
}

// CheckUniqueIDs. ids are the only way to tell bridges apart in the output.
func CheckUniqueIDs(records []Record) error {
	seen := make(map[int64]struct{}, len(records))
	for _, r := range records {
		if _, ok := seen[r.ID]; ok {
			return util.WrapErrorf(nil, util.ErrConflict, "duplicate bridge id %d", r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

// BuildBridges. one bridge per record, in record order.
func BuildBridges(records []Record) []*da.Bridge {
	bridges := make([]*da.Bridge, len(records))
	for i, r := range records {
		bridges[i] = da.NewBridge(r.ID, r.PointA.toCoordinate(), r.PointB.toCoordinate())
	}
	return bridges
}
