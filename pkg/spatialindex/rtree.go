package spatialindex

import (
	da "github.com/lintang-b-s/baybridges/pkg/datastructure"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree indexes the planar bounding boxes of bridges.
// two segments can only properly cross if their boxes overlap, so a box search returns a superset of the
// bridges that may cross the query bridge.
type Rtree struct {
	tr *rtree.RTreeG[*da.Bridge]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[*da.Bridge]
	return &Rtree{
		tr: &tr,
	}
}

func boxOf(b *da.Bridge) ([2]float64, [2]float64) {
	bb := b.PlanarBoundingBox()
	minLat, minLon := bb.GetMinCoord()
	maxLat, maxLon := bb.GetMaxCoord()
	return [2]float64{minLon, minLat}, [2]float64{maxLon, maxLat}
}

// Build. index every bridge in bridges.
func (rt *Rtree) Build(bridges []*da.Bridge, log *zap.Logger) {
	log.Debug("Building R-tree spatial index...", zap.Int("bridges", len(bridges)))
	for _, b := range bridges {
		rt.Insert(b)
	}
	log.Debug("R-tree spatial index built.")
}

func (rt *Rtree) Insert(b *da.Bridge) {
	min, max := boxOf(b)
	rt.tr.Insert(min, max, b)
}

func (rt *Rtree) Delete(b *da.Bridge) {
	min, max := boxOf(b)
	rt.tr.Delete(min, max, b)
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchOverlapping. all indexed bridges whose box overlaps the box of b (b itself included when indexed).
// safe for concurrent use as long as nothing is inserted or deleted meanwhile.
func (rt *Rtree) SearchOverlapping(b *da.Bridge) []*da.Bridge {
	min, max := boxOf(b)
	results := make([]*da.Bridge, 0, 8)
	rt.tr.Search(min, max,
		func(min, max [2]float64, data *da.Bridge) bool {
			results = append(results, data)
			return true
		})
	return results
}
