package spatialindex

import (
	"sort"
	"testing"

	da "github.com/lintang-b-s/baybridges/pkg/datastructure"
	"github.com/lintang-b-s/baybridges/pkg/geo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func sortedIDs(bridges []*da.Bridge) []int64 {
	ids := make([]int64, len(bridges))
	for i, b := range bridges {
		ids[i] = b.GetID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestRtreeSearchOverlapping(t *testing.T) {
	bridges := []*da.Bridge{
		da.NewBridge(1, geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 10)),
		da.NewBridge(2, geo.NewCoordinate(-1, 5), geo.NewCoordinate(3, 5)),
		da.NewBridge(3, geo.NewCoordinate(2, 0), geo.NewCoordinate(2, 10)),
		da.NewBridge(4, geo.NewCoordinate(40, 40), geo.NewCoordinate(41, 41)),
	}

	rt := NewRtree()
	rt.Build(bridges, zap.NewNop())
	assert.Equal(t, 4, rt.Len())

	assert.Equal(t, []int64{1, 2, 3}, sortedIDs(rt.SearchOverlapping(bridges[1])))
	assert.Equal(t, []int64{4}, sortedIDs(rt.SearchOverlapping(bridges[3])))

	rt.Delete(bridges[0])
	assert.Equal(t, 3, rt.Len())
	assert.Equal(t, []int64{2, 3}, sortedIDs(rt.SearchOverlapping(bridges[1])))
}

func TestRtreeDeleteKeepsEqualBoxes(t *testing.T) {
	a := da.NewBridge(1, geo.NewCoordinate(0, 0), geo.NewCoordinate(1, 1))
	b := da.NewBridge(2, geo.NewCoordinate(0, 0), geo.NewCoordinate(1, 1))

	rt := NewRtree()
	rt.Insert(a)
	rt.Insert(b)
	rt.Delete(a)

	assert.Equal(t, []int64{2}, sortedIDs(rt.SearchOverlapping(b)))
}
