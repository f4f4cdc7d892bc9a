package selector

import (
	"sort"

	"github.com/lintang-b-s/baybridges/pkg/datastructure"
)

// IterationStats describes one pass of the selection loop.
type IterationStats struct {
	Iteration    int
	Active       int   // active bridges at the start of the pass
	Retained     int   // bridges moved to the retained set in this pass
	MaxCrossings int   // highest crossing count left after extraction, 0 if none
	Discarded    int64 // id of the bridge removed in this pass, -1 if none
}

type Result struct {
	Retained   []*datastructure.Bridge // ascending id
	Discarded  []*datastructure.Bridge // removal order
	Iterations int
	Trace      []IterationStats
}

func (r *Result) RetainedIDs() []int64 {
	return ids(r.Retained)
}

func (r *Result) DiscardedIDs() []int64 {
	return ids(r.Discarded)
}

func ids(bridges []*datastructure.Bridge) []int64 {
	res := make([]int64, len(bridges))
	for i, b := range bridges {
		res[i] = b.GetID()
	}
	return res
}

// SortByID. sort bridges by ascending numeric id, equal ids keep their relative order.
func SortByID(bridges []*datastructure.Bridge) {
	sort.SliceStable(bridges, func(i, j int) bool {
		return bridges[i].GetID() < bridges[j].GetID()
	})
}
