package selector

import (
	"time"

	"github.com/lintang-b-s/baybridges/pkg"
	"github.com/lintang-b-s/baybridges/pkg/concurrent"
	da "github.com/lintang-b-s/baybridges/pkg/datastructure"
	"github.com/lintang-b-s/baybridges/pkg/spatialindex"
	"go.uber.org/zap"
)

/*
GreedySelector. picks a subset of bridges in which no two bridges cross.

every pass recounts the crossings of each active bridge against the other active bridges, moves the bridges
without crossings to the retained set and then discards the bridge with the most crossings. when several
bridges share the highest count, the one with the greatest geodesic length is discarded (it is the most
expensive to build); among equal lengths the first one in input order goes.

this is a greedy heuristic: the retained set is crossing-free, but it is not guaranteed to be a
maximum-cardinality or minimum-total-length crossing-free subset. an exact answer needs a maximum independent
set on the intersection graph.

worst case O(n^3): at most n passes, each O(n^2) pair tests.
*/
type GreedySelector struct {
	log             *zap.Logger
	crossingModel   pkg.CrossingModel
	useSpatialIndex bool
	workers         int
}

type Option func(*GreedySelector)

func WithCrossingModel(model pkg.CrossingModel) Option {
	return func(gs *GreedySelector) {
		gs.crossingModel = model
	}
}

// WithSpatialIndex. only test pairs whose planar bounding boxes overlap. ignored for the geodesic model,
// great-circle arcs are not bounded by the box of their endpoints.
func WithSpatialIndex(use bool) Option {
	return func(gs *GreedySelector) {
		gs.useSpatialIndex = use
	}
}

// WithWorkers. number of goroutines used to count crossings, 1 keeps counting on the calling goroutine.
func WithWorkers(workers int) Option {
	return func(gs *GreedySelector) {
		if workers < 1 {
			workers = 1
		}
		gs.workers = workers
	}
}

func NewGreedySelector(log *zap.Logger, opts ...Option) *GreedySelector {
	gs := &GreedySelector{
		log:             log,
		crossingModel:   pkg.PLANAR_CROSSING,
		useSpatialIndex: false,
		workers:         1,
	}
	for _, opt := range opts {
		opt(gs)
	}
	return gs
}

func (gs *GreedySelector) spatialIndexEnabled() bool {
	return gs.useSpatialIndex && gs.crossingModel == pkg.PLANAR_CROSSING
}

// Select. run the selection over bridges. bridges is not modified. Result.Retained is ordered by ascending id.
func (gs *GreedySelector) Select(bridges []*da.Bridge) *Result {
	start := time.Now()

	active := make([]*da.Bridge, len(bridges))
	copy(active, bridges)

	result := &Result{
		Retained:  make([]*da.Bridge, 0, len(bridges)),
		Discarded: make([]*da.Bridge, 0),
		Trace:     make([]IterationStats, 0),
	}

	var index *spatialindex.Rtree
	if gs.spatialIndexEnabled() {
		index = spatialindex.NewRtree()
		index.Build(active, gs.log)
	}

	for len(active) > 0 {
		result.Iterations++
		stats := IterationStats{
			Iteration: result.Iterations,
			Active:    len(active),
			Discarded: -1,
		}

		crossings := gs.countCrossings(active, index)

		remaining := make([]*da.Bridge, 0, len(active))
		for _, b := range active {
			if crossings[b] == 0 {
				result.Retained = append(result.Retained, b)
				stats.Retained++
				if index != nil {
					index.Delete(b)
				}
				continue
			}
			remaining = append(remaining, b)
		}
		active = remaining

		if len(active) > 0 {
			victim, maxCrossings := mostCrossing(active, crossings)
			discarded := active[victim]

			stats.MaxCrossings = maxCrossings
			stats.Discarded = discarded.GetID()
			result.Discarded = append(result.Discarded, discarded)
			if index != nil {
				index.Delete(discarded)
			}
			active = append(active[:victim], active[victim+1:]...)
		}

		result.Trace = append(result.Trace, stats)
		gs.log.Debug("selection pass done",
			zap.Int("iteration", stats.Iteration),
			zap.Int("active", stats.Active),
			zap.Int("retained", stats.Retained),
			zap.Int("max_crossings", stats.MaxCrossings),
			zap.Int64("discarded_id", stats.Discarded))
	}

	SortByID(result.Retained)

	gs.log.Info("bridge selection finished",
		zap.Int("bridges", len(bridges)),
		zap.Int("retained", len(result.Retained)),
		zap.Int("discarded", len(result.Discarded)),
		zap.Int("iterations", result.Iterations),
		zap.String("crossing_model", gs.crossingModel.String()),
		zap.Duration("elapsed", time.Since(start)))

	return result
}

// mostCrossing. position in active of the bridge to discard and the highest crossing count.
func mostCrossing(active []*da.Bridge, crossings map[*da.Bridge]int) (int, int) {
	maxCrossings := -1
	for _, b := range active {
		if crossings[b] > maxCrossings {
			maxCrossings = crossings[b]
		}
	}

	victim := -1
	for i, b := range active {
		if crossings[b] != maxCrossings {
			continue
		}
		if victim == -1 || b.GetLength() > active[victim].GetLength() {
			victim = i
		}
	}
	return victim, maxCrossings
}

type rowCrossings struct {
	row      int
	partners []int
}

// countCrossings. fresh crossing count for every active bridge against the other active bridges.
// each unordered pair is tested once, a crossing adds one to both bridges.
func (gs *GreedySelector) countCrossings(active []*da.Bridge, index *spatialindex.Rtree) map[*da.Bridge]int {
	crossings := make(map[*da.Bridge]int, len(active))
	position := make(map[*da.Bridge]int, len(active))
	for i, b := range active {
		crossings[b] = 0
		position[b] = i
	}

	row := func(i int) rowCrossings {
		res := rowCrossings{row: i}
		b := active[i]
		if index != nil {
			for _, cand := range index.SearchOverlapping(b) {
				j, ok := position[cand]
				if !ok || j <= i {
					continue
				}
				if da.BridgesCross(b, cand, gs.crossingModel) {
					res.partners = append(res.partners, j)
				}
			}
			return res
		}

		for j := i + 1; j < len(active); j++ {
			if da.BridgesCross(b, active[j], gs.crossingModel) {
				res.partners = append(res.partners, j)
			}
		}
		return res
	}

	collect := func(res rowCrossings) {
		crossings[active[res.row]] += len(res.partners)
		for _, j := range res.partners {
			crossings[active[j]]++
		}
	}

	if gs.workers <= 1 {
		for i := range active {
			collect(row(i))
		}
		return crossings
	}

	rows := make([]int, len(active))
	for i := range rows {
		rows[i] = i
	}
	concurrent.Map(gs.workers, rows, row, collect)
	return crossings
}
