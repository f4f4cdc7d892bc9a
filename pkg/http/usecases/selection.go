package usecases

import (
	"github.com/lintang-b-s/baybridges/pkg/ingest"
	"github.com/lintang-b-s/baybridges/pkg/selector"
	"github.com/lintang-b-s/baybridges/pkg/util"
	"go.uber.org/zap"
)

type SelectionService struct {
	log        *zap.Logger
	selector   BridgeSelector
	maxBridges int
}

func NewSelectionService(log *zap.Logger, selector BridgeSelector, maxBridges int) *SelectionService {
	return &SelectionService{
		log:        log,
		selector:   selector,
		maxBridges: maxBridges,
	}
}

// MaxBridges. largest accepted request size, 0 means unlimited.
func (ss *SelectionService) MaxBridges() int {
	return ss.maxBridges
}

// SelectBridges. run the selection over already validated records.
func (ss *SelectionService) SelectBridges(records []ingest.Record) (*selector.Result, error) {
	if ss.maxBridges > 0 && len(records) > ss.maxBridges {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "too many bridges: %d, at most %d are accepted", len(records), ss.maxBridges)
	}
	if err := ingest.CheckUniqueIDs(records); err != nil {
		return nil, err
	}

	bridges := ingest.BuildBridges(records)
	res := ss.selector.Select(bridges)
	ss.log.Debug("bridges selected", zap.Int("requested", len(records)), zap.Int("retained", len(res.Retained)))
	return res, nil
}
