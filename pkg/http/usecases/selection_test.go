package usecases

import (
	"testing"

	"github.com/lintang-b-s/baybridges/pkg/ingest"
	"github.com/lintang-b-s/baybridges/pkg/selector"
	"github.com/lintang-b-s/baybridges/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSelectBridges(t *testing.T) {
	svc := NewSelectionService(zap.NewNop(), selector.NewGreedySelector(zap.NewNop()), 3)

	records := []ingest.Record{
		ingest.NewRecord(3, 2, 0, 2, 10),
		ingest.NewRecord(2, -1, 5, 3, 5),
		ingest.NewRecord(1, 0, 0, 0, 10),
	}

	res, err := svc.SelectBridges(records)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, res.RetainedIDs())
	assert.Equal(t, []int64{2}, res.DiscardedIDs())
}

func TestSelectBridgesRejects(t *testing.T) {
	svc := NewSelectionService(zap.NewNop(), selector.NewGreedySelector(zap.NewNop()), 2)

	_, err := svc.SelectBridges([]ingest.Record{
		ingest.NewRecord(1, 0, 0, 0, 1),
		ingest.NewRecord(2, 1, 0, 1, 1),
		ingest.NewRecord(3, 2, 0, 2, 1),
	})
	require.Error(t, err)
	assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))

	_, err = svc.SelectBridges([]ingest.Record{
		ingest.NewRecord(1, 0, 0, 0, 1),
		ingest.NewRecord(1, 1, 0, 1, 1),
	})
	require.Error(t, err)
	assert.Equal(t, util.ErrConflict, util.ErrorCode(err))
}
