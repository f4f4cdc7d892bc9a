package selector

import (
	"github.com/lintang-b-s/baybridges/pkg"
	"github.com/lintang-b-s/baybridges/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewGreedySelectorFromConfig. selector configured from CROSSING_MODEL, USE_SPATIAL_INDEX and COUNT_WORKERS.
func NewGreedySelectorFromConfig(log *zap.Logger) (*GreedySelector, error) {
	model := pkg.GetCrossingModel(viper.GetString("CROSSING_MODEL"))
	if model == pkg.UNKNOWN_CROSSING {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "unknown crossing model %q, want planar or geodesic",
			viper.GetString("CROSSING_MODEL"))
	}

	return NewGreedySelector(log,
		WithCrossingModel(model),
		WithSpatialIndex(viper.GetBool("USE_SPATIAL_INDEX")),
		WithWorkers(viper.GetInt("COUNT_WORKERS")),
	), nil
}
