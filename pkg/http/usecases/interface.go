package usecases

import (
	da "github.com/lintang-b-s/baybridges/pkg/datastructure"
	"github.com/lintang-b-s/baybridges/pkg/selector"
)

type BridgeSelector interface {
	Select(bridges []*da.Bridge) *selector.Result
}
