package controllers

import (
	"github.com/lintang-b-s/baybridges/pkg/ingest"
	"github.com/lintang-b-s/baybridges/pkg/selector"
)

type SelectionService interface {
	SelectBridges(records []ingest.Record) (*selector.Result, error)
	MaxBridges() int
}
