package controllers

import (
	da "github.com/lintang-b-s/baybridges/pkg/datastructure"
	"github.com/lintang-b-s/baybridges/pkg/geo"
	"github.com/lintang-b-s/baybridges/pkg/ingest"
	"github.com/lintang-b-s/baybridges/pkg/selector"
)

type selectBridgesRequest struct {
	Bridges []ingest.Record `json:"bridges" validate:"dive"`
}

type bridgeResponse struct {
	ID       int64   `json:"id"`
	LengthKM float64 `json:"length_km"`
	Polyline string  `json:"polyline"`
}

func newBridgeResponse(b *da.Bridge) bridgeResponse {
	a, z := b.GeodesicView()
	return bridgeResponse{
		ID:       b.GetID(),
		LengthKM: b.GetLength(),
		Polyline: geo.PolylineFromCoords([]geo.Coordinate{a, z}),
	}
}

type selectBridgesResponse struct {
	RetainedIDs  []int64          `json:"retained_ids"`
	DiscardedIDs []int64          `json:"discarded_ids"`
	Iterations   int              `json:"iterations"`
	Retained     []bridgeResponse `json:"retained"`
}

func NewSelectBridgesResponse(res *selector.Result) selectBridgesResponse {
	retained := make([]bridgeResponse, len(res.Retained))
	for i, b := range res.Retained {
		retained[i] = newBridgeResponse(b)
	}
	return selectBridgesResponse{
		RetainedIDs:  res.RetainedIDs(),
		DiscardedIDs: res.DiscardedIDs(),
		Iterations:   res.Iterations,
		Retained:     retained,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
