package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/baybridges/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/baybridges/pkg/ingest"
	"go.uber.org/zap"
)

const (
	maxBytesPerBridge = 512
	requestBodySlack  = 4096
)

type selectionAPI struct {
	selectionService SelectionService
	log              *zap.Logger
}

func New(selectionService SelectionService, log *zap.Logger) *selectionAPI {
	return &selectionAPI{
		selectionService: selectionService,
		log:              log,
	}
}

func (api *selectionAPI) Routes(group *helper.RouteGroup) {
	group.POST("/selectBridges", api.selectBridges)
}

func (api *selectionAPI) selectBridges(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request selectBridgesRequest
		err     error
	)
	if limit := api.maxBodyBytes(); limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}

	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			api.RequestTooLargeResponse(w, r, err)
			return
		}
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := ingest.Validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, err := api.selectionService.SelectBridges(request.Bridges)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewSelectBridgesResponse(res)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// maxBodyBytes. request body limit derived from the bridge cap, 0 disables it.
func (api *selectionAPI) maxBodyBytes() int64 {
	maxBridges := api.selectionService.MaxBridges()
	if maxBridges <= 0 {
		return 0
	}
	return int64(maxBridges)*maxBytesPerBridge + requestBodySlack
}
