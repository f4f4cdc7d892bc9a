package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lintang-b-s/baybridges/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

func (api *selectionAPI) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func (api *selectionAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	var resp errorResponse
	resp.Error.Code = http.StatusText(status)
	resp.Error.Message = message

	if err := api.writeJSON(w, status, envelope{"error": resp.Error}, nil); err != nil {
		api.log.Error("write error response", zap.Error(err), zap.String("path", r.URL.Path))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *selectionAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *selectionAPI) RequestTooLargeResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusRequestEntityTooLarge, err.Error())
}

func (api *selectionAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error", zap.Error(err), zap.String("method", r.Method), zap.String("path", r.URL.Path))
	api.errorResponse(w, r, http.StatusInternalServerError, util.MessageInternalServerError)
}

// getStatusCode. map the util.Error code of err to an http response.
func (api *selectionAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	code := util.ErrorCode(err)
	switch {
	case errors.Is(code, util.ErrBadParamInput):
		api.errorResponse(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(code, util.ErrConflict):
		api.errorResponse(w, r, http.StatusConflict, err.Error())
	case errors.Is(code, util.ErrNotFound):
		api.errorResponse(w, r, http.StatusNotFound, err.Error())
	default:
		api.ServerErrorResponse(w, r, err)
	}
}
