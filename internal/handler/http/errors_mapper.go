// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/course-plus/internal/adapter"
	"github.com/MKhiriev/course-plus/internal/app"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/service"
	"github.com/MKhiriev/course-plus/internal/store"
	"github.com/MKhiriev/course-plus/internal/utils"
	"github.com/MKhiriev/course-plus/internal/validators"
)

var errorStatusMap = map[error]int{
	utils.ErrEmptyBody:             http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	validators.ErrInvalidInput:     http.StatusBadRequest,
	store.ErrInvalidID:             http.StatusBadRequest,
	adapter.ErrInvalidAmount:       http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrNotFound:          http.StatusNotFound,
	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrAlreadyExists:     http.StatusConflict,

	store.ErrStoreUnavailable:     http.StatusServiceUnavailable,
	adapter.ErrGatewayUnavailable: http.StatusBadGateway,
	adapter.ErrGatewayRejected:    http.StatusBadGateway,

	store.ErrBuildingQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Client errors carry
// the error text; server errors only the status text.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}

// decodeBody decodes the JSON body into dst, answering 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, funcName string, dst any) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}

// writeList answers with a JSON array, never null.
func writeList[T any](w http.ResponseWriter, r *http.Request, funcName string, items []T) {
	if items == nil {
		items = []T{}
	}
	writeResult(w, r, funcName, items)
}

func writeResult(w http.ResponseWriter, r *http.Request, funcName string, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}
