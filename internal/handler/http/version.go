// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
)

type versionResponse struct {
	Version string `json:"version"`
}

// getServerVersion answers in plain text unless the client asks for JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())
	w.Header().Set("Cache-Control", "no-store")

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeResult(w, r, "*Handler.getServerVersion", versionResponse{Version: version})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(version))
}
