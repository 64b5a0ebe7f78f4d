// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"
	maxTraceIDLen = 64
)

// withTraceID tags the request logger and the response with a trace id.
// A caller-supplied id is kept only if it is a short token of letters,
// digits, '-', '_' or '.'; anything else is replaced so it cannot forge
// log lines.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, inherited := traceIDFromRequest(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		if !inherited && r.Header.Get(traceIDHeader) != "" {
			l.Debug().Int("len", len(r.Header.Get(traceIDHeader))).Msg("replaced malformed trace id")
		}

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

// traceIDFromRequest returns the incoming trace id when it is usable, or a
// fresh UUID. The flag reports whether the incoming id was kept.
func traceIDFromRequest(r *http.Request) (string, bool) {
	if id := r.Header.Get(traceIDHeader); validTraceID(id) {
		return id, true
	}
	return uuid.NewString(), false
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
