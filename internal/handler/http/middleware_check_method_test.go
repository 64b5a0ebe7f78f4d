// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	router.Get("/courses", ok)
	router.Post("/courses", ok)
	router.Get("/feedbacks", ok)
	router.Post("/feedbacks", ok)
	router.Patch("/courses/{id}", ok)
	router.Get("/users", ok)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "registered GET", method: http.MethodGet, path: "/courses", wantStatus: http.StatusOK},
		{name: "registered POST", method: http.MethodPost, path: "/feedbacks", wantStatus: http.StatusOK},
		{name: "registered param route", method: http.MethodPatch, path: "/courses/c1", wantStatus: http.StatusOK},
		{name: "PUT on static route", method: http.MethodPut, path: "/courses", wantStatus: http.StatusNotFound},
		{name: "DELETE on static route", method: http.MethodDelete, path: "/users", wantStatus: http.StatusNotFound},
		{name: "PUT on param route", method: http.MethodPut, path: "/courses/c1", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}
