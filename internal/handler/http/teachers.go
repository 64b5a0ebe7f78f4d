// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-plus/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) applyAsTeacher(w http.ResponseWriter, r *http.Request) {
	var application models.TeacherApplication
	if !decodeBody(w, r, "*Handler.applyAsTeacher", &application) {
		return
	}

	result, err := h.services.TeacherService.Apply(r.Context(), application)
	if err != nil {
		writeError(w, r, "*Handler.applyAsTeacher", err)
		return
	}

	writeResult(w, r, "*Handler.applyAsTeacher", result)
}

func (h *Handler) getApplications(w http.ResponseWriter, r *http.Request) {
	filter := models.TeacherFilter{
		Email:  r.URL.Query().Get("email"),
		Status: models.Status(r.URL.Query().Get("status")),
	}

	applications, err := h.services.TeacherService.FindApplications(r.Context(), filter)
	if err != nil {
		writeError(w, r, "*Handler.getApplications", err)
		return
	}

	writeList(w, r, "*Handler.getApplications", applications)
}

func (h *Handler) getApplication(w http.ResponseWriter, r *http.Request) {
	email, err := pathEmail(r, "email")
	if err != nil {
		writeError(w, r, "*Handler.getApplication", err)
		return
	}

	application, err := h.services.TeacherService.GetApplication(r.Context(), email)
	if err != nil {
		writeError(w, r, "*Handler.getApplication", err)
		return
	}

	writeResult(w, r, "*Handler.getApplication", application)
}

func (h *Handler) setApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var update models.StatusUpdate
	if !decodeBody(w, r, "*Handler.setApplicationStatus", &update) {
		return
	}

	result, err := h.services.TeacherService.SetApplicationStatus(r.Context(), chi.URLParam(r, "id"), update.Status)
	if err != nil {
		writeError(w, r, "*Handler.setApplicationStatus", err)
		return
	}

	writeResult(w, r, "*Handler.setApplicationStatus", result)
}
