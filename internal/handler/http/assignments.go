// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-plus/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.services.AssignmentService.FindAssignments(r.Context(), chi.URLParam(r, "courseId"))
	if err != nil {
		writeError(w, r, "*Handler.getAssignments", err)
		return
	}

	writeList(w, r, "*Handler.getAssignments", assignments)
}

func (h *Handler) createAssignment(w http.ResponseWriter, r *http.Request) {
	var assignment models.Assignment
	if !decodeBody(w, r, "*Handler.createAssignment", &assignment) {
		return
	}

	result, err := h.services.AssignmentService.CreateAssignment(r.Context(), assignment)
	if err != nil {
		writeError(w, r, "*Handler.createAssignment", err)
		return
	}

	writeResult(w, r, "*Handler.createAssignment", result)
}

func (h *Handler) submitAssignment(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.AssignmentService.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.submitAssignment", err)
		return
	}

	writeResult(w, r, "*Handler.submitAssignment", result)
}

func (h *Handler) getSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.services.SubmissionService.FindSubmissions(r.Context(), chi.URLParam(r, "assignmentId"))
	if err != nil {
		writeError(w, r, "*Handler.getSubmissions", err)
		return
	}

	writeList(w, r, "*Handler.getSubmissions", submissions)
}

func (h *Handler) createSubmission(w http.ResponseWriter, r *http.Request) {
	var submission models.Submission
	if !decodeBody(w, r, "*Handler.createSubmission", &submission) {
		return
	}

	result, err := h.services.SubmissionService.CreateSubmission(r.Context(), submission)
	if err != nil {
		writeError(w, r, "*Handler.createSubmission", err)
		return
	}

	writeResult(w, r, "*Handler.createSubmission", result)
}
