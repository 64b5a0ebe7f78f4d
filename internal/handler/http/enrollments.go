// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-plus/models"
)

// getMyEnrollments lists enrollments for the email in the path. Any valid
// token may read them.
func (h *Handler) getMyEnrollments(w http.ResponseWriter, r *http.Request) {
	email, err := pathEmail(r, "email")
	if err != nil {
		writeError(w, r, "*Handler.getMyEnrollments", err)
		return
	}

	enrollments, err := h.services.EnrollmentService.FindEnrollments(r.Context(), email)
	if err != nil {
		writeError(w, r, "*Handler.getMyEnrollments", err)
		return
	}

	writeList(w, r, "*Handler.getMyEnrollments", enrollments)
}

func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	var enrollment models.Enrollment
	if !decodeBody(w, r, "*Handler.enroll", &enrollment) {
		return
	}

	result, err := h.services.EnrollmentService.Enroll(r.Context(), enrollment)
	if err != nil {
		writeError(w, r, "*Handler.enroll", err)
		return
	}

	writeResult(w, r, "*Handler.enroll", result)
}

func (h *Handler) getFeedbacks(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.services.FeedbackService.FindFeedbacks(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getFeedbacks", err)
		return
	}

	writeList(w, r, "*Handler.getFeedbacks", feedbacks)
}

func (h *Handler) createFeedback(w http.ResponseWriter, r *http.Request) {
	var feedback models.Feedback
	if !decodeBody(w, r, "*Handler.createFeedback", &feedback) {
		return
	}

	result, err := h.services.FeedbackService.CreateFeedback(r.Context(), feedback)
	if err != nil {
		writeError(w, r, "*Handler.createFeedback", err)
		return
	}

	writeResult(w, r, "*Handler.createFeedback", result)
}
