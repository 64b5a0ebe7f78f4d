// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/course-plus/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getCourses(w http.ResponseWriter, r *http.Request) {
	filter := models.CourseFilter{
		Status: models.Status(r.URL.Query().Get("status")),
		Email:  r.URL.Query().Get("email"),
	}

	courses, err := h.services.CourseService.FindCourses(r.Context(), filter)
	if err != nil {
		writeError(w, r, "*Handler.getCourses", err)
		return
	}

	writeList(w, r, "*Handler.getCourses", courses)
}

func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	var course models.Course
	if !decodeBody(w, r, "*Handler.createCourse", &course) {
		return
	}

	result, err := h.services.CourseService.CreateCourse(r.Context(), course)
	if err != nil {
		writeError(w, r, "*Handler.createCourse", err)
		return
	}

	writeResult(w, r, "*Handler.createCourse", result)
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.services.CourseService.GetCourse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getCourse", err)
		return
	}

	writeResult(w, r, "*Handler.getCourse", course)
}

func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	var update models.CourseUpdate
	if !decodeBody(w, r, "*Handler.updateCourse", &update) {
		return
	}

	owner, err := h.courseOwner(r)
	if err != nil {
		writeError(w, r, "*Handler.updateCourse", err)
		return
	}

	result, err := h.services.CourseService.UpdateCourse(r.Context(), chi.URLParam(r, "id"), owner, update)
	if err != nil {
		writeError(w, r, "*Handler.updateCourse", err)
		return
	}

	writeResult(w, r, "*Handler.updateCourse", result)
}

func (h *Handler) setCourseStatus(w http.ResponseWriter, r *http.Request) {
	var update models.StatusUpdate
	if !decodeBody(w, r, "*Handler.setCourseStatus", &update) {
		return
	}

	result, err := h.services.CourseService.SetCourseStatus(r.Context(), chi.URLParam(r, "id"), update.Status)
	if err != nil {
		writeError(w, r, "*Handler.setCourseStatus", err)
		return
	}

	writeResult(w, r, "*Handler.setCourseStatus", result)
}

func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	owner, err := h.courseOwner(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteCourse", err)
		return
	}

	result, err := h.services.CourseService.DeleteCourse(r.Context(), chi.URLParam(r, "id"), owner)
	if err != nil {
		writeError(w, r, "*Handler.deleteCourse", err)
		return
	}

	writeResult(w, r, "*Handler.deleteCourse", result)
}

func (h *Handler) getPopularCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.services.CourseService.PopularCourses(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getPopularCourses", err)
		return
	}

	writeList(w, r, "*Handler.getPopularCourses", courses)
}

func (h *Handler) incrementEnrollment(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.CourseService.IncrementEnrollment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.incrementEnrollment", err)
		return
	}

	writeResult(w, r, "*Handler.incrementEnrollment", result)
}

func (h *Handler) getEnrollmentCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.CourseService.EnrollmentCount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getEnrollmentCount", err)
		return
	}

	writeResult(w, r, "*Handler.getEnrollmentCount", count)
}

func (h *Handler) getCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.services.DashboardService.Counts(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getCounts", err)
		return
	}

	writeResult(w, r, "*Handler.getCounts", counts)
}
