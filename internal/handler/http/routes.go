// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"

	"github.com/MKhiriev/course-plus/internal/app"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(handlers.ProxyHeaders)
	router.Use(h.withCORS())
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/version", h.getServerVersion)
		r.Post("/jwt", h.issueToken)

		r.Post("/users/{email}", h.createUser)

		r.Get("/courses", h.getCourses)
		r.Post("/courses", h.createCourse)
		r.Get("/courses/{id}", h.getCourse)
		r.Get("/popular-courses", h.getPopularCourses)
		r.Patch("/courseForEnrollId/{id}", h.incrementEnrollment)
		r.Get("/course-enrollment-count/{id}", h.getEnrollmentCount)
		r.Get("/counts", h.getCounts)

		r.Get("/feedbacks", h.getFeedbacks)
		r.Post("/create-payment-intent", h.createPaymentIntent)
	})

	// routes for any authenticated caller
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Patch("/courses/{id}", h.updateCourse)
		r.Delete("/courses/{id}", h.deleteCourse)

		r.Post("/teachers", h.applyAsTeacher)

		r.Get("/assignments/{courseId}", h.getAssignments)
		r.Post("/assignments", h.createAssignment)
		r.Patch("/assignments/submit/{id}", h.submitAssignment)
		r.Get("/submissions/{assignmentId}", h.getSubmissions)
		r.Post("/submissions", h.createSubmission)

		r.Get("/myEnrollCourse/{email}", h.getMyEnrollments)
		r.Post("/enrollments", h.enroll)
		r.Post("/feedbacks", h.createFeedback)
		r.Post("/payments", h.recordPayment)

		// caller must be the user named in the path
		r.With(h.selfOnly("email")).Get("/users/admin/{email}", h.checkAdmin)
		r.With(h.selfOnly("email")).Get("/users/teacher/{email}", h.checkTeacher)
		r.With(h.selfOnly("email")).Get("/users/{email}", h.getUser)
		r.With(h.selfOnly("email")).Get("/teachers/{email}", h.getApplication)
		r.With(h.selfOnly("email")).Get("/payments/{email}", h.getPayments)

		// admin only
		r.Group(func(r chi.Router) {
			r.Use(h.adminOnly)

			r.Get("/users", h.getUsers)
			r.Patch("/user/admin/{id}", h.makeAdmin)
			r.Patch("/users/teacher/{email}", h.makeTeacher)
			r.Patch("/courses/status/{id}", h.setCourseStatus)
			r.Get("/teachers", h.getApplications)
			r.Patch("/teachers/status/{id}", h.setApplicationStatus)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(app.MsgServerRunning))
}
