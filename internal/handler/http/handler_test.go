// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/course-plus/internal/adapter"
	"github.com/MKhiriev/course-plus/internal/config"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/mock"
	"github.com/MKhiriev/course-plus/internal/service"
	"github.com/MKhiriev/course-plus/internal/store"
	"github.com/MKhiriev/course-plus/internal/utils"
	"github.com/MKhiriev/course-plus/internal/validators"
	"github.com/MKhiriev/course-plus/models"
)

// mockedServices holds one gomock double per service the handler calls.
type mockedServices struct {
	auth        *mock.MockAuthService
	users       *mock.MockUserService
	courses     *mock.MockCourseService
	teachers    *mock.MockTeacherService
	assignments *mock.MockAssignmentService
	submissions *mock.MockSubmissionService
	enrollments *mock.MockEnrollmentService
	feedbacks   *mock.MockFeedbackService
	payments    *mock.MockPaymentService
	dashboard   *mock.MockDashboardService
	appInfo     *mock.MockAppInfoService
}

func newMockedHandler(t *testing.T) (*Handler, *mockedServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &mockedServices{
		auth:        mock.NewMockAuthService(ctrl),
		users:       mock.NewMockUserService(ctrl),
		courses:     mock.NewMockCourseService(ctrl),
		teachers:    mock.NewMockTeacherService(ctrl),
		assignments: mock.NewMockAssignmentService(ctrl),
		submissions: mock.NewMockSubmissionService(ctrl),
		enrollments: mock.NewMockEnrollmentService(ctrl),
		feedbacks:   mock.NewMockFeedbackService(ctrl),
		payments:    mock.NewMockPaymentService(ctrl),
		dashboard:   mock.NewMockDashboardService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:       m.auth,
		UserService:       m.users,
		CourseService:     m.courses,
		TeacherService:    m.teachers,
		AssignmentService: m.assignments,
		SubmissionService: m.submissions,
		EnrollmentService: m.enrollments,
		FeedbackService:   m.feedbacks,
		PaymentService:    m.payments,
		DashboardService:  m.dashboard,
		AppInfoService:    m.appInfo,
	}

	return NewHandler(services, config.Server{}, logger.Nop()), m
}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	cfg := config.Server{AllowedOrigins: []string{"https://course-plus.example"}}

	h := NewHandler(services, cfg, logger.Nop())

	assert.Same(t, services, h.services)
	assert.Equal(t, cfg, h.cfg)
	assert.NotNil(t, h.logger)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty body", err: utils.ErrEmptyBody, want: http.StatusBadRequest},
		{name: "validation failure", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "invalid id", err: fmt.Errorf("get course: %w", store.ErrInvalidID), want: http.StatusBadRequest},
		{name: "invalid amount", err: adapter.ErrInvalidAmount, want: http.StatusBadRequest},
		{name: "expired token", err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{name: "malformed path email", err: fmt.Errorf("%w: malformed email", service.ErrInvalidDataProvided), want: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("wrapped: %w", store.ErrNotFound), want: http.StatusNotFound},
		{name: "duplicate user", err: store.ErrUserAlreadyExists, want: http.StatusConflict},
		{name: "duplicate document", err: store.ErrAlreadyExists, want: http.StatusConflict},
		{name: "store down", err: store.ErrStoreUnavailable, want: http.StatusServiceUnavailable},
		{name: "gateway down", err: adapter.ErrGatewayUnavailable, want: http.StatusBadGateway},
		{name: "gateway rejected", err: fmt.Errorf("%w: card declined", adapter.ErrGatewayRejected), want: http.StatusBadGateway},
		{name: "query failure", err: store.ErrExecutingQuery, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesServerErrorText(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/courses", nil), "test", fmt.Errorf("%w: pq: secret detail", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret detail")
}

func TestWriteError_ShowsClientErrorText(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/courses/x", nil), "test", store.ErrInvalidID)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), store.ErrInvalidID.Error())
}

func TestWriteList_NilIsEmptyArray(t *testing.T) {
	rr := httptest.NewRecorder()
	var courses []models.Course

	writeList(rr, httptest.NewRequest(http.MethodGet, "/courses", nil), "test", courses)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantOK bool
	}{
		{name: "valid", body: `{"price":10}`, wantOK: true},
		{name: "malformed", body: `{"price":`},
		{name: "empty", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(tt.body))

			var dst models.PaymentIntentRequest
			ok := decodeBody(rr, req, "test", &dst)

			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Contains(t, rr.Body.String(), "Invalid JSON was passed")
			}
		})
	}
}
