// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/course-plus/internal/app"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/service"
	"github.com/MKhiriev/course-plus/internal/store"
	"github.com/MKhiriev/course-plus/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if !decodeBody(w, r, "*Handler.issueToken", &req) {
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, "*Handler.issueToken", err)
		return
	}

	writeResult(w, r, "*Handler.issueToken", token)
}

// createUser inserts the user unless the email is taken. A taken email is not
// an error for the caller: it gets 200 with a null insertedId. Registration
// only creates students; other roles are granted by an admin.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !decodeBody(w, r, "*Handler.createUser", &user) {
		return
	}

	email, err := pathEmail(r, "email")
	if err != nil {
		writeError(w, r, "*Handler.createUser", err)
		return
	}
	if err := checkRegistration(&user, email); err != nil {
		writeError(w, r, "*Handler.createUser", err)
		return
	}

	result, err := h.services.UserService.CreateUser(r.Context(), user)
	if errors.Is(err, store.ErrUserAlreadyExists) {
		logger.FromRequest(r).Info().Str("func", "*Handler.createUser").Str("email", user.Email).Msg(app.MsgUserAlreadyExists)
		writeResult(w, r, "*Handler.createUser", models.UserExistsResponse{Message: app.MsgUserAlreadyExists})
		return
	}
	if err != nil {
		writeError(w, r, "*Handler.createUser", err)
		return
	}

	writeResult(w, r, "*Handler.createUser", result)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	filter := models.UserFilter{
		Search: r.URL.Query().Get("search"),
		Role:   models.Role(r.URL.Query().Get("role")),
	}

	users, err := h.services.UserService.FindUsers(r.Context(), filter)
	if err != nil {
		writeError(w, r, "*Handler.getUsers", err)
		return
	}

	writeList(w, r, "*Handler.getUsers", users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	email, err := pathEmail(r, "email")
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), email)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	writeResult(w, r, "*Handler.getUser", user)
}

func (h *Handler) checkAdmin(w http.ResponseWriter, r *http.Request) {
	email, err := pathEmail(r, "email")
	if err != nil {
		writeError(w, r, "*Handler.checkAdmin", err)
		return
	}

	admin, err := h.services.UserService.IsAdmin(r.Context(), email)
	if err != nil {
		writeError(w, r, "*Handler.checkAdmin", err)
		return
	}

	writeResult(w, r, "*Handler.checkAdmin", map[string]bool{"admin": admin})
}

func (h *Handler) checkTeacher(w http.ResponseWriter, r *http.Request) {
	email, err := pathEmail(r, "email")
	if err != nil {
		writeError(w, r, "*Handler.checkTeacher", err)
		return
	}

	teacher, err := h.services.UserService.IsTeacher(r.Context(), email)
	if err != nil {
		writeError(w, r, "*Handler.checkTeacher", err)
		return
	}

	writeResult(w, r, "*Handler.checkTeacher", map[string]bool{"teacher": teacher})
}

func (h *Handler) makeAdmin(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.UserService.MakeAdmin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.makeAdmin", err)
		return
	}

	writeResult(w, r, "*Handler.makeAdmin", result)
}

func (h *Handler) makeTeacher(w http.ResponseWriter, r *http.Request) {
	email, err := pathEmail(r, "email")
	if err != nil {
		writeError(w, r, "*Handler.makeTeacher", err)
		return
	}

	result, err := h.services.UserService.MakeTeacher(r.Context(), email)
	if err != nil {
		writeError(w, r, "*Handler.makeTeacher", err)
		return
	}

	writeResult(w, r, "*Handler.makeTeacher", result)
}

// checkRegistration binds user to the path email and refuses elevated roles.
func checkRegistration(user *models.User, email string) error {
	switch {
	case user.Email == "":
		user.Email = email
	case user.Email != email:
		return fmt.Errorf("%w: body email %q does not match path", service.ErrInvalidDataProvided, user.Email)
	}

	switch user.Role {
	case models.RoleNone, models.RoleStudent:
		return nil
	default:
		return fmt.Errorf("%w: role %q cannot be self-assigned", service.ErrInvalidDataProvided, user.Role)
	}
}
