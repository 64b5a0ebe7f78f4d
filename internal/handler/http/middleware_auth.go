// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/course-plus/internal/app"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/service"
	"github.com/MKhiriev/course-plus/internal/store"
	"github.com/MKhiriev/course-plus/internal/utils"
	"github.com/go-chi/chi/v5"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the token's email in the request context under [utils.EmailCtxKey] before
// delegating to the next handler.
//
// Requests are rejected with 401 and the body "unauthorized access" when the
// header is absent, is not of the form "Bearer <token>", or carries a token
// that is expired, tampered or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(errMissingAuthorization).Str("func", "*Handler.auth").Send()
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(errNotBearer).Str("func", "*Handler.auth").Send()
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.EmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly lets the request through only when the authenticated email
// belongs to a stored user with the admin role. The role is read from the
// store on every request. Unknown users and any other role get 403; a store
// failure surfaces as its mapped status (503 when unavailable).
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		email, ok := utils.GetEmailFromContext(r.Context())
		if !ok {
			log.Error().Err(ErrNoEmailInContext).Str("func", "*Handler.adminOnly").Send()
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		user, err := h.services.UserService.GetUser(r.Context(), email)
		switch {
		case errors.Is(err, store.ErrNotFound):
			log.Warn().Str("func", "*Handler.adminOnly").Str("email", email).Msg("no such user")
			http.Error(w, app.MsgForbidden, http.StatusForbidden)
			return
		case err != nil:
			writeError(w, r, "*Handler.adminOnly", err)
			return
		case !user.IsAdmin():
			log.Warn().Str("func", "*Handler.adminOnly").Str("email", email).Str("role", string(user.Role)).Msg("admin role required")
			http.Error(w, app.MsgForbidden, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// selfOnly returns a middleware that admits the request only when the path
// parameter param equals the authenticated email. Roles are not consulted.
func (h *Handler) selfOnly(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			email, ok := utils.GetEmailFromContext(r.Context())
			if !ok {
				log.Error().Err(ErrNoEmailInContext).Str("func", "*Handler.selfOnly").Send()
				http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			requested, err := pathEmail(r, param)
			if err != nil {
				writeError(w, r, "*Handler.selfOnly", err)
				return
			}
			if requested != email {
				log.Warn().Str("func", "*Handler.selfOnly").Str("email", email).Str("requested", requested).Msg("access to another user's data")
				http.Error(w, app.MsgForbidden, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// pathEmail returns the decoded value of the email path parameter. chi
// matches on the raw path when one is present, so "a%40b.com" reaches the
// router undecoded.
func pathEmail(r *http.Request, param string) (string, error) {
	raw := chi.URLParam(r, param)
	email, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: malformed %s %q", service.ErrInvalidDataProvided, param, raw)
	}
	return email, nil
}

// courseOwner resolves the owner filter for course writes: admins get ""
// and may touch any course, everyone else only their own.
func (h *Handler) courseOwner(r *http.Request) (string, error) {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		return "", ErrNoEmailInContext
	}

	user, err := h.services.UserService.GetUser(r.Context(), email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return email, nil
	case err != nil:
		return "", err
	case user.IsAdmin():
		return "", nil
	}
	return email, nil
}
