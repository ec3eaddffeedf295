// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/service"
	"github.com/MKhiriev/go-gift-catalog/internal/utils"
	"github.com/MKhiriev/go-gift-catalog/models"
)

// requireRole returns a middleware that lets a request through only when the
// token in the "WWW-Authenticate" header resolves to a member with role.
//
// Responses:
//   - 401 when the header is missing or the token is malformed, expired or
//     points to an unknown member;
//   - 403 with the plain-text body "access denied" when the member has a
//     different role;
//   - 500 when the role lookup itself fails.
//
// On success the resolved [models.Authorization] is stored in the request
// context (see [utils.GetAuthorizationFromContext]).
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			header := r.Header.Get(authenticateHeader)
			if header == "" {
				log.Info().Err(ErrEmptyAuthenticateHeader).Send()
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			tokenString, err := utils.ParseAuthToken(header)
			if err != nil {
				log.Info().Err(err).Msg("malformed token header")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			auth, err := h.services.MemberService.VerifyRole(ctx, tokenString)
			switch {
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
				log.Info().Err(err).Msg("token rejected")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			case err != nil:
				log.Err(err).Msg("error occurred during role verification")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !auth.HasRole(role) {
				log.Info().Int64("member_id", auth.MemberID).Str("role", auth.Role.String()).Msg(accessDenied)
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(accessDenied))
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithAuthorization(ctx, auth)))
		})
	}
}
