// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing and compression
// concerns are all handled at this layer before requests are forwarded
// to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/devconnector/devconnector/internal/logger"
	"github.com/devconnector/devconnector/internal/utils"
	"github.com/devconnector/devconnector/models"
)

// tokenHeader is the request header carrying the session token. The header
// name is part of the public API contract.
const tokenHeader = "x-auth-token"

// auth is an HTTP middleware that enforces token-based authentication.
//
// It reads the session token from the "x-auth-token" header, validates it
// via [service.AuthService.ParseToken], and on success stores the
// authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent or the token fails verification. The two cases carry distinct
// client messages; the exact verification failure kind (expired, bad
// signature, malformed) is logged but never exposed to the client.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get(tokenHeader)
		if tokenString == "" {
			log.Warn().Err(ErrNoTokenHeader).Send()
			utils.WriteJSON(w, models.MessageResponse{Msg: "No token, authorization denied"}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token verification failed")
			utils.WriteJSON(w, models.MessageResponse{Msg: "Token is not valid"}, http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
