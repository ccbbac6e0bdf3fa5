// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package auth

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/brewrec/brewrec/internal/logging"
	"github.com/brewrec/brewrec/internal/models"
)

// invalidTokenMessage is the outward message for rejected tokens.
const invalidTokenMessage = "Invalid token"

// Middleware provides HTTP authentication middleware backed by a JWTManager.
type Middleware struct {
	jwtManager *JWTManager
}

// NewMiddleware creates authentication middleware.
func NewMiddleware(jwtManager *JWTManager) *Middleware {
	return &Middleware{jwtManager: jwtManager}
}

// Optional authenticates the request when an Authorization header is
// present and lets it through anonymously when it is not.
//
//   - No Authorization header: the request proceeds with no identity.
//   - Valid bearer token: the identity is attached to the request context.
//   - Present but invalid header or token: 401 with "Invalid token".
func (m *Middleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := extractBearerToken(authHeader)
		if !ok {
			respondUnauthorized(w)
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Token validation failed")
			respondUnauthorized(w)
			return
		}

		identity := &Identity{
			ID:    claims.UserID,
			Email: claims.Email,
		}
		ctx := ContextWithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken extracts the token from a "Bearer <token>" header
// value.
func extractBearerToken(authHeader string) (string, bool) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// respondUnauthorized writes the 401 error envelope.
func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Message: invalidTokenMessage}); err != nil {
		logging.Error().Err(err).Msg("Failed to encode unauthorized response")
	}
}
