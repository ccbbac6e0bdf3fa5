// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/brewrec/brewrec/internal/auth"
	"github.com/brewrec/brewrec/internal/logging"
	"github.com/brewrec/brewrec/internal/recommend"
)

// Handler holds the HTTP handlers for the recommendation endpoints.
type Handler struct {
	service *recommend.Service
}

// NewHandler creates an API handler backed by the recommendation service.
func NewHandler(service *recommend.Service) *Handler {
	return &Handler{service: service}
}

// GetRecommendations handles GET /recommendations.
//
// The authenticated identity, when present, was attached by the auth
// middleware; its absence selects the anonymous default path. The caller's
// Authorization header is passed along for upstream forwarding.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	authHeader := r.Header.Get("Authorization")

	result, err := h.service.GetRecommendations(r.Context(), identity, authHeader)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetProductRecommendations handles GET /recommendations/{productID}.
func (h *Handler) GetProductRecommendations(w http.ResponseWriter, r *http.Request) {
	productIDParam := chi.URLParam(r, "productID")
	productID, err := strconv.Atoi(productIDParam)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Str("product_id", sanitizeLogValue(productIDParam)).Msg("Invalid product ID")
		respondError(w, http.StatusBadRequest, "Invalid product ID", "")
		return
	}

	authHeader := r.Header.Get("Authorization")

	result, err := h.service.GetProductRecommendations(r.Context(), productID, authHeader)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Healthcheck handles GET /healthcheck.
func (h *Handler) Healthcheck(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondServiceError writes the normalized error envelope for a service
// failure. Service errors are always *StatusError; anything else falls back
// to a generic 500.
func respondServiceError(w http.ResponseWriter, err error) {
	if statusErr, ok := recommend.AsStatusError(err); ok {
		respondError(w, statusErr.Status, statusErr.Message, statusErr.Detail)
		return
	}

	respondError(w, http.StatusInternalServerError, recommend.GenericErrorMessage, err.Error())
}
