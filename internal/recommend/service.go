// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package recommend

import (
	"context"

	"github.com/brewrec/brewrec/internal/auth"
	"github.com/brewrec/brewrec/internal/brewery"
	"github.com/brewrec/brewrec/internal/logging"
	"github.com/brewrec/brewrec/internal/metrics"
	"github.com/brewrec/brewrec/internal/models"
)

// Response message tags. These are part of the HTTP contract.
const (
	MessagePersonalized = "Personalized recommendations"
	MessageDefault      = "Default recommendations"
	MessageRelated      = "Related product recommendations"
)

// Metric mode labels for recommendations_served_total.
const (
	modePersonalized = "personalized"
	modeDefault      = "default"
	modeRelated      = "related"
)

// Service orchestrates the recommendation pipeline: it branches on caller
// identity, fetches profile and inventory data from the brewery API, runs
// the matcher, and normalizes upstream failures into StatusErrors.
//
// Upstream calls within one request are strictly sequential; if the first
// call fails the second is never attempted, and no partial recommendations
// are ever returned.
type Service struct {
	client brewery.Client
}

// NewService creates a recommendation service backed by the given brewery
// client.
func NewService(client brewery.Client) *Service {
	return &Service{client: client}
}

// GetRecommendations produces recommendations for the /recommendations
// endpoint.
//
// An authenticated caller gets personalized recommendations: their taste
// profile is fetched first, then the inventory, and the matcher selects the
// result. An anonymous caller gets the first MaxRecommendations inventory
// items in unmodified upstream order; the user profile endpoint is never
// contacted.
//
// The caller's Authorization header is forwarded verbatim on upstream calls.
// A non-nil error is always a *StatusError.
func (s *Service) GetRecommendations(ctx context.Context, identity *auth.Identity, authHeader string) (*models.RecommendationResponse, error) {
	if identity == nil {
		return s.defaultRecommendations(ctx, authHeader)
	}

	user, err := s.client.FetchUserProfile(ctx, identity.ID, authHeader)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Int("user_id", identity.ID).Msg("Failed to fetch user profile")
		return nil, normalizeUpstreamError(err)
	}

	inventory, err := s.client.FetchInventory(ctx, authHeader)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to fetch inventory")
		return nil, normalizeUpstreamError(err)
	}

	matched := MatchTasteProfile(user.TasteProfile, inventory)
	metrics.RecordRecommendations(modePersonalized, len(matched))

	return &models.RecommendationResponse{
		Message:         MessagePersonalized,
		Recommendations: matched,
	}, nil
}

// defaultRecommendations serves the anonymous path: the first
// MaxRecommendations items in upstream order, unfiltered and unsorted.
func (s *Service) defaultRecommendations(ctx context.Context, authHeader string) (*models.RecommendationResponse, error) {
	inventory, err := s.client.FetchInventory(ctx, authHeader)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to fetch inventory")
		return nil, normalizeUpstreamError(err)
	}

	if len(inventory) > MaxRecommendations {
		inventory = inventory[:MaxRecommendations]
	}
	metrics.RecordRecommendations(modeDefault, len(inventory))

	return &models.RecommendationResponse{
		Message:         MessageDefault,
		Recommendations: inventory,
	}, nil
}

// GetProductRecommendations produces recommendations related to a single
// product: items matching the product's own taste profile, with the product
// itself excluded from the candidate set.
//
// A non-nil error is always a *StatusError; an unknown productID surfaces
// as the upstream's own 404.
func (s *Service) GetProductRecommendations(ctx context.Context, productID int, authHeader string) (*models.RecommendationResponse, error) {
	product, err := s.client.FetchInventoryItem(ctx, productID, authHeader)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Int("product_id", productID).Msg("Failed to fetch product")
		return nil, normalizeUpstreamError(err)
	}

	inventory, err := s.client.FetchInventory(ctx, authHeader)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to fetch inventory")
		return nil, normalizeUpstreamError(err)
	}

	// The queried product never recommends itself, even when it matches
	// its own profile.
	candidates := make([]models.InventoryItem, 0, len(inventory))
	for _, item := range inventory {
		if item.ID != productID {
			candidates = append(candidates, item)
		}
	}

	matched := MatchTasteProfile(product.TasteProfile, candidates)
	metrics.RecordRecommendations(modeRelated, len(matched))

	return &models.RecommendationResponse{
		Message:         MessageRelated,
		Recommendations: matched,
	}, nil
}
