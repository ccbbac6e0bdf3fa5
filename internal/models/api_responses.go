// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package models

// RecommendationResponse is the success envelope for both recommendation
// endpoints. Message is one of the fixed tags: "Personalized recommendations",
// "Default recommendations", or "Related product recommendations".
type RecommendationResponse struct {
	Message         string          `json:"message"`
	Recommendations []InventoryItem `json:"recommendations"`
}

// ErrorResponse is the error envelope. Message carries the outward-facing
// description; Error carries upstream error detail when available and is
// omitted when empty.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
