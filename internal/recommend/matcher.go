// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

// Package recommend implements the recommendation pipeline: the taste
// profile matcher and the service that orchestrates upstream fetches around
// it.
package recommend

import (
	"sort"

	"github.com/brewrec/brewrec/internal/models"
)

// MaxRecommendations caps the number of items in any recommendation result.
const MaxRecommendations = 5

// MatchTasteProfile filters inventory to items matching the query profile,
// sorts them by descending stock quantity, and returns at most
// MaxRecommendations items.
//
// An item matches when ANY of the query's set attributes equals the item's
// corresponding attribute: primary flavor, sweetness, or bitterness. An
// attribute the query leaves unset (or holds as an empty string) never
// matches; a query with no attributes set matches nothing. The sort is
// stable, so equal-stock items keep their relative upstream order.
//
// The input slice is not modified.
func MatchTasteProfile(profile models.TasteProfile, inventory []models.InventoryItem) []models.InventoryItem {
	if !profile.HasMatchableAttribute() {
		return []models.InventoryItem{}
	}

	matched := make([]models.InventoryItem, 0, len(inventory))
	for _, item := range inventory {
		if profileMatches(profile, item.TasteProfile) {
			matched = append(matched, item)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].StockQuantity > matched[j].StockQuantity
	})

	if len(matched) > MaxRecommendations {
		matched = matched[:MaxRecommendations]
	}
	return matched
}

// profileMatches reports whether the item profile satisfies the query's
// OR-predicate. Each comparison is guarded on the query attribute carrying a
// value, so empty-string attributes never match each other; an item with an
// empty profile can never match.
func profileMatches(query, item models.TasteProfile) bool {
	if models.AttributeSet(query.PrimaryFlavor) && item.PrimaryFlavor != nil && *query.PrimaryFlavor == *item.PrimaryFlavor {
		return true
	}
	if models.AttributeSet(query.Sweetness) && item.Sweetness != nil && *query.Sweetness == *item.Sweetness {
		return true
	}
	if models.AttributeSet(query.Bitterness) && item.Bitterness != nil && *query.Bitterness == *item.Bitterness {
		return true
	}
	return false
}
