// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package models

// InventoryItem is a sellable product record as returned by the brewery API.
// The id is unique within an inventory snapshot. StockQuantity is used purely
// as a sort key by the matcher; it is never mutated here.
type InventoryItem struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	Type          string       `json:"type,omitempty"`
	Description   string       `json:"description,omitempty"`
	ABV           float64      `json:"abv,omitempty"`
	Volume        float64      `json:"volume,omitempty"`
	Package       string       `json:"package,omitempty"`
	Price         float64      `json:"price,omitempty"`
	Cost          float64      `json:"cost,omitempty"`
	StockQuantity int          `json:"stockQuantity"`
	ReorderPoint  int          `json:"reorderPoint,omitempty"`
	IsActive      bool         `json:"isActive,omitempty"`
	TasteProfile  TasteProfile `json:"tasteProfile"`
}

// User is the brewery API's user record. Only the taste profile is consumed
// by the recommendation pipeline; the rest is kept for completeness.
type User struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	TasteProfile TasteProfile `json:"tasteProfile"`
}
