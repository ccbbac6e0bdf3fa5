// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package brewery

import "github.com/brewrec/brewrec/internal/models"

// Brewery API deployments are split between two taste profile field casing
// conventions: lower-camel ("primaryFlavor") and capitalized
// ("PrimaryFlavor"). Rather than relying on case-insensitive JSON matching,
// the client decodes through an explicit wire DTO for the configured
// convention and normalizes to models.TasteProfile at the boundary. This
// keeps the upstream contract visible and deliberate per deployment.

// pascalTasteProfile mirrors models.TasteProfile with capitalized JSON keys.
type pascalTasteProfile struct {
	PrimaryFlavor    *string  `json:"PrimaryFlavor,omitempty"`
	SecondaryFlavors []string `json:"SecondaryFlavors,omitempty"`
	Sweetness        *string  `json:"Sweetness,omitempty"`
	Bitterness       *string  `json:"Bitterness,omitempty"`
	Mouthfeel        *string  `json:"Mouthfeel,omitempty"`
	Body             *string  `json:"Body,omitempty"`
	Acidity          *float64 `json:"Acidity,omitempty"`
	Aftertaste       *string  `json:"Aftertaste,omitempty"`
	Aroma            []string `json:"Aroma,omitempty"`
}

// toModel normalizes the pascal wire profile to the canonical model.
func (p pascalTasteProfile) toModel() models.TasteProfile {
	return models.TasteProfile{
		PrimaryFlavor:    p.PrimaryFlavor,
		SecondaryFlavors: p.SecondaryFlavors,
		Sweetness:        p.Sweetness,
		Bitterness:       p.Bitterness,
		Mouthfeel:        p.Mouthfeel,
		Body:             p.Body,
		Acidity:          p.Acidity,
		Aftertaste:       p.Aftertaste,
		Aroma:            p.Aroma,
	}
}

// pascalInventoryItem is an inventory record whose taste profile uses
// capitalized field names. Item-level fields are stable across deployments;
// only the nested profile drifts.
type pascalInventoryItem struct {
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	Type          string             `json:"type"`
	Description   string             `json:"description"`
	ABV           float64            `json:"abv"`
	Volume        float64            `json:"volume"`
	Package       string             `json:"package"`
	Price         float64            `json:"price"`
	Cost          float64            `json:"cost"`
	StockQuantity int                `json:"stockQuantity"`
	ReorderPoint  int                `json:"reorderPoint"`
	IsActive      bool               `json:"isActive"`
	TasteProfile  pascalTasteProfile `json:"tasteProfile"`
}

func (p pascalInventoryItem) toModel() models.InventoryItem {
	return models.InventoryItem{
		ID:            p.ID,
		Name:          p.Name,
		Type:          p.Type,
		Description:   p.Description,
		ABV:           p.ABV,
		Volume:        p.Volume,
		Package:       p.Package,
		Price:         p.Price,
		Cost:          p.Cost,
		StockQuantity: p.StockQuantity,
		ReorderPoint:  p.ReorderPoint,
		IsActive:      p.IsActive,
		TasteProfile:  p.TasteProfile.toModel(),
	}
}

// pascalUser is a user record whose taste profile uses capitalized field
// names.
type pascalUser struct {
	ID           int                `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	TasteProfile pascalTasteProfile `json:"tasteProfile"`
}

func (p pascalUser) toModel() models.User {
	return models.User{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		TasteProfile: p.TasteProfile.toModel(),
	}
}
