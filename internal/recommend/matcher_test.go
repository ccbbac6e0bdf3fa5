// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package recommend

import (
	"testing"

	"github.com/brewrec/brewrec/internal/models"
)

func item(id, stock int, profile models.TasteProfile) models.InventoryItem {
	return models.InventoryItem{
		ID:            id,
		StockQuantity: stock,
		TasteProfile:  profile,
	}
}

func resultIDs(items []models.InventoryItem) []int {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestMatchTasteProfile(t *testing.T) {
	t.Parallel()

	hoppy := models.StringPtr("Hoppy")
	malty := models.StringPtr("Malty")
	high := models.StringPtr("High")
	low := models.StringPtr("Low")

	tests := []struct {
		name      string
		profile   models.TasteProfile
		inventory []models.InventoryItem
		wantIDs   []int
	}{
		{
			name:    "primary flavor match sorted by stock",
			profile: models.TasteProfile{PrimaryFlavor: hoppy},
			inventory: []models.InventoryItem{
				item(1, 10, models.TasteProfile{PrimaryFlavor: hoppy}),
				item(2, 5, models.TasteProfile{Sweetness: high}),
				item(3, 8, models.TasteProfile{PrimaryFlavor: hoppy}),
			},
			wantIDs: []int{1, 3},
		},
		{
			name:    "or predicate needs only one attribute",
			profile: models.TasteProfile{PrimaryFlavor: hoppy, Sweetness: high, Bitterness: low},
			inventory: []models.InventoryItem{
				item(1, 1, models.TasteProfile{Sweetness: high}),
				item(2, 2, models.TasteProfile{Bitterness: low}),
				item(3, 3, models.TasteProfile{PrimaryFlavor: malty}),
			},
			wantIDs: []int{2, 1},
		},
		{
			name:    "empty query profile matches nothing",
			profile: models.TasteProfile{},
			inventory: []models.InventoryItem{
				item(1, 10, models.TasteProfile{PrimaryFlavor: hoppy}),
			},
			wantIDs: []int{},
		},
		{
			name:    "unset query attribute never matches",
			profile: models.TasteProfile{Sweetness: high},
			inventory: []models.InventoryItem{
				item(1, 10, models.TasteProfile{PrimaryFlavor: hoppy}),
				item(2, 4, models.TasteProfile{Sweetness: low}),
			},
			wantIDs: []int{},
		},
		{
			// An empty-string attribute is "no preference"; two empty strings
			// must not match each other.
			name:    "empty string attribute treated as unset",
			profile: models.TasteProfile{PrimaryFlavor: models.StringPtr("")},
			inventory: []models.InventoryItem{
				item(1, 10, models.TasteProfile{PrimaryFlavor: models.StringPtr("")}),
				item(2, 8, models.TasteProfile{PrimaryFlavor: hoppy}),
			},
			wantIDs: []int{},
		},
		{
			name:    "empty item profile never matches",
			profile: models.TasteProfile{PrimaryFlavor: hoppy},
			inventory: []models.InventoryItem{
				item(1, 10, models.TasteProfile{}),
				item(2, 8, models.TasteProfile{PrimaryFlavor: hoppy}),
			},
			wantIDs: []int{2},
		},
		{
			name:    "truncates to five",
			profile: models.TasteProfile{PrimaryFlavor: hoppy},
			inventory: []models.InventoryItem{
				item(1, 1, models.TasteProfile{PrimaryFlavor: hoppy}),
				item(2, 2, models.TasteProfile{PrimaryFlavor: hoppy}),
				item(3, 3, models.TasteProfile{PrimaryFlavor: hoppy}),
				item(4, 4, models.TasteProfile{PrimaryFlavor: hoppy}),
				item(5, 5, models.TasteProfile{PrimaryFlavor: hoppy}),
				item(6, 6, models.TasteProfile{PrimaryFlavor: hoppy}),
				item(7, 7, models.TasteProfile{PrimaryFlavor: hoppy}),
			},
			wantIDs: []int{7, 6, 5, 4, 3},
		},
		{
			name:      "empty inventory",
			profile:   models.TasteProfile{PrimaryFlavor: hoppy},
			inventory: []models.InventoryItem{},
			wantIDs:   []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MatchTasteProfile(tt.profile, tt.inventory)
			gotIDs := resultIDs(got)

			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("got %v, want %v", gotIDs, tt.wantIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Fatalf("got %v, want %v", gotIDs, tt.wantIDs)
				}
			}
		})
	}
}

func TestMatchTasteProfileStableSort(t *testing.T) {
	t.Parallel()

	hoppy := models.StringPtr("Hoppy")

	// Equal stock quantities must preserve input order.
	inventory := []models.InventoryItem{
		item(10, 5, models.TasteProfile{PrimaryFlavor: hoppy}),
		item(20, 5, models.TasteProfile{PrimaryFlavor: hoppy}),
		item(30, 9, models.TasteProfile{PrimaryFlavor: hoppy}),
		item(40, 5, models.TasteProfile{PrimaryFlavor: hoppy}),
	}

	got := resultIDs(MatchTasteProfile(models.TasteProfile{PrimaryFlavor: hoppy}, inventory))
	want := []int{30, 10, 20, 40}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMatchTasteProfileDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	hoppy := models.StringPtr("Hoppy")

	inventory := []models.InventoryItem{
		item(1, 1, models.TasteProfile{PrimaryFlavor: hoppy}),
		item(2, 9, models.TasteProfile{PrimaryFlavor: hoppy}),
	}

	MatchTasteProfile(models.TasteProfile{PrimaryFlavor: hoppy}, inventory)

	if inventory[0].ID != 1 || inventory[1].ID != 2 {
		t.Fatalf("input slice was reordered: %v", resultIDs(inventory))
	}
}
