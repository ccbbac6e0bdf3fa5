// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

// Package models defines the value types shared across the service: taste
// profiles, inventory items, upstream user records, and the HTTP response
// envelopes. Every value is transient - entities are rebuilt per request from
// upstream responses and discarded once the response is written.
package models

// TasteProfile is a partial set of flavor attributes describing either a
// user's preference or a product's characteristics. Every field is optional;
// an absent field means "no preference / no data", never a wildcard.
//
// Only PrimaryFlavor, Sweetness, and Bitterness participate in matching.
// The remaining attributes are carried through from the upstream API so
// responses stay faithful to the source records.
type TasteProfile struct {
	PrimaryFlavor    *string  `json:"primaryFlavor,omitempty"`
	SecondaryFlavors []string `json:"secondaryFlavors,omitempty"`
	Sweetness        *string  `json:"sweetness,omitempty"`
	Bitterness       *string  `json:"bitterness,omitempty"`
	Mouthfeel        *string  `json:"mouthfeel,omitempty"`
	Body             *string  `json:"body,omitempty"`
	Acidity          *float64 `json:"acidity,omitempty"`
	Aftertaste       *string  `json:"aftertaste,omitempty"`
	Aroma            []string `json:"aroma,omitempty"`
}

// HasMatchableAttribute reports whether at least one of the attributes used
// by the matcher is set. A profile with no matchable attributes matches
// nothing - there is no "match everything" fallback. An attribute holding an
// explicit empty string counts as unset, the same as an absent field.
func (p *TasteProfile) HasMatchableAttribute() bool {
	if p == nil {
		return false
	}
	return AttributeSet(p.PrimaryFlavor) || AttributeSet(p.Sweetness) || AttributeSet(p.Bitterness)
}

// AttributeSet reports whether an optional taste attribute carries a value.
// A nil pointer and an empty string are both "no preference".
func AttributeSet(p *string) bool {
	return p != nil && *p != ""
}

// StringPtr returns a pointer to s. Convenience for building profiles in
// tests and adapters.
func StringPtr(s string) *string {
	return &s
}
