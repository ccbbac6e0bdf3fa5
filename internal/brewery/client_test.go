// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package brewery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brewrec/brewrec/internal/config"
)

func testConfig(url string) *config.BreweryConfig {
	return &config.BreweryConfig{
		URL:           url,
		UserEndpoint:  config.UserEndpointAuth,
		ProfileCasing: config.ProfileCasingCamel,
		Timeout:       5 * time.Second,
	}
}

func TestFetchInventoryForwardsAuthHeader(t *testing.T) {
	t.Parallel()

	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Pale Ale","stockQuantity":12,"tasteProfile":{"primaryFlavor":"Hoppy"}}]`))
	}))
	defer server.Close()

	client := NewHTTPClient(testConfig(server.URL))

	items, err := client.FetchInventory(context.Background(), "Bearer token123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer token123" {
		t.Errorf("Authorization = %q, want verbatim forwarding", gotAuth)
	}
	if gotPath != "/api/inventory" {
		t.Errorf("path = %q, want /api/inventory", gotPath)
	}
	if len(items) != 1 || items[0].ID != 1 || items[0].StockQuantity != 12 {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[0].TasteProfile.PrimaryFlavor == nil || *items[0].TasteProfile.PrimaryFlavor != "Hoppy" {
		t.Errorf("taste profile not decoded: %+v", items[0].TasteProfile)
	}
}

func TestFetchInventoryOmitsEmptyAuthHeader(t *testing.T) {
	t.Parallel()

	var hadAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewHTTPClient(testConfig(server.URL))

	if _, err := client.FetchInventory(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hadAuth {
		t.Error("Authorization header sent for anonymous request")
	}
}

func TestFetchUserProfileEndpointSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		userEndpoint string
		wantPath     string
	}{
		{"auth style", config.UserEndpointAuth, "/api/auth/42"},
		{"user style", config.UserEndpointUser, "/api/user/42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = w.Write([]byte(`{"id":42,"name":"Alice","tasteProfile":{"sweetness":"High"}}`))
			}))
			defer server.Close()

			cfg := testConfig(server.URL)
			cfg.UserEndpoint = tt.userEndpoint
			client := NewHTTPClient(cfg)

			user, err := client.FetchUserProfile(context.Background(), 42, "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %q, want %q", gotPath, tt.wantPath)
			}
			if user.TasteProfile.Sweetness == nil || *user.TasteProfile.Sweetness != "High" {
				t.Errorf("taste profile not decoded: %+v", user.TasteProfile)
			}
		})
	}
}

func TestFetchUserProfilePascalCasing(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":42,"tasteProfile":{"PrimaryFlavor":"Malty","Bitterness":"Low"}}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.ProfileCasing = config.ProfileCasingPascal
	client := NewHTTPClient(cfg)

	user, err := client.FetchUserProfile(context.Background(), 42, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.TasteProfile.PrimaryFlavor == nil || *user.TasteProfile.PrimaryFlavor != "Malty" {
		t.Errorf("PrimaryFlavor not normalized: %+v", user.TasteProfile)
	}
	if user.TasteProfile.Bitterness == nil || *user.TasteProfile.Bitterness != "Low" {
		t.Errorf("Bitterness not normalized: %+v", user.TasteProfile)
	}
}

func TestFetchInventoryItemPath(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":9,"name":"Stout","stockQuantity":3,"tasteProfile":{}}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testConfig(server.URL))

	item, err := client.FetchInventoryItem(context.Background(), 9, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/inventory/9" {
		t.Errorf("path = %q, want /api/inventory/9", gotPath)
	}
	if item.ID != 9 {
		t.Errorf("item id = %d, want 9", item.ID)
	}
}

func TestStructuredUpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Product not found","errors":["no inventory item with id 99"]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testConfig(server.URL))

	_, err := client.FetchInventoryItem(context.Background(), 99, "")
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("error is not an APIError: %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Message != "Product not found" {
		t.Errorf("message = %q, want upstream message", apiErr.Message)
	}
	if apiErr.Detail != `["no inventory item with id 99"]` {
		t.Errorf("detail = %q, want raw errors field", apiErr.Detail)
	}
}

func TestStructuredUpstreamErrorWithoutMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":["field X is invalid"]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testConfig(server.URL))

	_, err := client.FetchInventory(context.Background(), "")
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("error is not an APIError: %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Message != "" {
		t.Errorf("message = %q, want empty", apiErr.Message)
	}
	// The errors field is extracted even when no message accompanies it.
	if apiErr.Detail != `["field X is invalid"]` {
		t.Errorf("detail = %q, want raw errors field", apiErr.Detail)
	}
}

func TestUnstructuredUpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewHTTPClient(testConfig(server.URL))

	_, err := client.FetchInventory(context.Background(), "")
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("error is not an APIError: %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", apiErr.StatusCode)
	}
	if apiErr.Message != "" {
		t.Errorf("message = %q, want empty for unstructured body", apiErr.Message)
	}
	if apiErr.Detail != "upstream exploded" {
		t.Errorf("detail = %q, want raw body", apiErr.Detail)
	}
}

func TestTransportFailureIsNotAPIError(t *testing.T) {
	t.Parallel()

	// Closed server: connection refused.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewHTTPClient(testConfig(url))

	_, err := client.FetchInventory(context.Background(), "")
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := AsAPIError(err); ok {
		t.Errorf("transport failure should not be an APIError: %v", err)
	}
}
