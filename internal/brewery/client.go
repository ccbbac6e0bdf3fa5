// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

// Package brewery implements the HTTP client for the upstream brewery API.
//
// The client fetches user taste profiles and beer inventory, forwarding the
// caller's Authorization header verbatim so the upstream applies its own
// access control. Non-2xx upstream responses surface as *APIError with the
// upstream's status and structured error detail preserved.
//
// Two deployment-specific contract choices are configurable: where user
// records live (/api/auth/{id} vs /api/user/{id}) and which taste profile
// field casing the upstream emits (see wire.go).
package brewery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/brewrec/brewrec/internal/config"
	"github.com/brewrec/brewrec/internal/logging"
	"github.com/brewrec/brewrec/internal/metrics"
	"github.com/brewrec/brewrec/internal/models"
)

// maxErrorBodySize limits how much of an upstream error body is read.
// Prevents unbounded memory allocation on large error responses.
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads the response body for error reporting (max 64KB).
// Returns the body content or a placeholder message if reading fails.
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// Client defines the brewery API operations the recommendation pipeline
// depends on. Implemented by HTTPClient for production use and by mock
// implementations for testing.
//
// All methods accept the caller's raw Authorization header value; an empty
// string means the request is sent unauthenticated.
//
// Thread safety: all methods are safe for concurrent use.
type Client interface {
	// FetchUserProfile retrieves the user record (including taste profile)
	// for the given user ID.
	FetchUserProfile(ctx context.Context, userID int, authHeader string) (*models.User, error)

	// FetchInventory retrieves the full beer inventory.
	FetchInventory(ctx context.Context, authHeader string) ([]models.InventoryItem, error)

	// FetchInventoryItem retrieves a single inventory item by product ID.
	FetchInventoryItem(ctx context.Context, productID int, authHeader string) (*models.InventoryItem, error)
}

// HTTPClient is the production brewery API client.
type HTTPClient struct {
	baseURL       string
	userEndpoint  string
	profileCasing string
	client        *http.Client
}

// compile-time interface check
var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a brewery API client from configuration. The base
// URL is used without a trailing slash; one is stripped if present.
func NewHTTPClient(cfg *config.BreweryConfig) *HTTPClient {
	return &HTTPClient{
		baseURL:       strings.TrimSuffix(cfg.URL, "/"),
		userEndpoint:  cfg.UserEndpoint,
		profileCasing: cfg.ProfileCasing,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchUserProfile retrieves the user record for the given user ID from the
// configured user endpoint.
func (c *HTTPClient) FetchUserProfile(ctx context.Context, userID int, authHeader string) (*models.User, error) {
	path := fmt.Sprintf("/api/%s/%d", c.userEndpoint, userID)

	resp, err := c.get(ctx, "user_profile", path, authHeader)
	if err != nil {
		return nil, err
	}

	if c.profileCasing == config.ProfileCasingPascal {
		var wire pascalUser
		if err := decodeJSON(resp, &wire); err != nil {
			return nil, fmt.Errorf("failed to decode user profile response: %w", err)
		}
		user := wire.toModel()
		return &user, nil
	}

	var user models.User
	if err := decodeJSON(resp, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user profile response: %w", err)
	}
	return &user, nil
}

// FetchInventory retrieves the full beer inventory. The upstream's item
// order is preserved.
func (c *HTTPClient) FetchInventory(ctx context.Context, authHeader string) ([]models.InventoryItem, error) {
	resp, err := c.get(ctx, "inventory", "/api/inventory", authHeader)
	if err != nil {
		return nil, err
	}

	if c.profileCasing == config.ProfileCasingPascal {
		var wire []pascalInventoryItem
		if err := decodeJSON(resp, &wire); err != nil {
			return nil, fmt.Errorf("failed to decode inventory response: %w", err)
		}
		items := make([]models.InventoryItem, len(wire))
		for i, w := range wire {
			items[i] = w.toModel()
		}
		return items, nil
	}

	var items []models.InventoryItem
	if err := decodeJSON(resp, &items); err != nil {
		return nil, fmt.Errorf("failed to decode inventory response: %w", err)
	}
	return items, nil
}

// FetchInventoryItem retrieves a single inventory item by product ID.
func (c *HTTPClient) FetchInventoryItem(ctx context.Context, productID int, authHeader string) (*models.InventoryItem, error) {
	path := fmt.Sprintf("/api/inventory/%d", productID)

	resp, err := c.get(ctx, "inventory_item", path, authHeader)
	if err != nil {
		return nil, err
	}

	if c.profileCasing == config.ProfileCasingPascal {
		var wire pascalInventoryItem
		if err := decodeJSON(resp, &wire); err != nil {
			return nil, fmt.Errorf("failed to decode inventory item response: %w", err)
		}
		item := wire.toModel()
		return &item, nil
	}

	var item models.InventoryItem
	if err := decodeJSON(resp, &item); err != nil {
		return nil, fmt.Errorf("failed to decode inventory item response: %w", err)
	}
	return &item, nil
}

// get performs a GET request against the brewery API. On a 2xx response the
// caller owns the body; on any other outcome the body is closed here and a
// transport error or *APIError is returned. The endpoint label feeds the
// upstream request metrics.
func (c *HTTPClient) get(ctx context.Context, endpoint, path, authHeader string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	// The caller's Authorization header is forwarded verbatim so the
	// upstream applies its own access control.
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("brewery API request failed: %w", err)
	}

	metrics.UpstreamRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		apiErr := newAPIError(resp)
		logging.Ctx(ctx).Warn().
			Str("endpoint", endpoint).
			Int("status", apiErr.StatusCode).
			Str("message", apiErr.Message).
			Msg("Brewery API returned error")
		return nil, apiErr
	}

	return resp, nil
}

// upstreamErrorBody is the brewery API's structured error envelope.
type upstreamErrorBody struct {
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
}

// newAPIError builds an *APIError from a non-2xx response. A structured
// JSON body contributes its message and errors fields, each independently
// of the other; anything else is carried raw in Detail.
func newAPIError(resp *http.Response) *APIError {
	body := readBodyForError(resp.Body)

	apiErr := &APIError{StatusCode: resp.StatusCode}

	var parsed upstreamErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		hasErrors := len(parsed.Errors) > 0 && string(parsed.Errors) != "null"
		if parsed.Message != "" || hasErrors {
			apiErr.Message = parsed.Message
			if hasErrors {
				apiErr.Detail = string(parsed.Errors)
			}
			return apiErr
		}
	}

	apiErr.Detail = strings.TrimSpace(string(body))
	return apiErr
}

// decodeJSON decodes the response body into result and closes the body.
func decodeJSON(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(result)
}
