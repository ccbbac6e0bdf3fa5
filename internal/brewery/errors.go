// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package brewery

import (
	"errors"
	"fmt"
)

// APIError is returned when the brewery API answers with a non-2xx status.
// It preserves the upstream status code and whatever structured detail the
// upstream error body carried, so callers can surface it to their own
// clients.
type APIError struct {
	// StatusCode is the upstream HTTP status.
	StatusCode int

	// Message is the upstream error body's "message" field, empty when the
	// body was absent or unparseable.
	Message string

	// Detail is the upstream error body's "errors" field rendered as a
	// string, or the raw body when it was not structured JSON.
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("brewery API returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("brewery API returned status %d", e.StatusCode)
}

// AsAPIError unwraps err into an *APIError if one is in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
