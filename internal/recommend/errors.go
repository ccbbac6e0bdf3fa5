// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package recommend

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/brewrec/brewrec/internal/brewery"
)

// GenericErrorMessage is the outward message used when an upstream failure
// carries no usable message of its own.
const GenericErrorMessage = "Error fetching recommendations"

// StatusError is the normalized form of any upstream failure. It carries the
// HTTP status to propagate outward plus the message and error detail for the
// response body.
type StatusError struct {
	// Status is the outward HTTP status code.
	Status int

	// Message is the outward-facing description.
	Message string

	// Detail is the error detail for the response's "error" field; empty
	// means the field is omitted.
	Detail string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("recommendation failed with status %d: %s", e.Status, e.Message)
}

// AsStatusError unwraps err into a *StatusError if one is in its chain.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// normalizeUpstreamError translates any upstream client failure into a
// *StatusError:
//
//   - A structured upstream rejection keeps its own status code. Its body's
//     message becomes the outward message, falling back to the generic one;
//     its body's errors detail becomes the outward detail, falling back to
//     the raw error text.
//   - A transport-level failure (no HTTP response at all) becomes a 500 with
//     the generic message and the raw error text as detail.
func normalizeUpstreamError(err error) *StatusError {
	if apiErr, ok := brewery.AsAPIError(err); ok {
		statusErr := &StatusError{
			Status:  apiErr.StatusCode,
			Message: apiErr.Message,
			Detail:  apiErr.Detail,
		}
		if statusErr.Message == "" {
			statusErr.Message = GenericErrorMessage
		}
		if statusErr.Detail == "" {
			statusErr.Detail = err.Error()
		}
		return statusErr
	}

	return &StatusError{
		Status:  http.StatusInternalServerError,
		Message: GenericErrorMessage,
		Detail:  err.Error(),
	}
}
