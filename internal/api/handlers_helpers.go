// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/brewrec/brewrec/internal/logging"
	"github.com/brewrec/brewrec/internal/models"
)

// sanitizeLogValue removes control characters from strings to prevent log
// injection attacks: newlines, carriage returns, and other control
// characters could otherwise forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends the error envelope. The detail string lands in the
// response's "error" field and is omitted when empty.
func respondError(w http.ResponseWriter, status int, message, detail string) {
	respondJSON(w, status, models.ErrorResponse{
		Message: message,
		Error:   detail,
	})
}
