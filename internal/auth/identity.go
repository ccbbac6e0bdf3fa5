// Brewrec - Beer Recommendation Service
// Copyright 2026 The Brewrec Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/brewrec/brewrec

// Package auth provides JWT bearer token verification and the optional
// authentication middleware.
//
// Authentication is optional by design: a request without an Authorization
// header proceeds anonymously, while a present but invalid token is
// rejected. Handlers read the outcome through IdentityFromContext.
package auth

import "context"

// Identity is the authenticated caller extracted from a verified token.
// Its presence or absence is the sole branching signal the recommendation
// pipeline relies on.
type Identity struct {
	ID    int
	Email string
}

// contextKey is a private type for context values to avoid collisions.
type contextKey string

// identityContextKey is the context key for the authenticated identity.
const identityContextKey contextKey = "auth_identity"

// ContextWithIdentity returns a new context carrying the identity.
func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext retrieves the authenticated identity from context.
// Returns nil when the request is anonymous.
func IdentityFromContext(ctx context.Context) *Identity {
	if identity, ok := ctx.Value(identityContextKey).(*Identity); ok {
		return identity
	}
	return nil
}
