// Package utils provides general-purpose helper utilities
// used across different parts of the application: request-context keys,
// session token encoding, password digests, slug derivation, id generation
// and HTTP response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the authentication middleware stores
// the caller's [models.Claims].
var ClaimsCtxKey = contextKey("claims")

// WithClaims returns a copy of ctx carrying claims as the resolved caller.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the caller identity stored by the
// authentication middleware.
//
// ok is false when no claims were attached or the attached value has an
// unexpected type or an empty user id.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	if !ok || claims.UserID == "" {
		return models.Claims{}, false
	}
	return claims, true
}
