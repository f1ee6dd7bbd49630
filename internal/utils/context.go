// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, HTML sanitizing, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/stack-underflow/models"
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

var (
	// UserIDCtxKey is the key used to store the authenticated user identifier
	// in the context.
	UserIDCtxKey = contextKey("userID")

	// ClaimsCtxKey is the key used to store the verified token claims in the
	// context.
	ClaimsCtxKey = contextKey("claims")
)

// WithClaims returns a copy of ctx carrying the verified claims and the
// subject user ID.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	ctx = context.WithValue(ctx, ClaimsCtxKey, claims)
	return context.WithValue(ctx, UserIDCtxKey, claims.UserID())
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetClaimsFromContext retrieves the verified token claims from the context.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}
