// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and trace identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-gift-catalog/models"
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

// AuthorizationCtxKey is the key under which the resolved
// [models.Authorization] of the caller is stored in the request context.
var AuthorizationCtxKey = contextKey("authorization")

// WithAuthorization returns a copy of ctx carrying auth.
func WithAuthorization(ctx context.Context, auth models.Authorization) context.Context {
	return context.WithValue(ctx, AuthorizationCtxKey, auth)
}

// GetAuthorizationFromContext retrieves the caller authorization from the context.
//
// Returns the authorization and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetAuthorizationFromContext(ctx context.Context) (models.Authorization, bool) {
	auth, ok := ctx.Value(AuthorizationCtxKey).(models.Authorization)
	return auth, ok
}

// GetMemberIDFromContext returns the member id of the authorization stored
// in ctx.
func GetMemberIDFromContext(ctx context.Context) (int64, bool) {
	auth, ok := GetAuthorizationFromContext(ctx)
	if !ok {
		return 0, false
	}
	return auth.MemberID, true
}
