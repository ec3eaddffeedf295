package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) that is sent to clients in the
// WWW-Authenticate header.
//
// MemberID is a parsed copy of the "sub" (subject) claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	MemberID int64 `json:"-"`
}

// GetMemberID extracts the member identifier from the token's "sub" claim.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetMemberID() (int64, error) {
	memberIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting MemberID from token: %w", err)
	}

	memberID, err := strconv.ParseInt(memberIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting MemberID from token to int64: %w", err)
	}

	return memberID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
