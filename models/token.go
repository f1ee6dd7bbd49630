// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the token type reported to clients on login.
const TokenTypeBearer = "bearer"

// Claims is the fixed-shape identity assertion carried by an access token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (sub, exp, iat,
// iss); Subject holds the user ID. Username is the only custom claim.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the subject's username at the time of issuance.
	Username string `json:"username"`
}

// UserID returns the subject user ID.
func (c Claims) UserID() string {
	return c.Subject
}

// Expiry returns the absolute expiry time, or the zero time if unset.
func (c Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Token is an issued or verified access token.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Claims are the decoded identity claims.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
