// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered forum account.
// The password hash never leaves the server: it is excluded from JSON so any
// response that renders a User is already redacted.
type User struct {
	// ID is the opaque unique identifier of the user (UUID).
	ID string `json:"id"`

	// Username is the unique, case-sensitive login name.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the time the account was registered.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the time the row was last written.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
