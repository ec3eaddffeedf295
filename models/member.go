// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Member represents a registered account of the gift catalog.
type Member struct {
	// MemberID is the internal unique identifier of the member.
	MemberID int64 `json:"id"`

	// Email is the unique login of the member.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the member password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role determines what the member is allowed to do.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the member account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Member model.
func (m Member) TableName() string {
	return "members"
}

// Credentials is the payload of the register and login endpoints.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}
