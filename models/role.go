// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Role is the authorization level of a member.
type Role string

const (
	// RoleAdmin may manage the product catalog.
	RoleAdmin Role = "ADMIN"
	// RoleUser is the default role of every registered member.
	RoleUser Role = "USER"
)

// ParseRole converts a stored or configured role name to a [Role].
// Unknown names resolve to [RoleUser] so that they never grant admin rights.
func ParseRole(s string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}

// Authorization is the resolved identity behind a verified token.
// It is produced by the member service and inspected before a protected
// handler is dispatched.
type Authorization struct {
	MemberID int64
	Role     Role
}

// IsAdmin reports whether the authorization carries the admin role.
func (a Authorization) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// HasRole reports whether the authorization carries the given role.
func (a Authorization) HasRole(role Role) bool {
	return a.Role == role
}
