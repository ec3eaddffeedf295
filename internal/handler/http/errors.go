// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthenticateHeader is returned by the role middleware when the
	// request carries no "WWW-Authenticate" header.
	ErrEmptyAuthenticateHeader = errors.New("empty `WWW-Authenticate` header")

	// ErrInvalidProductID is returned when the product id path segment is not
	// an integer.
	ErrInvalidProductID = errors.New("invalid product id")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
)

// accessDenied is the body of every 403 response.
const accessDenied = "access denied"
