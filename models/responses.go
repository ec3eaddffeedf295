// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenResponse is returned by the register and login endpoints.
// The same token is also sent in the WWW-Authenticate response header.
type TokenResponse struct {
	Token string `json:"token"`
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 400 body returned when a payload fails validation.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
