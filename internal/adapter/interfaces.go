// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the gift catalog REST API.
//
// The primary abstraction is [ProductAPI]; [NewHTTPProductAPI] returns the
// resty based implementation. Non-2xx responses are mapped to the sentinel
// errors of errors.go by mapHTTPError, so callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-gift-catalog/models"
)

// ProductAPI talks to the catalog server. Implementations are safe for
// concurrent use.
type ProductAPI interface {
	// SetToken stores the token sent in the "WWW-Authenticate" header of
	// protected requests.
	SetToken(token string)

	// Token returns the stored token, or an empty string.
	Token() string

	// Register creates a member and stores the returned token.
	Register(ctx context.Context, credentials models.Credentials) (string, error)

	// Login authenticates a member and stores the returned token.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// CreateProduct requires a stored admin token.
	CreateProduct(ctx context.Context, product models.ProductDTO) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)

	// GetProduct returns [ErrNotFound] (wrapped) for unknown ids.
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	UpdateProduct(ctx context.Context, id int64, product models.ProductDTO) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
