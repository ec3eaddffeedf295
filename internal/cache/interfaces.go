// Package cache provides the redis backed product read cache and the
// fixed-window rate limiter used by the member endpoints.
package cache

import (
	"context"

	"github.com/MKhiriev/go-gift-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cache_mock.go -package=mock

// ProductCache stores products as JSON. A miss is reported through the
// found flag, never as an error.
//
// Every key carries a version that Invalidate bumps. A caller that fills the
// cache after a miss reads the version before loading from storage and passes
// it to SetList or SetProduct; the value is stored only if no invalidation
// happened in between.
type ProductCache interface {
	GetList(ctx context.Context) (products []models.Product, found bool, err error)
	ListVersion(ctx context.Context) (int64, error)
	SetList(ctx context.Context, products []models.Product, version int64) error

	GetProduct(ctx context.Context, id int64) (product models.Product, found bool, err error)
	ProductVersion(ctx context.Context, id int64) (int64, error)
	SetProduct(ctx context.Context, product models.Product, version int64) error

	// Invalidate drops the cached list and the cached products with the given
	// ids and bumps their versions.
	Invalidate(ctx context.Context, ids ...int64) error
}

// RateLimiter counts hits per key.
type RateLimiter interface {
	// Allow registers a hit for key and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (bool, error)
}
