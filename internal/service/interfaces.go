// Package service holds the business logic of the gift catalog. Handlers
// talk to the interfaces declared here; concrete services are composed from
// decorators built on top of the store and cache packages.
package service

import (
	"context"

	"github.com/MKhiriev/go-gift-catalog/models"
)

// ProductService manages the product catalog.
type ProductService interface {
	Create(ctx context.Context, dto models.ProductDTO) (models.Product, error)
	List(ctx context.Context) ([]models.Product, error)

	// Get returns found=false when no product has the id.
	Get(ctx context.Context, id int64) (product models.Product, found bool, err error)

	// Update replaces the product identified by id. The id of the result is
	// always the given id. found is false when no product has the id.
	Update(ctx context.Context, id int64, dto models.ProductDTO) (product models.Product, found bool, err error)

	// Delete returns the number of removed rows.
	Delete(ctx context.Context, id int64) (int64, error)
}

// MemberService registers members, issues tokens and resolves them back to
// an [models.Authorization].
type MemberService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.Member, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Member, error)
	CreateToken(ctx context.Context, member models.Member) (models.Token, error)

	// VerifyRole validates the token and loads the current role of its
	// member. Returns ErrTokenIsExpiredOrInvalid when the token cannot be
	// trusted or the member no longer exists.
	VerifyRole(ctx context.Context, token string) (models.Authorization, error)

	// EnsureAdmin makes sure a member with the credentials exists and has
	// the admin role.
	EnsureAdmin(ctx context.Context, credentials models.Credentials) (models.Member, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ProductServiceWrapper defines middleware composition for ProductService.
// Implementations wrap an existing ProductService to add behavior such as
// validation or caching.
type ProductServiceWrapper interface {
	Wrap(ProductService) ProductService
}
