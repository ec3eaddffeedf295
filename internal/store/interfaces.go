// Package store is the persistence layer of the catalog. It exposes
// repository interfaces for products and members backed by database/sql
// (PostgreSQL through pgx or SQLite through go-sqlite3) with queries built
// by squirrel.
package store

import (
	"context"

	"github.com/MKhiriev/go-gift-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProductRepository persists catalog products.
type ProductRepository interface {
	// Insert stores a new product and returns it with the assigned id.
	// Any id already set on product is ignored.
	Insert(ctx context.Context, product models.Product) (models.Product, error)

	// FindAll returns all products ordered by id. The result is never nil.
	FindAll(ctx context.Context) ([]models.Product, error)

	// FindByID returns the product with the given id. found is false when
	// no such product exists.
	FindByID(ctx context.Context, id int64) (product models.Product, found bool, err error)

	// Update replaces the fields of the product identified by product.ID.
	// found is false when no such product exists.
	Update(ctx context.Context, product models.Product) (updated models.Product, found bool, err error)

	// Delete removes the product with the given id and returns the number
	// of affected rows.
	Delete(ctx context.Context, id int64) (int64, error)
}

// MemberRepository persists catalog members.
type MemberRepository interface {
	// Create stores a new member. Returns [ErrEmailAlreadyExists] when the
	// email is taken.
	Create(ctx context.Context, member models.Member) (models.Member, error)

	// FindByEmail returns [ErrMemberNotFound] when no member has the email.
	FindByEmail(ctx context.Context, email string) (models.Member, error)

	// FindByID returns [ErrMemberNotFound] when no member has the id.
	FindByID(ctx context.Context, id int64) (models.Member, error)

	// UpdateRole changes the role of a member. Returns [ErrMemberNotFound]
	// when no member has the id.
	UpdateRole(ctx context.Context, id int64, role models.Role) error
}

// ErrorClassificator decides how the store reacts to driver errors.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
