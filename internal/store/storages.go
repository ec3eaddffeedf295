package store

import "github.com/MKhiriev/go-gift-catalog/internal/logger"

// Storages groups the repositories built on a single database connection.
type Storages struct {
	ProductRepository ProductRepository
	MemberRepository  MemberRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		ProductRepository: NewProductRepository(db, logger),
		MemberRepository:  NewMemberRepository(db, logger),
	}
}
