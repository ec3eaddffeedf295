package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/models"
)

// productRepository is the database/sql implementation of [ProductRepository]
// working against the "products" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database interactions carry the request trace id.
type productRepository struct {
	*DB
	logger *logger.Logger
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

// Insert executes an INSERT ... RETURNING and scans the stored row, so the
// caller receives the id assigned by the database.
func (r *productRepository) Insert(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProductQuery(r.builder, product)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Insert").Msg("failed to build query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Product
	err = r.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Name, &created.Price, &created.ImageURL)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Insert").Msg("failed to insert product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindAll returns every product ordered by id. Retryable driver errors are
// retried.
func (r *productRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllProductsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "productRepository.FindAll").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var products []models.Product
	err = r.withRetry(ctx, func() error {
		products, err = r.queryProducts(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "productRepository.FindAll").Msg("failed to select products")
		return nil, err
	}

	return products, nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 16)
	for rows.Next() {
		var p models.Product
		if err = rows.Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// FindByID looks a product up by id. A missing row is reported through
// found, not as an error.
func (r *productRepository) FindByID(ctx context.Context, id int64) (models.Product, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "productRepository.FindByID").Msg("failed to build query")
		return models.Product{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var product models.Product
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).
			Scan(&product.ID, &product.Name, &product.Price, &product.ImageURL)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "productRepository.FindByID").Int64("product_id", id).Msg("failed to select product")
		return models.Product{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return product, true, nil
}

// Update executes an UPDATE ... RETURNING. When no row matches product.ID
// found is false.
func (r *productRepository) Update(ctx context.Context, product models.Product) (models.Product, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProductQuery(r.builder, product)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Update").Msg("failed to build query")
		return models.Product{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Product
	err = r.QueryRowContext(ctx, query, args...).
		Scan(&updated.ID, &updated.Name, &updated.Price, &updated.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "productRepository.Update").Int64("product_id", product.ID).Msg("failed to update product")
		return models.Product{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, true, nil
}

// Delete removes a product and returns the number of deleted rows.
func (r *productRepository) Delete(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProductQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Delete").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "productRepository.Delete").Int64("product_id", id).Msg("failed to delete product")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "productRepository.Delete").Int64("product_id", id).Msg("failed to get affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
