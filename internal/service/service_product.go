package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/store"
	"github.com/MKhiriev/go-gift-catalog/models"
)

// productService is the innermost ProductService. It maps payloads to
// products and delegates to the repository.
type productService struct {
	productRepository store.ProductRepository

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

func (p *productService) Create(ctx context.Context, dto models.ProductDTO) (models.Product, error) {
	created, err := p.productRepository.Insert(ctx, dto.ToProduct())
	if err != nil {
		return models.Product{}, fmt.Errorf("error creating product: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", created.ID).Msg("product created")
	return created, nil
}

func (p *productService) List(ctx context.Context) ([]models.Product, error) {
	products, err := p.productRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	return products, nil
}

func (p *productService) Get(ctx context.Context, id int64) (models.Product, bool, error) {
	product, found, err := p.productRepository.FindByID(ctx, id)
	if err != nil {
		return models.Product{}, false, fmt.Errorf("error getting product %d: %w", id, err)
	}
	return product, found, nil
}

// Update ignores any identity carried by the payload: the stored row is
// always the one addressed by id.
func (p *productService) Update(ctx context.Context, id int64, dto models.ProductDTO) (models.Product, bool, error) {
	updated, found, err := p.productRepository.Update(ctx, dto.ToProductWithID(id))
	if err != nil {
		return models.Product{}, false, fmt.Errorf("error updating product %d: %w", id, err)
	}
	if !found {
		return models.Product{}, false, nil
	}

	updated.ID = id
	return updated, true, nil
}

func (p *productService) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := p.productRepository.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting product %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Int64("id", id).Int64("affected", affected).Msg("product delete executed")
	return affected, nil
}
