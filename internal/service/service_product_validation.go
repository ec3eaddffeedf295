package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/internal/validators"
	"github.com/MKhiriev/go-gift-catalog/models"
)

// ProductValidationService rejects malformed payloads before they reach the
// wrapped service. Failures are returned as ErrInvalidProduct joined with the
// *validators.ValidationError describing the broken fields.
type ProductValidationService struct {
	inner     ProductService
	validator validators.Validator
}

func NewProductValidationService() ProductServiceWrapper {
	return &ProductValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *ProductValidationService) Create(ctx context.Context, dto models.ProductDTO) (models.Product, error) {
	if err := v.validate(ctx, dto); err != nil {
		return models.Product{}, err
	}
	return v.inner.Create(ctx, dto)
}

func (v *ProductValidationService) List(ctx context.Context) ([]models.Product, error) {
	return v.inner.List(ctx)
}

func (v *ProductValidationService) Get(ctx context.Context, id int64) (models.Product, bool, error) {
	return v.inner.Get(ctx, id)
}

func (v *ProductValidationService) Update(ctx context.Context, id int64, dto models.ProductDTO) (models.Product, bool, error) {
	if err := v.validate(ctx, dto); err != nil {
		return models.Product{}, false, err
	}
	return v.inner.Update(ctx, id, dto)
}

func (v *ProductValidationService) Delete(ctx context.Context, id int64) (int64, error) {
	return v.inner.Delete(ctx, id)
}

func (v *ProductValidationService) Wrap(wrapped ProductService) ProductService {
	v.inner = wrapped
	return v
}

func (v *ProductValidationService) validate(ctx context.Context, dto models.ProductDTO) error {
	if err := v.validator.Validate(ctx, dto); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "ProductValidationService.validate").Msg("product payload rejected")
		return fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}
	return nil
}
