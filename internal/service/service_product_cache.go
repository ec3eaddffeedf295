package service

import (
	"context"

	"github.com/MKhiriev/go-gift-catalog/internal/cache"
	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/models"
)

// ProductCacheService serves reads from the product cache and invalidates it
// on writes. Cache failures are logged and never returned to the caller.
//
// A miss records the key version before reading storage, so a fill that
// raced with a write is dropped by the cache instead of resurrecting stale
// data.
type ProductCacheService struct {
	inner ProductService
	cache cache.ProductCache
}

func NewProductCacheService(productCache cache.ProductCache) ProductServiceWrapper {
	return &ProductCacheService{cache: productCache}
}

func (c *ProductCacheService) Create(ctx context.Context, dto models.ProductDTO) (models.Product, error) {
	created, err := c.inner.Create(ctx, dto)
	if err != nil {
		return models.Product{}, err
	}

	c.invalidate(ctx)
	return created, nil
}

func (c *ProductCacheService) List(ctx context.Context) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	products, found, err := c.cache.GetList(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "ProductCacheService.List").Msg("cache read failed, falling back to storage")
	} else if found {
		return products, nil
	}

	version, versionErr := c.cache.ListVersion(ctx)

	products, err = c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if versionErr != nil {
		log.Warn().Err(versionErr).Str("func", "ProductCacheService.List").Msg("cache version read failed, skipping cache fill")
		return products, nil
	}
	if err = c.cache.SetList(ctx, products, version); err != nil {
		log.Warn().Err(err).Str("func", "ProductCacheService.List").Msg("cache write failed")
	}
	return products, nil
}

func (c *ProductCacheService) Get(ctx context.Context, id int64) (models.Product, bool, error) {
	log := logger.FromContext(ctx)

	product, found, err := c.cache.GetProduct(ctx, id)
	if err != nil {
		log.Warn().Err(err).Int64("id", id).Str("func", "ProductCacheService.Get").Msg("cache read failed, falling back to storage")
	} else if found {
		return product, true, nil
	}

	version, versionErr := c.cache.ProductVersion(ctx, id)

	product, found, err = c.inner.Get(ctx, id)
	if err != nil || !found {
		return product, found, err
	}

	if versionErr != nil {
		log.Warn().Err(versionErr).Int64("id", id).Str("func", "ProductCacheService.Get").Msg("cache version read failed, skipping cache fill")
		return product, true, nil
	}
	if err = c.cache.SetProduct(ctx, product, version); err != nil {
		log.Warn().Err(err).Int64("id", id).Str("func", "ProductCacheService.Get").Msg("cache write failed")
	}
	return product, true, nil
}

func (c *ProductCacheService) Update(ctx context.Context, id int64, dto models.ProductDTO) (models.Product, bool, error) {
	updated, found, err := c.inner.Update(ctx, id, dto)
	if err != nil || !found {
		return updated, found, err
	}

	c.invalidate(ctx, id)
	return updated, true, nil
}

func (c *ProductCacheService) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := c.inner.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	if affected > 0 {
		c.invalidate(ctx, id)
	}
	return affected, nil
}

func (c *ProductCacheService) Wrap(wrapped ProductService) ProductService {
	c.inner = wrapped
	return c
}

func (c *ProductCacheService) invalidate(ctx context.Context, ids ...int64) {
	if err := c.cache.Invalidate(ctx, ids...); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Ints64("ids", ids).Str("func", "ProductCacheService.invalidate").Msg("cache invalidation failed")
	}
}
