// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gift-catalog/internal/logger"
)

// CacheWarmer lists products on a fixed interval so that the read-through
// list cache is repopulated soon after it expires or is invalidated.
type CacheWarmer struct {
	products ProductLister
	interval time.Duration
	logger   *logger.Logger
}

func NewCacheWarmer(products ProductLister, interval time.Duration, logger *logger.Logger) *CacheWarmer {
	return &CacheWarmer{
		products: products,
		interval: interval,
		logger:   logger,
	}
}

// Run warms the cache once right away and then on every tick until ctx is
// cancelled. Failures are logged and retried on the next tick.
func (c *CacheWarmer) Run(ctx context.Context) {
	c.logger.Info().Dur("interval", c.interval).Msg("cache warmer started")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		c.warm(ctx)

		select {
		case <-ctx.Done():
			c.logger.Info().Msg("cache warmer stopped")
			return
		case <-ticker.C:
		}
	}
}

func (c *CacheWarmer) warm(ctx context.Context) {
	products, err := c.products.List(c.logger.WithContext(ctx))
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Err(err).Str("func", "CacheWarmer.warm").Msg("failed to warm product cache")
		}
		return
	}
	c.logger.Debug().Int("products", len(products)).Msg("product cache warmed")
}
