// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gift-catalog/internal/config"
	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the redis server described by cfg and pings it.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Str("address", cfg.RedisAddress).Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}
	log.Info().Str("func", "NewRedisClient").Str("address", cfg.RedisAddress).Msg("connected to redis successfully")

	return client, nil
}
