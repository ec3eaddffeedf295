package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-gift-catalog/models"
	"github.com/redis/go-redis/v9"
)

const (
	productListKey   = "products:all"
	productKeyPrefix = "products:"
	versionSuffix    = ":version"

	// versionTTL bounds how long version counters of untouched keys live.
	// It must exceed the longest storage read.
	versionTTL = 24 * time.Hour
)

// setIfVersion stores ARGV[1] under KEYS[2] only while KEYS[1] still holds
// the version ARGV[2]. A missing version counts as 0. ARGV[3] is the TTL in
// milliseconds, 0 means no expiry.
var setIfVersion = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current ~= tonumber(ARGV[2]) then
	return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
	redis.call('SET', KEYS[2], ARGV[1], 'PX', ttl)
else
	redis.call('SET', KEYS[2], ARGV[1])
end
return 1
`)

type redisProductCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewProductCache returns a [ProductCache] whose entries expire after ttl.
func NewProductCache(client redis.Cmdable, ttl time.Duration) ProductCache {
	return &redisProductCache{client: client, ttl: ttl}
}

func productKey(id int64) string {
	return productKeyPrefix + strconv.FormatInt(id, 10)
}

func versionKey(key string) string {
	return key + versionSuffix
}

func (c *redisProductCache) GetList(ctx context.Context) ([]models.Product, bool, error) {
	var products []models.Product
	found, err := c.get(ctx, productListKey, &products)
	if !found || err != nil {
		return nil, false, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, true, nil
}

func (c *redisProductCache) ListVersion(ctx context.Context) (int64, error) {
	return c.version(ctx, productListKey)
}

func (c *redisProductCache) SetList(ctx context.Context, products []models.Product, version int64) error {
	if products == nil {
		products = []models.Product{}
	}
	return c.set(ctx, productListKey, products, version)
}

func (c *redisProductCache) GetProduct(ctx context.Context, id int64) (models.Product, bool, error) {
	var product models.Product
	found, err := c.get(ctx, productKey(id), &product)
	if !found || err != nil {
		return models.Product{}, false, err
	}
	return product, true, nil
}

func (c *redisProductCache) ProductVersion(ctx context.Context, id int64) (int64, error) {
	return c.version(ctx, productKey(id))
}

func (c *redisProductCache) SetProduct(ctx context.Context, product models.Product, version int64) error {
	return c.set(ctx, productKey(product.ID), product, version)
}

func (c *redisProductCache) Invalidate(ctx context.Context, ids ...int64) error {
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, productListKey)
	for _, id := range ids {
		keys = append(keys, productKey(id))
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range keys {
			pipe.Incr(ctx, versionKey(key))
			pipe.Expire(ctx, versionKey(key), versionTTL)
		}
		pipe.Del(ctx, keys...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}
	return nil
}

func (c *redisProductCache) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}

	if err = json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("%w: %w", ErrDecodingValue, err)
	}
	return true, nil
}

func (c *redisProductCache) version(ctx context.Context, key string) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}
	return version, nil
}

// set stores value unless key was invalidated after version was read.
func (c *redisProductCache) set(ctx context.Context, key string, value any, version int64) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	err = setIfVersion.Run(ctx, c.client,
		[]string{versionKey(key), key},
		data, version, c.ttl.Milliseconds(),
	).Err()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}
	return nil
}
