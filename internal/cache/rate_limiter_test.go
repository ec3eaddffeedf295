package cache

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-gift-catalog/internal/config"
	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	l := NewRateLimiter(client, 2, time.Minute)

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "hit %d", i+1)
	}

	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	// other keys have their own window
	ok, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, time.Minute, mr.TTL("rate_limit:10.0.0.1"))

	mr.FastForward(time.Minute + time.Second)
	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_RedisDown(t *testing.T) {
	mr, client := newTestRedis(t)
	l := NewRateLimiter(client, 2, time.Minute)
	mr.Close()

	_, err := l.Allow(context.Background(), "10.0.0.1")
	assert.ErrorIs(t, err, ErrRedisUnavailable)
}

func TestRateLimiter_RestoresMissingWindow(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	l := NewRateLimiter(client, 2, time.Minute)

	// a counter over the limit that lost its expiry
	require.NoError(t, mr.Set("rate_limit:10.0.0.1", "5"))

	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, mr.TTL("rate_limit:10.0.0.1"))

	mr.FastForward(time.Minute + time.Second)
	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_WindowNotExtendedByLaterHits(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	l := NewRateLimiter(client, 10, time.Minute)

	_, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)

	mr.FastForward(30 * time.Second)
	_, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, mr.TTL("rate_limit:10.0.0.1"))
}

func TestNewRedisClient(t *testing.T) {
	mr, _ := newTestRedis(t)
	addr := mr.Addr()

	client, err := NewRedisClient(context.Background(), config.Cache{RedisAddress: addr}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	mr.Close()
	_, err = NewRedisClient(context.Background(), config.Cache{RedisAddress: addr}, logger.Nop())
	assert.ErrorIs(t, err, ErrRedisUnavailable)
}
