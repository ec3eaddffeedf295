package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "rate_limit:"

// incrWithWindow counts a hit and gives the key the window TTL when it has
// none, so a counter never outlives its window.
var incrWithWindow = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return count
`)

// fixedWindowLimiter allows limit hits per key within each window. The window
// starts with the first hit of a key.
type fixedWindowLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

func NewRateLimiter(client redis.Cmdable, limit int64, window time.Duration) RateLimiter {
	return &fixedWindowLimiter{client: client, limit: limit, window: window}
}

func (l *fixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	key = rateLimitKeyPrefix + key

	count, err := incrWithWindow.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}

	return count <= l.limit, nil
}
