package cache

import "errors"

var (
	ErrRedisUnavailable = errors.New("redis is unavailable")
	ErrDecodingValue    = errors.New("error decoding cached value")
	ErrEncodingValue    = errors.New("error encoding value for cache")
)
