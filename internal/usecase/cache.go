package usecase

import (
	"context"
	"strings"
	"time"
)

// Cache is the JSON cache the usecases read through. Implementations report a
// miss rather than an error when the backing store is unavailable.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

const (
	marketTrendsKey = "coaching:market-trends"
	marketTrendsTTL = 10 * time.Minute
)

func lockKey(cacheKey string) string {
	cacheKey = strings.TrimSpace(cacheKey)
	if i := strings.IndexByte(cacheKey, ':'); i >= 0 {
		return cacheKey[:i] + ":lock:" + cacheKey[i+1:]
	}
	return "lock:" + cacheKey
}
