package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spigell/offer-advisor/internal/compensation"
)

const (
	DefaultCacheTTL = 24 * time.Hour
	cacheKeyPrefix  = "offer-advisor:market:"
)

// Cache keeps provider results in redis. Redis failures are logged and the
// wrapped provider is queried instead.
type Cache struct {
	next   Provider
	client redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

func NewCache(next Provider, client redis.Cmdable, ttl time.Duration, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Cache{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *Cache) Stats(ctx context.Context, title, location string) (*compensation.MarketStats, error) {
	key := CacheKey(title, location)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var stats compensation.MarketStats
		if err := json.Unmarshal(data, &stats); err == nil {
			c.logger.Debug("market stats served from cache", zap.String("key", key))
			return &stats, nil
		}
		c.logger.Warn("dropping unreadable cache entry", zap.String("key", key))
	case errors.Is(err, redis.Nil):
		// miss
	default:
		c.logger.Warn("market cache lookup failed", zap.String("key", key), zap.Error(err))
	}

	stats, err := c.next.Stats(ctx, title, location)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("encode market stats: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("market cache store failed", zap.String("key", key), zap.Error(err))
	}

	return stats, nil
}

// CacheKey is case and whitespace insensitive.
func CacheKey(title, location string) string {
	norm := func(s string) string {
		return strings.Join(strings.Fields(strings.ToLower(s)), " ")
	}
	return cacheKeyPrefix + norm(title) + "|" + norm(location)
}
