package market

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/offer-advisor/internal/compensation"
)

type countingProvider struct {
	calls int
	stats *compensation.MarketStats
	err   error
}

func (p *countingProvider) Stats(context.Context, string, string) (*compensation.MarketStats, error) {
	p.calls++
	return p.stats, p.err
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return mr, redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}

func TestCacheServesRepeatedLookups(t *testing.T) {
	mr, client := setupRedis(t)
	next := &countingProvider{stats: &compensation.MarketStats{Average: 60000, Min: 50000, Max: 70000, SampleCount: 8, Currency: "GBP"}}
	c := NewCache(next, client, time.Hour, zap.NewNop())

	first, err := c.Stats(context.Background(), "Backend Developer", "London")
	require.NoError(t, err)
	second, err := c.Stats(context.Background(), "backend developer", "London")
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, time.Hour, mr.TTL(CacheKey("Backend Developer", "London")))

	mr.FastForward(2 * time.Hour)
	_, err = c.Stats(context.Background(), "Backend Developer", "London")
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCacheDoesNotStoreErrors(t *testing.T) {
	mr, client := setupRedis(t)
	next := &countingProvider{err: ErrNoSalaryData}
	c := NewCache(next, client, 0, nil)

	_, err := c.Stats(context.Background(), "Game Developer", "London")
	assert.ErrorIs(t, err, ErrNoSalaryData)
	assert.False(t, mr.Exists(CacheKey("Game Developer", "London")))
}

func TestCacheDropsUnreadableEntry(t *testing.T) {
	mr, client := setupRedis(t)
	require.NoError(t, mr.Set(CacheKey("Data Engineer", "London"), "not json"))

	next := &countingProvider{stats: &compensation.MarketStats{Average: 1, Min: 1, Max: 1, SampleCount: 1}}
	c := NewCache(next, client, time.Minute, nil)

	stats, err := c.Stats(context.Background(), "Data Engineer", "London")
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, 1, stats.SampleCount)
}

func TestCacheFallsBackWhenRedisIsDown(t *testing.T) {
	mr, client := setupRedis(t)
	mr.Close()

	core, observed := observer.New(zapcore.WarnLevel)
	next := &countingProvider{stats: &compensation.MarketStats{Average: 1, Min: 1, Max: 1, SampleCount: 1}}
	c := NewCache(next, client, time.Minute, zap.New(core))

	_, err := c.Stats(context.Background(), "Data Engineer", "London")
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, 1, observed.FilterMessage("market cache lookup failed").Len())
	assert.Equal(t, 1, observed.FilterMessage("market cache store failed").Len())
}
