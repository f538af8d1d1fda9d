// Package cache implements the Redis-backed gateway used by the schedule and
// system services. The cache is an optimization, never a dependency: every
// fault is swallowed here so callers fall through to storage.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/campusgrid/schedule-api/pkg/metrics"
)

type RedisGateway struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewRedisGateway(client *redis.Client, logger *logrus.Logger) *RedisGateway {
	return &RedisGateway{client: client, logger: logger}
}

func (g *RedisGateway) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := g.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			metrics.CacheErrors.Inc()
			g.logger.WithError(err).WithField("key", key).Warn("cache read failed")
		}
		metrics.CacheMisses.Inc()
		return nil, false
	}
	if len(value) == 0 {
		metrics.CacheMisses.Inc()
		return nil, false
	}
	metrics.CacheHits.Inc()
	return value, true
}

func (g *RedisGateway) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := g.client.Set(ctx, key, value, ttl).Err(); err != nil {
		metrics.CacheErrors.Inc()
		g.logger.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}
