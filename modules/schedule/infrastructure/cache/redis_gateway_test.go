package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/campusgrid/schedule-api/modules/schedule/infrastructure/cache"
	"github.com/campusgrid/schedule-api/pkg/logging"
)

func unreachableGateway(t *testing.T) *cache.RedisGateway {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	return cache.NewRedisGateway(client, logging.ConsoleLogger(logrus.PanicLevel))
}

func TestGet_UnreachableRedisIsAMiss(t *testing.T) {
	t.Parallel()

	gateway := unreachableGateway(t)

	value, ok := gateway.Get(context.Background(), "schedule:group:221703")
	require.False(t, ok)
	require.Nil(t, value)
}

func TestSet_UnreachableRedisIsSwallowed(t *testing.T) {
	t.Parallel()

	gateway := unreachableGateway(t)

	require.NotPanics(t, func() {
		gateway.Set(context.Background(), "schedule:group:221703", []byte("{}"), time.Minute)
	})
}
