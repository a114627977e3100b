//go:build e2e

package lock

import (
	"context"
	"net"
	"testing"
	"time"

	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = c.Terminate(context.Background())
	})

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	rdb, cleanup, err := NewRedisClient(config.RedisConfig{Addr: net.JoinHostPort(host, port.Port())})
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return rdb
}

func TestRedisLocker(t *testing.T) {
	rdb := startRedis(t)
	l := NewRedisLocker(rdb)
	ctx := context.Background()

	t.Run("second acquire fails while held", func(t *testing.T) {
		release, err := l.Acquire(ctx, "provisioning:a", time.Minute)
		require.NoError(t, err)

		_, err = l.Acquire(ctx, "provisioning:a", time.Minute)
		assert.ErrorIs(t, err, shared.ErrLockHeld)

		other, err := l.Acquire(ctx, "provisioning:b", time.Minute)
		require.NoError(t, err)
		require.NoError(t, other(ctx))

		require.NoError(t, release(ctx))
		assert.Zero(t, rdb.Exists(ctx, keyPrefix+"provisioning:a").Val())

		again, err := l.Acquire(ctx, "provisioning:a", time.Minute)
		require.NoError(t, err)
		require.NoError(t, again(ctx))
	})

	t.Run("lease expires after ttl", func(t *testing.T) {
		_, err := l.Acquire(ctx, "provisioning:c", 200*time.Millisecond)
		require.NoError(t, err)

		ttl := rdb.PTTL(ctx, keyPrefix+"provisioning:c").Val()
		assert.Greater(t, int64(ttl), int64(0))
		assert.LessOrEqual(t, int64(ttl), int64(200*time.Millisecond))

		var release shared.Release
		require.Eventually(t, func() bool {
			release, err = l.Acquire(ctx, "provisioning:c", time.Minute)
			return err == nil
		}, 5*time.Second, 50*time.Millisecond)
		require.NoError(t, release(ctx))
	})

	t.Run("stale release keeps the new holder's lease", func(t *testing.T) {
		stale, err := l.Acquire(ctx, "provisioning:d", 100*time.Millisecond)
		require.NoError(t, err)

		var current shared.Release
		require.Eventually(t, func() bool {
			current, err = l.Acquire(ctx, "provisioning:d", time.Minute)
			return err == nil
		}, 5*time.Second, 50*time.Millisecond)

		require.NoError(t, stale(ctx))
		assert.Equal(t, int64(1), rdb.Exists(ctx, keyPrefix+"provisioning:d").Val())

		_, err = l.Acquire(ctx, "provisioning:d", time.Minute)
		assert.ErrorIs(t, err, shared.ErrLockHeld)

		require.NoError(t, current(ctx))
		assert.Zero(t, rdb.Exists(ctx, keyPrefix+"provisioning:d").Val())
	})

	t.Run("release twice is harmless", func(t *testing.T) {
		release, err := l.Acquire(ctx, "provisioning:e", time.Minute)
		require.NoError(t, err)

		require.NoError(t, release(ctx))
		assert.NoError(t, release(ctx))
	})

	t.Run("unreachable server is an error, not a held lock", func(t *testing.T) {
		down := NewRedisLocker(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1}))

		_, err := down.Acquire(ctx, "provisioning:f", time.Minute)
		require.Error(t, err)
		assert.NotErrorIs(t, err, shared.ErrLockHeld)
	})
}
