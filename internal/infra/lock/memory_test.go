//go:build unit

package lock

import (
	"context"
	"testing"
	"time"

	"hotel-backend/internal/pkg/clock"
	"hotel-backend/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("second acquire fails while held", func(t *testing.T) {
		l := NewMemoryLocker(clock.NewMockClock(time.Now()))

		release, err := l.Acquire(ctx, "provisioning:a", time.Minute)
		require.NoError(t, err)

		_, err = l.Acquire(ctx, "provisioning:a", time.Minute)
		assert.ErrorIs(t, err, shared.ErrLockHeld)

		_, err = l.Acquire(ctx, "provisioning:b", time.Minute)
		assert.NoError(t, err)

		require.NoError(t, release(ctx))
		_, err = l.Acquire(ctx, "provisioning:a", time.Minute)
		assert.NoError(t, err)
	})

	t.Run("expired lease can be taken over", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		l := NewMemoryLocker(clk)

		staleRelease, err := l.Acquire(ctx, "provisioning:a", time.Second)
		require.NoError(t, err)

		clk.Add(2 * time.Second)
		_, err = l.Acquire(ctx, "provisioning:a", time.Minute)
		require.NoError(t, err)

		// the stale holder must not release the new lease
		require.NoError(t, staleRelease(ctx))
		_, err = l.Acquire(ctx, "provisioning:a", time.Minute)
		assert.ErrorIs(t, err, shared.ErrLockHeld)
	})
}
