package lock

import (
	"context"
	"sync"
	"time"

	"hotel-backend/internal/pkg/clock"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type lease struct {
	token     uuid.UUID
	expiresAt time.Time
}

// MemoryLocker is the single-process fallback when Redis is not configured.
type MemoryLocker struct {
	clk    clock.Clock
	mu     sync.Mutex
	leases map[string]lease
}

func NewMemoryLocker(clk clock.Clock) *MemoryLocker {
	return &MemoryLocker{
		clk:    clk,
		leases: make(map[string]lease),
	}
}

var _ shared.Locker = (*MemoryLocker)(nil)

func (l *MemoryLocker) Acquire(_ context.Context, key string, ttl time.Duration) (shared.Release, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clk.Now()
	if cur, ok := l.leases[key]; ok && now.Before(cur.expiresAt) {
		return nil, errs.Wrap(shared.ErrLockHeld, key)
	}

	token := uuid.New()
	l.leases[key] = lease{token: token, expiresAt: now.Add(ttl)}

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if cur, ok := l.leases[key]; ok && cur.token == token {
			delete(l.leases, key)
		}
		return nil
	}, nil
}
