//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIdempotencyWriteQueries struct {
	mock.Mock
}

func (m *MockIdempotencyWriteQueries) TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdempotencyWriteQueries) ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdempotencyWriteQueries) UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockIdempotencyWriteQueries) DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	key, actor := uuid.New(), uuid.New()
	expires := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		rows      int64
		mockErr   error
		wantNew   bool
		wantError bool
	}{
		{name: "new key", rows: 1, wantNew: true},
		{name: "existing key", rows: 0, wantNew: false},
		{name: "database error", mockErr: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockIdempotencyWriteQueries)
			tx := &mockDBTX{}
			mockQueries.On("TryInsertIdempotencyKey", ctx, tx, mock.MatchedBy(func(p sqlc.TryInsertIdempotencyKeyParams) bool {
				return p.Key == key && p.ActorID == actor && p.RequestHash == "h1" && p.ExpiresAt.Time.Equal(expires)
			})).Return(tt.rows, tt.mockErr)

			inserted, err := NewIdempotencyRepository(mockQueries, tx).TryInsert(ctx, tx, key, actor, "POST /api/reservations", "h1", expires)

			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNew, inserted)
		})
	}
}

func TestIdempotencyRepository_ClaimExpired(t *testing.T) {
	ctx := context.Background()
	key, actor := uuid.New(), uuid.New()

	mockQueries := new(MockIdempotencyWriteQueries)
	tx := &mockDBTX{}
	mockQueries.On("ClaimExpiredIdempotencyKey", ctx, tx, mock.Anything).Return(int64(0), nil)

	claimed, err := NewIdempotencyRepository(mockQueries, tx).ClaimExpired(ctx, tx, key, actor, "h2", time.Now())

	require.NoError(t, err)
	assert.False(t, claimed)
}
