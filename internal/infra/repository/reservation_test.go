//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) AcquireRoomLock(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) error {
	args := m.Called(ctx, db, roomID)
	return args.Error(0)
}

func (m *MockReservationWriteQueries) ListStaysByRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStaysByRoomParams) ([]sqlc.ListStaysByRoomRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListStaysByRoomRow)
	return rows, args.Error(1)
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockReservationWriteQueries) DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestReservationRepository_StaysByRoom(t *testing.T) {
	ctx := context.Background()
	roomID, hotelID := uuid.New(), uuid.New()
	day := func(s string) time.Time {
		d, err := time.Parse(time.DateOnly, s)
		require.NoError(t, err)
		return d
	}

	mockQueries := new(MockReservationWriteQueries)
	tx := &mockDBTX{}
	mockQueries.On("ListStaysByRoom", ctx, tx, sqlc.ListStaysByRoomParams{RoomID: roomID, HotelID: hotelID}).
		Return([]sqlc.ListStaysByRoomRow{
			{StartDate: pgconv.DateToPgtype(day("2025-07-10")), EndDate: pgconv.DateToPgtype(day("2025-07-20"))},
			{StartDate: pgconv.DateToPgtype(day("2025-08-01")), EndDate: pgconv.DateToPgtype(day("2025-08-03"))},
		}, nil)

	repo := NewReservationRepository(mockQueries, tx)
	stays, err := repo.StaysByRoom(ctx, tx, roomID, hotelID)

	require.NoError(t, err)
	require.Len(t, stays, 2)
	assert.Equal(t, "[2025-07-10,2025-07-20)", stays[0].String())
	assert.Equal(t, 2, stays[1].Nights())
	mockQueries.AssertExpectations(t)
}

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()
	res := reservation.ReconstructReservation(uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		reservation.MustStay("2025-07-10", "2025-07-12"), time.Time{})

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{
			name:     "overlap rejected by exclusion constraint",
			mockErr:  &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"},
			wantKind: infra.KindConflict,
		},
		{
			name:     "customer removed concurrently",
			mockErr:  &pgconn.PgError{Code: "23503", ConstraintName: "reservations_customer_id_fkey"},
			wantKind: infra.KindForeignKeyViolated,
		},
		{
			name:     "database error",
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationWriteQueries)
			tx := &mockDBTX{}
			mockQueries.On("CreateReservation", ctx, tx, mock.MatchedBy(func(p sqlc.CreateReservationParams) bool {
				return p.ID == res.ID() && p.RoomID == res.RoomID() &&
					pgconv.DateFromPgtype(p.StartDate).Equal(res.Stay().Start()) &&
					pgconv.DateFromPgtype(p.EndDate).Equal(res.Stay().End())
			})).Return(sqlc.Reservations{}, tt.mockErr)

			repo := NewReservationRepository(mockQueries, tx)
			err := repo.Create(ctx, tx, res)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name     string
		rows     int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "not found", rows: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationWriteQueries)
			tx := &mockDBTX{}
			mockQueries.On("DeleteReservation", ctx, tx, id).Return(tt.rows, tt.mockErr)

			err := NewReservationRepository(mockQueries, tx).Delete(ctx, tx, id)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
		})
	}
}
