//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetReservationViewByIDRow), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationViewsByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.ListReservationViewsByHotelRow, error) {
	args := m.Called(ctx, db, hotelID)
	return args.Get(0).([]sqlc.ListReservationViewsByHotelRow), args.Error(1)
}

func TestReservationReadStore_FindByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetReservationViewByID", mock.Anything, mock.Anything, id).Return(sqlc.GetReservationViewByIDRow{}, pgx.ErrNoRows)

		view, err := NewReservationReadStore(mockQueries, nil).FindByID(context.Background(), id)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("success", func(t *testing.T) {
		row := sqlc.GetReservationViewByIDRow{
			ID:              uuid.New(),
			HotelID:         uuid.New(),
			RoomID:          uuid.New(),
			CustomerID:      uuid.New(),
			StartDate:       pgconv.DateToPgtype(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)),
			EndDate:         pgconv.DateToPgtype(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)),
			RoomNumber:      204,
			CustomerName:    "Jane",
			CustomerSurname: "Doe",
		}
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetReservationViewByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		view, err := NewReservationReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, int32(204), view.RoomNumber)
		assert.Equal(t, "2025-06-13", view.EndDate.Format(time.DateOnly))
	})
}

func TestReservationReadStore_ListByHotel(t *testing.T) {
	hotelID := uuid.New()
	row := sqlc.ListReservationViewsByHotelRow{
		ID:               uuid.New(),
		HotelID:          hotelID,
		RoomID:           uuid.New(),
		CustomerID:       uuid.New(),
		StartDate:        pgconv.DateToPgtype(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)),
		EndDate:          pgconv.DateToPgtype(time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)),
		RoomNumber:       101,
		RoomDescription:  "Double",
		RoomOutOfService: true,
		CustomerName:     "Jane",
		CustomerSurname:  "Doe",
		CustomerDocument: "X1234567",
		CustomerPhone:    "+34600000000",
	}

	mockQueries := new(MockReservationViewQueries)
	mockQueries.On("ListReservationViewsByHotel", mock.Anything, mock.Anything, hotelID).Return([]sqlc.ListReservationViewsByHotelRow{row}, nil)

	details, err := NewReservationReadStore(mockQueries, nil).ListByHotel(context.Background(), hotelID)

	require.NoError(t, err)
	require.Len(t, details, 1)
	d := details[0]
	assert.Equal(t, row.RoomID, d.Room.ID)
	assert.Equal(t, int32(101), d.Room.Number)
	assert.True(t, d.Room.OutOfService)
	assert.Equal(t, row.CustomerID, d.Customer.ID)
	assert.Equal(t, "X1234567", d.Customer.Document)
	assert.Equal(t, "+34600000000", d.Customer.Phone)
	mockQueries.AssertNumberOfCalls(t, "ListReservationViewsByHotel", 1)
}
