//go:build unit

package readstore

import (
	"context"
	"testing"

	"hotel-backend/internal/domain/customer"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerReadQueries struct {
	mock.Mock
}

func (m *MockCustomerReadQueries) GetCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Customers, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Customers), args.Error(1)
}

func (m *MockCustomerReadQueries) GetCustomerByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Customers, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(sqlc.Customers), args.Error(1)
}

func (m *MockCustomerReadQueries) CustomerIdentityTaken(ctx context.Context, db sqlc.DBTX, arg sqlc.CustomerIdentityTakenParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerReadQueries) ListCustomersByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.Customers, error) {
	args := m.Called(ctx, db, hotelID)
	return args.Get(0).([]sqlc.Customers), args.Error(1)
}

func (m *MockCustomerReadQueries) SearchCustomersByNamePrefix(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchCustomersByNamePrefixParams) ([]sqlc.Customers, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Customers), args.Error(1)
}

func (m *MockCustomerReadQueries) SearchCustomersBySurnamePrefix(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchCustomersBySurnamePrefixParams) ([]sqlc.Customers, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Customers), args.Error(1)
}

func TestCustomerReadStore_FindByUsername(t *testing.T) {
	row := builder.NewCustomerBuilder().BuildInfra()

	t.Run("success returns hash", func(t *testing.T) {
		mockQueries := new(MockCustomerReadQueries)
		mockQueries.On("GetCustomerByUsername", mock.Anything, mock.Anything, row.Username).Return(row, nil)

		view, hash, err := NewCustomerReadStore(mockQueries, nil).FindByUsername(context.Background(), row.Username)

		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.Equal(t, row.Document, view.Document)
		assert.Equal(t, row.PasswordHash, hash)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockCustomerReadQueries)
		mockQueries.On("GetCustomerByUsername", mock.Anything, mock.Anything, "ghost").Return(sqlc.Customers{}, pgx.ErrNoRows)

		view, hash, err := NewCustomerReadStore(mockQueries, nil).FindByUsername(context.Background(), "ghost")

		require.Error(t, err)
		assert.Nil(t, view)
		assert.Empty(t, hash)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCustomerReadStore_SearchByName(t *testing.T) {
	hotelID := uuid.New()
	rows := []sqlc.Customers{builder.NewCustomerBuilder().BuildInfra()}

	t.Run("name prefix", func(t *testing.T) {
		search, err := customer.NewNameSearch("Ja", "")
		require.NoError(t, err)

		mockQueries := new(MockCustomerReadQueries)
		mockQueries.On("SearchCustomersByNamePrefix", mock.Anything, mock.Anything, sqlc.SearchCustomersByNamePrefixParams{
			HotelID: hotelID,
			Pattern: "Ja%",
		}).Return(rows, nil)

		views, err := NewCustomerReadStore(mockQueries, nil).SearchByName(context.Background(), hotelID, search)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, rows[0].ID, views[0].ID)
		mockQueries.AssertNotCalled(t, "SearchCustomersBySurnamePrefix", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("surname prefix with wildcards escaped", func(t *testing.T) {
		search, err := customer.NewNameSearch(" ", "D_e%")
		require.NoError(t, err)

		mockQueries := new(MockCustomerReadQueries)
		mockQueries.On("SearchCustomersBySurnamePrefix", mock.Anything, mock.Anything, sqlc.SearchCustomersBySurnamePrefixParams{
			HotelID: hotelID,
			Pattern: `D\_e\%%`,
		}).Return([]sqlc.Customers{}, nil)

		views, err := NewCustomerReadStore(mockQueries, nil).SearchByName(context.Background(), hotelID, search)

		require.NoError(t, err)
		assert.Empty(t, views)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		search, err := customer.NewNameSearch("Ja", "")
		require.NoError(t, err)

		mockQueries := new(MockCustomerReadQueries)
		mockQueries.On("SearchCustomersByNamePrefix", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.Customers(nil), assert.AnError)

		_, err = NewCustomerReadStore(mockQueries, nil).SearchByName(context.Background(), hotelID, search)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCustomerReadStore_IdentityTaken(t *testing.T) {
	mockQueries := new(MockCustomerReadQueries)
	mockQueries.On("CustomerIdentityTaken", mock.Anything, mock.Anything, sqlc.CustomerIdentityTakenParams{
		Document: "X1234567",
		Username: "jdoe",
	}).Return(true, nil)

	taken, err := NewCustomerReadStore(mockQueries, nil).IdentityTaken(context.Background(), "X1234567", "jdoe")

	require.NoError(t, err)
	assert.True(t, taken)
}
