//go:build unit

package repository

import (
	"context"
	"testing"

	"hotel-backend/internal/domain/provisioning"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProvisioningWriteQueries struct {
	mock.Mock
}

func (m *MockProvisioningWriteQueries) CreateProvisioningIntent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProvisioningIntentParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProvisioningWriteQueries) ListProvisioningIntentsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.ProvisioningIntents, error) {
	args := m.Called(ctx, db, customerID)
	rows, _ := args.Get(0).([]sqlc.ProvisioningIntents)
	return rows, args.Error(1)
}

func (m *MockProvisioningWriteQueries) UpdateProvisioningIntent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProvisioningIntentParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockProvisioningWriteQueries) DeleteProvisioningIntentsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProvisioningWriteQueries) ListCustomersWithOutstandingIntents(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCustomersWithOutstandingIntentsParams) ([]uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

func (m *MockProvisioningWriteQueries) UpsertCustomerHotelLink(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCustomerHotelLinkParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockProvisioningWriteQueries) ListCustomerHotelLinks(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.CustomerHotels, error) {
	args := m.Called(ctx, db, customerID)
	rows, _ := args.Get(0).([]sqlc.CustomerHotels)
	return rows, args.Error(1)
}

func (m *MockProvisioningWriteQueries) DeleteCustomerHotelLinks(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func TestProvisioningRepository_CreateIntents(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	intents := []*provisioning.Intent{
		provisioning.NewIntent(customerID, uuid.New()),
		provisioning.NewIntent(customerID, uuid.New()),
	}

	mockQueries := new(MockProvisioningWriteQueries)
	tx := &mockDBTX{}
	for _, in := range intents {
		mockQueries.On("CreateProvisioningIntent", ctx, tx, sqlc.CreateProvisioningIntentParams{
			ID:         in.ID(),
			CustomerID: customerID,
			HotelID:    in.HotelID(),
		}).Return(int64(1), nil).Once()
	}

	err := NewProvisioningRepository(mockQueries, tx).CreateIntents(ctx, tx, intents)

	require.NoError(t, err)
	mockQueries.AssertExpectations(t)
}

func TestProvisioningRepository_ListIntents(t *testing.T) {
	ctx := context.Background()
	customerID, hotelID := uuid.New(), uuid.New()

	t.Run("rows become intents", func(t *testing.T) {
		mockQueries := new(MockProvisioningWriteQueries)
		tx := &mockDBTX{}
		mockQueries.On("ListProvisioningIntentsByCustomer", ctx, tx, customerID).Return([]sqlc.ProvisioningIntents{
			{
				ID:                 uuid.New(),
				CustomerID:         customerID,
				HotelID:            hotelID,
				Step:               "customer_created",
				ProviderCustomerID: pgtype.Text{String: "cus_1", Valid: true},
				Attempts:           2,
				LastError:          pgtype.Text{String: "rate limited", Valid: true},
			},
		}, nil)

		intents, err := NewProvisioningRepository(mockQueries, tx).ListIntents(ctx, tx, customerID)

		require.NoError(t, err)
		require.Len(t, intents, 1)
		assert.Equal(t, provisioning.StepCustomerCreated, intents[0].Step())
		assert.Equal(t, "cus_1", intents[0].ProviderCustomerID())
		assert.Equal(t, int32(2), intents[0].Attempts())
		assert.Equal(t, "rate limited", intents[0].LastError())
	})

	t.Run("unknown step", func(t *testing.T) {
		mockQueries := new(MockProvisioningWriteQueries)
		tx := &mockDBTX{}
		mockQueries.On("ListProvisioningIntentsByCustomer", ctx, tx, customerID).Return([]sqlc.ProvisioningIntents{
			{ID: uuid.New(), CustomerID: customerID, HotelID: hotelID, Step: "bogus"},
		}, nil)

		_, err := NewProvisioningRepository(mockQueries, tx).ListIntents(ctx, tx, customerID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, provisioning.ErrInvalidStep)
	})
}

func TestProvisioningRepository_SaveIntent(t *testing.T) {
	ctx := context.Background()
	in := provisioning.NewIntent(uuid.New(), uuid.New())
	require.NoError(t, in.MarkCustomerCreated("cus_9"))

	mockQueries := new(MockProvisioningWriteQueries)
	tx := &mockDBTX{}
	mockQueries.On("UpdateProvisioningIntent", ctx, tx, sqlc.UpdateProvisioningIntentParams{
		ID:                 in.ID(),
		Step:               "customer_created",
		ProviderCustomerID: pgconv.StringToPgtype("cus_9"),
		Attempts:           0,
		LastError:          pgtype.Text{},
	}).Return(nil)

	err := NewProvisioningRepository(mockQueries, tx).SaveIntent(ctx, tx, in)

	require.NoError(t, err)
	mockQueries.AssertExpectations(t)
}

func TestProvisioningRepository_Links(t *testing.T) {
	ctx := context.Background()
	customerID, hotelID := uuid.New(), uuid.New()

	mockQueries := new(MockProvisioningWriteQueries)
	tx := &mockDBTX{}
	mockQueries.On("UpsertCustomerHotelLink", ctx, tx, sqlc.UpsertCustomerHotelLinkParams{
		CustomerID:         customerID,
		HotelID:            hotelID,
		ProviderCustomerID: "cus_1",
	}).Return(nil)
	mockQueries.On("ListCustomerHotelLinks", ctx, tx, customerID).Return([]sqlc.CustomerHotels{
		{CustomerID: customerID, HotelID: hotelID, ProviderCustomerID: "cus_1"},
	}, nil)
	mockQueries.On("DeleteCustomerHotelLinks", ctx, tx, customerID).Return(int64(1), nil)

	repo := NewProvisioningRepository(mockQueries, tx)
	link := shared.CustomerHotelLink{CustomerID: customerID, HotelID: hotelID, ProviderCustomerID: "cus_1"}

	require.NoError(t, repo.UpsertLink(ctx, tx, link))
	links, err := repo.ListLinks(ctx, tx, customerID)
	require.NoError(t, err)
	assert.Equal(t, []shared.CustomerHotelLink{link}, links)
	n, err := repo.DeleteLinks(ctx, tx, customerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	mockQueries.AssertExpectations(t)
}

func TestProvisioningRepository_OutstandingCustomers(t *testing.T) {
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mockQueries := new(MockProvisioningWriteQueries)
	tx := &mockDBTX{}
	mockQueries.On("ListCustomersWithOutstandingIntents", ctx, tx, sqlc.ListCustomersWithOutstandingIntentsParams{
		MaxAttempts: 5,
		RowLimit:    50,
	}).Return(ids, nil)

	got, err := NewProvisioningRepository(mockQueries, tx).OutstandingCustomers(ctx, tx, 5, 50)

	require.NoError(t, err)
	assert.Equal(t, ids, got)
	mockQueries.AssertExpectations(t)
}
