//go:build unit

package queries_test

import (
	"context"

	"hotel-backend/internal/domain/customer"
	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type hotelStoreMock struct{ mock.Mock }

func (m *hotelStoreMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *hotelStoreMock) List(ctx context.Context) ([]*queries.HotelView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*queries.HotelView), args.Error(1)
}

func (m *hotelStoreMock) Categories(ctx context.Context, hotelID uuid.UUID) ([]*queries.CategoryView, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]*queries.CategoryView), args.Error(1)
}

type customerStoreMock struct{ mock.Mock }

func (m *customerStoreMock) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.CustomerView)
	return view, args.Error(1)
}

func (m *customerStoreMock) FindByUsername(ctx context.Context, username string) (*queries.CustomerView, string, error) {
	args := m.Called(ctx, username)
	view, _ := args.Get(0).(*queries.CustomerView)
	return view, args.String(1), args.Error(2)
}

func (m *customerStoreMock) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.CustomerView, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]*queries.CustomerView), args.Error(1)
}

func (m *customerStoreMock) SearchByName(ctx context.Context, hotelID uuid.UUID, search customer.NameSearch) ([]*queries.CustomerView, error) {
	args := m.Called(ctx, hotelID, search)
	return args.Get(0).([]*queries.CustomerView), args.Error(1)
}

type reservationStoreMock struct{ mock.Mock }

func (m *reservationStoreMock) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.ReservationView)
	return view, args.Error(1)
}

func (m *reservationStoreMock) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.ReservationDetail, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]*queries.ReservationDetail), args.Error(1)
}

type roomStoreMock struct{ mock.Mock }

func (m *roomStoreMock) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.RoomView)
	return view, args.Error(1)
}

func (m *roomStoreMock) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.RoomView, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]*queries.RoomView), args.Error(1)
}

type provisioningStoreMock struct{ mock.Mock }

func (m *provisioningStoreMock) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]queries.ProvisioningHotelView, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]queries.ProvisioningHotelView), args.Error(1)
}

type userStoreMock struct{ mock.Mock }

func (m *userStoreMock) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.AuthorizedUserView)
	return view, args.Error(1)
}

func (m *userStoreMock) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	args := m.Called(ctx, email)
	view, _ := args.Get(0).(*queries.AuthorizedUserView)
	return view, args.String(1), args.Error(2)
}
