package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*ReservationDetail, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*ReservationView, error)
	// GetByIDSystem skips access checks; used to render a reservation the
	// caller just created.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListForHotel(ctx context.Context, hotelID uuid.UUID, actor shared.Actor) ([]*ReservationDetail, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
	hotels    HotelReadStore
}

func NewReservationQueries(readStore ReservationReadStore, hotels HotelReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore, hotels: hotels}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	// hide existence from callers outside the reservation's scope
	if !actor.CanAccessHotel(view.HotelID) || !actor.CanAccessCustomer(view.CustomerID) {
		return nil, ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListForHotel(ctx context.Context, hotelID uuid.UUID, actor shared.Actor) ([]*ReservationDetail, error) {
	if !actor.CanAccessHotel(hotelID) {
		return nil, ErrAccessDenied
	}
	if err := requireHotel(ctx, q.hotels, hotelID); err != nil {
		return nil, err
	}
	return q.readStore.ListByHotel(ctx, hotelID)
}
