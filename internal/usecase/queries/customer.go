package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-backend/internal/domain/customer"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"
)

var (
	ErrCustomerNotFound = errs.New("customer not found")
	ErrInvalidQuery     = errs.New("invalid query")
)

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	FindByUsername(ctx context.Context, username string) (*CustomerView, string, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*CustomerView, error)
	SearchByName(ctx context.Context, hotelID uuid.UUID, search customer.NameSearch) ([]*CustomerView, error)
}

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*CustomerView, error)
	ListForHotel(ctx context.Context, hotelID uuid.UUID, actor shared.Actor) ([]*CustomerView, error)
	// SearchByName needs exactly one of name or surname; blanks count as
	// absent.
	SearchByName(ctx context.Context, hotelID uuid.UUID, name, surname string, actor shared.Actor) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
	hotels    HotelReadStore
}

func NewCustomerQueries(readStore CustomerReadStore, hotels HotelReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore, hotels: hotels}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*CustomerView, error) {
	if !actor.CanAccessCustomer(id) {
		return nil, ErrAccessDenied
	}
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *customerQueriesImpl) ListForHotel(ctx context.Context, hotelID uuid.UUID, actor shared.Actor) ([]*CustomerView, error) {
	if !actor.CanAccessHotel(hotelID) {
		return nil, ErrAccessDenied
	}
	if err := requireHotel(ctx, q.hotels, hotelID); err != nil {
		return nil, err
	}
	return q.readStore.ListByHotel(ctx, hotelID)
}

func (q *customerQueriesImpl) SearchByName(ctx context.Context, hotelID uuid.UUID, name, surname string, actor shared.Actor) ([]*CustomerView, error) {
	search, err := customer.NewNameSearch(name, surname)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}
	if !actor.CanAccessHotel(hotelID) {
		return nil, ErrAccessDenied
	}
	if err = requireHotel(ctx, q.hotels, hotelID); err != nil {
		return nil, err
	}
	return q.readStore.SearchByName(ctx, hotelID, search)
}
