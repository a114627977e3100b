package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-backend/internal/pkg/errs"
)

var (
	ErrHotelNotFound = errs.New("hotel not found")
	ErrAccessDenied  = errs.New("access denied")
)

type HotelReadStore interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*HotelView, error)
	Categories(ctx context.Context, hotelID uuid.UUID) ([]*CategoryView, error)
}

type HotelQueries interface {
	ListHotels(ctx context.Context) ([]*HotelView, error)
	ListCategories(ctx context.Context, hotelID uuid.UUID) ([]*CategoryView, error)
}

type hotelQueriesImpl struct {
	readStore HotelReadStore
}

func NewHotelQueries(readStore HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{readStore: readStore}
}

func (q *hotelQueriesImpl) ListHotels(ctx context.Context) ([]*HotelView, error) {
	return q.readStore.List(ctx)
}

func (q *hotelQueriesImpl) ListCategories(ctx context.Context, hotelID uuid.UUID) ([]*CategoryView, error) {
	if err := requireHotel(ctx, q.readStore, hotelID); err != nil {
		return nil, err
	}
	return q.readStore.Categories(ctx, hotelID)
}

func requireHotel(ctx context.Context, hotels HotelReadStore, hotelID uuid.UUID) error {
	exists, err := hotels.Exists(ctx, hotelID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrHotelNotFound
	}
	return nil
}
