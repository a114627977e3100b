package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/errs"
)

var ErrRoomNotFound = errs.New("room not found")

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
	hotels    HotelReadStore
}

func NewRoomQueries(readStore RoomReadStore, hotels HotelReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore, hotels: hotels}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *roomQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error) {
	if err := requireHotel(ctx, q.hotels, hotelID); err != nil {
		return nil, err
	}
	return q.readStore.ListByHotel(ctx, hotelID)
}
