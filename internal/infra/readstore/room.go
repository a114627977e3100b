package readstore

import (
	"context"

	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoomViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomViewByIDRow, error)
	ListRoomViewsByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.ListRoomViewsByHotelRow, error)
	RoomNumberExists(ctx context.Context, db sqlc.DBTX, arg sqlc.RoomNumberExistsParams) (bool, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return toRoomView(sqlc.ListRoomViewsByHotelRow(row)), nil
}

func (r *RoomReadStore) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRoomViewsByHotel(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms by hotel", err)
	}

	views := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		views[i] = toRoomView(row)
	}
	return views, nil
}

func (r *RoomReadStore) NumberTaken(ctx context.Context, hotelID uuid.UUID, number int32) (bool, error) {
	taken, err := r.queries.RoomNumberExists(ctx, r.db, sqlc.RoomNumberExistsParams{
		HotelID: hotelID,
		Number:  number,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room number", err)
	}
	return taken, nil
}

func toRoomView(row sqlc.ListRoomViewsByHotelRow) *queries.RoomView {
	return &queries.RoomView{
		ID:           row.ID,
		HotelID:      row.HotelID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		PriceCents:   row.PriceCents,
		Number:       row.Number,
		OutOfService: row.OutOfService,
		Description:  row.Description,
		AreaSqm:      row.AreaSqm,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
