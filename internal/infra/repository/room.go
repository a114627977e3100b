package repository

import (
	"context"

	"hotel-backend/internal/domain/room"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (sqlc.Rooms, error)
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (int64, error)
	DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) Create(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error {
	_, err := r.queries.CreateRoom(ctx, tx, sqlc.CreateRoomParams{
		ID:           rm.ID(),
		HotelID:      rm.HotelID(),
		CategoryID:   rm.CategoryID(),
		Number:       rm.Number(),
		OutOfService: rm.OutOfService(),
		Description:  rm.Description(),
		AreaSqm:      rm.AreaSqm(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error {
	n, err := r.queries.UpdateRoom(ctx, tx, sqlc.UpdateRoomParams{
		ID:           rm.ID(),
		Description:  rm.Description(),
		OutOfService: rm.OutOfService(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteRoom(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
