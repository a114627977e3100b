package repository

import (
	"context"

	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationWriteQueries interface {
	AcquireRoomLock(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) error
	ListStaysByRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStaysByRoomParams) ([]sqlc.ListStaysByRoomRow, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// LockRoom serializes bookings on roomID until the transaction ends.
func (r *ReservationRepository) LockRoom(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) error {
	if err := r.queries.AcquireRoomLock(ctx, tx, roomID); err != nil {
		return infra.WrapRepoErr("failed to lock room", err)
	}
	return nil
}

func (r *ReservationRepository) StaysByRoom(ctx context.Context, tx sqlc.DBTX, roomID, hotelID uuid.UUID) ([]reservation.Stay, error) {
	rows, err := r.queries.ListStaysByRoom(ctx, tx, sqlc.ListStaysByRoomParams{
		RoomID:  roomID,
		HotelID: hotelID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stays by room", err)
	}

	stays := make([]reservation.Stay, 0, len(rows))
	for _, row := range rows {
		stay, err := reservation.NewStay(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
		if err != nil {
			return nil, infra.WrapRepoErr("stored stay is invalid", err)
		}
		stays = append(stays, stay)
	}
	return stays, nil
}

// Create inserts res. An overlap caught by the exclusion constraint is
// reported as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	_, err := r.queries.CreateReservation(ctx, tx, sqlc.CreateReservationParams{
		ID:         res.ID(),
		HotelID:    res.HotelID(),
		RoomID:     res.RoomID(),
		CustomerID: res.CustomerID(),
		StartDate:  pgconv.DateToPgtype(res.Stay().Start()),
		EndDate:    pgconv.DateToPgtype(res.Stay().End()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
