package readstore

import (
	"context"

	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListReservationViewsByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.ListReservationViewsByHotelRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func rowToReservationView(row sqlc.GetReservationViewByIDRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              row.ID,
		HotelID:         row.HotelID,
		RoomID:          row.RoomID,
		RoomNumber:      row.RoomNumber,
		CustomerID:      row.CustomerID,
		CustomerName:    row.CustomerName,
		CustomerSurname: row.CustomerSurname,
		StartDate:       pgconv.DateFromPgtype(row.StartDate),
		EndDate:         pgconv.DateFromPgtype(row.EndDate),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

// ListByHotel returns every reservation of the hotel joined with its room
// and customer in one query.
func (r *ReservationReadStore) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.ReservationDetail, error) {
	rows, err := r.queries.ListReservationViewsByHotel(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by hotel", err)
	}

	result := make([]*queries.ReservationDetail, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationDetail{
			ID:        row.ID,
			HotelID:   row.HotelID,
			StartDate: pgconv.DateFromPgtype(row.StartDate),
			EndDate:   pgconv.DateFromPgtype(row.EndDate),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			Room: queries.ReservationRoom{
				ID:           row.RoomID,
				Number:       row.RoomNumber,
				Description:  row.RoomDescription,
				OutOfService: row.RoomOutOfService,
			},
			Customer: queries.ReservationCustomer{
				ID:       row.CustomerID,
				Name:     row.CustomerName,
				Surname:  row.CustomerSurname,
				Document: row.CustomerDocument,
				Phone:    row.CustomerPhone,
			},
		}
	}
	return result, nil
}
