package readstore

import (
	"context"

	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProvisioningReadQueries interface {
	ListProvisioningViewsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.ListProvisioningViewsByCustomerRow, error)
}

type ProvisioningReadStore struct {
	queries ProvisioningReadQueries
	db      sqlc.DBTX
}

func NewProvisioningReadStore(queries ProvisioningReadQueries, db sqlc.DBTX) *ProvisioningReadStore {
	return &ProvisioningReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProvisioningReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]queries.ProvisioningHotelView, error) {
	rows, err := r.queries.ListProvisioningViewsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provisioning status", err)
	}

	views := make([]queries.ProvisioningHotelView, len(rows))
	for i, row := range rows {
		views[i] = queries.ProvisioningHotelView{
			HotelID:            row.HotelID,
			HotelName:          row.HotelName,
			Step:               row.Step,
			ProviderCustomerID: pgconv.StringPtrFromPgtype(row.ProviderCustomerID),
			Attempts:           row.Attempts,
			LastError:          pgconv.StringPtrFromPgtype(row.LastError),
			UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return views, nil
}
