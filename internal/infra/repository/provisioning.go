package repository

import (
	"context"

	"hotel-backend/internal/domain/provisioning"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProvisioningWriteQueries interface {
	CreateProvisioningIntent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProvisioningIntentParams) (int64, error)
	ListProvisioningIntentsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.ProvisioningIntents, error)
	UpdateProvisioningIntent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProvisioningIntentParams) error
	DeleteProvisioningIntentsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) (int64, error)
	ListCustomersWithOutstandingIntents(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCustomersWithOutstandingIntentsParams) ([]uuid.UUID, error)
	UpsertCustomerHotelLink(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCustomerHotelLinkParams) error
	ListCustomerHotelLinks(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.CustomerHotels, error)
	DeleteCustomerHotelLinks(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) (int64, error)
}

// ProvisioningRepository stores provisioning intents and the customer-hotel
// links they produce.
type ProvisioningRepository struct {
	queries ProvisioningWriteQueries
	db      sqlc.DBTX
}

func NewProvisioningRepository(queries ProvisioningWriteQueries, db sqlc.DBTX) *ProvisioningRepository {
	return &ProvisioningRepository{
		queries: queries,
		db:      db,
	}
}

// CreateIntents inserts intents, skipping (customer, hotel) pairs that
// already have one.
func (r *ProvisioningRepository) CreateIntents(ctx context.Context, tx sqlc.DBTX, intents []*provisioning.Intent) error {
	for _, in := range intents {
		_, err := r.queries.CreateProvisioningIntent(ctx, tx, sqlc.CreateProvisioningIntentParams{
			ID:         in.ID(),
			CustomerID: in.CustomerID(),
			HotelID:    in.HotelID(),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create provisioning intent", err)
		}
	}
	return nil
}

func (r *ProvisioningRepository) ListIntents(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) ([]*provisioning.Intent, error) {
	rows, err := r.queries.ListProvisioningIntentsByCustomer(ctx, tx, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provisioning intents", err)
	}

	intents := make([]*provisioning.Intent, 0, len(rows))
	for _, row := range rows {
		in, err := toIntent(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert provisioning intent row", err)
		}
		intents = append(intents, in)
	}
	return intents, nil
}

func (r *ProvisioningRepository) SaveIntent(ctx context.Context, tx sqlc.DBTX, in *provisioning.Intent) error {
	err := r.queries.UpdateProvisioningIntent(ctx, tx, sqlc.UpdateProvisioningIntentParams{
		ID:                 in.ID(),
		Step:               in.Step().String(),
		ProviderCustomerID: pgconv.NonEmptyToPgtype(in.ProviderCustomerID()),
		Attempts:           in.Attempts(),
		LastError:          pgconv.NonEmptyToPgtype(in.LastError()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save provisioning intent", err)
	}
	return nil
}

func (r *ProvisioningRepository) DeleteIntents(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteProvisioningIntentsByCustomer(ctx, tx, customerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete provisioning intents", err)
	}
	return n, nil
}

// OutstandingCustomers returns customers with unfinished intents that are
// still under maxAttempts, oldest first.
func (r *ProvisioningRepository) OutstandingCustomers(ctx context.Context, tx sqlc.DBTX, maxAttempts, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListCustomersWithOutstandingIntents(ctx, tx, sqlc.ListCustomersWithOutstandingIntentsParams{
		MaxAttempts: maxAttempts,
		RowLimit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list outstanding provisioning", err)
	}
	return ids, nil
}

func (r *ProvisioningRepository) UpsertLink(ctx context.Context, tx sqlc.DBTX, link shared.CustomerHotelLink) error {
	err := r.queries.UpsertCustomerHotelLink(ctx, tx, sqlc.UpsertCustomerHotelLinkParams{
		CustomerID:         link.CustomerID,
		HotelID:            link.HotelID,
		ProviderCustomerID: link.ProviderCustomerID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert customer hotel link", err)
	}
	return nil
}

func (r *ProvisioningRepository) ListLinks(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) ([]shared.CustomerHotelLink, error) {
	rows, err := r.queries.ListCustomerHotelLinks(ctx, tx, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer hotel links", err)
	}

	links := make([]shared.CustomerHotelLink, len(rows))
	for i, row := range rows {
		links[i] = shared.CustomerHotelLink{
			CustomerID:         row.CustomerID,
			HotelID:            row.HotelID,
			ProviderCustomerID: row.ProviderCustomerID,
		}
	}
	return links, nil
}

func (r *ProvisioningRepository) DeleteLinks(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteCustomerHotelLinks(ctx, tx, customerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete customer hotel links", err)
	}
	return n, nil
}

func toIntent(row sqlc.ProvisioningIntents) (*provisioning.Intent, error) {
	step, err := provisioning.ParseStep(row.Step)
	if err != nil {
		return nil, err
	}
	return provisioning.ReconstructIntent(
		row.ID,
		row.CustomerID,
		row.HotelID,
		step,
		pgconv.StringFromPgtype(row.ProviderCustomerID),
		row.Attempts,
		pgconv.StringFromPgtype(row.LastError),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
