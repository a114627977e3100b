package readstore

import (
	"context"

	"hotel-backend/internal/domain/customer"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadQueries interface {
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Customers, error)
	GetCustomerByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Customers, error)
	CustomerIdentityTaken(ctx context.Context, db sqlc.DBTX, arg sqlc.CustomerIdentityTakenParams) (bool, error)
	ListCustomersByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.Customers, error)
	SearchCustomersByNamePrefix(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchCustomersByNamePrefixParams) ([]sqlc.Customers, error)
	SearchCustomersBySurnamePrefix(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchCustomersBySurnamePrefixParams) ([]sqlc.Customers, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return toCustomerView(row), nil
}

// FindByUsername also returns the password hash for login.
func (r *CustomerReadStore) FindByUsername(ctx context.Context, username string) (*queries.CustomerView, string, error) {
	row, err := r.queries.GetCustomerByUsername(ctx, r.db, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find customer by username", err)
	}
	return toCustomerView(row), row.PasswordHash, nil
}

func (r *CustomerReadStore) IdentityTaken(ctx context.Context, document, username string) (bool, error) {
	taken, err := r.queries.CustomerIdentityTaken(ctx, r.db, sqlc.CustomerIdentityTakenParams{
		Document: document,
		Username: username,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check customer identity", err)
	}
	return taken, nil
}

func (r *CustomerReadStore) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.CustomerView, error) {
	rows, err := r.queries.ListCustomersByHotel(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers by hotel", err)
	}
	return toCustomerViews(rows), nil
}

func (r *CustomerReadStore) SearchByName(ctx context.Context, hotelID uuid.UUID, search customer.NameSearch) ([]*queries.CustomerView, error) {
	var (
		rows []sqlc.Customers
		err  error
	)

	switch search.Field() {
	case customer.SearchBySurname:
		rows, err = r.queries.SearchCustomersBySurnamePrefix(ctx, r.db, sqlc.SearchCustomersBySurnamePrefixParams{
			HotelID: hotelID,
			Pattern: search.LikePattern(),
		})
	default:
		rows, err = r.queries.SearchCustomersByNamePrefix(ctx, r.db, sqlc.SearchCustomersByNamePrefixParams{
			HotelID: hotelID,
			Pattern: search.LikePattern(),
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search customers", err)
	}
	return toCustomerViews(rows), nil
}

func toCustomerViews(rows []sqlc.Customers) []*queries.CustomerView {
	views := make([]*queries.CustomerView, len(rows))
	for i, row := range rows {
		views[i] = toCustomerView(row)
	}
	return views
}

func toCustomerView(row sqlc.Customers) *queries.CustomerView {
	return &queries.CustomerView{
		ID:        row.ID,
		Name:      row.Name,
		Surname:   row.Surname,
		Document:  row.Document,
		Username:  row.Username,
		Phone:     row.Phone,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
