package readstore

import (
	"context"

	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type HotelReadQueries interface {
	GetHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error)
	HotelExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	ListHotels(ctx context.Context, db sqlc.DBTX) ([]sqlc.Hotels, error)
	GetCategoryByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Categories, error)
	ListCategoriesByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.Categories, error)
}

type HotelReadStore struct {
	queries HotelReadQueries
	db      sqlc.DBTX
}

func NewHotelReadStore(queries HotelReadQueries, db sqlc.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.HotelExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check hotel", err)
	}
	return ok, nil
}

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.HotelSnapshot, error) {
	row, err := r.queries.GetHotelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	snap := toHotelSnapshot(row)
	return &snap, nil
}

// Directory lists every hotel with its provider key.
func (r *HotelReadStore) Directory(ctx context.Context) ([]shared.HotelSnapshot, error) {
	rows, err := r.queries.ListHotels(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}

	hotels := make([]shared.HotelSnapshot, len(rows))
	for i, row := range rows {
		hotels[i] = toHotelSnapshot(row)
	}
	return hotels, nil
}

func (r *HotelReadStore) List(ctx context.Context) ([]*queries.HotelView, error) {
	rows, err := r.queries.ListHotels(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}

	views := make([]*queries.HotelView, len(rows))
	for i, row := range rows {
		views[i] = &queries.HotelView{
			ID:        row.ID,
			Name:      row.Name,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}

func (r *HotelReadStore) FindCategory(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	row, err := r.queries.GetCategoryByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category by ID", err)
	}
	return toCategoryView(row), nil
}

func (r *HotelReadStore) Categories(ctx context.Context, hotelID uuid.UUID) ([]*queries.CategoryView, error) {
	rows, err := r.queries.ListCategoriesByHotel(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}

	views := make([]*queries.CategoryView, len(rows))
	for i, row := range rows {
		views[i] = toCategoryView(row)
	}
	return views, nil
}

func toHotelSnapshot(row sqlc.Hotels) shared.HotelSnapshot {
	return shared.HotelSnapshot{
		ID:          row.ID,
		Name:        row.Name,
		ProviderKey: row.ProviderKey,
	}
}

func toCategoryView(row sqlc.Categories) *queries.CategoryView {
	return &queries.CategoryView{
		ID:          row.ID,
		HotelID:     row.HotelID,
		Name:        row.Name,
		PriceCents:  row.PriceCents,
		Description: row.Description,
	}
}
