package repository

import (
	"context"

	"hotel-backend/internal/domain/hotel"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
)

type HotelWriteQueries interface {
	CreateHotel(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHotelParams) (sqlc.Hotels, error)
	CreateCategory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCategoryParams) (sqlc.Categories, error)
}

type HotelRepository struct {
	queries HotelWriteQueries
	db      sqlc.DBTX
}

func NewHotelRepository(queries HotelWriteQueries, db sqlc.DBTX) *HotelRepository {
	return &HotelRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HotelRepository) Create(ctx context.Context, tx sqlc.DBTX, h *hotel.Hotel) error {
	_, err := r.queries.CreateHotel(ctx, tx, sqlc.CreateHotelParams{
		ID:          h.ID(),
		Name:        h.Name(),
		ProviderKey: h.ProviderKey(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create hotel", err)
	}
	return nil
}

func (r *HotelRepository) CreateCategory(ctx context.Context, tx sqlc.DBTX, c *hotel.Category) error {
	_, err := r.queries.CreateCategory(ctx, tx, sqlc.CreateCategoryParams{
		ID:          c.ID(),
		HotelID:     c.HotelID(),
		Name:        c.Name(),
		PriceCents:  c.PriceCents(),
		Description: c.Description(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create category", err)
	}
	return nil
}
