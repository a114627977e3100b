package response

import (
	"time"

	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID           uuid.UUID `json:"id"`
	HotelID      uuid.UUID `json:"hotel_id"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	PriceCents   int64     `json:"price_cents"`
	Number       int32     `json:"number"`
	OutOfService bool      `json:"out_of_service"`
	Description  string    `json:"description"`
	AreaSqm      float64   `json:"area_sqm"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	var res RoomResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromRoomViews(vs []*queries.RoomView) []*RoomResponse {
	res := make([]*RoomResponse, len(vs))
	for i, v := range vs {
		res[i] = FromRoomView(v)
	}
	return res
}

type HotelResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	Name        string    `json:"name"`
	PriceCents  int64     `json:"price_cents"`
	Description string    `json:"description"`
}

func FromHotelViews(vs []*queries.HotelView) []HotelResponse {
	res := make([]HotelResponse, len(vs))
	for i, v := range vs {
		_ = copier.Copy(&res[i], v)
	}
	return res
}

func FromCategoryViews(vs []*queries.CategoryView) []CategoryResponse {
	res := make([]CategoryResponse, len(vs))
	for i, v := range vs {
		_ = copier.Copy(&res[i], v)
	}
	return res
}
