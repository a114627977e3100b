//go:build unit || e2e

package builder

import (
	"time"

	"hotel-backend/internal/domain/room"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	HotelID      uuid.UUID
	CategoryID   uuid.UUID
	Number       int32
	Description  string
	AreaSqm      float64
	OutOfService bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		HotelID:     uuid.New(),
		CategoryID:  uuid.New(),
		Number:      101,
		Description: "Double room facing the garden",
		AreaSqm:     24.5,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(r.HotelID, r.CategoryID, r.Number, r.Description, r.AreaSqm, r.OutOfService)
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	now := time.Now()
	return &shared.RoomSnapshot{
		ID:           uuid.New(),
		HotelID:      r.HotelID,
		CategoryID:   r.CategoryID,
		Number:       r.Number,
		OutOfService: r.OutOfService,
		Description:  r.Description,
		AreaSqm:      r.AreaSqm,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	now := time.Now()
	return &queries.RoomView{
		ID:           uuid.New(),
		HotelID:      r.HotelID,
		CategoryID:   r.CategoryID,
		CategoryName: "Double",
		PriceCents:   12000,
		Number:       r.Number,
		OutOfService: r.OutOfService,
		Description:  r.Description,
		AreaSqm:      r.AreaSqm,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithHotelID(id uuid.UUID) *RoomBuilder {
	r.HotelID = id
	return r
}

func (r *RoomBuilder) WithCategoryID(id uuid.UUID) *RoomBuilder {
	r.CategoryID = id
	return r
}

func (r *RoomBuilder) WithNumber(n int32) *RoomBuilder {
	r.Number = n
	return r
}

func (r *RoomBuilder) WithDescription(d string) *RoomBuilder {
	r.Description = d
	return r
}

func (r *RoomBuilder) WithArea(a float64) *RoomBuilder {
	r.AreaSqm = a
	return r
}

func (r *RoomBuilder) AsOutOfService() *RoomBuilder {
	r.OutOfService = true
	return r
}
