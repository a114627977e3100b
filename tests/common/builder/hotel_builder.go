//go:build unit || e2e

package builder

import (
	"time"

	"hotel-backend/internal/domain/hotel"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	ID          uuid.UUID
	Name        string
	ProviderKey string
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:          uuid.New(),
		Name:        "Grand Hotel",
		ProviderKey: "sk_test_grand",
	}
}

func (h *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(h)
	return h
}

func (h *HotelBuilder) BuildDomain() (*hotel.Hotel, error) {
	return hotel.NewHotel(h.Name, h.ProviderKey)
}

func (h *HotelBuilder) BuildSnapshot() shared.HotelSnapshot {
	return shared.HotelSnapshot{
		ID:          h.ID,
		Name:        h.Name,
		ProviderKey: h.ProviderKey,
	}
}

func (h *HotelBuilder) BuildView() *queries.HotelView {
	return &queries.HotelView{
		ID:        h.ID,
		Name:      h.Name,
		CreatedAt: time.Now(),
	}
}

func (h *HotelBuilder) WithName(name string) *HotelBuilder {
	h.Name = name
	return h
}

func (h *HotelBuilder) WithProviderKey(key string) *HotelBuilder {
	h.ProviderKey = key
	return h
}
