package hotel

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("hotel name must not be empty")
	ErrEmptyProviderKey = errors.New("hotel payment provider key must not be empty")
	ErrEmptyCategory    = errors.New("category name must not be empty")
	ErrNegativePrice    = errors.New("category price must not be negative")
)

// Hotel is managed by operators through the admin CLI. ProviderKey scopes
// every payment provider call made on its behalf.
type Hotel struct {
	id          uuid.UUID
	name        string
	providerKey string
}

func NewHotel(name, providerKey string) (*Hotel, error) {
	name, providerKey = strings.TrimSpace(name), strings.TrimSpace(providerKey)
	if name == "" {
		return nil, ErrEmptyName
	}
	if providerKey == "" {
		return nil, ErrEmptyProviderKey
	}
	return &Hotel{id: uuid.New(), name: name, providerKey: providerKey}, nil
}

func (h *Hotel) ID() uuid.UUID       { return h.id }
func (h *Hotel) Name() string        { return h.name }
func (h *Hotel) ProviderKey() string { return h.providerKey }

type Category struct {
	id          uuid.UUID
	hotelID     uuid.UUID
	name        string
	priceCents  int64
	description string
}

func NewCategory(hotelID uuid.UUID, name string, priceCents int64, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategory
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Category{
		id:          uuid.New(),
		hotelID:     hotelID,
		name:        name,
		priceCents:  priceCents,
		description: strings.TrimSpace(description),
	}, nil
}

func (c *Category) ID() uuid.UUID       { return c.id }
func (c *Category) HotelID() uuid.UUID  { return c.hotelID }
func (c *Category) Name() string        { return c.name }
func (c *Category) PriceCents() int64   { return c.priceCents }
func (c *Category) Description() string { return c.description }
