package room

import (
	"errors"
	"strings"
	"time"

	"hotel-backend/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidNumber    = errors.New("room number must be positive")
	ErrEmptyDescription = errors.New("room description must not be empty")
	ErrInvalidArea      = errors.New("room area must not be negative")
)

// Room is a bookable unit of a hotel. Number, area, category and hotel are
// fixed at creation.
type Room struct {
	id           uuid.UUID
	hotelID      uuid.UUID
	categoryID   uuid.UUID
	number       int32
	outOfService bool
	description  string
	areaSqm      float64
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRoom(hotelID, categoryID uuid.UUID, number int32, description string, areaSqm float64, outOfService bool) (*Room, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if areaSqm < 0 {
		return nil, ErrInvalidArea
	}

	return &Room{
		id:           uuid.New(),
		hotelID:      hotelID,
		categoryID:   categoryID,
		number:       number,
		outOfService: outOfService,
		description:  description,
		areaSqm:      areaSqm,
	}, nil
}

func ReconstructRoom(
	id, hotelID, categoryID uuid.UUID,
	number int32,
	outOfService bool,
	description string,
	areaSqm float64,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:           id,
		hotelID:      hotelID,
		categoryID:   categoryID,
		number:       number,
		outOfService: outOfService,
		description:  description,
		areaSqm:      areaSqm,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Update applies the mutable fields. Nil leaves the current value.
func (r *Room) Update(description *string, outOfService *bool) error {
	next := strings.TrimSpace(patch.Coalesce(description, r.description))
	if next == "" {
		return ErrEmptyDescription
	}
	r.description = next
	r.outOfService = patch.Coalesce(outOfService, r.outOfService)
	return nil
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) HotelID() uuid.UUID    { return r.hotelID }
func (r *Room) CategoryID() uuid.UUID { return r.categoryID }
func (r *Room) Number() int32         { return r.number }
func (r *Room) OutOfService() bool    { return r.outOfService }
func (r *Room) Description() string   { return r.description }
func (r *Room) AreaSqm() float64      { return r.areaSqm }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
func (r *Room) UpdatedAt() time.Time  { return r.updatedAt }
