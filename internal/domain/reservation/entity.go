package reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrStayConflict     = errors.New("stay overlaps an existing reservation")
	ErrRoomOutOfService = errors.New("room is out of service")
	ErrRoomNotInHotel   = errors.New("room does not belong to hotel")
)

// RoomSpec is what booking needs to know about the room.
type RoomSpec struct {
	ID           uuid.UUID
	HotelID      uuid.UUID
	OutOfService bool
}

type Reservation struct {
	id         uuid.UUID
	hotelID    uuid.UUID
	roomID     uuid.UUID
	customerID uuid.UUID
	stay       Stay
	createdAt  time.Time
}

// NewReservation books stay in room for customerID. booked must hold every
// stay already reserved on the room.
func NewReservation(hotelID uuid.UUID, room RoomSpec, customerID uuid.UUID, stay Stay, booked []Stay) (*Reservation, error) {
	if room.HotelID != hotelID {
		return nil, ErrRoomNotInHotel
	}
	if room.OutOfService {
		return nil, ErrRoomOutOfService
	}
	if other, ok := FirstConflict(stay, booked); ok {
		return nil, fmt.Errorf("%w: %s overlaps %s", ErrStayConflict, stay, other)
	}

	return &Reservation{
		id:         uuid.New(),
		hotelID:    hotelID,
		roomID:     room.ID,
		customerID: customerID,
		stay:       stay,
	}, nil
}

func ReconstructReservation(id, hotelID, roomID, customerID uuid.UUID, stay Stay, createdAt time.Time) *Reservation {
	return &Reservation{
		id:         id,
		hotelID:    hotelID,
		roomID:     roomID,
		customerID: customerID,
		stay:       stay,
		createdAt:  createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) HotelID() uuid.UUID    { return r.hotelID }
func (r *Reservation) RoomID() uuid.UUID     { return r.roomID }
func (r *Reservation) CustomerID() uuid.UUID { return r.customerID }
func (r *Reservation) Stay() Stay            { return r.stay }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
