package shared

import (
	"time"

	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the query views.

type HotelSnapshot struct {
	ID          uuid.UUID
	Name        string
	ProviderKey string
}

type CategorySnapshot struct {
	ID      uuid.UUID
	HotelID uuid.UUID
	Name    string
}

type RoomSnapshot struct {
	ID           uuid.UUID
	HotelID      uuid.UUID
	CategoryID   uuid.UUID
	Number       int32
	OutOfService bool
	Description  string
	AreaSqm      float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r RoomSnapshot) Spec() reservation.RoomSpec {
	return reservation.RoomSpec{ID: r.ID, HotelID: r.HotelID, OutOfService: r.OutOfService}
}

type CustomerSnapshot struct {
	ID        uuid.UUID
	Name      string
	Surname   string
	Document  string
	Username  string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReservationSnapshot struct {
	ID         uuid.UUID
	HotelID    uuid.UUID
	RoomID     uuid.UUID
	CustomerID uuid.UUID
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	ActorID             uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

// CustomerHotelLink maps a customer to its provider record in one hotel.
type CustomerHotelLink struct {
	CustomerID         uuid.UUID
	HotelID            uuid.UUID
	ProviderCustomerID string
}

// Actor is the authenticated caller a use case acts for.
type Actor struct {
	ID      uuid.UUID
	Role    user.Role
	HotelID *uuid.UUID
}

func (a Actor) IsCustomer() bool { return a.Role == user.RoleCustomer }

// CanAccessHotel: staff are confined to their own hotel; admins and
// customers are not hotel scoped.
func (a Actor) CanAccessHotel(hotelID uuid.UUID) bool {
	if a.Role != user.RoleStaff {
		return true
	}
	return a.HotelID != nil && *a.HotelID == hotelID
}

// CanAccessCustomer: customers only ever see themselves.
func (a Actor) CanAccessCustomer(customerID uuid.UUID) bool {
	return !a.IsCustomer() || a.ID == customerID
}
