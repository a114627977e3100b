package queries

import (
	"time"

	"github.com/google/uuid"
)

type HotelView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryView struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	Name        string    `json:"name"`
	PriceCents  int64     `json:"price_cents"`
	Description string    `json:"description"`
}

type RoomView struct {
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

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Document  string    `json:"document"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	HotelID         uuid.UUID `json:"hotel_id"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomNumber      int32     `json:"room_number"`
	CustomerID      uuid.UUID `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerSurname string    `json:"customer_surname"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// ReservationDetail is a reservation enriched with its room and customer.
type ReservationDetail struct {
	ID        uuid.UUID           `json:"id"`
	HotelID   uuid.UUID           `json:"hotel_id"`
	StartDate time.Time           `json:"start_date"`
	EndDate   time.Time           `json:"end_date"`
	CreatedAt time.Time           `json:"created_at"`
	Room      ReservationRoom     `json:"room"`
	Customer  ReservationCustomer `json:"customer"`
}

type ReservationRoom struct {
	ID           uuid.UUID `json:"id"`
	Number       int32     `json:"number"`
	Description  string    `json:"description"`
	OutOfService bool      `json:"out_of_service"`
}

type ReservationCustomer struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Surname  string    `json:"surname"`
	Document string    `json:"document"`
	Phone    string    `json:"phone"`
}

type ProvisioningHotelView struct {
	HotelID            uuid.UUID `json:"hotel_id"`
	HotelName          string    `json:"hotel_name"`
	Step               string    `json:"step"`
	ProviderCustomerID *string   `json:"provider_customer_id,omitempty"`
	Attempts           int32     `json:"attempts"`
	LastError          *string   `json:"last_error,omitempty"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ProvisioningStatusView struct {
	CustomerID uuid.UUID               `json:"customer_id"`
	Status     string                  `json:"status"`
	Hotels     []ProvisioningHotelView `json:"hotels"`
}

// AuthorizedUserView represents read-optimized staff user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	HotelID  *uuid.UUID `json:"hotel_id,omitempty"`
	IsActive bool       `json:"is_active"`
}

// PrincipalView describes whoever holds the current token.
type PrincipalView struct {
	ID       uuid.UUID  `json:"id"`
	Role     string     `json:"role"`
	HotelID  *uuid.UUID `json:"hotel_id,omitempty"`
	Email    *string    `json:"email,omitempty"`
	Username *string    `json:"username,omitempty"`
	Name     *string    `json:"name,omitempty"`
}
