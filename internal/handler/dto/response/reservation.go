package response

import (
	"time"

	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	HotelID         uuid.UUID `json:"hotel_id"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomNumber      int32     `json:"room_number"`
	CustomerID      uuid.UUID `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerSurname string    `json:"customer_surname"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReservationListResponse struct {
	ID        uuid.UUID                   `json:"id"`
	HotelID   uuid.UUID                   `json:"hotel_id"`
	StartDate string                      `json:"start_date"`
	EndDate   string                      `json:"end_date"`
	CreatedAt time.Time                   `json:"created_at"`
	Room      ReservationRoomResponse     `json:"room"`
	Customer  ReservationCustomerResponse `json:"customer"`
}

type ReservationRoomResponse struct {
	ID           uuid.UUID `json:"id"`
	Number       int32     `json:"number"`
	Description  string    `json:"description"`
	OutOfService bool      `json:"out_of_service"`
}

type ReservationCustomerResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Surname  string    `json:"surname"`
	Document string    `json:"document"`
	Phone    string    `json:"phone"`
}

// Dates are rendered as calendar days.
func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              v.ID,
		HotelID:         v.HotelID,
		RoomID:          v.RoomID,
		RoomNumber:      v.RoomNumber,
		CustomerID:      v.CustomerID,
		CustomerName:    v.CustomerName,
		CustomerSurname: v.CustomerSurname,
		StartDate:       v.StartDate.Format(dateLayout),
		EndDate:         v.EndDate.Format(dateLayout),
		CreatedAt:       v.CreatedAt,
	}
}

func FromReservationDetail(d *queries.ReservationDetail) *ReservationListResponse {
	res := ReservationListResponse{
		ID:        d.ID,
		HotelID:   d.HotelID,
		StartDate: d.StartDate.Format(dateLayout),
		EndDate:   d.EndDate.Format(dateLayout),
		CreatedAt: d.CreatedAt,
	}
	_ = copier.Copy(&res.Room, &d.Room)
	_ = copier.Copy(&res.Customer, &d.Customer)
	return &res
}

func FromReservationDetails(ds []*queries.ReservationDetail) []*ReservationListResponse {
	res := make([]*ReservationListResponse, len(ds))
	for i, d := range ds {
		res[i] = FromReservationDetail(d)
	}
	return res
}
