package request

import (
	"hotel-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateReservationRequest takes dates as YYYY-MM-DD; the stay is
// [start_date, end_date).
type CreateReservationRequest struct {
	HotelID    uuid.UUID `json:"hotel_id" binding:"required"`
	RoomID     uuid.UUID `json:"room_id" binding:"required"`
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required"`
	EndDate    string    `json:"end_date" binding:"required"`
}

func (r *CreateReservationRequest) ToCommand() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		HotelID:    r.HotelID,
		RoomID:     r.RoomID,
		CustomerID: r.CustomerID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}
