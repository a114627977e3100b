//go:build unit || e2e

package builder

import (
	"time"

	"hotel-backend/internal/domain/reservation"
	reqdto "hotel-backend/internal/handler/dto/request"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type stayDates struct {
	start string
	end   string
}

type ReservationBuilder struct {
	HotelID      uuid.UUID
	RoomID       uuid.UUID
	RoomHotelID  uuid.UUID
	OutOfService bool
	CustomerID   uuid.UUID
	Start        string
	End          string
	booked       []stayDates
}

func NewReservationBuilder() *ReservationBuilder {
	hotelID := uuid.New()
	return &ReservationBuilder{
		HotelID:     hotelID,
		RoomID:      uuid.New(),
		RoomHotelID: hotelID,
		CustomerID:  uuid.New(),
		Start:       "2025-06-10",
		End:         "2025-06-13",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildStay() (reservation.Stay, error) {
	return reservation.ParseStay(r.Start, r.End)
}

func (r *ReservationBuilder) BuildBooked() []reservation.Stay {
	booked := make([]reservation.Stay, len(r.booked))
	for i, b := range r.booked {
		booked[i] = reservation.MustStay(b.start, b.end)
	}
	return booked
}

func (r *ReservationBuilder) BuildRoomSpec() reservation.RoomSpec {
	return reservation.RoomSpec{
		ID:           r.RoomID,
		HotelID:      r.RoomHotelID,
		OutOfService: r.OutOfService,
	}
}

func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := r.BuildStay()
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(r.HotelID, r.BuildRoomSpec(), r.CustomerID, stay, r.BuildBooked())
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		HotelID:    r.HotelID,
		RoomID:     r.RoomID,
		CustomerID: r.CustomerID,
		StartDate:  r.Start,
		EndDate:    r.End,
	}
}

func (r *ReservationBuilder) BuildCommand() commands.CreateReservationRequest {
	dto := r.BuildCreateRequestDTO()
	return dto.ToCommand()
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	stay := reservation.MustStay(r.Start, r.End)
	return &queries.ReservationView{
		ID:              uuid.New(),
		HotelID:         r.HotelID,
		RoomID:          r.RoomID,
		RoomNumber:      101,
		CustomerID:      r.CustomerID,
		CustomerName:    "Jane",
		CustomerSurname: "Doe",
		StartDate:       stay.Start(),
		EndDate:         stay.End(),
		CreatedAt:       time.Now(),
	}
}

func (r *ReservationBuilder) BuildDetail() *queries.ReservationDetail {
	stay := reservation.MustStay(r.Start, r.End)
	return &queries.ReservationDetail{
		ID:        uuid.New(),
		HotelID:   r.HotelID,
		StartDate: stay.Start(),
		EndDate:   stay.End(),
		CreatedAt: time.Now(),
		Room: queries.ReservationRoom{
			ID:          r.RoomID,
			Number:      101,
			Description: "Double room facing the garden",
		},
		Customer: queries.ReservationCustomer{
			ID:       r.CustomerID,
			Name:     "Jane",
			Surname:  "Doe",
			Document: "X1234567",
			Phone:    "+34600000000",
		},
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithHotelID(id uuid.UUID) *ReservationBuilder {
	r.HotelID = id
	r.RoomHotelID = id
	return r
}

func (r *ReservationBuilder) WithRoomID(id uuid.UUID) *ReservationBuilder {
	r.RoomID = id
	return r
}

func (r *ReservationBuilder) WithRoomHotelID(id uuid.UUID) *ReservationBuilder {
	r.RoomHotelID = id
	return r
}

func (r *ReservationBuilder) WithCustomerID(id uuid.UUID) *ReservationBuilder {
	r.CustomerID = id
	return r
}

func (r *ReservationBuilder) WithStay(start, end string) *ReservationBuilder {
	r.Start = start
	r.End = end
	return r
}

func (r *ReservationBuilder) WithBooked(start, end string) *ReservationBuilder {
	r.booked = append(r.booked, stayDates{start: start, end: end})
	return r
}

func (r *ReservationBuilder) AsOutOfService() *ReservationBuilder {
	r.OutOfService = true
	return r
}
