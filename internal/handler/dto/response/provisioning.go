package response

import (
	"time"

	"hotel-backend/internal/domain/provisioning"
	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// StatusPending is reported when provisioning could not start and was
// handed to the background worker.
const StatusPending = "pending"

type ProvisioningReportResponse struct {
	CustomerID uuid.UUID                     `json:"customer_id"`
	Status     string                        `json:"status"`
	Hotels     []ProvisioningOutcomeResponse `json:"hotels"`
}

type ProvisioningOutcomeResponse struct {
	HotelID uuid.UUID `json:"hotel_id"`
	Step    string    `json:"step"`
	Error   *string   `json:"error,omitempty"`
}

func FromReport(customerID uuid.UUID, r *provisioning.Report) ProvisioningReportResponse {
	if r == nil {
		return ProvisioningReportResponse{
			CustomerID: customerID,
			Status:     StatusPending,
			Hotels:     []ProvisioningOutcomeResponse{},
		}
	}

	hotels := make([]ProvisioningOutcomeResponse, len(r.Outcomes))
	for i, o := range r.Outcomes {
		hotels[i] = ProvisioningOutcomeResponse{HotelID: o.HotelID, Step: o.Step.String()}
		if o.Err != nil {
			msg := o.Err.Error()
			hotels[i].Error = &msg
		}
	}
	return ProvisioningReportResponse{
		CustomerID: r.CustomerID,
		Status:     string(r.Status),
		Hotels:     hotels,
	}
}

type ProvisioningStatusResponse struct {
	CustomerID uuid.UUID                         `json:"customer_id"`
	Status     string                            `json:"status"`
	Hotels     []ProvisioningHotelStatusResponse `json:"hotels"`
}

type ProvisioningHotelStatusResponse struct {
	HotelID            uuid.UUID `json:"hotel_id"`
	HotelName          string    `json:"hotel_name"`
	Step               string    `json:"step"`
	ProviderCustomerID *string   `json:"provider_customer_id,omitempty"`
	Attempts           int32     `json:"attempts"`
	LastError          *string   `json:"last_error,omitempty"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromProvisioningStatusView(v *queries.ProvisioningStatusView) *ProvisioningStatusResponse {
	res := ProvisioningStatusResponse{
		CustomerID: v.CustomerID,
		Status:     v.Status,
		Hotels:     make([]ProvisioningHotelStatusResponse, len(v.Hotels)),
	}
	for i := range v.Hotels {
		_ = copier.Copy(&res.Hotels[i], &v.Hotels[i])
	}
	return &res
}
