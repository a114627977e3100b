package response

import (
	"time"

	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Document  string    `json:"document"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCustomerResponse is returned with 201 even when provisioning is
// incomplete; the report tells the client which hotels are pending.
type CreateCustomerResponse struct {
	CustomerID   uuid.UUID                  `json:"customer_id"`
	Provisioning ProvisioningReportResponse `json:"provisioning"`
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	var res CustomerResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromCustomerViews(vs []*queries.CustomerView) []*CustomerResponse {
	res := make([]*CustomerResponse, len(vs))
	for i, v := range vs {
		res[i] = FromCustomerView(v)
	}
	return res
}
