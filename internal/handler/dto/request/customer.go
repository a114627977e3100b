package request

import (
	"hotel-backend/internal/pkg/patch"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/queries"
)

// CreateCustomerRequest leaves blank checks to the use case, which reports a
// missing document or username as a conflict.
type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Document string `json:"document"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone" binding:"required"`
}

func (r *CreateCustomerRequest) ToCommand() commands.CreateCustomerRequest {
	return commands.CreateCustomerRequest{
		Name:     r.Name,
		Surname:  r.Surname,
		Document: r.Document,
		Username: r.Username,
		Password: r.Password,
		Phone:    r.Phone,
	}
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1"`
	Surname *string `json:"surname" binding:"omitempty,min=1"`
	Phone   *string `json:"phone" binding:"omitempty,min=1"`
}

func (r *UpdateCustomerRequest) ToCommand(existing *queries.CustomerView) commands.UpdateCustomerRequest {
	return commands.UpdateCustomerRequest{
		Name:    patch.Coalesce(r.Name, existing.Name),
		Surname: patch.Coalesce(r.Surname, existing.Surname),
		Phone:   patch.Coalesce(r.Phone, existing.Phone),
	}
}

type SearchCustomersRequest struct {
	Name    string `form:"name"`
	Surname string `form:"surname"`
}
