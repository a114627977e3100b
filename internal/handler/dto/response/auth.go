package response

import (
	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LoginResponse struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	Principal    *PrincipalResponse `json:"principal"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type PrincipalResponse struct {
	ID       uuid.UUID  `json:"id"`
	Role     string     `json:"role"`
	HotelID  *uuid.UUID `json:"hotel_id,omitempty"`
	Email    *string    `json:"email,omitempty"`
	Username *string    `json:"username,omitempty"`
	Name     *string    `json:"name,omitempty"`
}

func FromPrincipalView(v *queries.PrincipalView) *PrincipalResponse {
	var res PrincipalResponse
	_ = copier.Copy(&res, v)
	return &res
}
