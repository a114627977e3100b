package request

import (
	"hotel-backend/internal/domain/auth"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type CustomerLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *CustomerLoginRequest) ToDomain() (auth.CustomerCredentials, error) {
	return auth.NewCustomerCredentials(r.Username, r.Password)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
