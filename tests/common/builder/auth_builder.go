//go:build unit || e2e

package builder

import (
	reqdto "hotel-backend/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "staff@example.com",
		Username: "jdoe",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildCustomerDTO() reqdto.CustomerLoginRequest {
	return reqdto.CustomerLoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}
