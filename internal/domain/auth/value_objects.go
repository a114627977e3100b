package auth

import (
	"errors"
	"strings"

	"hotel-backend/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyUsername      = errors.New("username must not be empty")
	ErrEmptyPassword      = errors.New("password must not be empty")
)

// Credentials authenticate a staff user.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// CustomerCredentials authenticate a customer by username.
type CustomerCredentials struct {
	username string
	password string
}

func NewCustomerCredentials(username, password string) (CustomerCredentials, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return CustomerCredentials{}, ErrEmptyUsername
	}
	if password == "" {
		return CustomerCredentials{}, ErrEmptyPassword
	}
	return CustomerCredentials{username: username, password: password}, nil
}

func (c CustomerCredentials) Username() string { return c.username }
func (c CustomerCredentials) Password() string { return c.password }
