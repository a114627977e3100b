package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a hotel staff account. Customers authenticate through their own
// records and never appear here.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	hotelID      *uuid.UUID
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, hotelID *uuid.UUID) (*User, error) {
	if !role.IsStaff() {
		return nil, ErrInvalidRole
	}
	// staff work for one hotel; admins may span all of them
	if role == RoleStaff && hotelID == nil {
		return nil, ErrHotelRequired
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		hotelID:      hotelID,
		isActive:     true,
	}, nil
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) HotelID() *uuid.UUID   { return u.hotelID }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
