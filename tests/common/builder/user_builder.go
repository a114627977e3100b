//go:build unit || e2e

package builder

import (
	"time"

	"hotel-backend/internal/domain/user"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Role         string
	HotelID      *uuid.UUID
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	hotelID := uuid.New()
	return &UserBuilder{
		Email:        "staff@example.com",
		PasswordHash: "hashed_password",
		Role:         "staff",
		HotelID:      &hotelID,
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.HotelID)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	var hotelID pgtype.UUID
	if u.HotelID != nil {
		hotelID = pgtype.UUID{Bytes: *u.HotelID, Valid: true}
	}

	return sqlc.Users{
		ID:           uuid.New(),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		HotelID:      hotelID,
		LastLogin:    pgtype.Timestamptz{},
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    u.Email,
		Role:     u.Role,
		HotelID:  u.HotelID,
		IsActive: u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithHotelID(hotelID *uuid.UUID) *UserBuilder {
	u.HotelID = hotelID
	return u
}

func (u *UserBuilder) WithoutHotel() *UserBuilder {
	u.HotelID = nil
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
