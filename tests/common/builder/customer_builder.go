//go:build unit || e2e

package builder

import (
	"time"

	"hotel-backend/internal/domain/customer"
	reqdto "hotel-backend/internal/handler/dto/request"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerBuilder struct {
	Name         string
	Surname      string
	Document     string
	Username     string
	Password     string
	PasswordHash string
	Phone        string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Name:         "Jane",
		Surname:      "Doe",
		Document:     "X1234567",
		Username:     "jdoe",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Phone:        "+34600000000",
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CustomerBuilder) BuildProfile() customer.Profile {
	return customer.Profile{
		Name:     c.Name,
		Surname:  c.Surname,
		Document: c.Document,
		Username: c.Username,
		Phone:    c.Phone,
	}
}

func (c *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	return customer.NewCustomer(c.BuildProfile(), c.PasswordHash)
}

func (c *CustomerBuilder) BuildInfra() sqlc.Customers {
	now := time.Now()
	return sqlc.Customers{
		ID:           uuid.New(),
		Name:         c.Name,
		Surname:      c.Surname,
		Document:     c.Document,
		Username:     c.Username,
		PasswordHash: c.PasswordHash,
		Phone:        c.Phone,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (c *CustomerBuilder) BuildSnapshot() *shared.CustomerSnapshot {
	now := time.Now()
	return &shared.CustomerSnapshot{
		ID:        uuid.New(),
		Name:      c.Name,
		Surname:   c.Surname,
		Document:  c.Document,
		Username:  c.Username,
		Phone:     c.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *CustomerBuilder) BuildView() *queries.CustomerView {
	now := time.Now()
	return &queries.CustomerView{
		ID:        uuid.New(),
		Name:      c.Name,
		Surname:   c.Surname,
		Document:  c.Document,
		Username:  c.Username,
		Phone:     c.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *CustomerBuilder) BuildCreateRequestDTO() reqdto.CreateCustomerRequest {
	return reqdto.CreateCustomerRequest{
		Name:     c.Name,
		Surname:  c.Surname,
		Document: c.Document,
		Username: c.Username,
		Password: c.Password,
		Phone:    c.Phone,
	}
}

// Fluent builder methods
func (c *CustomerBuilder) WithName(name string) *CustomerBuilder {
	c.Name = name
	return c
}

func (c *CustomerBuilder) WithSurname(surname string) *CustomerBuilder {
	c.Surname = surname
	return c
}

func (c *CustomerBuilder) WithDocument(document string) *CustomerBuilder {
	c.Document = document
	return c
}

func (c *CustomerBuilder) WithUsername(username string) *CustomerBuilder {
	c.Username = username
	return c
}

func (c *CustomerBuilder) WithPhone(phone string) *CustomerBuilder {
	c.Phone = phone
	return c
}

func (c *CustomerBuilder) WithPassword(password string) *CustomerBuilder {
	c.Password = password
	return c
}

func (c *CustomerBuilder) WithPasswordHash(hash string) *CustomerBuilder {
	c.PasswordHash = hash
	return c
}
