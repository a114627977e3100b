package repository

import (
	"context"

	"hotel-backend/internal/domain/customer"
	"hotel-backend/internal/infra"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomerWriteQueries interface {
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) (sqlc.Customers, error)
	UpdateCustomerContact(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCustomerContactParams) (int64, error)
	LockCustomer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	DeleteCustomer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error {
	_, err := r.queries.CreateCustomer(ctx, tx, sqlc.CreateCustomerParams{
		ID:           c.ID(),
		Name:         c.Name(),
		Surname:      c.Surname(),
		Document:     c.Document(),
		Username:     c.Username(),
		PasswordHash: c.PasswordHash(),
		Phone:        c.Phone(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create customer", err)
	}
	return nil
}

func (r *CustomerRepository) UpdateContact(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error {
	n, err := r.queries.UpdateCustomerContact(ctx, tx, sqlc.UpdateCustomerContactParams{
		ID:      c.ID(),
		Name:    c.Name(),
		Surname: c.Surname(),
		Phone:   c.Phone(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("customer not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// Lock takes a row lock on the customer for the rest of the transaction.
func (r *CustomerRepository) Lock(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if _, err := r.queries.LockCustomer(ctx, tx, id); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock customer", err)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteCustomer(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("customer not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
