package commands

import (
	"context"
	"errors"
	"log/slog"

	"hotel-backend/internal/domain/customer"
	"hotel-backend/internal/domain/provisioning"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/clock"
	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/pkg/password"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCustomerAlreadyExists = errs.New("customer already exists")
	ErrInvalidCustomer       = errs.New("invalid customer")
)

type CreateCustomerRequest struct {
	Name     string
	Surname  string
	Document string
	Username string
	Password string
	Phone    string
}

type UpdateCustomerRequest struct {
	Name    string
	Surname string
	Phone   string
}

// CreateCustomerResult carries the provisioning report. Report is nil when
// provisioning could not start; it is retried in the background then.
type CreateCustomerResult struct {
	CustomerID uuid.UUID
	Report     *provisioning.Report
}

type CustomerCommands interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CreateCustomerResult, error)
	UpdateCustomer(ctx context.Context, customerID uuid.UUID, req UpdateCustomerRequest, actor shared.Actor) error
	DeleteCustomer(ctx context.Context, customerID uuid.UUID, actor shared.Actor) error
}

type customerUseCaseImpl struct {
	uow         shared.UnitOfWork
	provisioner ProvisioningCommands
	locker      shared.Locker
	publisher   shared.EventPublisher
	clock       clock.Clock
	cfg         config.PaymentConfig
}

func NewCustomerUseCase(
	uow shared.UnitOfWork,
	provisioner ProvisioningCommands,
	locker shared.Locker,
	publisher shared.EventPublisher,
	clk clock.Clock,
	cfg config.PaymentConfig,
) CustomerCommands {
	return &customerUseCaseImpl{
		uow:         uow,
		provisioner: provisioner,
		locker:      locker,
		publisher:   publisher,
		clock:       clk,
		cfg:         cfg,
	}
}

func (uc *customerUseCaseImpl) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CreateCustomerResult, error) {
	var hash string
	if req.Password != "" {
		h, err := password.HashPassword(req.Password)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidCustomer)
		}
		hash = h
	}

	c, err := customer.NewCustomer(customer.Profile{
		Name:     req.Name,
		Surname:  req.Surname,
		Document: req.Document,
		Username: req.Username,
		Phone:    req.Phone,
	}, hash)
	if err != nil {
		if errors.Is(err, customer.ErrMissingIdentity) {
			return nil, errs.Mark(err, ErrCustomerAlreadyExists)
		}
		return nil, errs.Mark(err, ErrInvalidCustomer)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, derr := tx.Reads().CustomerIdentityTaken(ctx, c.Document(), c.Username())
		if derr != nil {
			return derr
		}
		if taken {
			return ErrCustomerAlreadyExists
		}

		if derr = tx.Customers().Create(ctx, tx.DB(), c); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrCustomerAlreadyExists)
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report, err := uc.provisioner.ProvisionForNewCustomer(ctx, c.ID())
	if err != nil {
		slog.Warn("provisioning did not start for new customer",
			"customer_id", c.ID(),
			"error", err.Error())
		uc.requestResume(ctx, c.ID())
		return &CreateCustomerResult{CustomerID: c.ID()}, nil
	}
	return &CreateCustomerResult{CustomerID: c.ID(), Report: report}, nil
}

func (uc *customerUseCaseImpl) requestResume(ctx context.Context, customerID uuid.UUID) {
	ev := shared.ProvisioningIncomplete{
		CustomerID: customerID,
		Status:     string(provisioning.StepPending),
		OccurredAt: uc.clock.Now(),
	}
	if err := uc.publisher.PublishProvisioningIncomplete(ctx, ev); err != nil {
		slog.Warn("failed to publish provisioning event",
			"customer_id", customerID,
			"error", err.Error())
	}
}

func (uc *customerUseCaseImpl) UpdateCustomer(ctx context.Context, customerID uuid.UUID, req UpdateCustomerRequest, actor shared.Actor) error {
	if !actor.CanAccessCustomer(customerID) {
		return ErrAccessDenied
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().CustomerByID(ctx, customerID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return derr
		}

		c := customer.ReconstructCustomer(snap.ID, customer.Profile{
			Name:     snap.Name,
			Surname:  snap.Surname,
			Document: snap.Document,
			Username: snap.Username,
			Phone:    snap.Phone,
		}, "", snap.CreatedAt, uc.clock.Now())
		if derr = c.Rename(req.Name, req.Surname, req.Phone); derr != nil {
			return errs.Mark(derr, ErrInvalidCustomer)
		}

		if derr = tx.Customers().UpdateContact(ctx, tx.DB(), c); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return derr
		}
		return nil
	})
}

// DeleteCustomer removes the customer and its provider records in one
// transaction. Any failure leaves the customer in place.
func (uc *customerUseCaseImpl) DeleteCustomer(ctx context.Context, customerID uuid.UUID, actor shared.Actor) error {
	if !actor.CanAccessCustomer(customerID) {
		return ErrAccessDenied
	}

	release, err := acquireCustomerLock(ctx, uc.locker, uc.cfg.LockTTL, customerID)
	if err != nil {
		return errs.Mark(err, ErrDeleteFailed)
	}
	defer releaseLock(ctx, release, customerID)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return uc.provisioner.DeprovisionForCustomer(ctx, tx, customerID)
	})
	if err == nil || errors.Is(err, ErrCustomerNotFound) {
		return err
	}
	return errs.Mark(err, ErrDeleteFailed)
}
