package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-backend/internal/domain/provisioning"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/usecase/shared"
)

// Provisioning status values. "pending" means no hotel has been attempted.
const (
	ProvisioningPending    = "pending"
	ProvisioningComplete   = "complete"
	ProvisioningInProgress = "in_progress"
	ProvisioningIncomplete = "incomplete"
)

type ProvisioningReadStore interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]ProvisioningHotelView, error)
}

type ProvisioningQueries interface {
	GetStatus(ctx context.Context, customerID uuid.UUID, actor shared.Actor) (*ProvisioningStatusView, error)
}

type provisioningQueriesImpl struct {
	readStore ProvisioningReadStore
	customers CustomerReadStore
}

func NewProvisioningQueries(readStore ProvisioningReadStore, customers CustomerReadStore) ProvisioningQueries {
	return &provisioningQueriesImpl{readStore: readStore, customers: customers}
}

func (q *provisioningQueriesImpl) GetStatus(ctx context.Context, customerID uuid.UUID, actor shared.Actor) (*ProvisioningStatusView, error) {
	if !actor.CanAccessCustomer(customerID) {
		return nil, ErrAccessDenied
	}
	if _, err := q.customers.FindByID(ctx, customerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	hotels, err := q.readStore.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &ProvisioningStatusView{
		CustomerID: customerID,
		Status:     summarize(hotels),
		Hotels:     hotels,
	}, nil
}

func summarize(hotels []ProvisioningHotelView) string {
	if len(hotels) == 0 {
		return ProvisioningPending
	}
	completed, failing := 0, 0
	for _, h := range hotels {
		switch {
		case h.Step == provisioning.StepCompleted.String():
			completed++
		case h.LastError != nil && *h.LastError != "":
			failing++
		}
	}
	switch {
	case completed == len(hotels):
		return ProvisioningComplete
	case failing > 0:
		return ProvisioningIncomplete
	default:
		return ProvisioningInProgress
	}
}
