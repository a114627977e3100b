package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProviderProfile is what the payment provider stores about a customer.
type ProviderProfile struct {
	CustomerID uuid.UUID
	Name       string
	Surname    string
	Phone      string
	Username   string
}

// PaymentProvider manages customer records at the payment provider. Every
// call is scoped to one hotel's provider key.
type PaymentProvider interface {
	CreateCustomer(ctx context.Context, providerKey string, profile ProviderProfile, idempotencyKey string) (string, error)
	AttachDefaultPaymentMethod(ctx context.Context, providerKey, providerCustomerID, idempotencyKey string) error
	DeleteCustomer(ctx context.Context, providerKey, providerCustomerID string) error
	// FindCustomers lists provider customers created for customerID, including
	// ones whose create response never arrived.
	FindCustomers(ctx context.Context, providerKey string, customerID uuid.UUID) ([]string, error)
	// IsTransient reports whether a failed call may succeed when repeated.
	IsTransient(err error) bool
}

// Locker hands out mutually exclusive leases. Acquire fails with
// ErrLockHeld when another holder owns key.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error)
}

type Release func(ctx context.Context) error

// ProvisioningIncomplete is published when a customer still has
// outstanding provisioning intents.
type ProvisioningIncomplete struct {
	CustomerID uuid.UUID `json:"customer_id"`
	Status     string    `json:"status"`
	Failed     int       `json:"failed"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	PublishProvisioningIncomplete(ctx context.Context, ev ProvisioningIncomplete) error
}

// HotelDirectory lists hotels for provisioning fan-out.
type HotelDirectory interface {
	Hotels(ctx context.Context) ([]HotelSnapshot, error)
}
