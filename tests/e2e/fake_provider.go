//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrFakeProviderDown = errors.New("fake provider unavailable")

// FakePaymentProvider stands in for the payment provider. Records are kept
// per provider key, which identifies the hotel.
type FakePaymentProvider struct {
	mu        sync.Mutex
	seq       int
	customers map[string]map[string]shared.ProviderProfile
	attached  map[string]bool
	down      map[string]bool
	byKey     map[string]string // idempotency key -> provider customer id
}

func NewFakePaymentProvider() *FakePaymentProvider {
	return &FakePaymentProvider{
		customers: make(map[string]map[string]shared.ProviderProfile),
		attached:  make(map[string]bool),
		down:      make(map[string]bool),
		byKey:     make(map[string]string),
	}
}

// SetDown makes every call for providerKey fail until cleared.
func (f *FakePaymentProvider) SetDown(providerKey string, down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down[providerKey] = down
}

// Reset forgets all records and failures.
func (f *FakePaymentProvider) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customers = make(map[string]map[string]shared.ProviderProfile)
	f.attached = make(map[string]bool)
	f.down = make(map[string]bool)
	f.byKey = make(map[string]string)
}

func (f *FakePaymentProvider) CustomerCount(providerKey string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.customers[providerKey])
}

func (f *FakePaymentProvider) CreateCustomer(_ context.Context, providerKey string, profile shared.ProviderProfile, idempotencyKey string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down[providerKey] {
		return "", ErrFakeProviderDown
	}
	if id, ok := f.byKey[idempotencyKey]; ok {
		return id, nil
	}

	f.seq++
	id := fmt.Sprintf("cus_fake_%d", f.seq)
	if f.customers[providerKey] == nil {
		f.customers[providerKey] = make(map[string]shared.ProviderProfile)
	}
	f.customers[providerKey][id] = profile
	f.byKey[idempotencyKey] = id
	return id, nil
}

func (f *FakePaymentProvider) AttachDefaultPaymentMethod(_ context.Context, providerKey, providerCustomerID, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down[providerKey] {
		return ErrFakeProviderDown
	}
	if _, ok := f.customers[providerKey][providerCustomerID]; !ok {
		return fmt.Errorf("no such customer: %s", providerCustomerID)
	}
	f.attached[providerCustomerID] = true
	return nil
}

func (f *FakePaymentProvider) DeleteCustomer(_ context.Context, providerKey, providerCustomerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down[providerKey] {
		return ErrFakeProviderDown
	}
	delete(f.customers[providerKey], providerCustomerID)
	delete(f.attached, providerCustomerID)
	return nil
}

func (f *FakePaymentProvider) FindCustomers(_ context.Context, providerKey string, customerID uuid.UUID) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down[providerKey] {
		return nil, ErrFakeProviderDown
	}
	out := []string{}
	for id, profile := range f.customers[providerKey] {
		if profile.CustomerID == customerID {
			out = append(out, id)
		}
	}
	return out, nil
}

// IsTransient treats an outage as the only recoverable failure.
func (f *FakePaymentProvider) IsTransient(err error) bool {
	return errors.Is(err, ErrFakeProviderDown)
}
