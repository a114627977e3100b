package provisioning

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStep        = errors.New("invalid provisioning step")
	ErrStepOutOfOrder     = errors.New("provisioning step out of order")
	ErrMissingProviderRef = errors.New("provider customer id is required")
)

// Step is the furthest point an intent has durably reached. Steps only move
// forward: pending -> customer_created -> linked -> completed.
type Step string

const (
	StepPending         Step = "pending"
	StepCustomerCreated Step = "customer_created"
	StepLinked          Step = "linked"
	StepCompleted       Step = "completed"
)

func (s Step) String() string { return string(s) }

func (s Step) order() int {
	switch s {
	case StepPending:
		return 0
	case StepCustomerCreated:
		return 1
	case StepLinked:
		return 2
	case StepCompleted:
		return 3
	default:
		return -1
	}
}

func ParseStep(s string) (Step, error) {
	step := Step(s)
	if step.order() < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidStep, s)
	}
	return step, nil
}

// Intent records provisioning of one (customer, hotel) pair. It is written
// before any provider call so an interrupted run can resume.
type Intent struct {
	id                 uuid.UUID
	customerID         uuid.UUID
	hotelID            uuid.UUID
	step               Step
	providerCustomerID string
	attempts           int32
	lastError          string
	updatedAt          time.Time
}

func NewIntent(customerID, hotelID uuid.UUID) *Intent {
	return &Intent{
		id:         uuid.New(),
		customerID: customerID,
		hotelID:    hotelID,
		step:       StepPending,
	}
}

func ReconstructIntent(
	id, customerID, hotelID uuid.UUID,
	step Step,
	providerCustomerID string,
	attempts int32,
	lastError string,
	updatedAt time.Time,
) *Intent {
	return &Intent{
		id:                 id,
		customerID:         customerID,
		hotelID:            hotelID,
		step:               step,
		providerCustomerID: providerCustomerID,
		attempts:           attempts,
		lastError:          lastError,
		updatedAt:          updatedAt,
	}
}

func (i *Intent) advance(to Step) error {
	if to.order() != i.step.order()+1 {
		return fmt.Errorf("%w: %s -> %s", ErrStepOutOfOrder, i.step, to)
	}
	i.step = to
	i.lastError = ""
	return nil
}

func (i *Intent) MarkCustomerCreated(providerCustomerID string) error {
	if providerCustomerID == "" {
		return ErrMissingProviderRef
	}
	if err := i.advance(StepCustomerCreated); err != nil {
		return err
	}
	i.providerCustomerID = providerCustomerID
	return nil
}

func (i *Intent) MarkLinked() error    { return i.advance(StepLinked) }
func (i *Intent) MarkCompleted() error { return i.advance(StepCompleted) }

// RecordFailure keeps the step and notes the error for the next attempt.
func (i *Intent) RecordFailure(err error) {
	i.attempts++
	if err != nil {
		i.lastError = err.Error()
	}
}

// RecordPermanentFailure notes a failure that repeating the call cannot fix.
// The intent is left exhausted under budget.
func (i *Intent) RecordPermanentFailure(err error, budget int32) {
	i.RecordFailure(err)
	i.attempts = max(i.attempts, budget)
}

// Exhausted reports whether the intent has used up budget. A budget of zero
// or less never runs out.
func (i *Intent) Exhausted(budget int32) bool {
	return budget > 0 && !i.IsCompleted() && i.attempts >= budget
}

// ResetAttempts gives an exhausted intent a fresh budget.
func (i *Intent) ResetAttempts() { i.attempts = 0 }

func (i *Intent) IsCompleted() bool { return i.step == StepCompleted }

// HasProviderCustomer reports whether a provider record may exist for the
// intent and must be removed on deprovisioning.
func (i *Intent) HasProviderCustomer() bool {
	return i.providerCustomerID != ""
}

// IdempotencyKey derives a stable provider idempotency key for action.
func (i *Intent) IdempotencyKey(action string) string {
	return i.id.String() + ":" + action
}

func (i *Intent) ID() uuid.UUID              { return i.id }
func (i *Intent) CustomerID() uuid.UUID      { return i.customerID }
func (i *Intent) HotelID() uuid.UUID         { return i.hotelID }
func (i *Intent) Step() Step                 { return i.step }
func (i *Intent) ProviderCustomerID() string { return i.providerCustomerID }
func (i *Intent) Attempts() int32            { return i.attempts }
func (i *Intent) LastError() string          { return i.lastError }
func (i *Intent) UpdatedAt() time.Time       { return i.updatedAt }
