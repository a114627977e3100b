package payment

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/pkg/retry"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"golang.org/x/time/rate"
)

var (
	errCreateCustomer  = errs.New("failed to create provider customer")
	errAttachMethod    = errs.New("failed to attach default payment method")
	errDeleteCustomer  = errs.New("failed to delete provider customer")
	errSearchCustomers = errs.New("failed to search provider customers")
)

// StripeProvider talks to Stripe with one client and one rate limiter per
// hotel key. Retries are done here, never inside stripe-go.
type StripeProvider struct {
	cfg     config.PaymentConfig
	backend stripe.Backend

	mu       sync.Mutex
	clients  map[string]*client.API
	limiters map[string]*rate.Limiter
}

func NewStripeProvider(cfg config.PaymentConfig) *StripeProvider {
	backendCfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(cfg.APIURL)
	}

	return &StripeProvider{
		cfg:      cfg,
		backend:  stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
		clients:  make(map[string]*client.API),
		limiters: make(map[string]*rate.Limiter),
	}
}

var _ shared.PaymentProvider = (*StripeProvider)(nil)

// CreateCustomer is not retried: a timeout leaves the outcome unknown, and the
// idempotency key lets a later resume replay the same request safely.
func (p *StripeProvider) CreateCustomer(ctx context.Context, providerKey string, profile shared.ProviderProfile, idempotencyKey string) (string, error) {
	sc, err := p.acquire(ctx, providerKey)
	if err != nil {
		return "", errs.Mark(err, errCreateCustomer)
	}

	callCtx, cancel := context.WithTimeout(ctx, p.cfg.CallTimeout)
	defer cancel()

	params := &stripe.CustomerParams{
		Name:  stripe.String(profile.Name + " " + profile.Surname),
		Phone: stripe.String(profile.Phone),
	}
	params.Context = callCtx
	params.SetIdempotencyKey(idempotencyKey)
	params.AddMetadata("customer_id", profile.CustomerID.String())
	params.AddMetadata("username", profile.Username)

	cus, err := sc.Customers.New(params)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "stripe create customer"), errCreateCustomer)
	}
	return cus.ID, nil
}

func (p *StripeProvider) AttachDefaultPaymentMethod(ctx context.Context, providerKey, providerCustomerID, idempotencyKey string) error {
	policy := retry.Policy{MaxRetries: p.cfg.MaxRetries, Base: p.cfg.RetryBase, Name: "stripe.attach_payment_method"}

	err := retry.Do(ctx, policy, IsTransient, func(ctx context.Context) error {
		sc, err := p.acquire(ctx, providerKey)
		if err != nil {
			return err
		}

		callCtx, cancel := context.WithTimeout(ctx, p.cfg.CallTimeout)
		defer cancel()

		attach := &stripe.PaymentMethodAttachParams{Customer: stripe.String(providerCustomerID)}
		attach.Context = callCtx
		attach.SetIdempotencyKey(idempotencyKey)
		pm, err := sc.PaymentMethods.Attach(p.cfg.DefaultPaymentMethod, attach)
		if err != nil {
			return errs.Wrap(err, "stripe attach payment method")
		}

		update := &stripe.CustomerParams{
			InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
				DefaultPaymentMethod: stripe.String(pm.ID),
			},
		}
		update.Context = callCtx
		if _, err := sc.Customers.Update(providerCustomerID, update); err != nil {
			return errs.Wrap(err, "stripe set default payment method")
		}
		return nil
	})
	if err != nil {
		return errs.Mark(err, errAttachMethod)
	}
	return nil
}

// DeleteCustomer treats a customer that no longer exists as deleted.
func (p *StripeProvider) DeleteCustomer(ctx context.Context, providerKey, providerCustomerID string) error {
	policy := retry.Policy{MaxRetries: p.cfg.MaxRetries, Base: p.cfg.RetryBase, Name: "stripe.delete_customer"}

	err := retry.Do(ctx, policy, IsTransient, func(ctx context.Context) error {
		sc, err := p.acquire(ctx, providerKey)
		if err != nil {
			return err
		}

		callCtx, cancel := context.WithTimeout(ctx, p.cfg.CallTimeout)
		defer cancel()

		params := &stripe.CustomerParams{}
		params.Context = callCtx
		if _, err := sc.Customers.Del(providerCustomerID, params); err != nil {
			if isResourceMissing(err) {
				return nil
			}
			return errs.Wrap(err, "stripe delete customer")
		}
		return nil
	})
	if err != nil {
		return errs.Mark(err, errDeleteCustomer)
	}
	return nil
}

// FindCustomers searches by the customer_id metadata set on create. Stripe
// search is eventually consistent, so a customer created within the last
// minute may be missing.
func (p *StripeProvider) FindCustomers(ctx context.Context, providerKey string, customerID uuid.UUID) ([]string, error) {
	policy := retry.Policy{MaxRetries: p.cfg.MaxRetries, Base: p.cfg.RetryBase, Name: "stripe.search_customers"}

	var ids []string
	err := retry.Do(ctx, policy, IsTransient, func(ctx context.Context) error {
		sc, err := p.acquire(ctx, providerKey)
		if err != nil {
			return err
		}

		callCtx, cancel := context.WithTimeout(ctx, p.cfg.CallTimeout)
		defer cancel()

		params := &stripe.CustomerSearchParams{}
		params.Context = callCtx
		params.Query = fmt.Sprintf("metadata['customer_id']:'%s'", customerID)

		found := []string{}
		it := sc.Customers.Search(params)
		for it.Next() {
			found = append(found, it.Customer().ID)
		}
		if err := it.Err(); err != nil {
			return errs.Wrap(err, "stripe search customers")
		}
		ids = found
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errSearchCustomers)
	}
	return ids, nil
}

// IsTransient reports whether a later attempt may succeed. Unlike the
// in-process retry check, only Stripe's own 4xx rejections are final here;
// 409 is an idempotent request still in flight.
func (p *StripeProvider) IsTransient(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return true
	}
	return IsTransient(err) || stripeErr.HTTPStatusCode == http.StatusConflict
}

// acquire waits for the key's rate limiter and returns its client.
func (p *StripeProvider) acquire(ctx context.Context, providerKey string) (*client.API, error) {
	p.mu.Lock()
	sc, ok := p.clients[providerKey]
	if !ok {
		sc = client.New(providerKey, &stripe.Backends{
			API:     p.backend,
			Connect: p.backend,
			Uploads: p.backend,
		})
		p.clients[providerKey] = sc
	}
	limiter, ok := p.limiters[providerKey]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(p.cfg.RatePerSecond), p.cfg.RateBurst)
		p.limiters[providerKey] = limiter
	}
	p.mu.Unlock()

	if err := limiter.Wait(ctx); err != nil {
		return nil, errs.Wrap(err, "rate limiter")
	}
	return sc, nil
}

// IsTransient reports whether a provider call may succeed when repeated:
// timeouts, throttling, 5xx and network failures.
func IsTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.HTTPStatusCode == http.StatusTooManyRequests ||
			stripeErr.HTTPStatusCode >= http.StatusInternalServerError
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func isResourceMissing(err error) bool {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.Code == stripe.ErrorCodeResourceMissing
	}
	return false
}
