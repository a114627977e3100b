package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-backend/internal/domain/provisioning"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/clock"
	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/pkg/retry"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProvisioningBusy     = errs.New("provisioning already running for customer")
	ErrRetryBudgetExhausted = errs.New("provisioning retry budget exhausted")
)

type ProvisioningCommands interface {
	// ProvisionForNewCustomer creates the customer at every hotel's payment
	// provider and reports the per-hotel outcome.
	ProvisionForNewCustomer(ctx context.Context, customerID uuid.UUID) (*provisioning.Report, error)
	// ResumeProvisioning picks up outstanding intents where they stopped.
	// Intents that ran out of retry budget get a fresh one.
	ResumeProvisioning(ctx context.Context, customerID uuid.UUID) (*provisioning.Report, error)
	// ContinueProvisioning resumes only intents still within their retry
	// budget.
	ContinueProvisioning(ctx context.Context, customerID uuid.UUID) (*provisioning.Report, error)
	// ResumeOutstanding continues up to limit customers with unfinished
	// intents that are still within their retry budget.
	ResumeOutstanding(ctx context.Context, limit int32) ([]provisioning.Report, error)
	// DeprovisionForCustomer deletes the customer together with its links,
	// intents and provider records. It runs inside the caller's transaction.
	DeprovisionForCustomer(ctx context.Context, tx shared.Tx, customerID uuid.UUID) error
}

type provisioningUseCaseImpl struct {
	uow       shared.UnitOfWork
	provider  shared.PaymentProvider
	locker    shared.Locker
	directory shared.HotelDirectory
	publisher shared.EventPublisher
	clock     clock.Clock
	cfg       config.PaymentConfig
}

func NewProvisioningUseCase(
	uow shared.UnitOfWork,
	provider shared.PaymentProvider,
	locker shared.Locker,
	directory shared.HotelDirectory,
	publisher shared.EventPublisher,
	clk clock.Clock,
	cfg config.PaymentConfig,
) ProvisioningCommands {
	return &provisioningUseCaseImpl{
		uow:       uow,
		provider:  provider,
		locker:    locker,
		directory: directory,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
	}
}

func provisioningLockKey(customerID uuid.UUID) string {
	return "provisioning:" + customerID.String()
}

// acquireCustomerLock serialises provisioning and deletion of one customer.
func acquireCustomerLock(ctx context.Context, locker shared.Locker, ttl time.Duration, customerID uuid.UUID) (shared.Release, error) {
	release, err := locker.Acquire(ctx, provisioningLockKey(customerID), ttl)
	if err != nil {
		if errors.Is(err, shared.ErrLockHeld) {
			return nil, errs.Mark(err, ErrProvisioningBusy)
		}
		return nil, err
	}
	return release, nil
}

func releaseLock(ctx context.Context, release shared.Release, customerID uuid.UUID) {
	if err := release(context.WithoutCancel(ctx)); err != nil {
		slog.Warn("failed to release provisioning lock",
			"customer_id", customerID,
			"error", err.Error())
	}
}

func (p *provisioningUseCaseImpl) ProvisionForNewCustomer(ctx context.Context, customerID uuid.UUID) (*provisioning.Report, error) {
	return p.run(ctx, customerID, false)
}

func (p *provisioningUseCaseImpl) ResumeProvisioning(ctx context.Context, customerID uuid.UUID) (*provisioning.Report, error) {
	return p.run(ctx, customerID, true)
}

func (p *provisioningUseCaseImpl) ContinueProvisioning(ctx context.Context, customerID uuid.UUID) (*provisioning.Report, error) {
	return p.run(ctx, customerID, false)
}

func (p *provisioningUseCaseImpl) ResumeOutstanding(ctx context.Context, limit int32) ([]provisioning.Report, error) {
	var customerIDs []uuid.UUID
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, derr := tx.Provisioning().OutstandingCustomers(ctx, tx.DB(), p.cfg.MaxAttempts, limit)
		customerIDs = ids
		return derr
	})
	if err != nil {
		return nil, err
	}

	reports := make([]provisioning.Report, 0, len(customerIDs))
	for _, id := range customerIDs {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := p.run(ctx, id, false)
		if err != nil {
			if errors.Is(err, ErrProvisioningBusy) || errors.Is(err, ErrCustomerNotFound) {
				slog.Info("skipping provisioning resume",
					"customer_id", id,
					"reason", err.Error())
				continue
			}
			return reports, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

// run creates any missing intents, then advances every unfinished one that
// has budget left. freshBudget resets exhausted intents first. Provider
// failures end up in the report, not in the returned error.
func (p *provisioningUseCaseImpl) run(ctx context.Context, customerID uuid.UUID, freshBudget bool) (*provisioning.Report, error) {
	hotels, err := p.directory.Hotels(ctx)
	if err != nil {
		return nil, err
	}

	release, err := acquireCustomerLock(ctx, p.locker, p.leaseFor(len(hotels)), customerID)
	if err != nil {
		return nil, err
	}
	defer releaseLock(ctx, release, customerID)

	var customer *shared.CustomerSnapshot
	var intents []*provisioning.Intent
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().CustomerByID(ctx, customerID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return derr
		}
		customer = snap

		fresh := make([]*provisioning.Intent, 0, len(hotels))
		for _, h := range hotels {
			fresh = append(fresh, provisioning.NewIntent(customerID, h.ID))
		}
		if derr = tx.Provisioning().CreateIntents(ctx, tx.DB(), fresh); derr != nil {
			return derr
		}

		intents, derr = tx.Provisioning().ListIntents(ctx, tx.DB(), customerID)
		return derr
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]shared.HotelSnapshot, len(hotels))
	for _, h := range hotels {
		byID[h.ID] = h
	}
	profile := shared.ProviderProfile{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Surname:    customer.Surname,
		Phone:      customer.Phone,
		Username:   customer.Username,
	}

	outcomes := make([]provisioning.Outcome, len(intents))
	var g errgroup.Group
	g.SetLimit(max(p.cfg.Concurrency, 1))
	for i, in := range intents {
		switch {
		case in.IsCompleted():
			outcomes[i] = provisioning.Outcome{HotelID: in.HotelID(), Step: in.Step()}
			continue
		case in.Exhausted(p.cfg.MaxAttempts) && freshBudget:
			in.ResetAttempts()
		case in.Exhausted(p.cfg.MaxAttempts):
			outcomes[i] = provisioning.Outcome{
				HotelID: in.HotelID(),
				Step:    in.Step(),
				Err:     errs.Wrapf(ErrRetryBudgetExhausted, "after %d attempts: %s", in.Attempts(), in.LastError()),
			}
			continue
		}
		g.Go(func() error {
			outcomes[i] = p.advance(ctx, byID, profile, in)
			return nil
		})
	}
	_ = g.Wait()

	report := provisioning.NewReport(customerID, outcomes)
	switch {
	case report.IsComplete():
	case p.retryable(intents):
		p.publishIncomplete(ctx, report)
	default:
		slog.Error("provisioning gave up, operator resume required",
			"customer_id", customerID,
			"status", string(report.Status),
			"failed", len(report.Failures()))
	}
	return &report, nil
}

// retryable reports whether an automatic resume could still make progress.
func (p *provisioningUseCaseImpl) retryable(intents []*provisioning.Intent) bool {
	for _, in := range intents {
		if !in.IsCompleted() && !in.Exhausted(p.cfg.MaxAttempts) {
			return true
		}
	}
	return false
}

// leaseFor sizes the provisioning lease so that it outlives a run over
// hotels in which every provider call hits its timeout. LockTTL is the
// margin for rate limiting and database work.
func (p *provisioningUseCaseImpl) leaseFor(hotels int) time.Duration {
	concurrency := max(p.cfg.Concurrency, 1)
	waves := (hotels + concurrency - 1) / concurrency

	// one create plus every attach attempt
	calls := time.Duration(2 + p.cfg.MaxRetries)
	perHotel := calls*p.cfg.CallTimeout + retry.MaxWait(retry.Policy{MaxRetries: p.cfg.MaxRetries, Base: p.cfg.RetryBase})

	return p.cfg.LockTTL + time.Duration(waves)*perHotel
}

// advance drives one intent to completion or to its first failure.
func (p *provisioningUseCaseImpl) advance(
	ctx context.Context,
	hotels map[uuid.UUID]shared.HotelSnapshot,
	profile shared.ProviderProfile,
	in *provisioning.Intent,
) provisioning.Outcome {
	hotel, err := p.hotel(ctx, hotels, in.HotelID())
	for err == nil && !in.IsCompleted() {
		err = p.step(ctx, hotel, profile, in)
	}
	if err == nil {
		return provisioning.Outcome{HotelID: in.HotelID(), Step: in.Step()}
	}

	slog.Warn("provisioning step failed",
		"customer_id", in.CustomerID(),
		"hotel_id", in.HotelID(),
		"step", in.Step().String(),
		"attempts", in.Attempts()+1,
		"error", err.Error())

	if p.permanent(ctx, err) {
		in.RecordPermanentFailure(err, p.cfg.MaxAttempts)
	} else {
		in.RecordFailure(err)
	}
	if serr := p.save(ctx, in); serr != nil {
		slog.Error("failed to record provisioning failure",
			"customer_id", in.CustomerID(),
			"hotel_id", in.HotelID(),
			"error", serr.Error())
	}
	return provisioning.Outcome{HotelID: in.HotelID(), Step: in.Step(), Err: err}
}

// step performs the side effect for the intent's current step first and
// advances the intent only once it succeeded.
func (p *provisioningUseCaseImpl) step(
	ctx context.Context,
	hotel shared.HotelSnapshot,
	profile shared.ProviderProfile,
	in *provisioning.Intent,
) error {
	switch in.Step() {
	case provisioning.StepPending:
		// no retries: a lost response would leave a duplicate customer behind
		providerCustomerID, err := p.provider.CreateCustomer(ctx, hotel.ProviderKey, profile, in.IdempotencyKey("create"))
		if err != nil {
			return errs.Mark(err, ErrProviderError)
		}
		if err = in.MarkCustomerCreated(providerCustomerID); err != nil {
			return err
		}

	case provisioning.StepCustomerCreated:
		link := shared.CustomerHotelLink{
			CustomerID:         in.CustomerID(),
			HotelID:            in.HotelID(),
			ProviderCustomerID: in.ProviderCustomerID(),
		}
		err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Provisioning().UpsertLink(ctx, tx.DB(), link)
		})
		if err != nil {
			return err
		}
		if err = in.MarkLinked(); err != nil {
			return err
		}

	case provisioning.StepLinked:
		if err := p.provider.AttachDefaultPaymentMethod(ctx, hotel.ProviderKey, in.ProviderCustomerID(), in.IdempotencyKey("attach")); err != nil {
			return errs.Mark(err, ErrProviderError)
		}
		if err := in.MarkCompleted(); err != nil {
			return err
		}

	default:
		return errs.Wrapf(provisioning.ErrInvalidStep, "cannot advance from %s", in.Step())
	}

	return p.save(ctx, in)
}

// permanent reports whether the provider rejected a call in a way that
// repeating it cannot fix. Cancellation is never permanent.
func (p *provisioningUseCaseImpl) permanent(ctx context.Context, err error) bool {
	if ctx.Err() != nil || !errors.Is(err, ErrProviderError) {
		return false
	}
	return !p.provider.IsTransient(err)
}

func (p *provisioningUseCaseImpl) save(ctx context.Context, in *provisioning.Intent) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Provisioning().SaveIntent(ctx, tx.DB(), in)
	})
}

// hotel falls back to the database when the cached directory predates the
// hotel.
func (p *provisioningUseCaseImpl) hotel(ctx context.Context, hotels map[uuid.UUID]shared.HotelSnapshot, id uuid.UUID) (shared.HotelSnapshot, error) {
	if h, ok := hotels[id]; ok {
		return h, nil
	}
	h, err := p.uow.CommandReads().HotelByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return shared.HotelSnapshot{}, ErrHotelNotFound
		}
		return shared.HotelSnapshot{}, err
	}
	return *h, nil
}

func (p *provisioningUseCaseImpl) publishIncomplete(ctx context.Context, report provisioning.Report) {
	ev := shared.ProvisioningIncomplete{
		CustomerID: report.CustomerID,
		Status:     string(report.Status),
		Failed:     len(report.Failures()),
		OccurredAt: p.clock.Now(),
	}
	if err := p.publisher.PublishProvisioningIncomplete(ctx, ev); err != nil {
		slog.Warn("failed to publish provisioning event",
			"customer_id", report.CustomerID,
			"error", err.Error())
	}
}

func (p *provisioningUseCaseImpl) DeprovisionForCustomer(ctx context.Context, tx shared.Tx, customerID uuid.UUID) error {
	if err := tx.Customers().Lock(ctx, tx.DB(), customerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}

	links, err := tx.Provisioning().ListLinks(ctx, tx.DB(), customerID)
	if err != nil {
		return err
	}
	intents, err := tx.Provisioning().ListIntents(ctx, tx.DB(), customerID)
	if err != nil {
		return err
	}

	// links and intents usually name the same provider record
	targets := make(map[providerRecord]struct{}, len(links))
	for _, l := range links {
		targets[providerRecord{hotelID: l.HotelID, providerCustomerID: l.ProviderCustomerID}] = struct{}{}
	}
	// a pending intent may have created a record whose id never reached us
	var unresolved []uuid.UUID
	for _, in := range intents {
		if !in.HasProviderCustomer() {
			unresolved = append(unresolved, in.HotelID())
			continue
		}
		targets[providerRecord{hotelID: in.HotelID(), providerCustomerID: in.ProviderCustomerID()}] = struct{}{}
	}

	if _, err = tx.Provisioning().DeleteLinks(ctx, tx.DB(), customerID); err != nil {
		return err
	}
	if _, err = tx.Provisioning().DeleteIntents(ctx, tx.DB(), customerID); err != nil {
		return err
	}
	if err = tx.Customers().Delete(ctx, tx.DB(), customerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}

	keys := make(map[uuid.UUID]string)
	providerKey := func(hotelID uuid.UUID) (string, error) {
		if key, ok := keys[hotelID]; ok {
			return key, nil
		}
		hotel, herr := tx.Reads().HotelByID(ctx, hotelID)
		if herr != nil {
			return "", herr
		}
		keys[hotelID] = hotel.ProviderKey
		return hotel.ProviderKey, nil
	}

	// provider records go last so a failed delete rolls the rows back
	for _, hotelID := range unresolved {
		key, herr := providerKey(hotelID)
		if herr != nil {
			return herr
		}
		found, ferr := p.provider.FindCustomers(ctx, key, customerID)
		if ferr != nil {
			if p.provider.IsTransient(ferr) {
				return errs.Mark(ferr, ErrProviderError)
			}
			// the key cannot reach any record it may have created
			slog.Warn("skipping provider lookup for pending intent",
				"customer_id", customerID,
				"hotel_id", hotelID,
				"error", ferr.Error())
			continue
		}
		for _, id := range found {
			targets[providerRecord{hotelID: hotelID, providerCustomerID: id}] = struct{}{}
		}
	}

	type deletion struct {
		providerKey        string
		providerCustomerID string
	}
	deletions := make([]deletion, 0, len(targets))
	for target := range targets {
		key, herr := providerKey(target.hotelID)
		if herr != nil {
			return herr
		}
		deletions = append(deletions, deletion{providerKey: key, providerCustomerID: target.providerCustomerID})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.cfg.Concurrency, 1))
	for _, d := range deletions {
		g.Go(func() error {
			if derr := p.provider.DeleteCustomer(gctx, d.providerKey, d.providerCustomerID); derr != nil {
				return errs.Mark(derr, ErrProviderError)
			}
			return nil
		})
	}
	return g.Wait()
}

type providerRecord struct {
	hotelID            uuid.UUID
	providerCustomerID string
}
