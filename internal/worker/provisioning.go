package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"hotel-backend/internal/pkg/clock"
	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidEvent = errs.New("invalid provisioning event")

// ProvisioningWorker resumes provisioning for customers announced by
// ProvisioningIncomplete events.
type ProvisioningWorker struct {
	provisioner commands.ProvisioningCommands
	clock       clock.Clock
	delay       time.Duration
}

func NewProvisioningWorker(provisioner commands.ProvisioningCommands, clk clock.Clock, cfg config.AMQPConfig) *ProvisioningWorker {
	return &ProvisioningWorker{
		provisioner: provisioner,
		clock:       clk,
		delay:       cfg.ResumeDelay,
	}
}

// Handle is a messaging.Handler. A returned error rejects the message.
// Only intents within their retry budget are resumed, so a run that
// exhausts the budget publishes no further events.
func (w *ProvisioningWorker) Handle(ctx context.Context, body []byte) error {
	var ev shared.ProvisioningIncomplete
	if err := json.Unmarshal(body, &ev); err != nil {
		return errs.Mark(errs.Wrap(err, "decode provisioning event"), ErrInvalidEvent)
	}
	if ev.CustomerID == uuid.Nil {
		return errs.Wrap(ErrInvalidEvent, "missing customer_id")
	}

	if err := w.wait(ctx, ev.OccurredAt); err != nil {
		return err
	}

	report, err := w.provisioner.ContinueProvisioning(ctx, ev.CustomerID)
	if err != nil {
		if errors.Is(err, commands.ErrProvisioningBusy) || errors.Is(err, commands.ErrCustomerNotFound) {
			slog.Info("provisioning event dropped",
				"customer_id", ev.CustomerID.String(),
				"reason", err.Error())
			return nil
		}
		return errs.Wrapf(err, "resume provisioning for %s", ev.CustomerID)
	}

	slog.Info("provisioning resumed",
		"customer_id", ev.CustomerID.String(),
		"status", string(report.Status),
		"failed", len(report.Failures()))
	return nil
}

// wait holds the event until occurredAt+delay so that a failing provider is
// not hammered by republished events.
func (w *ProvisioningWorker) wait(ctx context.Context, occurredAt time.Time) error {
	if w.delay <= 0 {
		return nil
	}
	remaining := occurredAt.Add(w.delay).Sub(w.clock.Now())
	if remaining <= 0 {
		return nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
