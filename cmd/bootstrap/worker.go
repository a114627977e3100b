package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"hotel-backend/internal/infra/messaging"
	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/worker"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewProvisioningWorker,
	),
	fx.Invoke(runProvisioningWorker),
)

// runProvisioningWorker consumes incomplete-provisioning events for the
// lifetime of the app. Stopping cancels the consumer and waits for the
// in-flight message.
func runProvisioningWorker(lc fx.Lifecycle, conn *amqp.Connection, cfg config.AMQPConfig, w *worker.ProvisioningWorker) {
	if conn == nil {
		return
	}

	consumer := messaging.NewConsumer(conn, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				slog.Info("Provisioning worker started", "queue", cfg.ProvisionQueue)
				if err := consumer.Run(ctx, w.Handle); err != nil {
					slog.Error("Provisioning worker stopped", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
