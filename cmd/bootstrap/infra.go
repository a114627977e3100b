package bootstrap

import (
	"context"
	"log/slog"

	"hotel-backend/internal/infra/lock"
	"hotel-backend/internal/infra/messaging"
	"hotel-backend/internal/infra/payment"
	"hotel-backend/internal/pkg/clock"
	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// InfraModule wires the external integrations. Redis and the broker are
// optional: without them the provisioning lock is process local and
// incomplete-provisioning events are only logged.
var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		NewRedisClient,
		NewLocker,
		NewBrokerConnection,
		NewEventPublisher,
		fx.Annotate(
			payment.NewStripeProvider,
			fx.As(new(shared.PaymentProvider)),
		),
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset.
func NewRedisClient(lc fx.Lifecycle, cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	rdb, cleanup, err := lock.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func(_ context.Context) error {
		cleanup()
		return nil
	}))
	return rdb, nil
}

func NewLocker(rdb *redis.Client, clk clock.Clock) shared.Locker {
	if rdb == nil {
		slog.Info("Redis not configured, using in-process provisioning lock")
		return lock.NewMemoryLocker(clk)
	}
	return lock.NewRedisLocker(rdb)
}

// NewBrokerConnection returns nil when AMQP_URL is unset.
func NewBrokerConnection(lc fx.Lifecycle, cfg config.AMQPConfig) (*amqp.Connection, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	conn, cleanup, err := messaging.Dial(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func(_ context.Context) error {
		cleanup()
		return nil
	}))
	return conn, nil
}

func NewEventPublisher(conn *amqp.Connection, cfg config.AMQPConfig) shared.EventPublisher {
	if conn == nil {
		slog.Info("Broker not configured, provisioning events are logged only")
		return messaging.NewLogPublisher()
	}
	return messaging.NewPublisher(conn, cfg)
}
