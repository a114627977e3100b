package messaging

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Handler func(ctx context.Context, body []byte) error

var errDeliveriesClosed = errors.New("deliveries channel closed")

// Consumer reads one queue with manual acks. A message whose handler fails
// is rejected without requeue, unless the consumer is shutting down.
type Consumer struct {
	conn     *amqp.Connection
	queue    string
	prefetch int
}

func NewConsumer(conn *amqp.Connection, cfg config.AMQPConfig) *Consumer {
	return &Consumer{
		conn:     conn,
		queue:    cfg.ProvisionQueue,
		prefetch: cfg.Prefetch,
	}
}

// Run consumes until ctx is cancelled, reopening the channel when the
// broker closes it.
func (c *Consumer) Run(ctx context.Context, h Handler) error {
	backoff := time.Second
	for {
		err := c.consume(ctx, h)
		if ctx.Err() != nil {
			return nil
		}
		if c.conn.IsClosed() {
			return errs.Wrap(err, "broker connection closed")
		}

		slog.Warn("consumer loop ended, reopening channel",
			"queue", c.queue,
			"wait_ms", backoff.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}

func (c *Consumer) consume(ctx context.Context, h Handler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return errs.Wrap(err, "open channel")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return errs.Wrap(err, "set qos")
	}
	if err := declareQueue(ch, c.queue); err != nil {
		return errs.Wrap(err, "declare queue")
	}

	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "consume")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errDeliveriesClosed
			}
			dispatch(ctx, d, h)
		}
	}
}

func dispatch(ctx context.Context, d amqp.Delivery, h Handler) {
	if err := h(ctx, d.Body); err != nil {
		if ctx.Err() != nil {
			_ = d.Nack(false, true)
			return
		}
		slog.Error("message handling failed",
			"routing_key", d.RoutingKey,
			"error", err.Error())
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}
