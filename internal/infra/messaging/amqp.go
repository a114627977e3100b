package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hotel-backend/internal/pkg/config"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

func Dial(cfg config.AMQPConfig) (*amqp.Connection, func(), error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to dial broker")
	}

	cleanup := func() {
		slog.Info("Closing broker connection")
		_ = conn.Close()
	}
	return conn, cleanup, nil
}

func declareQueue(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	return err
}

// Publisher sends events to a durable queue on the default exchange.
type Publisher struct {
	conn  *amqp.Connection
	queue string

	mu sync.Mutex
	ch *amqp.Channel
}

func NewPublisher(conn *amqp.Connection, cfg config.AMQPConfig) *Publisher {
	return &Publisher{
		conn:  conn,
		queue: cfg.ProvisionQueue,
	}
}

var _ shared.EventPublisher = (*Publisher)(nil)

func (p *Publisher) PublishProvisioningIncomplete(ctx context.Context, ev shared.ProvisioningIncomplete) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal provisioning event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return errs.Wrap(err, "publish provisioning event")
	}
	return nil
}

// channel reopens the channel after the broker closed it. Caller holds mu.
func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, errs.Wrap(err, "open channel")
	}
	if err := declareQueue(ch, p.queue); err != nil {
		_ = ch.Close()
		return nil, errs.Wrap(err, "declare queue")
	}
	p.ch = ch
	return ch, nil
}

// LogPublisher stands in when no broker is configured. Outstanding intents
// are then picked up by the admin resume command.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

var _ shared.EventPublisher = (*LogPublisher)(nil)

func (LogPublisher) PublishProvisioningIncomplete(_ context.Context, ev shared.ProvisioningIncomplete) error {
	slog.Warn("provisioning incomplete, no broker configured",
		"customer_id", ev.CustomerID.String(),
		"status", ev.Status,
		"failed", ev.Failed)
	return nil
}
