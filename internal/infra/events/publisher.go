// Package events publishes reservation lifecycle events to RabbitMQ.
// Publishing is best effort: failures are logged and swallowed so a broker
// outage never fails the request that triggered the event.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"renthub/internal/pkg/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventReservationConfirmed = "reservation.confirmed"
	EventReservationPaid      = "reservation.paid"
	EventReservationCancelled = "reservation.cancelled"
)

type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID int64     `json:"reservation_id"`
	ItemID        int64     `json:"item_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishReservationEvent(ctx context.Context, event ReservationEvent)
}

type amqpPublisher struct {
	cfg config.EventsConfig
}

func NewPublisher(cfg config.EventsConfig) Publisher {
	if cfg.AMQPURL == "" {
		return noopPublisher{}
	}
	return &amqpPublisher{cfg: cfg}
}

// PublishReservationEvent dials per publish. Event volume here is a handful
// per booking, far below where a pooled channel would matter.
func (p *amqpPublisher) PublishReservationEvent(ctx context.Context, event ReservationEvent) {
	if err := p.publish(ctx, event); err != nil {
		slog.Warn("failed to publish reservation event",
			"type", event.Type,
			"reservation_id", event.ReservationID,
			"error", err)
	}
}

func (p *amqpPublisher) publish(ctx context.Context, event ReservationEvent) error {
	conn, err := amqp.Dial(p.cfg.AMQPURL)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable queue, declared idempotently.
	if _, err := ch.QueueDeclare(p.cfg.Queue, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx,
		"",          // default exchange
		p.cfg.Queue, // routing key = queue name
		false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

// noopPublisher keeps local development working without a broker.
type noopPublisher struct{}

func (noopPublisher) PublishReservationEvent(context.Context, ReservationEvent) {}
