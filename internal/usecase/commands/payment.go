package commands

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strconv"

	"renthub/internal/infra"
	"renthub/internal/infra/events"
	"renthub/internal/pkg/clock"
	"renthub/internal/pkg/config"
	"renthub/internal/pkg/errs"
)

var (
	ErrBadWebhookSignature = errs.New("webhook signature mismatch")
	ErrBadWebhookPayload   = errs.New("webhook payload is malformed")
)

// webhookEvent mirrors the provider's event envelope. Only checkout
// completion carries data we act on.
type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			Metadata struct {
				ReservationID string `json:"reservation_id"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

const eventCheckoutCompleted = "checkout.session.completed"

type PaymentCommands interface {
	// HandleWebhook verifies the signature over the raw body and applies the
	// payment outcome. Unknown event types are acknowledged and dropped.
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}

type paymentCommandsImpl struct {
	reservations ReservationRepository
	publisher    events.Publisher
	cfg          config.PaymentConfig
	clock        clock.Clock
}

func NewPaymentCommands(
	reservations ReservationRepository,
	publisher events.Publisher,
	cfg config.PaymentConfig,
	clk clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		reservations: reservations,
		publisher:    publisher,
		cfg:          cfg,
		clock:        clk,
	}
}

func (c *paymentCommandsImpl) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !c.verifySignature(body, signature) {
		return ErrBadWebhookSignature
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return errs.Mark(err, ErrBadWebhookPayload)
	}

	if event.Type != eventCheckoutCompleted {
		slog.Debug("ignoring webhook event", "type", event.Type)
		return nil
	}

	reservationID, err := strconv.ParseInt(event.Data.Object.Metadata.ReservationID, 10, 64)
	if err != nil {
		return errs.Mark(err, ErrBadWebhookPayload)
	}

	res, err := c.reservations.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Confirmed and paid change together; Save persists them as one UPDATE.
	if err := res.ConfirmPayment("stripe"); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.reservations.Save(ctx, res); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.publisher.PublishReservationEvent(ctx, events.ReservationEvent{
		Type:          events.EventReservationPaid,
		ReservationID: res.ID(),
		ItemID:        res.ItemID(),
		OccurredAt:    c.clock.Now(),
	})
	return nil
}

func (c *paymentCommandsImpl) verifySignature(body []byte, signature string) bool {
	if c.cfg.WebhookSecret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(c.cfg.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
