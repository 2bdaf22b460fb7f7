//go:build unit

package commands_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"renthub/internal/domain/reservation"
	"renthub/internal/infra/events"
	"renthub/internal/pkg/clock"
	"renthub/internal/pkg/config"
	"renthub/internal/pkg/errs"
	"renthub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func checkoutBody(reservationID string) []byte {
	return fmt.Appendf(nil,
		`{"type":"checkout.session.completed","data":{"object":{"metadata":{"reservation_id":"%s"}}}}`,
		reservationID)
}

type paymentFixture struct {
	cmds      commands.PaymentCommands
	repo      *fakeReservationRepo
	publisher *fakePublisher
	secret    string
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	cfg := config.NewTestConfig().Payment
	f := &paymentFixture{
		repo:      &fakeReservationRepo{byID: map[int64]*reservation.Reservation{}, owners: map[int64]uuid.UUID{}},
		publisher: &fakePublisher{},
		secret:    cfg.WebhookSecret,
	}
	f.cmds = commands.NewPaymentCommands(f.repo, f.publisher, cfg, clock.NewMockClock(testNow))
	return f
}

func (f *paymentFixture) seedPendingReservation(t *testing.T, id int64) *reservation.Reservation {
	t.Helper()
	res := reservation.Reconstruct(
		id, 42, uuid.New(),
		mustDateRange(t, "2026-09-10", "2026-09-12"),
		reservation.StatusPending, reservation.PaymentUnpaid, reservation.PaymentProviderNone,
		testNow,
	)
	f.repo.byID[id] = res
	return res
}

func TestPaymentCommands_HandleWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("checkout completion confirms and marks paid in one save", func(t *testing.T) {
		f := newPaymentFixture(t)
		res := f.seedPendingReservation(t, 7)
		body := checkoutBody("7")

		require.NoError(t, f.cmds.HandleWebhook(ctx, body, sign(f.secret, body)))

		assert.True(t, res.IsConfirmed())
		assert.Equal(t, reservation.PaymentPaid, res.PaymentStatus())
		assert.Equal(t, "stripe", res.PaymentProvider())
		// Both fields must land atomically, so exactly one persistence call.
		require.Len(t, f.repo.saved, 1)

		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, events.EventReservationPaid, f.publisher.events[0].Type)
		assert.Equal(t, int64(7), f.publisher.events[0].ReservationID)
	})

	t.Run("rejects a tampered body", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.seedPendingReservation(t, 7)
		signature := sign(f.secret, checkoutBody("7"))

		err := f.cmds.HandleWebhook(ctx, checkoutBody("8"), signature)
		require.ErrorIs(t, err, commands.ErrBadWebhookSignature)
		assert.Empty(t, f.repo.saved)
	})

	t.Run("rejects everything when no secret is configured", func(t *testing.T) {
		repo := &fakeReservationRepo{byID: map[int64]*reservation.Reservation{}, owners: map[int64]uuid.UUID{}}
		cmds := commands.NewPaymentCommands(repo, &fakePublisher{}, config.PaymentConfig{}, clock.NewMockClock(testNow))
		body := checkoutBody("7")

		err := cmds.HandleWebhook(ctx, body, sign("", body))
		require.ErrorIs(t, err, commands.ErrBadWebhookSignature)
	})

	t.Run("acknowledges unknown event types without touching storage", func(t *testing.T) {
		f := newPaymentFixture(t)
		body := []byte(`{"type":"invoice.created","data":{"object":{"metadata":{}}}}`)

		require.NoError(t, f.cmds.HandleWebhook(ctx, body, sign(f.secret, body)))
		assert.Empty(t, f.repo.saved)
		assert.Empty(t, f.publisher.events)
	})

	t.Run("rejects malformed payloads", func(t *testing.T) {
		testCases := []struct {
			name string
			body []byte
		}{
			{name: "not json", body: []byte(`{"type":`)},
			{name: "non-numeric reservation id", body: checkoutBody("seven")},
			{name: "missing reservation id", body: checkoutBody("")},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newPaymentFixture(t)
				err := f.cmds.HandleWebhook(ctx, tc.body, sign(f.secret, tc.body))
				require.ErrorIs(t, err, commands.ErrBadWebhookPayload)
			})
		}
	})

	t.Run("unknown reservation id in a valid event", func(t *testing.T) {
		f := newPaymentFixture(t)
		body := checkoutBody("99")

		err := f.cmds.HandleWebhook(ctx, body, sign(f.secret, body))
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("payment for a cancelled reservation fails", func(t *testing.T) {
		f := newPaymentFixture(t)
		res := f.seedPendingReservation(t, 7)
		require.NoError(t, res.Cancel())
		body := checkoutBody("7")

		err := f.cmds.HandleWebhook(ctx, body, sign(f.secret, body))
		require.ErrorIs(t, err, errs.ErrDomainValidation)
		assert.Empty(t, f.repo.saved)
	})
}
