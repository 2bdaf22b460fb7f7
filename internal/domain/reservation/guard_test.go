//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"renthub/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptReserve(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	itemID := int64(7)
	renterID := uuid.New()

	existing := []reservation.Snapshot{
		{
			ID:        1,
			ItemID:    itemID,
			Status:    reservation.StatusConfirmed,
			Range:     mustRange(t, "2024-06-10", "2024-06-15"),
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}

	t.Run("rejects a range overlapping a confirmed reservation", func(t *testing.T) {
		requested := mustRange(t, "2024-06-12", "2024-06-20")

		draft, err := reservation.AttemptReserve(itemID, renterID, requested, existing, now)
		require.ErrorIs(t, err, reservation.ErrDateConflict)
		assert.Nil(t, draft)
	})

	t.Run("accepts a range starting the day after the booking ends", func(t *testing.T) {
		requested := mustRange(t, "2024-06-16", "2024-06-20")

		draft, err := reservation.AttemptReserve(itemID, renterID, requested, existing, now)
		require.NoError(t, err)
		require.NotNil(t, draft)

		assert.Equal(t, itemID, draft.ItemID)
		assert.Equal(t, renterID, draft.RenterID)
		assert.Equal(t, reservation.StatusPending, draft.Status)
		assert.Equal(t, reservation.PaymentUnpaid, draft.PaymentStatus)
		assert.Equal(t, reservation.PaymentProviderNone, draft.PaymentProvider)
	})

	t.Run("rejects a range starting before today", func(t *testing.T) {
		requested := mustRange(t, "2024-05-28", "2024-06-03")

		_, err := reservation.AttemptReserve(itemID, renterID, requested, existing, now)
		require.ErrorIs(t, err, reservation.ErrDateInPast)
	})

	t.Run("today itself is bookable", func(t *testing.T) {
		requested := mustRange(t, "2024-06-01", "2024-06-02")

		_, err := reservation.AttemptReserve(itemID, renterID, requested, existing, now)
		require.NoError(t, err)
	})

	t.Run("ignores a stale pending hold on the requested dates", func(t *testing.T) {
		stale := []reservation.Snapshot{
			{
				ID:        2,
				ItemID:    itemID,
				Status:    reservation.StatusPending,
				Range:     mustRange(t, "2024-06-16", "2024-06-20"),
				CreatedAt: now.Add(-reservation.HoldTTL - time.Second),
			},
		}

		_, err := reservation.AttemptReserve(itemID, renterID, mustRange(t, "2024-06-16", "2024-06-20"), stale, now)
		require.NoError(t, err)
	})

	t.Run("a fresh pending hold blocks the requested dates", func(t *testing.T) {
		fresh := []reservation.Snapshot{
			{
				ID:        3,
				ItemID:    itemID,
				Status:    reservation.StatusPending,
				Range:     mustRange(t, "2024-06-16", "2024-06-20"),
				CreatedAt: now.Add(-reservation.HoldTTL),
			},
		}

		_, err := reservation.AttemptReserve(itemID, renterID, mustRange(t, "2024-06-18", "2024-06-19"), fresh, now)
		require.ErrorIs(t, err, reservation.ErrDateConflict)
	})

	t.Run("no existing reservations accepts any future range", func(t *testing.T) {
		draft, err := reservation.AttemptReserve(itemID, renterID, mustRange(t, "2024-07-01", "2024-07-03"), nil, now)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, draft.Status)
	})
}

func TestReservationLifecycle(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	pending := func() *reservation.Reservation {
		return reservation.Reconstruct(
			42, 7, uuid.New(),
			mustRange(t, "2024-06-10", "2024-06-12"),
			reservation.StatusPending,
			reservation.PaymentUnpaid,
			reservation.PaymentProviderNone,
			now,
		)
	}

	t.Run("pending can be confirmed", func(t *testing.T) {
		r := pending()
		require.NoError(t, r.Confirm())
		assert.True(t, r.IsConfirmed())
	})

	t.Run("pending can be cancelled", func(t *testing.T) {
		r := pending()
		require.NoError(t, r.Cancel())
		assert.True(t, r.IsCancelled())
	})

	t.Run("confirmed can still be cancelled", func(t *testing.T) {
		r := pending()
		require.NoError(t, r.Confirm())
		require.NoError(t, r.Cancel())
		assert.True(t, r.IsCancelled())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		r := pending()
		require.NoError(t, r.Cancel())

		assert.ErrorIs(t, r.Confirm(), reservation.ErrAlreadyCancelled)
		assert.ErrorIs(t, r.Cancel(), reservation.ErrAlreadyCancelled)
		assert.ErrorIs(t, r.ConfirmPayment("manual"), reservation.ErrAlreadyCancelled)
	})

	t.Run("payment confirmation sets status and payment together", func(t *testing.T) {
		r := pending()
		require.NoError(t, r.ConfirmPayment("manual"))

		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, reservation.PaymentPaid, r.PaymentStatus())
		assert.Equal(t, "manual", r.PaymentProvider())
	})

	t.Run("payment can be reverted without touching status", func(t *testing.T) {
		r := pending()
		require.NoError(t, r.ConfirmPayment("manual"))
		require.NoError(t, r.RevertPayment())

		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, reservation.PaymentUnpaid, r.PaymentStatus())
	})

	t.Run("reverting an unpaid reservation fails", func(t *testing.T) {
		r := pending()
		assert.ErrorIs(t, r.RevertPayment(), reservation.ErrNotPaid)
	})
}
