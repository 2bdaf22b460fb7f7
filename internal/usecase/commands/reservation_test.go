//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"renthub/internal/domain/item"
	"renthub/internal/domain/reservation"
	"renthub/internal/infra"
	"renthub/internal/infra/events"
	"renthub/internal/pkg/clock"
	"renthub/internal/pkg/errs"
	"renthub/internal/usecase/commands"
	"renthub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItemFinder struct {
	items map[int64]*item.Item
}

func (f *fakeItemFinder) FindByID(_ context.Context, id int64) (*item.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return it, nil
}

type fakeReservationRepo struct {
	byID      map[int64]*reservation.Reservation
	owners    map[int64]uuid.UUID
	created   []*reservation.Reservation
	saved     []*reservation.Reservation
	createErr error
	nextID    int64
}

func (f *fakeReservationRepo) Create(_ context.Context, res *reservation.Reservation) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, res)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id int64) (*reservation.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res, nil
}

func (f *fakeReservationRepo) Save(_ context.Context, res *reservation.Reservation) error {
	f.saved = append(f.saved, res)
	return nil
}

func (f *fakeReservationRepo) ItemOwner(_ context.Context, reservationID int64) (uuid.UUID, error) {
	owner, ok := f.owners[reservationID]
	if !ok {
		return uuid.Nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return owner, nil
}

type fakeAvailability struct {
	snapshots []reservation.Snapshot
}

func (f *fakeAvailability) SnapshotsByItem(_ context.Context, _ int64) ([]reservation.Snapshot, error) {
	return f.snapshots, nil
}

type fakeViewFinder struct{}

func (fakeViewFinder) FindByID(_ context.Context, id int64) (*queries.ReservationView, error) {
	return &queries.ReservationView{ID: id}, nil
}

type fakePublisher struct {
	events []events.ReservationEvent
}

func (f *fakePublisher) PublishReservationEvent(_ context.Context, event events.ReservationEvent) {
	f.events = append(f.events, event)
}

type reservationFixture struct {
	cmds      commands.ReservationCommands
	repo      *fakeReservationRepo
	items     *fakeItemFinder
	avail     *fakeAvailability
	publisher *fakePublisher
	clock     *clock.MockClock
	ownerID   uuid.UUID
	renterID  uuid.UUID
}

// now is noon so same-day bookings are unambiguously "today".
var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()

	ownerID := uuid.New()
	f := &reservationFixture{
		repo:      &fakeReservationRepo{byID: map[int64]*reservation.Reservation{}, owners: map[int64]uuid.UUID{}},
		items:     &fakeItemFinder{items: map[int64]*item.Item{}},
		avail:     &fakeAvailability{},
		publisher: &fakePublisher{},
		clock:     clock.NewMockClock(testNow),
		ownerID:   ownerID,
		renterID:  uuid.New(),
	}
	f.items.items[42] = item.Reconstruct(42, ownerID, "Cargo bike", nil, 25, nil, true, testNow.Add(-24*time.Hour))
	f.cmds = commands.NewReservationCommands(f.repo, f.items, f.avail, fakeViewFinder{}, f.publisher, f.clock)
	return f
}

func mustDateRange(t *testing.T, from, to string) reservation.DateRange {
	t.Helper()
	fromDay, err := time.Parse(time.DateOnly, from)
	require.NoError(t, err)
	toDay, err := time.Parse(time.DateOnly, to)
	require.NoError(t, err)
	r, err := reservation.NewDateRange(fromDay, toDay)
	require.NoError(t, err)
	return r
}

func createInput(from, to string) commands.CreateReservationInput {
	return commands.CreateReservationInput{ItemID: 42, DateFrom: from, DateTo: to}
}

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending unpaid hold and returns its view", func(t *testing.T) {
		f := newReservationFixture(t)

		view, err := f.cmds.Create(ctx, f.renterID, createInput("2026-09-10", "2026-09-12"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), view.ID)

		require.Len(t, f.repo.created, 1)
		created := f.repo.created[0]
		assert.Equal(t, reservation.StatusPending, created.Status())
		assert.Equal(t, reservation.PaymentUnpaid, created.PaymentStatus())
		assert.Equal(t, reservation.PaymentProviderNone, created.PaymentProvider())
		assert.Equal(t, f.renterID, created.RenterID())
		assert.Equal(t, testNow, created.CreatedAt())
	})

	t.Run("rejects overlap with a confirmed booking", func(t *testing.T) {
		f := newReservationFixture(t)
		f.avail.snapshots = []reservation.Snapshot{{
			ID:        1,
			ItemID:    42,
			Status:    reservation.StatusConfirmed,
			Range:     mustDateRange(t, "2026-09-11", "2026-09-14"),
			CreatedAt: testNow.Add(-48 * time.Hour),
		}}

		_, err := f.cmds.Create(ctx, f.renterID, createInput("2026-09-10", "2026-09-12"))
		require.ErrorIs(t, err, errs.ErrReservationConflict)
		assert.Empty(t, f.repo.created)
	})

	t.Run("rejects overlap with a hold exactly at the TTL boundary", func(t *testing.T) {
		f := newReservationFixture(t)
		f.avail.snapshots = []reservation.Snapshot{{
			ID:        1,
			ItemID:    42,
			Status:    reservation.StatusPending,
			Range:     mustDateRange(t, "2026-09-10", "2026-09-12"),
			CreatedAt: testNow.Add(-reservation.HoldTTL),
		}}

		_, err := f.cmds.Create(ctx, f.renterID, createInput("2026-09-12", "2026-09-13"))
		require.ErrorIs(t, err, errs.ErrReservationConflict)
	})

	t.Run("ignores a stale hold on the same dates", func(t *testing.T) {
		f := newReservationFixture(t)
		f.avail.snapshots = []reservation.Snapshot{{
			ID:        1,
			ItemID:    42,
			Status:    reservation.StatusPending,
			Range:     mustDateRange(t, "2026-09-10", "2026-09-12"),
			CreatedAt: testNow.Add(-reservation.HoldTTL - time.Second),
		}}

		_, err := f.cmds.Create(ctx, f.renterID, createInput("2026-09-10", "2026-09-12"))
		require.NoError(t, err)
	})

	t.Run("rejects invalid date input", func(t *testing.T) {
		testCases := []struct {
			name string
			from string
			to   string
		}{
			{name: "range starts in the past", from: "2026-08-30", to: "2026-09-02"},
			{name: "from after to", from: "2026-09-12", to: "2026-09-10"},
			{name: "malformed date", from: "not-a-date", to: "2026-09-10"},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newReservationFixture(t)
				_, err := f.cmds.Create(ctx, f.renterID, createInput(tc.from, tc.to))
				require.ErrorIs(t, err, errs.ErrInvalidDateRange)
				assert.Empty(t, f.repo.created)
			})
		}
	})

	t.Run("rejects booking an unknown item", func(t *testing.T) {
		f := newReservationFixture(t)
		_, err := f.cmds.Create(ctx, f.renterID, commands.CreateReservationInput{
			ItemID: 99, DateFrom: "2026-09-10", DateTo: "2026-09-12",
		})
		require.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("rejects booking an inactive item", func(t *testing.T) {
		f := newReservationFixture(t)
		f.items.items[42] = item.Reconstruct(42, f.ownerID, "Cargo bike", nil, 25, nil, false, testNow)

		_, err := f.cmds.Create(ctx, f.renterID, createInput("2026-09-10", "2026-09-12"))
		require.ErrorIs(t, err, errs.ErrItemInactive)
	})

	t.Run("rejects owners booking their own item", func(t *testing.T) {
		f := newReservationFixture(t)
		_, err := f.cmds.Create(ctx, f.ownerID, createInput("2026-09-10", "2026-09-12"))
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("maps an exclusion violation on insert to a conflict", func(t *testing.T) {
		// The advisory pre-check passes but a concurrent submission won the
		// race; the constraint violation surfaces as the same conflict.
		f := newReservationFixture(t)
		f.repo.createErr = infra.WrapRepoErr("insert reservation", nil, infra.KindConflict)

		_, err := f.cmds.Create(ctx, f.renterID, createInput("2026-09-10", "2026-09-12"))
		require.ErrorIs(t, err, errs.ErrReservationConflict)
	})

	t.Run("maps a foreign key violation on insert to item not found", func(t *testing.T) {
		f := newReservationFixture(t)
		f.repo.createErr = infra.WrapRepoErr("insert reservation", nil, infra.KindForeignKeyViolated)

		_, err := f.cmds.Create(ctx, f.renterID, createInput("2026-09-10", "2026-09-12"))
		require.ErrorIs(t, err, errs.ErrItemNotFound)
	})
}

func (f *reservationFixture) seedReservation(t *testing.T, id int64, status reservation.Status) *reservation.Reservation {
	t.Helper()
	res := reservation.Reconstruct(
		id, 42, f.renterID,
		mustDateRange(t, "2026-09-10", "2026-09-12"),
		status, reservation.PaymentUnpaid, reservation.PaymentProviderNone,
		testNow.Add(-time.Minute),
	)
	f.repo.byID[id] = res
	f.repo.owners[id] = f.ownerID
	return res
}

func TestReservationCommands_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("renter cancels own pending hold", func(t *testing.T) {
		f := newReservationFixture(t)
		res := f.seedReservation(t, 7, reservation.StatusPending)

		require.NoError(t, f.cmds.CancelByRenter(ctx, 7, f.renterID))
		assert.True(t, res.IsCancelled())
		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, events.EventReservationCancelled, f.publisher.events[0].Type)
	})

	t.Run("renter cannot cancel someone else's reservation", func(t *testing.T) {
		f := newReservationFixture(t)
		f.seedReservation(t, 7, reservation.StatusPending)

		err := f.cmds.CancelByRenter(ctx, 7, uuid.New())
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Empty(t, f.repo.saved)
	})

	t.Run("owner confirms a pending hold and an event goes out", func(t *testing.T) {
		f := newReservationFixture(t)
		res := f.seedReservation(t, 7, reservation.StatusPending)

		require.NoError(t, f.cmds.ConfirmByOwner(ctx, 7, f.ownerID, false))
		assert.True(t, res.IsConfirmed())
		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, events.EventReservationConfirmed, f.publisher.events[0].Type)
	})

	t.Run("non-owner cannot confirm", func(t *testing.T) {
		f := newReservationFixture(t)
		f.seedReservation(t, 7, reservation.StatusPending)

		err := f.cmds.ConfirmByOwner(ctx, 7, uuid.New(), false)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("admin confirms without owning the item", func(t *testing.T) {
		f := newReservationFixture(t)
		res := f.seedReservation(t, 7, reservation.StatusPending)

		require.NoError(t, f.cmds.ConfirmByOwner(ctx, 7, uuid.New(), true))
		assert.True(t, res.IsConfirmed())
	})

	t.Run("confirming a cancelled reservation fails", func(t *testing.T) {
		f := newReservationFixture(t)
		f.seedReservation(t, 7, reservation.StatusCancelled)

		err := f.cmds.ConfirmByOwner(ctx, 7, f.ownerID, false)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
		assert.Empty(t, f.repo.saved)
	})

	t.Run("unknown reservation id", func(t *testing.T) {
		f := newReservationFixture(t)
		err := f.cmds.CancelByRenter(ctx, 99, f.renterID)
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("reverting payment on an unpaid reservation fails", func(t *testing.T) {
		f := newReservationFixture(t)
		f.seedReservation(t, 7, reservation.StatusConfirmed)

		err := f.cmds.RevertPayment(ctx, 7)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("admin reverts a paid reservation back to unpaid", func(t *testing.T) {
		f := newReservationFixture(t)
		res := f.seedReservation(t, 7, reservation.StatusConfirmed)
		require.NoError(t, res.ConfirmPayment("stripe"))

		require.NoError(t, f.cmds.RevertPayment(ctx, 7))
		assert.Equal(t, reservation.PaymentUnpaid, res.PaymentStatus())
		assert.True(t, res.IsConfirmed(), "status must stay confirmed")
	})
}
