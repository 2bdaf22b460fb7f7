package queries

import (
	"context"
	"time"

	"renthub/internal/domain/reservation"
	"renthub/internal/infra"
	"renthub/internal/pkg/clock"
	"renthub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationView struct {
	ID              int64     `json:"id"`
	ItemID          int64     `json:"item_id"`
	ItemTitle       string    `json:"item_title"`
	RenterID        uuid.UUID `json:"renter_id"`
	DateFrom        time.Time `json:"date_from"`
	DateTo          time.Time `json:"date_to"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	PaymentProvider string    `json:"payment_provider"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindByRenter(ctx context.Context, renterID uuid.UUID) ([]*ReservationView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationView, error)
	SnapshotsByItem(ctx context.Context, itemID int64) ([]reservation.Snapshot, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64, actorID uuid.UUID, actorRole string) (*ReservationView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*ReservationView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
	// BlockedRanges returns the calendar ranges currently unavailable for an
	// item: confirmed bookings, fresh pending holds, and the implicit range
	// covering every day before today.
	BlockedRanges(ctx context.Context, itemID int64) ([]DateRangeView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clk}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64, actorID uuid.UUID, actorRole string) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if actorRole != RoleAdmin && view.RenterID != actorID {
		return nil, ErrAccessDenied
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*ReservationView, error) {
	return q.store.FindByRenter(ctx, renterID)
}

func (q *reservationQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReservationView, error) {
	return q.store.FindByOwner(ctx, ownerID)
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	return q.store.FindAll(ctx)
}

func (q *reservationQueriesImpl) BlockedRanges(ctx context.Context, itemID int64) ([]DateRangeView, error) {
	snapshots, err := q.store.SnapshotsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	blocked := reservation.BlockedRanges(snapshots, now)

	views := make([]DateRangeView, 0, len(blocked)+1)
	// No retroactive booking: everything before today is always blocked.
	today := reservation.ToDay(now)
	views = append(views, DateRangeView{
		From: "0000-01-01",
		To:   today.AddDate(0, 0, -1).Format(time.DateOnly),
	})
	for _, r := range blocked {
		views = append(views, DateRangeView{
			From: r.From().Format(time.DateOnly),
			To:   r.To().Format(time.DateOnly),
		})
	}
	return views, nil
}
