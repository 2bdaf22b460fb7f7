package repository

import (
	"context"
	"time"

	"renthub/internal/domain/reservation"
	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts a reservation row. The table's exclusion constraint is the
// authority on double booking: when two writers race for overlapping dates
// the loser gets an exclusion violation, which WrapRepoErr classifies as
// CONFLICT.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO reservations
			(item_id, renter_id, date_from, date_to, status, payment_status, payment_provider, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		res.ItemID(), res.RenterID(),
		pgconv.DateToPgtype(res.Range().From()),
		pgconv.DateToPgtype(res.Range().To()),
		res.Status().String(),
		res.PaymentStatus().String(),
		res.PaymentProvider(),
		res.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, item_id, renter_id, date_from, date_to,
		       status, payment_status, payment_provider, created_at
		FROM reservations WHERE id = $1`, id)

	var (
		resID, itemID    int64
		renterID         uuid.UUID
		dateFrom, dateTo pgtype.Date
		status           string
		paymentStatus    string
		paymentProvider  string
		createdAt        pgtype.Timestamptz
	)
	err := row.Scan(&resID, &itemID, &renterID, &dateFrom, &dateTo,
		&status, &paymentStatus, &paymentProvider, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	dateRange, err := reservation.NewDateRange(pgconv.DateFromPgtype(dateFrom), pgconv.DateFromPgtype(dateTo))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored date range", err)
	}

	return reservation.Reconstruct(
		resID, itemID, renterID, dateRange,
		reservation.Status(status),
		reservation.PaymentStatus(paymentStatus),
		paymentProvider,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

// Save persists the mutable lifecycle fields in one UPDATE. The payment
// webhook depends on this: status and payment fields must change in the same
// statement, never two.
func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET status = $2, payment_status = $3, payment_provider = $4
		WHERE id = $1`,
		res.ID(),
		res.Status().String(),
		res.PaymentStatus().String(),
		res.PaymentProvider(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// ExpireStaleHolds cancels pending holds created at or before the cutoff.
// Setting status to cancelled also releases the row from the exclusion
// constraint, so the dates become bookable again.
func (r *ReservationRepository) ExpireStaleHolds(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET status = 'cancelled'
		WHERE status = 'pending' AND created_at < $1`, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale holds", err)
	}
	return tag.RowsAffected(), nil
}

// ItemOwner resolves the owner of the reserved item, for owner-side
// authorization on confirm and cancel.
func (r *ReservationRepository) ItemOwner(ctx context.Context, reservationID int64) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.db.QueryRow(ctx, `
		SELECT i.owner_id
		FROM reservations r
		JOIN items i ON i.id = r.item_id
		WHERE r.id = $1`, reservationID).Scan(&ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find reservation owner", err)
	}
	return ownerID, nil
}
