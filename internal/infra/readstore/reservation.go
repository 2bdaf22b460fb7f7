package readstore

import (
	"context"

	"renthub/internal/domain/reservation"
	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/pgconv"
	"renthub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationViewColumns = `
	r.id, r.item_id, i.title, r.renter_id, r.date_from, r.date_to,
	r.status, r.payment_status, r.payment_provider, r.created_at
`

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+reservationViewColumns+`
		FROM reservations r
		JOIN items i ON i.id = r.item_id
		WHERE r.id = $1`, id)

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindByRenter(ctx context.Context, renterID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationViewColumns+`
		FROM reservations r
		JOIN items i ON i.id = r.item_id
		WHERE r.renter_id = $1
		ORDER BY r.created_at DESC`, renterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by renter", err)
	}
	defer rows.Close()

	return collectReservationViews(rows)
}

func (r *ReservationReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationViewColumns+`
		FROM reservations r
		JOIN items i ON i.id = r.item_id
		WHERE i.owner_id = $1
		ORDER BY r.created_at DESC`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by owner", err)
	}
	defer rows.Close()

	return collectReservationViews(rows)
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationViewColumns+`
		FROM reservations r
		JOIN items i ON i.id = r.item_id
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all reservations", err)
	}
	defer rows.Close()

	return collectReservationViews(rows)
}

// SnapshotsByItem loads every non-cancelled reservation of an item for the
// availability computation. Cancelled rows never block, so they are filtered
// at the source.
func (r *ReservationReadStore) SnapshotsByItem(ctx context.Context, itemID int64) ([]reservation.Snapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, item_id, status, date_from, date_to, created_at
		FROM reservations
		WHERE item_id = $1 AND status <> 'cancelled'
		ORDER BY date_from`, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation snapshots", err)
	}
	defer rows.Close()

	var snapshots []reservation.Snapshot
	for rows.Next() {
		var (
			id, item         int64
			status           string
			dateFrom, dateTo pgtype.Date
			createdAt        pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &item, &status, &dateFrom, &dateTo, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation snapshot", err)
		}

		dateRange, err := reservation.NewDateRange(pgconv.DateFromPgtype(dateFrom), pgconv.DateFromPgtype(dateTo))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored date range", err)
		}

		snapshots = append(snapshots, reservation.Snapshot{
			ID:        id,
			ItemID:    item,
			Status:    reservation.Status(status),
			Range:     dateRange,
			CreatedAt: pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation snapshots", err)
	}
	return snapshots, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view             queries.ReservationView
		dateFrom, dateTo pgtype.Date
		createdAt        pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.ItemID, &view.ItemTitle, &view.RenterID,
		&dateFrom, &dateTo,
		&view.Status, &view.PaymentStatus, &view.PaymentProvider, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	view.DateFrom = pgconv.DateFromPgtype(dateFrom)
	view.DateTo = pgconv.DateFromPgtype(dateTo)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation views", err)
	}
	return result, nil
}
