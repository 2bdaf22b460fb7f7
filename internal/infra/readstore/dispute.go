package readstore

import (
	"context"

	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/pgconv"
	"renthub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type DisputeReadStore struct {
	db db.DBTX
}

func NewDisputeReadStore(db db.DBTX) *DisputeReadStore {
	return &DisputeReadStore{db: db}
}

const disputeViewSelect = `
	SELECT d.id, d.reservation_id, d.item_id, i.title, d.renter_id,
	       d.owner_id, d.reason, d.details, d.status, d.created_at
	FROM disputes d
	JOIN items i ON i.id = d.item_id
`

func (r *DisputeReadStore) FindByID(ctx context.Context, id int64) (*queries.DisputeView, error) {
	row := r.db.QueryRow(ctx, disputeViewSelect+` WHERE d.id = $1`, id)

	view, err := scanDisputeView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dispute not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find dispute by ID", err)
	}
	return view, nil
}

func (r *DisputeReadStore) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*queries.DisputeView, error) {
	rows, err := r.db.Query(ctx, disputeViewSelect+`
		WHERE d.renter_id = $1 OR d.owner_id = $1
		ORDER BY d.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find disputes by participant", err)
	}
	defer rows.Close()

	return collectDisputeViews(rows)
}

func (r *DisputeReadStore) FindAll(ctx context.Context) ([]*queries.DisputeView, error) {
	rows, err := r.db.Query(ctx, disputeViewSelect+` ORDER BY d.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all disputes", err)
	}
	defer rows.Close()

	return collectDisputeViews(rows)
}

func scanDisputeView(row rowScanner) (*queries.DisputeView, error) {
	var (
		view      queries.DisputeView
		details   pgtype.Text
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.ReservationID, &view.ItemID, &view.ItemTitle,
		&view.RenterID, &view.OwnerID, &view.Reason, &details,
		&view.Status, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	view.Details = pgconv.StringPtrFromPgtype(details)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func collectDisputeViews(rows pgx.Rows) ([]*queries.DisputeView, error) {
	var result []*queries.DisputeView
	for rows.Next() {
		view, err := scanDisputeView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan dispute view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate dispute views", err)
	}
	return result, nil
}
