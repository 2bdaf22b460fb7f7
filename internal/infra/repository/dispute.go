package repository

import (
	"context"

	"renthub/internal/domain/dispute"
	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DisputeRepository struct {
	db db.DBTX
}

func NewDisputeRepository(db db.DBTX) *DisputeRepository {
	return &DisputeRepository{db: db}
}

func (r *DisputeRepository) Create(ctx context.Context, d *dispute.Dispute) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO disputes (reservation_id, item_id, renter_id, owner_id, reason, details, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		d.ReservationID(), d.ItemID(), d.RenterID(), d.OwnerID(),
		d.Reason(),
		pgconv.StringPtrToPgtype(d.Details()),
		d.Status().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create dispute", err)
	}
	return id, nil
}

func (r *DisputeRepository) FindByID(ctx context.Context, id int64) (*dispute.Dispute, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, reservation_id, item_id, renter_id, owner_id,
		       reason, details, status, created_at
		FROM disputes WHERE id = $1`, id)

	var (
		disputeID, reservationID, itemID int64
		renterID, ownerID                uuid.UUID
		reason                           string
		details                          pgtype.Text
		status                           string
		createdAt                        pgtype.Timestamptz
	)
	err := row.Scan(&disputeID, &reservationID, &itemID, &renterID, &ownerID,
		&reason, &details, &status, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dispute not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find dispute", err)
	}

	return dispute.Reconstruct(
		disputeID, reservationID, itemID, renterID, ownerID,
		reason,
		pgconv.StringPtrFromPgtype(details),
		dispute.Status(status),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func (r *DisputeRepository) UpdateStatus(ctx context.Context, d *dispute.Dispute) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE disputes SET status = $2 WHERE id = $1`,
		d.ID(), d.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update dispute status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("dispute not found", nil, infra.KindNotFound)
	}
	return nil
}
