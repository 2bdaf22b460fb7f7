package repository

import (
	"context"

	"renthub/internal/domain/review"
	"renthub/internal/infra"
	"renthub/internal/infra/db"
	"renthub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(db db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review. The (reviewer_id, reservation_id) unique index is
// the final word on "one review per reservation": a duplicate insert comes
// back as DUPLICATE_KEY.
func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (int64, error) {
	comment := pgtype.Text{}
	if !rev.Comment().IsEmpty() {
		comment = pgconv.StringToPgtype(rev.Comment().String())
	}

	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO reviews
			(reservation_id, item_id, reviewer_id, rating, comment, reviewee_type, reviewee_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		rev.ReservationID(), rev.ItemID(), rev.ReviewerID(),
		rev.Rating().Value(), comment,
		rev.RevieweeType().String(), rev.RevieweeID(),
		rev.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

// LatestConfirmedReservation returns the newest confirmed reservation of the
// renter for the item. Reviews hang off this id; no row means the renter is
// not eligible to review.
func (r *ReviewRepository) LatestConfirmedReservation(ctx context.Context, renterID uuid.UUID, itemID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		SELECT id FROM reservations
		WHERE renter_id = $1 AND item_id = $2 AND status = 'confirmed'
		ORDER BY created_at DESC
		LIMIT 1`, renterID, itemID).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("no confirmed reservation for item", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to find confirmed reservation", err)
	}
	return id, nil
}
