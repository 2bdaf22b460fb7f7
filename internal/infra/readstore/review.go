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

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

const reviewViewSelect = `
	SELECT r.id, r.reservation_id, r.item_id, r.reviewer_id, p.full_name,
	       r.reviewee_type, r.rating, r.comment, r.created_at
	FROM reviews r
	JOIN profiles p ON p.id = r.reviewer_id
`

func (r *ReviewReadStore) FindForItem(ctx context.Context, itemID int64) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, reviewViewSelect+`
		WHERE r.item_id = $1 AND r.reviewee_type = 'item'
		ORDER BY r.created_at DESC`, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reviews for item", err)
	}
	defer rows.Close()

	return collectReviewViews(rows)
}

func (r *ReviewReadStore) FindForOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, reviewViewSelect+`
		WHERE r.reviewee_id = $1 AND r.reviewee_type = 'owner'
		ORDER BY r.created_at DESC`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reviews for owner", err)
	}
	defer rows.Close()

	return collectReviewViews(rows)
}

func (r *ReviewReadStore) RatingsForItem(ctx context.Context, itemID int64) ([]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rating FROM reviews
		WHERE item_id = $1 AND reviewee_type = 'item'`, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item ratings", err)
	}
	defer rows.Close()

	return collectRatings(rows)
}

func (r *ReviewReadStore) RatingsForOwner(ctx context.Context, ownerID uuid.UUID) ([]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rating FROM reviews
		WHERE reviewee_id = $1 AND reviewee_type = 'owner'`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find owner ratings", err)
	}
	defer rows.Close()

	return collectRatings(rows)
}

func collectReviewViews(rows pgx.Rows) ([]*queries.ReviewView, error) {
	var result []*queries.ReviewView
	for rows.Next() {
		var (
			view         queries.ReviewView
			reviewerName pgtype.Text
			comment      pgtype.Text
			createdAt    pgtype.Timestamptz
		)
		err := rows.Scan(
			&view.ID, &view.ReservationID, &view.ItemID, &view.ReviewerID,
			&reviewerName, &view.RevieweeType, &view.Rating, &comment, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review view", err)
		}
		view.ReviewerName = pgconv.StringPtrFromPgtype(reviewerName)
		view.Comment = pgconv.StringPtrFromPgtype(comment)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review views", err)
	}
	return result, nil
}

func collectRatings(rows pgx.Rows) ([]int, error) {
	var ratings []int
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rating", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ratings", err)
	}
	return ratings, nil
}
