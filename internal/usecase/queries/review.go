package queries

import (
	"context"
	"time"

	"renthub/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewView struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	ItemID        int64     `json:"item_id"`
	ReviewerID    uuid.UUID `json:"reviewer_id"`
	ReviewerName  *string   `json:"reviewer_name,omitempty"`
	RevieweeType  string    `json:"reviewee_type"`
	Rating        int       `json:"rating"`
	Comment       *string   `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type RatingStats struct {
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
}

type ReviewReadStore interface {
	FindForItem(ctx context.Context, itemID int64) ([]*ReviewView, error)
	FindForOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReviewView, error)
	RatingsForItem(ctx context.Context, itemID int64) ([]int, error)
	RatingsForOwner(ctx context.Context, ownerID uuid.UUID) ([]int, error)
}

type ReviewQueries interface {
	ListForItem(ctx context.Context, itemID int64) ([]*ReviewView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReviewView, error)
	ItemRating(ctx context.Context, itemID int64) (*RatingStats, error)
	OwnerRating(ctx context.Context, ownerID uuid.UUID) (*RatingStats, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListForItem(ctx context.Context, itemID int64) ([]*ReviewView, error) {
	return q.store.FindForItem(ctx, itemID)
}

func (q *reviewQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReviewView, error) {
	return q.store.FindForOwner(ctx, ownerID)
}

func (q *reviewQueriesImpl) ItemRating(ctx context.Context, itemID int64) (*RatingStats, error) {
	ratings, err := q.store.RatingsForItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return statsFrom(ratings), nil
}

func (q *reviewQueriesImpl) OwnerRating(ctx context.Context, ownerID uuid.UUID) (*RatingStats, error) {
	ratings, err := q.store.RatingsForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return statsFrom(ratings), nil
}

func statsFrom(ratings []int) *RatingStats {
	return &RatingStats{
		Average: review.AverageRating(ratings),
		Count:   len(ratings),
	}
}
