package review

import (
	"time"

	"renthub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotEligible = errs.New("reviews require a confirmed reservation for this item")
	ErrReviewAlreadyExists    = errs.New("review already exists for this reservation")
)

// Review rows are written once and never mutated or deleted.
type Review struct {
	id            int64
	reservationID int64
	itemID        int64
	reviewerID    uuid.UUID
	rating        Rating
	comment       Comment
	revieweeType  RevieweeType
	revieweeID    uuid.UUID
	createdAt     time.Time
}

func NewReview(
	reservationID, itemID int64,
	reviewerID uuid.UUID,
	rating Rating,
	comment Comment,
	revieweeType RevieweeType,
	revieweeID uuid.UUID,
	now time.Time,
) *Review {
	return &Review{
		reservationID: reservationID,
		itemID:        itemID,
		reviewerID:    reviewerID,
		rating:        rating,
		comment:       comment,
		revieweeType:  revieweeType,
		revieweeID:    revieweeID,
		createdAt:     now,
	}
}

func Reconstruct(
	id, reservationID, itemID int64,
	reviewerID uuid.UUID,
	rating Rating,
	comment Comment,
	revieweeType RevieweeType,
	revieweeID uuid.UUID,
	createdAt time.Time,
) *Review {
	return &Review{
		id:            id,
		reservationID: reservationID,
		itemID:        itemID,
		reviewerID:    reviewerID,
		rating:        rating,
		comment:       comment,
		revieweeType:  revieweeType,
		revieweeID:    revieweeID,
		createdAt:     createdAt,
	}
}

func (r *Review) ID() int64                 { return r.id }
func (r *Review) ReservationID() int64      { return r.reservationID }
func (r *Review) ItemID() int64             { return r.itemID }
func (r *Review) ReviewerID() uuid.UUID     { return r.reviewerID }
func (r *Review) Rating() Rating            { return r.rating }
func (r *Review) Comment() Comment          { return r.comment }
func (r *Review) RevieweeType() RevieweeType { return r.revieweeType }
func (r *Review) RevieweeID() uuid.UUID     { return r.revieweeID }
func (r *Review) CreatedAt() time.Time      { return r.createdAt }
