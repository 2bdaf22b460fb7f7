package commands

import (
	"context"

	"renthub/internal/domain/review"
	"renthub/internal/infra"
	"renthub/internal/pkg/clock"
	"renthub/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) (int64, error)
	LatestConfirmedReservation(ctx context.Context, renterID uuid.UUID, itemID int64) (int64, error)
}

type CreateReviewInput struct {
	ItemID       int64
	Rating       int
	Comment      string
	RevieweeType string
}

type ReviewCommands interface {
	Create(ctx context.Context, reviewerID uuid.UUID, req CreateReviewInput) (int64, error)
	// CanReview reports whether the reviewer holds a confirmed reservation
	// for the item, and if so which one a new review would attach to.
	CanReview(ctx context.Context, reviewerID uuid.UUID, itemID int64) (int64, bool, error)
}

type reviewCommandsImpl struct {
	reviews ReviewRepository
	items   ItemFinder
	clock   clock.Clock
}

func NewReviewCommands(reviews ReviewRepository, items ItemFinder, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{reviews: reviews, items: items, clock: clk}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, reviewerID uuid.UUID, req CreateReviewInput) (int64, error) {
	it, err := c.items.FindByID(ctx, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(err, errs.ErrItemNotFound)
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	reservationID, eligible, err := c.CanReview(ctx, reviewerID, req.ItemID)
	if err != nil {
		return 0, err
	}
	if !eligible {
		return 0, errs.ErrReviewNotAllowed
	}

	rating, err := review.NewRating(req.Rating)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}
	comment, err := review.NewComment(req.Comment)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	revieweeType := review.RevieweeType(req.RevieweeType)
	if !revieweeType.IsValid() {
		return 0, errs.Mark(errs.New("invalid reviewee type"), errs.ErrDomainValidation)
	}
	// Item reviews attribute the rating to the item's current owner.
	revieweeID := it.OwnerID()

	rev := review.NewReview(
		reservationID, req.ItemID, reviewerID,
		rating, comment, revieweeType, revieweeID,
		c.clock.Now(),
	)

	id, err := c.reviews.Create(ctx, rev)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, errs.Mark(err, errs.ErrDuplicateReview)
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *reviewCommandsImpl) CanReview(ctx context.Context, reviewerID uuid.UUID, itemID int64) (int64, bool, error) {
	reservationID, err := c.reviews.LatestConfirmedReservation(ctx, reviewerID, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, false, nil
		}
		return 0, false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return reservationID, true, nil
}
