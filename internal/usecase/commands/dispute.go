package commands

import (
	"context"

	"renthub/internal/domain/dispute"
	"renthub/internal/infra"
	"renthub/internal/pkg/errs"

	"github.com/google/uuid"
)

type DisputeRepository interface {
	Create(ctx context.Context, d *dispute.Dispute) (int64, error)
	FindByID(ctx context.Context, id int64) (*dispute.Dispute, error)
	UpdateStatus(ctx context.Context, d *dispute.Dispute) error
}

type CreateDisputeInput struct {
	ReservationID int64
	Reason        string
	Details       *string
}

type DisputeCommands interface {
	Create(ctx context.Context, renterID uuid.UUID, req CreateDisputeInput) (int64, error)
	Advance(ctx context.Context, disputeID int64, next string, actorID uuid.UUID, isAdmin bool) error
}

type disputeCommandsImpl struct {
	disputes     DisputeRepository
	reservations ReservationRepository
	items        ItemFinder
}

func NewDisputeCommands(disputes DisputeRepository, reservations ReservationRepository, items ItemFinder) DisputeCommands {
	return &disputeCommandsImpl{disputes: disputes, reservations: reservations, items: items}
}

func (c *disputeCommandsImpl) Create(ctx context.Context, renterID uuid.UUID, req CreateDisputeInput) (int64, error) {
	res, err := c.reservations.FindByID(ctx, req.ReservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if res.RenterID() != renterID {
		return 0, errs.ErrForbidden
	}
	// Disputes only make sense once the booking actually happened.
	if !res.IsConfirmed() {
		return 0, errs.ErrDisputeNotEligible
	}

	it, err := c.items.FindByID(ctx, res.ItemID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(err, errs.ErrItemNotFound)
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	d, err := dispute.NewDispute(res.ID(), res.ItemID(), renterID, it.OwnerID(), req.Reason, req.Details)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.disputes.Create(ctx, d)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *disputeCommandsImpl) Advance(ctx context.Context, disputeID int64, next string, actorID uuid.UUID, isAdmin bool) error {
	d, err := c.disputes.FindByID(ctx, disputeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrDisputeNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Triage belongs to the item owner and admins; the renter only opens.
	if !isAdmin && d.OwnerID() != actorID {
		return errs.ErrForbidden
	}

	nextStatus := dispute.Status(next)
	if !nextStatus.IsValid() {
		return errs.Mark(errs.New("unknown dispute status"), errs.ErrDomainValidation)
	}
	if err := d.Advance(nextStatus); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.disputes.UpdateStatus(ctx, d); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
