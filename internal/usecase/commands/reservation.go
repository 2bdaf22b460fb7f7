package commands

import (
	"context"
	"errors"

	"renthub/internal/domain/item"
	"renthub/internal/domain/reservation"
	"renthub/internal/infra"
	"renthub/internal/infra/events"
	"renthub/internal/pkg/clock"
	"renthub/internal/pkg/errs"
	"renthub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	Save(ctx context.Context, res *reservation.Reservation) error
	ItemOwner(ctx context.Context, reservationID int64) (uuid.UUID, error)
}

type ItemFinder interface {
	FindByID(ctx context.Context, id int64) (*item.Item, error)
}

// AvailabilityReader feeds the advisory overlap pre-check.
type AvailabilityReader interface {
	SnapshotsByItem(ctx context.Context, itemID int64) ([]reservation.Snapshot, error)
}

type ReservationViewFinder interface {
	FindByID(ctx context.Context, id int64) (*queries.ReservationView, error)
}

type ReservationCommands interface {
	Create(ctx context.Context, renterID uuid.UUID, req CreateReservationInput) (*queries.ReservationView, error)
	CancelByRenter(ctx context.Context, reservationID int64, renterID uuid.UUID) error
	ConfirmByOwner(ctx context.Context, reservationID int64, actorID uuid.UUID, isAdmin bool) error
	CancelByOwner(ctx context.Context, reservationID int64, actorID uuid.UUID, isAdmin bool) error
	RevertPayment(ctx context.Context, reservationID int64) error
}

type CreateReservationInput struct {
	ItemID   int64
	DateFrom string
	DateTo   string
}

type reservationCommandsImpl struct {
	reservations ReservationRepository
	items        ItemFinder
	availability AvailabilityReader
	views        ReservationViewFinder
	publisher    events.Publisher
	clock        clock.Clock
}

func NewReservationCommands(
	reservations ReservationRepository,
	items ItemFinder,
	availability AvailabilityReader,
	views ReservationViewFinder,
	publisher events.Publisher,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservations: reservations,
		items:        items,
		availability: availability,
		views:        views,
		publisher:    publisher,
		clock:        clk,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, renterID uuid.UUID, req CreateReservationInput) (*queries.ReservationView, error) {
	it, err := c.items.FindByID(ctx, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !it.IsActive() {
		return nil, errs.ErrItemInactive
	}
	if it.IsOwnedBy(renterID) {
		return nil, errs.Mark(errs.New("owners cannot book their own items"), errs.ErrForbidden)
	}

	requested, err := parseDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}

	existing, err := c.availability.SnapshotsByItem(ctx, req.ItemID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	draft, err := reservation.AttemptReserve(req.ItemID, renterID, requested, existing, now)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrDateConflict):
			return nil, errs.Mark(err, errs.ErrReservationConflict)
		case errors.Is(err, reservation.ErrDateInPast), errors.Is(err, reservation.ErrInvalidDateRange):
			return nil, errs.Mark(err, errs.ErrInvalidDateRange)
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	res := reservation.FromDraft(draft, now)
	id, err := c.reservations.Create(ctx, res)
	if err != nil {
		// The pre-check above is advisory; the exclusion constraint settles
		// concurrent submissions and its violation is the same conflict.
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrReservationConflict)
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) CancelByRenter(ctx context.Context, reservationID int64, renterID uuid.UUID) error {
	res, err := c.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if res.RenterID() != renterID {
		return errs.ErrForbidden
	}
	return c.cancel(ctx, res)
}

func (c *reservationCommandsImpl) ConfirmByOwner(ctx context.Context, reservationID int64, actorID uuid.UUID, isAdmin bool) error {
	res, err := c.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := c.authorizeOwner(ctx, reservationID, actorID, isAdmin); err != nil {
		return err
	}
	if err := res.Confirm(); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.reservations.Save(ctx, res); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.publisher.PublishReservationEvent(ctx, events.ReservationEvent{
		Type:          events.EventReservationConfirmed,
		ReservationID: res.ID(),
		ItemID:        res.ItemID(),
		OccurredAt:    c.clock.Now(),
	})
	return nil
}

func (c *reservationCommandsImpl) CancelByOwner(ctx context.Context, reservationID int64, actorID uuid.UUID, isAdmin bool) error {
	res, err := c.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := c.authorizeOwner(ctx, reservationID, actorID, isAdmin); err != nil {
		return err
	}
	return c.cancel(ctx, res)
}

// RevertPayment is the admin correction path: paid back to unpaid without
// touching the reservation status.
func (c *reservationCommandsImpl) RevertPayment(ctx context.Context, reservationID int64) error {
	res, err := c.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := res.RevertPayment(); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.reservations.Save(ctx, res); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reservationCommandsImpl) findReservation(ctx context.Context, id int64) (*reservation.Reservation, error) {
	res, err := c.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return res, nil
}

func (c *reservationCommandsImpl) authorizeOwner(ctx context.Context, reservationID int64, actorID uuid.UUID, isAdmin bool) error {
	if isAdmin {
		return nil
	}
	ownerID, err := c.reservations.ItemOwner(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if ownerID != actorID {
		return errs.ErrForbidden
	}
	return nil
}

func (c *reservationCommandsImpl) cancel(ctx context.Context, res *reservation.Reservation) error {
	if err := res.Cancel(); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.reservations.Save(ctx, res); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.publisher.PublishReservationEvent(ctx, events.ReservationEvent{
		Type:          events.EventReservationCancelled,
		ReservationID: res.ID(),
		ItemID:        res.ItemID(),
		OccurredAt:    c.clock.Now(),
	})
	return nil
}
