package dispute

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyReason        = errors.New("dispute reason is required")
	ErrInvalidTransition  = errors.New("invalid dispute status transition")
	ErrDisputeNotAdvancer = errors.New("dispute status may only be advanced by the owner or an admin")
)

// Reasons offered by the dispute form. The field stays a free string in
// storage so older rows survive copy changes.
var Reasons = []string{
	"Damaged item",
	"Item not as described",
	"Late / no show",
	"Other",
}

type Dispute struct {
	id            int64
	reservationID int64
	itemID        int64
	renterID      uuid.UUID
	ownerID       uuid.UUID
	reason        string
	details       *string
	status        Status
	createdAt     time.Time
}

// NewDispute opens a dispute for a confirmed reservation. The caller is
// responsible for checking that the reservation is confirmed and belongs to
// the renter.
func NewDispute(reservationID, itemID int64, renterID, ownerID uuid.UUID, reason string, details *string) (*Dispute, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}

	return &Dispute{
		reservationID: reservationID,
		itemID:        itemID,
		renterID:      renterID,
		ownerID:       ownerID,
		reason:        reason,
		details:       details,
		status:        StatusOpen,
	}, nil
}

func Reconstruct(
	id, reservationID, itemID int64,
	renterID, ownerID uuid.UUID,
	reason string,
	details *string,
	status Status,
	createdAt time.Time,
) *Dispute {
	return &Dispute{
		id:            id,
		reservationID: reservationID,
		itemID:        itemID,
		renterID:      renterID,
		ownerID:       ownerID,
		reason:        reason,
		details:       details,
		status:        status,
		createdAt:     createdAt,
	}
}

// Advance moves the dispute to the next triage status.
func (d *Dispute) Advance(next Status) error {
	if !d.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	d.status = next
	return nil
}

func (d *Dispute) ID() int64            { return d.id }
func (d *Dispute) ReservationID() int64 { return d.reservationID }
func (d *Dispute) ItemID() int64        { return d.itemID }
func (d *Dispute) RenterID() uuid.UUID  { return d.renterID }
func (d *Dispute) OwnerID() uuid.UUID   { return d.ownerID }
func (d *Dispute) Reason() string       { return d.reason }
func (d *Dispute) Details() *string     { return d.details }
func (d *Dispute) Status() Status       { return d.status }
func (d *Dispute) CreatedAt() time.Time { return d.createdAt }
