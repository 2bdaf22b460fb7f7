package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrAlreadyConfirmed = errors.New("reservation is already confirmed")
	ErrNotPaid          = errors.New("reservation is not paid")
)

// Reservation is the anchor entity of the marketplace: reviews and disputes
// only exist for reservations that reached confirmed status.
type Reservation struct {
	id              int64
	itemID          int64
	renterID        uuid.UUID
	dateRange       DateRange
	status          Status
	paymentStatus   PaymentStatus
	paymentProvider string
	createdAt       time.Time
}

func FromDraft(draft *Draft, createdAt time.Time) *Reservation {
	return &Reservation{
		itemID:          draft.ItemID,
		renterID:        draft.RenterID,
		dateRange:       draft.Range,
		status:          draft.Status,
		paymentStatus:   draft.PaymentStatus,
		paymentProvider: draft.PaymentProvider,
		createdAt:       createdAt,
	}
}

func Reconstruct(
	id, itemID int64,
	renterID uuid.UUID,
	dateRange DateRange,
	status Status,
	paymentStatus PaymentStatus,
	paymentProvider string,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		itemID:          itemID,
		renterID:        renterID,
		dateRange:       dateRange,
		status:          status,
		paymentStatus:   paymentStatus,
		paymentProvider: paymentProvider,
		createdAt:       createdAt,
	}
}

// Confirm moves pending -> confirmed. Cancelled is terminal.
func (r *Reservation) Confirm() error {
	switch r.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusConfirmed:
		return ErrAlreadyConfirmed
	}
	r.status = StatusConfirmed
	return nil
}

// Cancel is valid from any non-cancelled state.
func (r *Reservation) Cancel() error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	return nil
}

// ConfirmPayment applies the payment webhook transition: status and payment
// fields change together and must be persisted as a single update.
func (r *Reservation) ConfirmPayment(provider string) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusConfirmed
	r.paymentStatus = PaymentPaid
	r.paymentProvider = provider
	return nil
}

// RevertPayment is the manual correction path (paid -> unpaid). It does not
// touch the reservation status.
func (r *Reservation) RevertPayment() error {
	if r.paymentStatus != PaymentPaid {
		return ErrNotPaid
	}
	r.paymentStatus = PaymentUnpaid
	return nil
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) ID() int64                { return r.id }
func (r *Reservation) ItemID() int64            { return r.itemID }
func (r *Reservation) RenterID() uuid.UUID      { return r.renterID }
func (r *Reservation) Range() DateRange         { return r.dateRange }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) PaymentProvider() string  { return r.paymentProvider }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
