package reservation

import (
	"errors"

	"time"

	"github.com/google/uuid"
)

// ErrDateConflict is returned when a requested range overlaps an occupied
// one. The database exclusion constraint produces the same failure for the
// request that loses a concurrent race, and the repository maps it back to
// this error so callers see a single conflict kind.
var ErrDateConflict = errors.New("requested dates overlap an existing reservation")

// Draft is a validated reservation attempt, ready to be inserted. The data
// store remains the final authority on the overlap invariant.
type Draft struct {
	ItemID          int64
	RenterID        uuid.UUID
	Range           DateRange
	Status          Status
	PaymentStatus   PaymentStatus
	PaymentProvider string
}

// AttemptReserve validates a requested date range against the item's current
// reservations. It is an advisory pre-check: it gives immediate feedback and
// saves failed round-trips, but concurrent submissions are serialized and
// settled by the store's exclusion constraint.
func AttemptReserve(itemID int64, renterID uuid.UUID, requested DateRange, existing []Snapshot, now time.Time) (*Draft, error) {
	if requested.From().Before(ToDay(now)) {
		return nil, ErrDateInPast
	}

	for _, blocked := range BlockedRanges(existing, now) {
		if requested.Overlaps(blocked) {
			return nil, ErrDateConflict
		}
	}

	return &Draft{
		ItemID:          itemID,
		RenterID:        renterID,
		Range:           requested,
		Status:          StatusPending,
		PaymentStatus:   PaymentUnpaid,
		PaymentProvider: PaymentProviderNone,
	}, nil
}
