package reservation

import (
	"time"
)

// HoldTTL is how long a pending reservation keeps blocking the calendar.
// After this much time without confirmation the hold is treated as abandoned.
const HoldTTL = 15 * time.Minute

// Snapshot is the read-side projection the availability rules operate on:
// one row per reservation of a single item.
type Snapshot struct {
	ID        int64
	ItemID    int64
	Status    Status
	Range     DateRange
	CreatedAt time.Time
}

// IsActiveHold reports whether a reservation in the given status still
// occupies its date range as a provisional hold. Exactly at the TTL boundary
// the hold is still active.
func IsActiveHold(status Status, createdAt, now time.Time) bool {
	if status != StatusPending {
		return false
	}
	return now.Sub(createdAt) <= HoldTTL
}

// Blocks reports whether a reservation occupies its date range at all:
// confirmed rows always block regardless of age, fresh pending holds block,
// cancelled rows and stale holds never do.
func Blocks(status Status, createdAt, now time.Time) bool {
	if status == StatusConfirmed {
		return true
	}
	return IsActiveHold(status, createdAt, now)
}

// BlockedRanges computes the date ranges currently unavailable for booking
// given every reservation row of one item. Pure function of its inputs; the
// caller additionally treats all days strictly before today as blocked
// (no retroactive booking).
func BlockedRanges(reservations []Snapshot, now time.Time) []DateRange {
	var blocked []DateRange
	for _, r := range reservations {
		if Blocks(r.Status, r.CreatedAt, now) {
			blocked = append(blocked, r.Range)
		}
	}
	return blocked
}
