package commands

import (
	"time"

	"renthub/internal/domain/reservation"
	"renthub/internal/pkg/errs"
)

// parseDateRange turns the wire format (YYYY-MM-DD pair) into a validated
// domain range.
func parseDateRange(fromStr, toStr string) (reservation.DateRange, error) {
	from, err := time.Parse(time.DateOnly, fromStr)
	if err != nil {
		return reservation.DateRange{}, errs.Mark(err, errs.ErrInvalidDateRange)
	}
	to, err := time.Parse(time.DateOnly, toStr)
	if err != nil {
		return reservation.DateRange{}, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	r, err := reservation.NewDateRange(from, to)
	if err != nil {
		return reservation.DateRange{}, errs.Mark(err, errs.ErrInvalidDateRange)
	}
	return r, nil
}
