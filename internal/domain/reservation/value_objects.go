package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("date_from must not be after date_to")
	ErrDateInPast       = errors.New("date_from cannot be before today")
)

// DateRange is an inclusive [from, to] calendar-day range. Both endpoints
// are normalized to midnight UTC; a one-day rental has from == to.
type DateRange struct {
	from time.Time
	to   time.Time
}

func NewDateRange(from, to time.Time) (DateRange, error) {
	from = ToDay(from)
	to = ToDay(to)
	if from.After(to) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{from: from, to: to}, nil
}

// ToDay truncates a timestamp to its UTC calendar day.
func ToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) From() time.Time {
	return r.from
}

func (r DateRange) To() time.Time {
	return r.to
}

// Days is the number of calendar days covered, endpoints inclusive.
func (r DateRange) Days() int {
	return int(r.to.Sub(r.from)/(24*time.Hour)) + 1
}

// Overlaps reports whether two inclusive day ranges share at least one day:
// [a1,a2] and [b1,b2] overlap iff a1 <= b2 and b1 <= a2.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.from.After(other.to) && !other.from.After(r.to)
}

func (r DateRange) Contains(day time.Time) bool {
	day = ToDay(day)
	return !day.Before(r.from) && !day.After(r.to)
}

// ToDaterange renders the range as a PostgreSQL inclusive daterange literal,
// matching the expression used by the reservations exclusion constraint.
func (r DateRange) ToDaterange() string {
	return fmt.Sprintf("[%s,%s]", r.from.Format(time.DateOnly), r.to.Format(time.DateOnly))
}
