package errs

import "errors"

// Sentinel errors shared across usecase layers.
var (
	// Item errors
	ErrItemNotFound = errors.New("item not found")
	ErrItemInactive = errors.New("item is not active")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("reservation dates overlap an existing booking")
	ErrInvalidDateRange    = errors.New("invalid date range")

	// Review errors
	ErrReviewNotAllowed = errors.New("review requires a confirmed reservation")
	ErrDuplicateReview  = errors.New("review already exists for this reservation")

	// Dispute errors
	ErrDisputeNotFound    = errors.New("dispute not found")
	ErrDisputeNotEligible = errors.New("disputes require a confirmed reservation")

	// Authorization errors
	ErrForbidden = errors.New("operation not permitted for this user")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
