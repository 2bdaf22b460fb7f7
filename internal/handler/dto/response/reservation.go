package response

import (
	"time"

	"renthub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID              int64     `json:"id"`
	ItemID          int64     `json:"item_id"`
	ItemTitle       string    `json:"item_title"`
	RenterID        uuid.UUID `json:"renter_id"`
	DateFrom        string    `json:"date_from"`
	DateTo          string    `json:"date_to"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	PaymentProvider string    `json:"payment_provider"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	resp := &ReservationResponse{}
	// Dates are the only fields whose shape differs from the view.
	_ = copier.Copy(resp, view)
	resp.DateFrom = view.DateFrom.Format(time.DateOnly)
	resp.DateTo = view.DateTo.Format(time.DateOnly)
	return resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	result := make([]*ReservationResponse, len(views))
	for i, view := range views {
		result[i] = FromReservationView(view)
	}
	return result
}

type BlockedRangesResponse struct {
	ItemID  int64                  `json:"item_id"`
	Blocked []queries.DateRangeView `json:"blocked"`
}
