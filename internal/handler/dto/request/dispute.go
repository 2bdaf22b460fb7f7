package request

type CreateDisputeRequest struct {
	ReservationID int64   `json:"reservation_id" binding:"required"`
	Reason        string  `json:"reason" binding:"required"`
	Details       *string `json:"details"`
}

type AdvanceDisputeRequest struct {
	Status string `json:"status" binding:"required,oneof=in_review resolved rejected"`
}
