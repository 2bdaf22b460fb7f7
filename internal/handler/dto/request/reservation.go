package request

type CreateReservationRequest struct {
	ItemID   int64  `json:"item_id" binding:"required"`
	DateFrom string `json:"date_from" binding:"required,datetime=2006-01-02"`
	DateTo   string `json:"date_to" binding:"required,datetime=2006-01-02"`
}
