package request

type CreateReviewRequest struct {
	ItemID       int64  `json:"item_id" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
	RevieweeType string `json:"reviewee_type" binding:"omitempty,oneof=item owner"`
}

// TargetType defaults to an item review when the client omits the field.
func (r CreateReviewRequest) TargetType() string {
	if r.RevieweeType == "" {
		return "item"
	}
	return r.RevieweeType
}
