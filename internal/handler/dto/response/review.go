package response

import (
	"renthub/internal/usecase/queries"
)

type ReviewListResponse struct {
	Reviews []*queries.ReviewView `json:"reviews"`
	Rating  *queries.RatingStats  `json:"rating,omitempty"`
}

func FromReviews(reviews []*queries.ReviewView, rating *queries.RatingStats) ReviewListResponse {
	if reviews == nil {
		reviews = []*queries.ReviewView{}
	}
	return ReviewListResponse{Reviews: reviews, Rating: rating}
}

type CanReviewResponse struct {
	CanReview     bool  `json:"can_review"`
	ReservationID int64 `json:"reservation_id,omitempty"`
}
