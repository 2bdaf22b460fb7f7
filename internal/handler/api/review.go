package api

import (
	"errors"
	"net/http"

	reqdto "renthub/internal/handler/dto/request"
	resdto "renthub/internal/handler/dto/response"
	"renthub/internal/handler/middleware"
	"renthub/internal/pkg/errs"
	"renthub/internal/usecase/commands"
	"renthub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	commands commands.ReviewCommands
	queries  queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, qrs queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{commands: cmds, queries: qrs}
}

// ListForItem returns an item's reviews together with its rating stats.
// Average is null when no reviews exist.
func (h *ReviewHandler) ListForItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.queries.ListForItem(c.Request.Context(), itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	rating, err := h.queries.ItemRating(c.Request.Context(), itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviews(reviews, rating))
}

// @Summary Create review
// @Description Review an item after a confirmed reservation
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), userID, commands.CreateReviewInput{
		ItemID:       req.ItemID,
		Rating:       req.Rating,
		Comment:      req.Comment,
		RevieweeType: req.TargetType(),
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, errs.ErrReviewNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "A confirmed reservation is required to review"})
		case errors.Is(err, errs.ErrDuplicateReview):
			c.JSON(http.StatusConflict, gin.H{"error": "You already reviewed this reservation"})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// CanReview lets the client decide whether to show the review form.
func (h *ReviewHandler) CanReview(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	reservationID, eligible, err := h.commands.CanReview(c.Request.Context(), userID, itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.CanReviewResponse{CanReview: eligible, ReservationID: reservationID})
}
