package api

import (
	"errors"
	"net/http"

	"renthub/internal/domain/dispute"
	reqdto "renthub/internal/handler/dto/request"
	resdto "renthub/internal/handler/dto/response"
	"renthub/internal/handler/httperr"
	"renthub/internal/handler/middleware"
	"renthub/internal/pkg/errs"
	"renthub/internal/usecase/commands"
	"renthub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DisputeHandler struct {
	commands commands.DisputeCommands
	queries  queries.DisputeQueries
}

func NewDisputeHandler(cmds commands.DisputeCommands, qrs queries.DisputeQueries) *DisputeHandler {
	return &DisputeHandler{commands: cmds, queries: qrs}
}

func (h *DisputeHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req reqdto.CreateDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.commands.Create(c.Request.Context(), userID, commands.CreateDisputeInput{
		ReservationID: req.ReservationID,
		Reason:        req.Reason,
		Details:       req.Details,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, errs.ErrDisputeNotEligible):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Disputes require a confirmed reservation", nil)
		case errors.Is(err, errs.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dispute data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *DisputeHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	view, err := h.queries.GetByID(c.Request.Context(), id, userID, role.String())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDisputeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Dispute not found", nil)
		case errors.Is(err, queries.ErrAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListMine returns disputes where the caller is renter or owner, plus the
// reason choices for the dispute form.
func (h *DisputeHandler) ListMine(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	views, err := h.queries.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDisputes(views, dispute.Reasons))
}

func (h *DisputeHandler) ListAll(c *gin.Context) {
	views, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDisputes(views, nil))
}

func (h *DisputeHandler) Advance(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	var req reqdto.AdvanceDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.commands.Advance(c.Request.Context(), id, req.Status, userID, middleware.IsAdmin(c)); err != nil {
		switch {
		case errors.Is(err, errs.ErrDisputeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Dispute not found", nil)
		case errors.Is(err, errs.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid status transition", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
