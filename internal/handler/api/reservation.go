package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "renthub/internal/handler/dto/request"
	resdto "renthub/internal/handler/dto/response"
	"renthub/internal/handler/middleware"
	"renthub/internal/pkg/errs"
	"renthub/internal/usecase/commands"
	"renthub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qrs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Create reservation
// @Description Place a provisional hold on an item for an inclusive date range
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), userID, commands.CreateReservationInput{
		ItemID:   req.ItemID,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, errs.ErrItemInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Item is not active"})
		case errors.Is(err, errs.ErrReservationConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Requested dates are not available"})
		case errors.Is(err, errs.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "You cannot book your own item"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get blocked dates
// @Description List the date ranges currently unavailable for an item
// @Tags reservations
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} resdto.BlockedRangesResponse
// @Router /items/{id}/blocked [get]
func (h *ReservationHandler) BlockedRanges(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	blocked, err := h.queries.BlockedRanges(c.Request.Context(), itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.BlockedRangesResponse{ItemID: itemID, Blocked: blocked})
}

func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	view, err := h.queries.GetByID(c.Request.Context(), id, userID, role.String())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, queries.ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// ListMine returns the caller's reservations as a renter.
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	views, err := h.queries.ListByRenter(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": resdto.FromReservationViews(views)})
}

// ListForOwner returns reservations placed on the caller's items.
func (h *ReservationHandler) ListForOwner(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	views, err := h.queries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": resdto.FromReservationViews(views)})
}

func (h *ReservationHandler) ListAll(c *gin.Context) {
	views, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": resdto.FromReservationViews(views)})
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	if err := h.commands.CancelByRenter(c.Request.Context(), id, userID); err != nil {
		h.writeLifecycleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	if err := h.commands.ConfirmByOwner(c.Request.Context(), id, userID, middleware.IsAdmin(c)); err != nil {
		h.writeLifecycleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) CancelByOwner(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	if err := h.commands.CancelByOwner(c.Request.Context(), id, userID, middleware.IsAdmin(c)); err != nil {
		h.writeLifecycleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RevertPayment is the admin correction endpoint for mistaken paid flags.
func (h *ReservationHandler) RevertPayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.commands.RevertPayment(c.Request.Context(), id); err != nil {
		h.writeLifecycleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) writeLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Operation not permitted"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid state transition"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pathID parses an int64 path parameter, writing the 400 itself on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}
