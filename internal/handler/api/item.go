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

type ItemHandler struct {
	commands commands.ItemCommands
	queries  queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, qrs queries.ItemQueries) *ItemHandler {
	return &ItemHandler{commands: cmds, queries: qrs}
}

// ListActive is the public catalog: active items, optional ?city= filter.
func (h *ItemHandler) ListActive(c *gin.Context) {
	var city *string
	if q := c.Query("city"); q != "" {
		city = &q
	}

	items, err := h.queries.ListActive(c.Request.Context(), city)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemList(items))
}

func (h *ItemHandler) GetDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.queries.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetail(detail))
}

func (h *ItemHandler) ListMine(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	items, err := h.queries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemList(items))
}

func (h *ItemHandler) ListAll(c *gin.Context) {
	items, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemList(items))
}

// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Item request"
// @Success 201 {object} resdto.CreatedResponse
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), userID, commands.CreateItemInput{
		Title:       req.Title,
		Description: req.Description,
		PricePerDay: req.PricePerDay,
		City:        req.City,
		ImagePaths:  req.ImagePaths,
	})
	if err != nil {
		h.writeItemError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.commands.Update(c.Request.Context(), id, userID, middleware.IsAdmin(c), commands.UpdateItemInput{
		Title:       req.Title,
		Description: req.Description,
		PricePerDay: req.PricePerDay,
		City:        req.City,
	})
	if err != nil {
		h.writeItemError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) SetActive(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	var req reqdto.SetItemActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.SetActive(c.Request.Context(), id, userID, middleware.IsAdmin(c), *req.Active); err != nil {
		h.writeItemError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) AddImages(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	var req reqdto.AddItemImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.AddImages(c.Request.Context(), id, userID, req.Paths); err != nil {
		h.writeItemError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) writeItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Operation not permitted"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
