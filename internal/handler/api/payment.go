package api

import (
	"errors"
	"io"
	"net/http"

	"renthub/internal/pkg/config"
	"renthub/internal/pkg/errs"
	"renthub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	commands commands.PaymentCommands
	cfg      config.PaymentConfig
}

func NewPaymentHandler(cmds commands.PaymentCommands, cfg config.PaymentConfig) *PaymentHandler {
	return &PaymentHandler{commands: cmds, cfg: cfg}
}

// Checkout is a deliberate stub: no payment provider is wired up yet, and
// clients are expected to handle the 501.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"ok":     false,
		"reason": "payments_not_configured",
	})
}

// @Summary Payment webhook
// @Description Provider callback; verifies the HMAC signature over the raw body
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read request body"})
		return
	}

	signature := c.GetHeader(h.cfg.SignatureHeader)
	if err := h.commands.HandleWebhook(c.Request.Context(), body, signature); err != nil {
		switch {
		case errors.Is(err, commands.ErrBadWebhookSignature):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		case errors.Is(err, commands.ErrBadWebhookPayload):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed payload"})
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
