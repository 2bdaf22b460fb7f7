package api

import (
	"net/http"

	"renthub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	commands commands.MaintenanceCommands
}

func NewMaintenanceHandler(cmds commands.MaintenanceCommands) *MaintenanceHandler {
	return &MaintenanceHandler{commands: cmds}
}

// ExpireHolds cancels pending holds past the hold TTL. Meant to be called by
// a scheduler; admin only.
func (h *MaintenanceHandler) ExpireHolds(c *gin.Context) {
	expired, err := h.commands.ExpireHolds(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"expired": expired})
}
