package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skuma49/my-node-app/internal/service"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/health [get]
func (h *Handler) health(c *gin.Context) {
	info := h.services.System.Health()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    info.Status,
		"timestamp": info.Timestamp,
		"uptime":    info.UptimeSeconds,
		"version":   info.Version,
	})
}

// @Summary      Server status
// @Description  Runtime metadata plus the fixed endpoint list.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/status [get]
func (h *Handler) status(c *gin.Context) {
	info := h.services.System.Status()
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"server":      info.Server,
		"environment": info.Environment,
		"goVersion":   info.GoVersion,
		"memory":      info.Memory,
		"timestamp":   info.Timestamp,
		"endpoints":   info.Endpoints,
	})
}

// @Summary      Welcome
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome to the my-node-app API server",
		"version": service.Version,
		"documentation": gin.H{
			"health":   "GET /api/health",
			"status":   "GET /api/status",
			"users":    "GET /api/users",
			"products": "GET /api/products",
			"swagger":  "GET /swagger/index.html",
		},
		"timestamp": time.Now().UTC(),
	})
}
