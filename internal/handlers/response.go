package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skuma49/my-node-app/internal/config"
)

// Response body constants, kept in one place to avoid typos across handlers.
const (
	errUserNotFound     = "User not found"
	errProductNotFound  = "Product not found"
	errRouteNotFound    = "Route not found"
	errMissingUserReq   = "Name and email are required"
	errMissingProdReq   = "Name, price, and category are required"
	errMissingQuery     = `Search query parameter "q" is required`
	errInvalidBulk      = "Invalid bulk operation"
	errInternal         = "Something went wrong!"
	msgInternalRedacted = "Internal Server Error"
)

// The helpers below are the only place response envelopes are assembled.
// Every endpoint replies {success, data|error, ...}.

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "count": count})
}

func respondCreated(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data, "message": message})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondUpdated(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "message": message})
}

func respondSearch(c *gin.Context, data any, count int, query string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "count": count, "query": query})
}

func respondError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"success": false, "error": msg})
}

// respondFault is the 500 path for malformed bodies and other unexpected
// failures. Detail is echoed only in development mode.
func (h *Handler) respondFault(c *gin.Context, err error) {
	if h.log != nil && err != nil {
		h.log.Errorw("request_fault", "err", err, "path", c.Request.URL.Path)
	}
	detail := msgInternalRedacted
	if h.env == config.EnvDevelopment && err != nil {
		detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   errInternal,
		"message": detail,
	})
}

// recovered is the top-level fault boundary behind gin.CustomRecovery.
// No handler panic crashes the process.
func (h *Handler) recovered(c *gin.Context, rec any) {
	h.respondFault(c, fmt.Errorf("panic: %v", rec))
	c.Abort()
}

// routeNotFound answers any unmatched method+path with the requested path.
func (h *Handler) routeNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   errRouteNotFound,
		"path":    c.Request.URL.Path,
	})
}
