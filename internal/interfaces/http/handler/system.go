package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles the root and health endpoints
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// RegisterRoutes registers system routes directly on the engine,
// outside the /api prefix
func (h *SystemHandler) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/", h.Root)
	engine.GET("/health", h.Health)
}

// Root reports that the API is reachable
func (h *SystemHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Pegi API është online ✅")
}

// Health is the liveness probe endpoint
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
