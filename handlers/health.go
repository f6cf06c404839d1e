package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RootHandler returns a liveness message
// @Summary      Liveness message
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handlers) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Text-to-SQL API is running!",
		"status":  "healthy",
	})
}

// HealthHandler checks the health status of the service
// @Summary      Health check
// @Description  Check the health status of the service and its database connection
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string  "Service health status"
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	status := gin.H{
		"status":   "healthy",
		"service":  "text-to-sql-api",
		"database": "disconnected",
	}

	if h.sqlService != nil && h.sqlService.IsConnected() {
		status["database"] = "connected"
	}

	c.JSON(http.StatusOK, status)
}
