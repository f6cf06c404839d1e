package handlers

import (
	"net/http"

	"texttosql/models"

	"github.com/gin-gonic/gin"
)

// ListHistoryHandler returns stored query records, newest first
// @Summary      List query history
// @Tags         History
// @Produce      json
// @Success      200  {array}   models.QueryRecord
// @Failure      500  {object}  map[string]string
// @Router       /api/history [get]
func (h *Handlers) ListHistoryHandler(c *gin.Context) {
	records, err := h.history.ListQueryRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load query history"})
		return
	}
	if records == nil {
		records = []models.QueryRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// ClearHistoryHandler deletes all stored query records
// @Summary      Clear query history
// @Tags         History
// @Success      204  "No Content"
// @Failure      500  {object}  map[string]string
// @Router       /api/history [delete]
func (h *Handlers) ClearHistoryHandler(c *gin.Context) {
	if err := h.history.ClearQueryRecords(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear query history"})
		return
	}
	c.Status(http.StatusNoContent)
}
