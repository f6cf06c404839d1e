package handlers

import (
	"fmt"
	"log"
	"net/http"

	"texttosql/models"

	"github.com/gin-gonic/gin"
)

// QueryHandler processes a natural language question end to end
// @Summary      Answer a natural language question with SQL
// @Description  Build a prompt from the schema and few-shot examples, generate SQL with the model, execute it and return the formatted result
// @Tags         Query
// @Accept       json
// @Produce      json
// @Param        request  body      models.QueryRequest   true  "Natural language question"
// @Success      200      {object}  models.QueryResponse  "Query result or structured failure"
// @Failure      400      {object}  map[string]string     "Invalid request"
// @Failure      500      {object}  map[string]string     "Internal server error"
// @Router       /query [post]
func (h *Handlers) QueryHandler(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	log.Printf("[QUERY] Question: %s", req.Question)

	response, err := h.queryService.ProcessQuery(c.Request.Context(), req.Question)
	if err != nil {
		log.Printf("[QUERY] Error processing query: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Internal server error: %v", err)})
		return
	}

	if !response.Success {
		log.Printf("[QUERY] Execution failed: %s", response.Error)
	}

	c.JSON(http.StatusOK, response)
}

// SchemaHandler returns the static database schema description
// @Summary      Get the database schema
// @Tags         Schema
// @Produce      json
// @Success      200  {object}  map[string]string  "Schema description text"
// @Router       /schema [get]
func (h *Handlers) SchemaHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schema": h.queryService.Schema()})
}
