package handlers

import (
	"net/http"

	"texttosql/models"
	"texttosql/validation"

	"github.com/gin-gonic/gin"
)

// ExecuteSQLHandler executes a caller-supplied SQL statement
// @Summary      Execute SQL query
// @Description  Run a single SQL statement against the database, bypassing the model. Goes through the same statement validation as generated SQL
// @Tags         SQL Execution
// @Accept       json
// @Produce      json
// @Param        request  body      models.ExecuteRequest  true  "SQL execution request"
// @Success      200      {object}  models.SQLResult       "Query execution result"
// @Failure      400      {object}  map[string]string      "Invalid request or rejected statement"
// @Failure      500      {object}  models.SQLResult       "Query execution error"
// @Router       /api/sql/execute [post]
func (h *Handlers) ExecuteSQLHandler(c *gin.Context) {
	var req models.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := validation.CheckStatement(req.SQL); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.sqlService.ExecuteQuery(req.SQL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// exampleQuestions are the starter questions shown by the chat client.
var exampleQuestions = []string{
	"How many customers are from each country?",
	"What are the top 10 best-selling tracks?",
	"Which artist has the most albums?",
	"What is the total revenue by year?",
	"Show me all customers from Canada",
	"Which customers are from Brazil?",
	"What are the names of all tracks in the 'Rock' genre?",
	"What are the top 5 most expensive tracks?",
}

// ExamplesHandler lists example questions
// @Summary      List example questions
// @Tags         Query
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/examples [get]
func (h *Handlers) ExamplesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"examples": exampleQuestions})
}
