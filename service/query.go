package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"texttosql/ai"
	"texttosql/cache"
	"texttosql/db"
	"texttosql/models"
	"texttosql/validation"
)

type modelClient interface {
	Generate(ctx context.Context, messages []models.PromptMessage) (string, error)
}

type sqlExecutor interface {
	ExecuteQuery(query string) (*models.SQLResult, error)
}

// QueryService runs the full round trip for one question: prompt build,
// model call, SQL extraction, validation, execution, formatting. Constructed
// once at startup and shared by the HTTP handlers.
type QueryService struct {
	model    modelClient
	executor sqlExecutor
	cache    *cache.Cache
	history  *db.HistoryStore
	schema   string
	readOnly bool
}

func NewQueryService(model modelClient, executor sqlExecutor, appCache *cache.Cache, history *db.HistoryStore, schema string, readOnly bool) *QueryService {
	return &QueryService{
		model:    model,
		executor: executor,
		cache:    appCache,
		history:  history,
		schema:   schema,
		readOnly: readOnly,
	}
}

// ProcessQuery answers a natural-language question. SQL execution errors are
// recovered into a structured failure response; a model-call failure is
// returned as an error for the handler to surface as a generic server error.
func (s *QueryService) ProcessQuery(ctx context.Context, question string) (models.QueryResponse, error) {
	cacheKey := fmt.Sprintf("question:%s", question)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(models.QueryResponse), nil
	}

	prompt := ai.BuildSQLPrompt(question, s.schema)

	rawSQL, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return models.QueryResponse{}, fmt.Errorf("failed to generate SQL: %w", err)
	}

	cleanedSQL := ai.CleanSQLQuery(rawSQL)

	if err := validation.CheckStatement(cleanedSQL); err != nil {
		return s.failure(question, cleanedSQL, err.Error()), nil
	}
	if s.readOnly {
		if err := validation.CheckReadOnly(cleanedSQL); err != nil {
			return s.failure(question, cleanedSQL, err.Error()), nil
		}
	}

	result, err := s.executor.ExecuteQuery(cleanedSQL)
	if err != nil {
		errText := err.Error()
		if result != nil && result.Error != "" {
			errText = result.Error
		}
		// The cleaned SQL still goes back to the caller for debugging.
		return s.failure(question, cleanedSQL, fmt.Sprintf("SQL execution error: %s", errText)), nil
	}

	formatted := FormatResult(RenderRows(result), cleanedSQL)

	response := models.QueryResponse{
		Success:  true,
		Result:   formatted,
		SQLQuery: cleanedSQL,
	}

	s.cache.SetDefault(cacheKey, response)
	s.record(question, response)

	return response, nil
}

// Schema returns the static schema description text.
func (s *QueryService) Schema() string {
	return s.schema
}

func (s *QueryService) failure(question, sqlQuery, errText string) models.QueryResponse {
	response := models.QueryResponse{
		Success:  false,
		SQLQuery: sqlQuery,
		Error:    errText,
	}
	s.record(question, response)
	return response
}

func (s *QueryService) record(question string, response models.QueryResponse) {
	if s.history == nil {
		return
	}
	record := &models.QueryRecord{
		ID:        uuid.New().String(),
		Question:  question,
		SQLQuery:  response.SQLQuery,
		Result:    response.Result,
		Error:     response.Error,
		Success:   response.Success,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.history.StoreQueryRecord(record); err != nil {
		log.Printf("Error storing query record: %v", err)
	}
}
