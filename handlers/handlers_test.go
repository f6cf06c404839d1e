package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"texttosql/cache"
	"texttosql/config"
	"texttosql/db"
	"texttosql/models"
	"texttosql/service"
)

type fakeModel struct {
	response string
	err      error
}

func (f *fakeModel) Generate(ctx context.Context, messages []models.PromptMessage) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func setupRouter(t *testing.T, model *fakeModel) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	sqlService := service.NewSQLiteServiceWithDB(mockDB)

	history, err := db.NewInMemory()
	if err != nil {
		t.Fatalf("history store: %v", err)
	}
	t.Cleanup(func() { history.Close() })

	queryService := service.NewQueryService(model, sqlService, cache.New(), history, config.SchemaDescription, false)
	h := New(queryService, sqlService, history)

	r := gin.New()
	r.GET("/", h.RootHandler)
	r.GET("/health", h.HealthHandler)
	r.GET("/schema", h.SchemaHandler)
	r.POST("/query", h.QueryHandler)
	r.POST("/api/sql/execute", h.ExecuteSQLHandler)
	r.GET("/api/examples", h.ExamplesHandler)
	r.GET("/api/history", h.ListHistoryHandler)
	r.DELETE("/api/history", h.ClearHistoryHandler)

	return r, mock
}

func TestQueryEndpointSuccess(t *testing.T) {
	model := &fakeModel{response: "```sql\nSELECT COUNT(*) FROM customers;\n```"}
	r, mock := setupRouter(t, model)

	rows := sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(int64(59))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM customers").WillReturnRows(rows)

	body, _ := json.Marshal(models.QueryRequest{Question: "How many customers are there in total?"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/query", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp models.QueryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success: %+v", resp)
	}
	if !strings.HasPrefix(resp.Result, "The result is:") {
		t.Fatalf("count prefix missing: %q", resp.Result)
	}
	if resp.SQLQuery != "SELECT COUNT(*) FROM customers;" {
		t.Fatalf("unexpected SQL: %q", resp.SQLQuery)
	}
}

func TestQueryEndpointModelFailure(t *testing.T) {
	model := &fakeModel{err: context.DeadlineExceeded}
	r, _ := setupRouter(t, model)

	body, _ := json.Marshal(models.QueryRequest{Question: "Which customers are from Brazil?"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/query", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestQueryEndpointInvalidBody(t *testing.T) {
	r, _ := setupRouter(t, &fakeModel{response: "SELECT 1;"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/query", strings.NewReader(`{"wrong":"field"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSchemaEndpoint(t *testing.T) {
	r, _ := setupRouter(t, &fakeModel{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/schema", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Schema string `json:"schema"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(body.Schema, "customers") {
		t.Fatalf("schema text missing tables: %q", body.Schema)
	}
}

func TestExecuteSQLEndpointRejectsMultiStatement(t *testing.T) {
	r, _ := setupRouter(t, &fakeModel{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/sql/execute",
		strings.NewReader(`{"sql":"SELECT 1; DROP TABLE customers;"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	model := &fakeModel{response: "SELECT Name FROM artists LIMIT 1;"}
	r, mock := setupRouter(t, model)

	rows := sqlmock.NewRows([]string{"Name"}).AddRow("AC/DC")
	mock.ExpectQuery("SELECT Name FROM artists").WillReturnRows(rows)

	body, _ := json.Marshal(models.QueryRequest{Question: "Name an artist"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/query", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("query status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/history", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("history status = %d", w.Code)
	}
	var records []models.QueryRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(records) != 1 || records[0].Question != "Name an artist" {
		t.Fatalf("unexpected history: %+v", records)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/history", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/history", nil))
	records = nil
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("history not cleared: %+v", records)
	}
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := setupRouter(t, &fakeModel{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "running") {
		t.Fatalf("root endpoint: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d", w.Code)
	}
}
