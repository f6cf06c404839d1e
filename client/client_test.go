package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"texttosql/models"
)

func newTestServer(t *testing.T, queryResp models.QueryResponse) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})
	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"schema": "Database Schema:\n- customers: CustomerId"})
	})
	mux.HandleFunc("/api/examples", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string][]string{"examples": {"Which customers are from Brazil?"}})
	})
	mux.HandleFunc("/query", func(w http.ResponseWriter, r *http.Request) {
		var req models.QueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(queryResp)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestAPIQuery(t *testing.T) {
	want := models.QueryResponse{
		Success:  true,
		Result:   "The result is: 59",
		SQLQuery: "SELECT COUNT(*) FROM customers;",
	}
	server := newTestServer(t, want)
	api := NewAPI(server.URL)

	if !api.CheckHealth(context.Background()) {
		t.Fatal("health check failed against live server")
	}

	got, err := api.Query(context.Background(), "How many customers are there in total?")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if got != want {
		t.Fatalf("Query = %+v, want %+v", got, want)
	}
}

func TestAPIQueryConnectionError(t *testing.T) {
	// Point at a closed server to simulate an unreachable backend.
	server := newTestServer(t, models.QueryResponse{})
	url := server.URL
	server.Close()

	api := NewAPI(url)
	if api.CheckHealth(context.Background()) {
		t.Fatal("health check passed against closed server")
	}

	_, err := api.Query(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected connection error")
	}
	if !strings.Contains(err.Error(), "connection error") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestAPISchemaAndExamples(t *testing.T) {
	server := newTestServer(t, models.QueryResponse{})
	api := NewAPI(server.URL)

	schema, err := api.GetSchema(context.Background())
	if err != nil {
		t.Fatalf("GetSchema: %v", err)
	}
	if !strings.Contains(schema, "customers") {
		t.Fatalf("schema missing tables: %q", schema)
	}

	examples, err := api.GetExamples(context.Background())
	if err != nil {
		t.Fatalf("GetExamples: %v", err)
	}
	if len(examples) != 1 || examples[0] != "Which customers are from Brazil?" {
		t.Fatalf("unexpected examples: %v", examples)
	}
}

func TestSessionHistoryAppendAndClear(t *testing.T) {
	server := newTestServer(t, models.QueryResponse{
		Success:  true,
		Result:   "Here are the results:\n\nAC/DC",
		SQLQuery: "SELECT Name FROM artists LIMIT 1;",
	})
	session := NewSession(NewAPI(server.URL))

	session.ask(context.Background(), "Name an artist")

	messages := session.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected user + assistant messages, got %d", len(messages))
	}
	if messages[0].Role != "user" || messages[0].Content != "Name an artist" {
		t.Fatalf("user message mismatch: %+v", messages[0])
	}
	if messages[1].Role != "assistant" || messages[1].SQL != "SELECT Name FROM artists LIMIT 1;" {
		t.Fatalf("assistant message mismatch: %+v", messages[1])
	}

	session.messages = nil
	if len(session.Messages()) != 0 {
		t.Fatal("history not cleared")
	}
}

func TestSessionKeepsHistoryOnConnectionError(t *testing.T) {
	server := newTestServer(t, models.QueryResponse{})
	url := server.URL
	server.Close()

	session := NewSession(NewAPI(url))
	session.ask(context.Background(), "first question")

	messages := session.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected question and error in history, got %d", len(messages))
	}
	if !strings.Contains(messages[1].Content, "Connection error") {
		t.Fatalf("error message not recorded: %+v", messages[1])
	}
}
