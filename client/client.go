// Package client implements the terminal front-end for the Text-to-SQL
// service: an HTTP API client plus the interactive chat loop.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"texttosql/models"
)

// API wraps the Query Service HTTP endpoints. Short-lived lookups (health,
// schema, examples) use a 10 second timeout; queries get 30 seconds since a
// model round trip is involved.
type API struct {
	baseURL     string
	httpClient  *http.Client
	queryClient *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		queryClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (a *API) BaseURL() string {
	return a.baseURL
}

// CheckHealth reports whether the backend answers its health endpoint.
func (a *API) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", a.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (a *API) GetSchema(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", a.baseURL+"/schema", nil)
	if err != nil {
		return "", err
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch schema: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("schema endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		Schema string `json:"schema"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode schema response: %w", err)
	}
	return body.Schema, nil
}

func (a *API) GetExamples(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", a.baseURL+"/api/examples", nil)
	if err != nil {
		return nil, err
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch examples: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("examples endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		Examples []string `json:"examples"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode examples response: %w", err)
	}
	return body.Examples, nil
}

// Query sends a question to the backend. Connection failures come back as an
// error; a reachable backend always yields a QueryResponse, including the
// structured success=false case.
func (a *API) Query(ctx context.Context, question string) (models.QueryResponse, error) {
	payload, err := json.Marshal(models.QueryRequest{Question: question})
	if err != nil {
		return models.QueryResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.baseURL+"/query", bytes.NewBuffer(payload))
	if err != nil {
		return models.QueryResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.queryClient.Do(req)
	if err != nil {
		return models.QueryResponse{}, fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.QueryResponse{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.QueryResponse{}, fmt.Errorf("backend error: %d - %s", resp.StatusCode, string(body))
	}

	var queryResp models.QueryResponse
	if err := json.Unmarshal(body, &queryResp); err != nil {
		return models.QueryResponse{}, fmt.Errorf("failed to decode query response: %w", err)
	}
	return queryResp, nil
}
