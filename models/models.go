package models

type QueryRequest struct {
	Question string `json:"question" binding:"required"`
}

// QueryResponse carries exactly one of Result/Error, matching Success.
type QueryResponse struct {
	Success  bool   `json:"success"`
	Result   string `json:"result,omitempty"`
	SQLQuery string `json:"sql_query,omitempty"`
	Error    string `json:"error,omitempty"`
}

type ExecuteRequest struct {
	SQL string `json:"sql" example:"SELECT COUNT(*) FROM customers;"`
}

type SQLResult struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
	Error   string          `json:"error,omitempty"`
}

// FewShotExample is a (question, reference SQL) pair embedded in every prompt.
type FewShotExample struct {
	Input string
	Query string
}

// PromptMessage is one role-tagged entry of a built prompt.
type PromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	SQL     string `json:"sql,omitempty"`
}

// QueryRecord is one persisted /query round trip.
type QueryRecord struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	SQLQuery  string `json:"sql_query,omitempty"`
	Result    string `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}
