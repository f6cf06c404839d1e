package validation

import (
	"fmt"
	"strings"
)

// Statement keywords a cleaned completion is allowed to start with. Anything
// else is treated as prose that slipped past the extractor.
var statementKeywords = []string{
	"select", "with", "insert", "update", "delete",
	"create", "drop", "alter", "pragma", "explain",
}

var readOnlyKeywords = []string{"select", "with", "explain", "pragma"}

// CheckStatement verifies that the cleaned text is a single well-formed SQL
// statement. Multi-statement text and text that does not begin with a SQL
// keyword are rejected before they reach the database.
func CheckStatement(sql string) error {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return fmt.Errorf("generated SQL query is empty")
	}

	if !startsWithKeyword(trimmed, statementKeywords) {
		return fmt.Errorf("generated text is not a SQL statement")
	}

	// A semicolon anywhere but the tail means a second statement follows.
	body := strings.TrimSuffix(trimmed, ";")
	if strings.Contains(body, ";") {
		return fmt.Errorf("generated SQL contains multiple statements")
	}

	return nil
}

// CheckReadOnly rejects statements that could modify the database. Only
// enforced when the service is configured with TEXTTOSQL_READ_ONLY=true;
// the default behavior executes whatever the model produced.
func CheckReadOnly(sql string) error {
	trimmed := strings.TrimSpace(sql)
	if !startsWithKeyword(trimmed, readOnlyKeywords) {
		return fmt.Errorf("only read-only statements are allowed")
	}
	return nil
}

func startsWithKeyword(sql string, keywords []string) bool {
	lower := strings.ToLower(sql)
	for _, kw := range keywords {
		if strings.HasPrefix(lower, kw+" ") || strings.HasPrefix(lower, kw+"\n") || strings.HasPrefix(lower, kw+"(") || lower == kw {
			return true
		}
	}
	return false
}
