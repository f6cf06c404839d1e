package ai

import (
	"regexp"
	"strings"
)

var (
	fenceRe = regexp.MustCompile("(?i)```[a-z]*\n?")
	labelRe = regexp.MustCompile(`(?i)^(SQL Query:|Query:|SQL:)\s*`)
)

// CleanSQLQuery recovers a single SQL statement from a raw model completion.
// It strips surrounding whitespace, markdown code fences (with or without a
// language tag) and a leading "SQL Query:"/"Query:"/"SQL:" label, then
// truncates at the first semicolon, discarding any trailing explanation text.
// Text without a terminator is returned as-is. Best-effort cleanup, not a
// parser: multi-statement SQL or SQL buried in prose passes through unchanged.
func CleanSQLQuery(raw string) string {
	sql := strings.TrimSpace(raw)

	sql = fenceRe.ReplaceAllString(sql, "")
	sql = labelRe.ReplaceAllString(strings.TrimSpace(sql), "")

	if idx := strings.Index(sql, ";"); idx >= 0 {
		sql = sql[:idx] + ";"
	}

	return strings.TrimSpace(sql)
}
