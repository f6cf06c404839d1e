package service

import "strings"

const NoResultsMessage = "No results found for your query."

// FormatResult turns an executed result string into the user-facing message.
// Presentation only: an empty result gets the fixed no-results message,
// counting queries get a short prefix, everything else gets a generic header
// above the rendered rows.
func FormatResult(result string, query string) string {
	if strings.TrimSpace(result) == "" {
		return NoResultsMessage
	}

	if strings.Contains(strings.ToUpper(query), "COUNT") {
		return "The result is: " + result
	}

	return "Here are the results:\n\n" + result
}
