package ai

import (
	"strings"

	"texttosql/models"
)

// Examples are the fixed few-shot pairs included in every prompt to steer
// generation style toward bare, LIMIT-ed SQLite queries.
var Examples = []models.FewShotExample{
	{
		Input: "Which customers are from Brazil?",
		Query: "SELECT FirstName, LastName, Country FROM customers WHERE Country = 'Brazil';",
	},
	{
		Input: "What are the names of all tracks in the 'Rock' genre?",
		Query: "SELECT t.Name FROM tracks t\nJOIN genres g ON t.GenreId = g.GenreId\nWHERE g.Name = 'Rock'\nLIMIT 10;",
	},
	{
		Input: "What are the top 5 most expensive tracks?",
		Query: "SELECT Name, UnitPrice FROM tracks ORDER BY UnitPrice DESC LIMIT 5;",
	},
	{
		Input: "How many customers are there in total?",
		Query: "SELECT COUNT(*) as total_customers FROM customers;",
	},
	{
		Input: "What are the names of all albums by the artist 'AC/DC'?",
		Query: "SELECT al.Title FROM albums al\nJOIN artists ar ON al.ArtistId = ar.ArtistId\nWHERE ar.Name = 'AC/DC';",
	},
}

// BuildSQLPrompt constructs the role-tagged message list for SQL generation:
// system instructions with the schema description, then the few-shot pairs,
// then the user question. The output depends only on its inputs.
func BuildSQLPrompt(question string, schemaDescription string) []models.PromptMessage {
	var systemBuilder strings.Builder
	systemBuilder.WriteString("You are a SQLite expert. Your task is to convert natural language questions into syntactically correct SQLite queries.\n")
	systemBuilder.WriteString(schemaDescription)
	systemBuilder.WriteString("\nIMPORTANT RULES:\n")
	systemBuilder.WriteString("1. Return ONLY the SQL query, nothing else\n")
	systemBuilder.WriteString("2. Do not include any explanations, comments, or markdown formatting\n")
	systemBuilder.WriteString("3. Use proper SQLite syntax\n")
	systemBuilder.WriteString("4. Always use proper JOINs when connecting tables\n")
	systemBuilder.WriteString("5. Limit results to reasonable numbers (use LIMIT when appropriate)\n")
	systemBuilder.WriteString("6. Use proper column names as specified in the schema\n")
	systemBuilder.WriteString("7. For text comparisons, use single quotes\n")
	systemBuilder.WriteString("8. End queries with semicolon\n\n")
	systemBuilder.WriteString("Here are some examples of good queries:")

	messages := []models.PromptMessage{
		{Role: "system", Content: systemBuilder.String()},
	}
	for _, ex := range Examples {
		messages = append(messages,
			models.PromptMessage{Role: "human", Content: ex.Input},
			models.PromptMessage{Role: "ai", Content: ex.Query},
		)
	}
	messages = append(messages, models.PromptMessage{Role: "human", Content: question})

	return messages
}
