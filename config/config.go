package config

import (
	_ "embed"
	"os"
)

//go:embed schema.txt
var SchemaDescription string

type Config struct {
	Port          string
	GoogleAPIKey  string
	ModelName     string
	DatabasePath  string
	HistoryDBPath string
	APIBaseURL    string
	ReadOnly      bool
}

func GetConfig() Config {
	return Config{
		Port:          getEnv("PORT", "8000"),
		GoogleAPIKey:  os.Getenv("GOOGLE_API_KEY"),
		ModelName:     getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		DatabasePath:  getEnv("DATABASE_PATH", "./data/chinook.db"),
		HistoryDBPath: getEnv("HISTORY_DB_PATH", "./data/history"),
		APIBaseURL:    getEnv("API_URL", "http://localhost:8000"),
		ReadOnly:      getEnv("TEXTTOSQL_READ_ONLY", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
