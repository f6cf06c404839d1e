package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"texttosql/models"

	_ "modernc.org/sqlite"
)

// SQLiteService executes statements against the local database file. It does
// not distinguish SELECT from DML: whatever statement it is handed runs
// against the live database.
type SQLiteService struct {
	db *sql.DB
}

func NewSQLiteService(databasePath string) (*SQLiteService, error) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteService{db: db}, nil
}

// NewSQLiteServiceWithDB wraps an existing handle. Used in tests.
func NewSQLiteServiceWithDB(db *sql.DB) *SQLiteService {
	return &SQLiteService{db: db}
}

func (s *SQLiteService) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteService) IsConnected() bool {
	if s.db == nil {
		return false
	}
	return s.db.Ping() == nil
}

// ExecuteQuery runs a statement and captures every execution error (syntax,
// missing tables or columns, type errors) in the returned result rather than
// panicking or propagating it past the caller.
func (s *SQLiteService) ExecuteQuery(query string) (*models.SQLResult, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return &models.SQLResult{Error: err.Error()}, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return &models.SQLResult{Error: err.Error()}, err
	}

	var resultRows [][]interface{}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return &models.SQLResult{Error: err.Error()}, err
		}

		row := make([]interface{}, len(columns))
		for i, val := range values {
			switch v := val.(type) {
			case nil:
				row[i] = nil
			case []byte:
				row[i] = string(v)
			default:
				row[i] = v
			}
		}

		resultRows = append(resultRows, row)
	}

	if err := rows.Err(); err != nil {
		return &models.SQLResult{Error: err.Error()}, err
	}

	return &models.SQLResult{
		Columns: columns,
		Rows:    resultRows,
	}, nil
}

// RenderRows turns a result set into the string representation shown to the
// user: one row per line, values comma separated. An empty result set renders
// as an empty string.
func RenderRows(result *models.SQLResult) string {
	if result == nil || len(result.Rows) == 0 {
		return ""
	}

	var b strings.Builder
	for i, row := range result.Rows {
		if i > 0 {
			b.WriteString("\n")
		}
		for j, val := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			if val == nil {
				b.WriteString("NULL")
			} else {
				b.WriteString(fmt.Sprintf("%v", val))
			}
		}
	}
	return b.String()
}
