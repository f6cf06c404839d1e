package handlers

import (
	"texttosql/db"
	"texttosql/service"
)

// @title           Text-to-SQL API
// @version         1.0
// @description     Translate natural-language questions into SQL queries, execute them against the Chinook database and return formatted results

// @contact.name   API Support

// @license.name  MIT

// @host      localhost:8000
// @BasePath  /

// @schemes   http

type Handlers struct {
	queryService *service.QueryService
	sqlService   *service.SQLiteService
	history      *db.HistoryStore
}

func New(queryService *service.QueryService, sqlService *service.SQLiteService, history *db.HistoryStore) *Handlers {
	return &Handlers{
		queryService: queryService,
		sqlService:   sqlService,
		history:      history,
	}
}
