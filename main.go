package main

import (
	"log"

	"texttosql/ai"
	"texttosql/cache"
	"texttosql/config"
	"texttosql/db"
	_ "texttosql/docs" // Swagger docs
	"texttosql/handlers"
	"texttosql/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	cfg := config.GetConfig()

	// Initialize Gemini AI client. A missing API key is fatal: the service
	// never starts without credentials.
	aiService, err := ai.New(cfg.GoogleAPIKey, cfg.ModelName)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}
	defer aiService.Close()

	// Initialize SQLite executor
	sqlService, err := service.NewSQLiteService(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer sqlService.Close()

	// Initialize query history store
	history, err := db.New(cfg.HistoryDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize history store: %v", err)
	}
	defer history.Close()

	// Initialize cache
	appCache := cache.New()

	queryService := service.NewQueryService(aiService, sqlService, appCache, history, config.SchemaDescription, cfg.ReadOnly)
	if cfg.ReadOnly {
		log.Println("Read-only mode enabled: non-SELECT statements will be rejected")
	}

	h := handlers.New(queryService, sqlService, history)

	// Setup Gin router
	r := gin.Default()

	// CORS - allow all origins
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Routes
	r.GET("/", h.RootHandler)
	r.GET("/health", h.HealthHandler)
	r.GET("/schema", h.SchemaHandler)
	r.POST("/query", h.QueryHandler)

	r.POST("/api/sql/execute", h.ExecuteSQLHandler)
	r.GET("/api/examples", h.ExamplesHandler)
	r.GET("/api/history", h.ListHistoryHandler)
	r.DELETE("/api/history", h.ClearHistoryHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
