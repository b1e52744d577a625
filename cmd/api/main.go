package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httphandlers "github.com/rafabene/docdesk/internal/handlers/http"
	"github.com/rafabene/docdesk/internal/handlers/middleware"
	"github.com/rafabene/docdesk/internal/handlers/web"
	"github.com/rafabene/docdesk/internal/infrastructure/config"
	"github.com/rafabene/docdesk/internal/infrastructure/i18n"
	"github.com/rafabene/docdesk/internal/infrastructure/logging"
	"github.com/rafabene/docdesk/internal/infrastructure/metrics"
	"github.com/rafabene/docdesk/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/docdesk/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting docdesk",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	if cfg.Database.AutoMigrate {
		if err := postgres.EnsureSchema(startupCtx, db); err != nil {
			cancelStartup()
			logger.Error("failed to bootstrap schema", "error", err)
			log.Fatal(err)
		}
		logger.Info("schema ensured", "table", postgres.DocumentsTable)
	}

	// Tabela ausente não impede a subida; cada operação reporta erro de banco
	probe := postgres.NewSchemaProbe(db)
	if !probe.DocumentsTableReady(startupCtx) {
		logger.Warn("documents table not found; requests will fail until the schema exists",
			"table", postgres.DocumentsTable,
		)
	}
	cancelStartup()

	// Inicializar i18n
	i18nService, err := i18n.NewDefaultService(cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	collectors := metrics.New()

	// Inicializar repositories
	docRepo := postgres.NewDocumentRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	docService := services.NewDocumentService(docRepo, uow, logger, collectors)

	// Inicializar handlers
	docHandler := httphandlers.NewDocumentHandler(docService, logger)
	webHandler := web.NewHandler(web.NewOrchestrator(docService, logger))

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics(collectors))

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"env":             cfg.Env,
			"documents_table": probe.DocumentsTableReady(c.Request.Context()),
		})
	})

	router.GET("/metrics", gin.WrapH(collectors.Handler()))

	// API routes
	v1 := router.Group("/api/v1")
	docHandler.RegisterRoutes(v1)

	// Interface web
	webHandler.RegisterRoutes(router)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
