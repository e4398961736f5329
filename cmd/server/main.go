package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bizsite_server/config"
	"bizsite_server/internal/agents"
	"bizsite_server/internal/api"
	"bizsite_server/internal/llm"
	"bizsite_server/internal/logger"
	"bizsite_server/internal/pipeline"
	"bizsite_server/internal/site"
	"bizsite_server/internal/templates"
	"bizsite_server/internal/unsplash"
)

func main() {
	// Load .env before viper reads the environment.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync()

	// Layout catalog, embedded by default or from an external directory.
	var catalog *templates.Catalog
	if cfg.TemplatesDir != "" {
		catalog, err = templates.NewCatalogFromDir(cfg.TemplatesDir, zlog)
	} else {
		catalog, err = templates.NewCatalog(zlog)
	}
	if err != nil {
		zlog.Fatal("cannot load layout catalog", zap.Error(err))
	}

	// Pipeline collaborators.
	caller := llm.NewClient(cfg.OpenAIKey, cfg.OpenAIModel, zlog)

	var searcher unsplash.Searcher
	if cfg.UnsplashAccessKey != "" {
		searcher = unsplash.NewClient(cfg.UnsplashAccessKey, zlog)
	} else {
		zlog.Warn("UNSPLASH_ACCESS_KEY not set, generated sites will use placeholder images")
	}

	pipe := pipeline.New(
		agents.NewAnalysisAgent(caller, zlog),
		agents.NewDesignAgent(caller, zlog),
		agents.NewContentAgent(caller, zlog),
		agents.NewImageAgent(searcher, zlog),
		templates.NewRenderer(catalog, zlog),
		zlog,
	)
	writer := site.NewWriter(cfg.OutputDir, zlog)

	apiHandler := api.NewAPIHandler(pipe, catalog, writer, zlog)

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Timeouts guard against slow clients.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("starting API server", zap.String("address", cfg.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("API server listen error", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zlog.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("API server forced shutdown", zap.Error(err))
	}
}
