package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MohitAryal/Database-for-social-media/internal/api"
	"github.com/MohitAryal/Database-for-social-media/internal/cache"
	"github.com/MohitAryal/Database-for-social-media/internal/db"
	"github.com/MohitAryal/Database-for-social-media/pkg/config"
	"github.com/MohitAryal/Database-for-social-media/pkg/logging"
	"github.com/MohitAryal/Database-for-social-media/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Starting social media API server")

	// Initialize telemetry
	telemetryShutdown, err := telemetry.Init(&cfg.Telemetry)
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer telemetryShutdown()

	// Initialize database
	database, err := db.New(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(context.Background()); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize Redis cache. The API keeps serving without it.
	redisCache, err := cache.New(&cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		redisCache = nil
	}
	defer redisCache.Close()

	ledger := cache.NewLedger(redisCache, &cfg.Redis)
	writes := cache.NewWriteThrough(cfg.Redis.QueueSize, cfg.Redis.OpTimeout)

	store := db.NewStore(database.DB, db.Options{
		LegacyUserOnlyRemoval: cfg.Database.LegacyUserOnlyRemoval,
	})

	// Create Gin router
	gin.SetMode(ginMode(cfg.Logging.Level))

	engine := gin.New()
	engine.Use(gin.Recovery())
	api.NewRouter(store, database, ledger, writes, &cfg.Server).SetupRoutes(engine)

	// Create HTTP server
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var metricsSrv *http.Server
	if cfg.Telemetry.Enabled && cfg.Telemetry.PrometheusEnabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", telemetry.Handler())
		metricsSrv = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Telemetry.PrometheusPort),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("Metrics server starting", zap.String("address", metricsSrv.Addr))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server starting", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logger.Error("Metrics server forced to shutdown", zap.Error(err))
		}
	}

	// Let pending cache writes finish before the connections go away.
	writes.Close()

	logger.Info("Server exited")
}

// ginMode picks the gin mode for a log level
func ginMode(level string) string {
	if strings.EqualFold(level, "DEBUG") {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}
