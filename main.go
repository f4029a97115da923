package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-portal-api/config"
	"job-portal-api/internal/app"
	"job-portal-api/internal/database"
	"job-portal-api/internal/server"
	"job-portal-api/internal/storage/postgres"

	_ "job-portal-api/docs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// @title           Job Portal API
// @version         1.0
// @description     Job postings, moderation and applications for the job portal.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DB.ConnectTimeout+5*time.Second)
	dbPool, err := database.NewConnectionPool(ctx, cfg.DB, logger)
	if err != nil {
		cancel()
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.ApplySchema(ctx, dbPool); err != nil {
			cancel()
			logger.Fatal("failed to apply schema", zap.Error(err))
		}
		logger.Info("database schema applied")
	}

	// Redis only backs rate limiting.
	redisClient, err := database.NewRedisClient(ctx, cfg.Redis, logger)
	cancel()
	if err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validator.New(),
		Logger:      logger,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("application gracefully stopped")
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == gin.DebugMode {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
