package routes

import (
	"job-portal-api/internal/api/handlers"
	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/app"
	"job-portal-api/internal/services"
	"job-portal-api/internal/storage/postgres"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	log := app.Logger.Named("routes")

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")
	if app.RedisClient != nil && app.Config.RateLimit.Requests > 0 {
		limiter := middleware.NewRedisLimiter(app.RedisClient)
		apiV1.Use(middleware.RateLimit(limiter, app.Config.RateLimit.Requests, app.Config.RateLimit.Window, app.Logger))
		log.Info("rate limiting enabled",
			zap.Int("requests", app.Config.RateLimit.Requests),
			zap.Duration("window", app.Config.RateLimit.Window))
	}

	// --- Services ---
	store := postgres.NewStore(app.DBPool, app.Logger)
	jobService := services.NewJobService(store, app.Config.Listing, app.Logger)
	applicationService := services.NewJobApplicationService(store, app.Logger)

	// --- Handlers ---
	jobHandler := handlers.NewJobHandler(jobService, app.Validator, app.Logger)
	applicationHandler := handlers.NewJobApplicationHandler(applicationService, app.Logger)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret, app.Logger)

	// --- Register Resource Routes ---
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)
	RegisterJobApplicationRoutes(apiV1, applicationHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck(app.DBPool))

	log.Debug("configuring swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
