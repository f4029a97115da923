package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/api/routes"
	"job-portal-api/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router     *gin.Engine
	app        *app.Application
	httpServer *http.Server
	logger     *zap.Logger
}

func NewServer(app *app.Application) *Server {
	logger := app.Logger.Named("server")
	if app.Config.Server.Mode != "" {
		gin.SetMode(app.Config.Server.Mode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(app.Logger))

	logger.Info("configuring CORS", zap.Strings("origins", app.Config.CORS.AllowedOrigins))
	router.Use(cors.New(corsConfig(app.Config.CORS.AllowedOrigins)))

	if err := router.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to reset trusted proxies", zap.Error(err))
	}

	return &Server{
		router: router,
		app:    app,
		logger: logger,
	}
}

func corsConfig(allowedOrigins []string) cors.Config {
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range allowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// Start registers the routes and serves until Shutdown is called.
func (s *Server) Start() error {
	routes.RegisterRoutes(s.router, s.app)

	addr := s.app.Config.Server.Addr()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("server starting", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}
