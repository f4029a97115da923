package app

import (
	"job-portal-api/config"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client // nil disables rate limiting
	Validator   *validator.Validate
	Logger      *zap.Logger
}
