package database

import (
	"context"
	"fmt"
	"time"

	"job-portal-api/config"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// NewConnectionPool creates a new PostgreSQL connection pool using pgx.
// The first ping is retried with exponential backoff until cfg.ConnectTimeout elapses.
func NewConnectionPool(ctx context.Context, cfg config.DBConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info("connecting to database", zap.String("host", cfg.Host), zap.Int("port", cfg.Port), zap.String("name", cfg.Name))
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = cfg.ConnectTimeout

	attempt := 0
	err = backoff.Retry(func() error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			logger.Warn("database not ready", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		return nil
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database after %d attempts: %w", attempt, err)
	}

	logger.Info("database connection pool established", zap.Int32("max_conns", cfg.MaxConns))
	return pool, nil
}
