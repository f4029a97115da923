package postgres

import (
	"context"
	"fmt"

	"job-portal-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements storage.Store on top of a pgx pool.
type Store struct {
	pool   *pgxpool.Pool // nil when the Store is bound to a transaction
	db     Querier
	logger *zap.Logger
}

// NewStore creates a Store backed by the given pool.
func NewStore(pool *pgxpool.Pool, logger *zap.Logger) *Store {
	return &Store{pool: pool, db: pool, logger: logger}
}

// Compile-time check to ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

func (s *Store) Jobs() storage.JobRepository {
	return NewJobRepo(s.db, s.logger)
}

func (s *Store) Applications() storage.ApplicationRepository {
	return NewApplicationRepo(s.db, s.logger)
}

// WithTx runs fn inside a transaction. A Store already bound to a transaction
// reuses it.
func (s *Store) WithTx(ctx context.Context, fn func(tx storage.Store) error) error {
	if s.pool == nil {
		return fn(s)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op once committed

	if err := fn(&Store{db: tx, logger: s.logger}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error("failed to commit transaction", zap.Error(err))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
