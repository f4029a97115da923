package postgres

import (
	"context"
	"errors"
	"fmt"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const applicationColumns = `id, job_id, applicant_id, status, created_at, updated_at`

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db     Querier
	logger *zap.Logger
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db Querier, logger *zap.Logger) *ApplicationRepo {
	return &ApplicationRepo{db: db, logger: logger.Named("application_repo")}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func (r *ApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	query := `
		INSERT INTO applications (job_id, applicant_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + applicationColumns

	rows, err := r.db.Query(ctx, query, app.JobID, app.ApplicantID, app.Status)
	if err != nil {
		r.logger.Error("application insert failed", zap.Int64("job_id", app.JobID), zap.Error(err))
		return nil, fmt.Errorf("failed to create application: %w", translateError(err))
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Application])
	if err != nil {
		r.logger.Error("application insert failed", zap.Int64("job_id", app.JobID), zap.Int64("applicant_id", app.ApplicantID), zap.Error(err))
		return nil, fmt.Errorf("failed to create application: %w", translateError(err))
	}

	r.logger.Info("application created", zap.Int64("application_id", created.ID), zap.Int64("job_id", created.JobID))
	return created, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	rows, err := r.db.Query(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("application query failed", zap.Int64("application_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get application %d: %w", id, err)
	}

	app, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Application])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.logger.Error("application scan failed", zap.Int64("application_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get application %d: %w", id, err)
	}
	return app, nil
}

func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID int64, limit, offset int) ([]models.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE job_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, jobID, limit, offset)
	if err != nil {
		r.logger.Error("application listing failed", zap.Int64("job_id", jobID), zap.Error(err))
		return nil, fmt.Errorf("failed to list applications for job %d: %w", jobID, err)
	}

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		r.logger.Error("application scan failed", zap.Int64("job_id", jobID), zap.Error(err))
		return nil, fmt.Errorf("failed to scan applications for job %d: %w", jobID, err)
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}

func (r *ApplicationRepo) CountByJob(ctx context.Context, jobID int64) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID).Scan(&total); err != nil {
		r.logger.Error("application count failed", zap.Int64("job_id", jobID), zap.Error(err))
		return 0, fmt.Errorf("failed to count applications for job %d: %w", jobID, err)
	}
	return total, nil
}

// DeleteByJob removes every application that references the job.
func (r *ApplicationRepo) DeleteByJob(ctx context.Context, jobID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, jobID)
	if err != nil {
		r.logger.Error("application cascade delete failed", zap.Int64("job_id", jobID), zap.Error(err))
		return 0, fmt.Errorf("failed to delete applications for job %d: %w", jobID, err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *ApplicationRepo) DeleteAll(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM applications`)
	if err != nil {
		r.logger.Error("delete all applications failed", zap.Error(err))
		return 0, fmt.Errorf("failed to delete all applications: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
