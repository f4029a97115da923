// internal/storage/postgres/jobs.go
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

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db     Querier
	logger *zap.Logger
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db Querier, logger *zap.Logger) *JobRepo {
	return &JobRepo{db: db, logger: logger.Named("job_repo")}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func (r *JobRepo) collectJob(rows pgx.Rows, err error, op string, id int64) (*models.Job, error) {
	if err != nil {
		r.logger.Error("job query failed", zap.String("op", op), zap.Int64("job_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to %s: %w", op, translateError(err))
	}
	job, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Job])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.logger.Error("job scan failed", zap.String("op", op), zap.Int64("job_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to %s: %w", op, translateError(err))
	}
	return job, nil
}

// Create inserts a job. id, created_at and updated_at are generated by the store.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		INSERT INTO jobs (
			company, position, job_status, job_type, job_location, workplace_type, categories,
			job_vacancy, job_salary, job_deadline, job_description, job_skills, job_facilities, job_contact,
			eligibility, student_currently_studying, year_selection, experience_min, experience_max,
			visibility_status, admin_comment, created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, NOW(), NOW())
		RETURNING ` + jobColumns

	rows, err := r.db.Query(ctx, query,
		job.Company,
		job.Position,
		job.JobStatus,
		job.JobType,
		job.JobLocation,
		job.WorkplaceType,
		job.Categories,
		job.JobVacancy,
		job.JobSalary,
		job.JobDeadline,
		job.JobDescription,
		job.JobSkills,
		job.JobFacilities,
		job.JobContact,
		job.Eligibility,
		job.StudentCurrentlyStudying,
		job.YearSelection,
		job.ExperienceMin,
		job.ExperienceMax,
		job.VisibilityStatus,
		job.AdminComment,
		job.CreatedBy,
	)
	created, err := r.collectJob(rows, err, "create job", 0)
	if err != nil {
		return nil, err
	}

	r.logger.Info("job created", zap.Int64("job_id", created.ID), zap.Int64("created_by", created.CreatedBy))
	return created, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return r.collectJob(rows, err, "get job", id)
}

// ExistsByCompanyAndPosition reports whether a job with exactly this company and position exists.
func (r *JobRepo) ExistsByCompanyAndPosition(ctx context.Context, company, position string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM jobs WHERE company = $1 AND position = $2)`,
		company, position,
	).Scan(&exists)
	if err != nil {
		r.logger.Error("duplicate check failed", zap.String("company", company), zap.String("position", position), zap.Error(err))
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}
	return exists, nil
}

// List returns one page of jobs matching the filter.
func (r *JobRepo) List(ctx context.Context, filter storage.JobListFilter) ([]models.Job, error) {
	query, args := newJobListQuery(filter).fetch()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("listing query failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		r.logger.Error("listing scan failed", zap.Error(err))
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{} // Return empty slice, not nil
	}
	return jobs, nil
}

// Count returns the number of jobs matching the filter, ignoring limit and offset.
func (r *JobRepo) Count(ctx context.Context, filter storage.JobListFilter) (int, error) {
	query, args := newJobListQuery(filter).count()

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.logger.Error("count query failed", zap.String("query", query), zap.Error(err))
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return total, nil
}

func (r *JobRepo) listWithCreators(ctx context.Context, op string, where string, args ...any) ([]models.JobWithCreator, error) {
	query := `
		SELECT ` + qualifiedJobColumns("j") + `, u.username, u.email
		FROM jobs j
		JOIN users u ON j.created_by = u.id` + where + `
		ORDER BY j.created_at DESC, j.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("creator join query failed", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JobWithCreator])
	if err != nil {
		r.logger.Error("creator join scan failed", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	if jobs == nil {
		jobs = []models.JobWithCreator{}
	}
	return jobs, nil
}

// ListByCreator retrieves every job posted by one user, newest first.
func (r *JobRepo) ListByCreator(ctx context.Context, creatorID int64) ([]models.JobWithCreator, error) {
	return r.listWithCreators(ctx, "list jobs by creator", " WHERE j.created_by = $1", creatorID)
}

// ListWithCreators retrieves every job with its creator, newest first.
func (r *JobRepo) ListWithCreators(ctx context.Context) ([]models.JobWithCreator, error) {
	return r.listWithCreators(ctx, "list jobs for review", "")
}

// Update writes every mutable column of job. visibility_status, admin_comment,
// created_by and created_at are never touched here.
func (r *JobRepo) Update(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		UPDATE jobs
		SET company = $1, position = $2, job_status = $3, job_type = $4,
			job_location = $5, workplace_type = $6, categories = $7, job_vacancy = $8,
			job_salary = $9, job_deadline = $10, job_description = $11,
			job_skills = $12, job_facilities = $13, job_contact = $14,
			eligibility = $15, student_currently_studying = $16,
			year_selection = $17, experience_min = $18, experience_max = $19,
			updated_at = NOW()
		WHERE id = $20
		RETURNING ` + jobColumns

	rows, err := r.db.Query(ctx, query,
		job.Company,
		job.Position,
		job.JobStatus,
		job.JobType,
		job.JobLocation,
		job.WorkplaceType,
		job.Categories,
		job.JobVacancy,
		job.JobSalary,
		job.JobDeadline,
		job.JobDescription,
		job.JobSkills,
		job.JobFacilities,
		job.JobContact,
		job.Eligibility,
		job.StudentCurrentlyStudying,
		job.YearSelection,
		job.ExperienceMin,
		job.ExperienceMax,
		job.ID,
	)
	updated, err := r.collectJob(rows, err, "update job", job.ID)
	if err != nil {
		return nil, err
	}

	r.logger.Info("job updated", zap.Int64("job_id", updated.ID))
	return updated, nil
}

// UpdateVisibility sets the moderation status and admin comment of a job.
func (r *JobRepo) UpdateVisibility(ctx context.Context, id int64, status models.VisibilityStatus, comment *string) (*models.Job, error) {
	query := `
		UPDATE jobs
		SET visibility_status = $1, admin_comment = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + jobColumns

	rows, err := r.db.Query(ctx, query, status, comment, id)
	updated, err := r.collectJob(rows, err, "update job status", id)
	if err != nil {
		return nil, err
	}

	r.logger.Info("job visibility updated", zap.Int64("job_id", id), zap.Int("visibility_status", int(status)))
	return updated, nil
}

// Delete removes a job by its ID.
func (r *JobRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("job delete failed", zap.Int64("job_id", id), zap.Error(err))
		return fmt.Errorf("failed to delete job %d: %w", id, translateError(err))
	}

	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	r.logger.Info("job deleted", zap.Int64("job_id", id))
	return nil
}

// DeleteAll removes every job and returns how many rows were deleted.
func (r *JobRepo) DeleteAll(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs`)
	if err != nil {
		r.logger.Error("delete all jobs failed", zap.Error(err))
		return 0, fmt.Errorf("failed to delete all jobs: %w", translateError(err))
	}
	return cmdTag.RowsAffected(), nil
}
