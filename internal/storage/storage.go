package storage

import (
	"context"

	"job-portal-api/internal/models"
)

// JobVisibility is the set of jobs a requester may see.
// The zero value admits only accepted jobs.
type JobVisibility struct {
	Unrestricted bool  // sees every job regardless of status
	OwnerID      int64 // when > 0, also sees jobs created by this user
}

// Allows reports whether a single job falls inside the visibility scope.
func (v JobVisibility) Allows(job *models.Job) bool {
	if v.Unrestricted {
		return true
	}
	if job.VisibilityStatus == models.VisibilityAccepted {
		return true
	}
	return v.OwnerID > 0 && job.CreatedBy == v.OwnerID
}

// JobListFilter carries everything the listing statements are built from.
type JobListFilter struct {
	Visibility JobVisibility
	Search     string
	Sort       models.JobSort
	Limit      int
	Offset     int
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	ExistsByCompanyAndPosition(ctx context.Context, company, position string) (bool, error)
	List(ctx context.Context, filter JobListFilter) ([]models.Job, error)
	Count(ctx context.Context, filter JobListFilter) (int, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]models.JobWithCreator, error)
	ListWithCreators(ctx context.Context) ([]models.JobWithCreator, error)
	Update(ctx context.Context, job *models.Job) (*models.Job, error)
	UpdateVisibility(ctx context.Context, id int64, status models.VisibilityStatus, comment *string) (*models.Job, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	ListByJob(ctx context.Context, jobID int64, limit, offset int) ([]models.Application, error)
	CountByJob(ctx context.Context, jobID int64) (int, error)
	DeleteByJob(ctx context.Context, jobID int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// Store hands out repositories bound to one connection pool or one transaction.
type Store interface {
	Jobs() JobRepository
	Applications() ApplicationRepository
	// WithTx runs fn against a transactional Store; fn's error rolls back.
	WithTx(ctx context.Context, fn func(tx Store) error) error
}
