package services

import (
	"context"
	"fmt"

	"job-portal-api/config"
	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"go.uber.org/zap"
)

type jobService struct {
	store         storage.Store
	logger        *zap.Logger
	emptyNotFound bool
}

// NewJobService creates a new instance of JobService.
func NewJobService(store storage.Store, listing config.ListingConfig, logger *zap.Logger) JobService {
	return &jobService{
		store:         store,
		logger:        logger.Named("job_service"),
		emptyNotFound: listing.EmptyResultNotFound,
	}
}

func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) (*JobPage, error) {
	filter := storage.JobListFilter{
		Visibility: VisibilityFor(req.Caller),
		Search:     req.Search,
		Sort:       req.Sort,
		Limit:      req.Limit,
		Offset:     req.Offset(),
	}

	jobs, err := s.store.Jobs().List(ctx, filter)
	if err != nil {
		s.logger.Error("listing jobs failed", zap.Int64("user_id", req.UserID), zap.Error(err))
		return nil, mapRepoError(err, "listing jobs")
	}
	if len(jobs) == 0 && s.emptyNotFound {
		return nil, fmt.Errorf("%w: no jobs found", ErrNotFound)
	}

	total, err := s.store.Jobs().Count(ctx, filter)
	if err != nil {
		s.logger.Error("counting jobs failed", zap.Int64("user_id", req.UserID), zap.Error(err))
		return nil, mapRepoError(err, "counting jobs")
	}

	return &JobPage{
		Jobs:        jobs,
		TotalJobs:   total,
		CurrentPage: req.Page,
		PageCount:   pageCount(total, req.Limit),
	}, nil
}

// GetJob returns a job the caller is allowed to list; anything else is reported as not found.
func (s *jobService) GetJob(ctx context.Context, req *dto.GetJobRequest) (*models.Job, error) {
	job, err := s.store.Jobs().GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "getting job")
	}
	if !VisibilityFor(req.Caller).Allows(job) {
		return nil, fmt.Errorf("%w: getting job", ErrNotFound)
	}
	return job, nil
}

func (s *jobService) ListMyJobs(ctx context.Context, caller dto.Caller) ([]models.JobWithCreator, error) {
	jobs, err := s.store.Jobs().ListByCreator(ctx, caller.UserID)
	if err != nil {
		s.logger.Error("listing own jobs failed", zap.Int64("user_id", caller.UserID), zap.Error(err))
		return nil, mapRepoError(err, "listing own jobs")
	}
	return jobs, nil
}

func (s *jobService) ListJobsForReview(ctx context.Context, caller dto.Caller) ([]models.JobWithCreator, error) {
	if caller.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can review jobs", ErrForbidden)
	}
	jobs, err := s.store.Jobs().ListWithCreators(ctx)
	if err != nil {
		s.logger.Error("listing jobs for review failed", zap.Error(err))
		return nil, mapRepoError(err, "listing jobs for review")
	}
	return jobs, nil
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	if !hasRole(req.Caller, models.RoleRecruiter, models.RoleCompany) {
		return nil, fmt.Errorf("%w: only recruiters and companies can post jobs", ErrForbidden)
	}

	job := &models.Job{
		Company:        req.Company,
		Position:       req.Position,
		JobStatus:      req.JobStatus,
		JobType:        req.JobType,
		JobLocation:    req.JobLocation,
		WorkplaceType:  req.WorkplaceType,
		Categories:     req.Categories,
		JobVacancy:     req.JobVacancy,
		JobSalary:      req.JobSalary,
		JobDeadline:    req.JobDeadline,
		JobDescription: req.JobDescription,
		JobSkills:      req.JobSkills,
		JobFacilities:  req.JobFacilities,
		JobContact:     req.JobContact,
		// Moderation always starts over, whatever the client sent.
		VisibilityStatus: models.VisibilityUnderReview,
		CreatedBy:        req.UserID,
	}

	eligibility, err := resolveEligibility(req.EligibilityFields, nil)
	if err != nil {
		return nil, err
	}
	job.ApplyEligibility(eligibility)
	normalizeLocation(job)
	if err := validateJob(job); err != nil {
		return nil, err
	}

	exists, err := s.store.Jobs().ExistsByCompanyAndPosition(ctx, job.Company, job.Position)
	if err != nil {
		return nil, mapRepoError(err, "checking for duplicate job")
	}
	if exists {
		return nil, fmt.Errorf("%w: a job for %s at %s already exists", ErrConflict, job.Position, job.Company)
	}

	created, err := s.store.Jobs().Create(ctx, job)
	if err != nil {
		s.logger.Error("creating job failed", zap.Int64("user_id", req.UserID), zap.Error(err))
		return nil, mapRepoError(err, "creating job")
	}
	return created, nil
}

func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	existing, err := s.store.Jobs().GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for update")
	}
	if !canManage(req.Caller, existing.CreatedBy) {
		s.logger.Warn("forbidden job update",
			zap.Int64("job_id", req.ID), zap.Int64("user_id", req.UserID), zap.Int64("created_by", existing.CreatedBy))
		return nil, fmt.Errorf("%w: only the creator or an admin can update this job", ErrForbidden)
	}

	updated := *existing
	mergeJobUpdate(&updated, req)

	eligibility, err := resolveEligibility(req.EligibilityFields, existing)
	if err != nil {
		return nil, err
	}
	updated.ApplyEligibility(eligibility)
	normalizeLocation(&updated)
	if err := validateJob(&updated); err != nil {
		return nil, err
	}

	// Last write wins: no version check between the read above and this write.
	result, err := s.store.Jobs().Update(ctx, &updated)
	if err != nil {
		s.logger.Error("updating job failed", zap.Int64("job_id", req.ID), zap.Error(err))
		return nil, mapRepoError(err, "updating job")
	}
	return result, nil
}

// mergeJobUpdate copies every supplied field of req onto job. Eligibility is resolved separately.
func mergeJobUpdate(job *models.Job, req *dto.UpdateJobRequest) {
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Position != nil {
		job.Position = *req.Position
	}
	if req.JobStatus != nil {
		job.JobStatus = *req.JobStatus
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.WorkplaceType != nil {
		job.WorkplaceType = *req.WorkplaceType
	}
	if req.JobLocation != nil {
		job.JobLocation = req.JobLocation
	}
	if req.Categories != nil {
		job.Categories = req.Categories
	}
	if req.JobVacancy != nil {
		job.JobVacancy = *req.JobVacancy
	}
	if req.JobSalary != nil {
		job.JobSalary = *req.JobSalary
	}
	if req.JobDeadline != nil {
		job.JobDeadline = *req.JobDeadline
	}
	if req.JobDescription != nil {
		job.JobDescription = *req.JobDescription
	}
	if req.JobSkills != nil {
		job.JobSkills = req.JobSkills
	}
	if req.JobFacilities != nil {
		job.JobFacilities = req.JobFacilities
	}
	if req.JobContact != nil {
		job.JobContact = *req.JobContact
	}
}

func (s *jobService) UpdateJobStatus(ctx context.Context, req *dto.UpdateJobStatusRequest) (*models.Job, error) {
	if req.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can change a job's status", ErrForbidden)
	}
	if !req.VisibilityStatus.Valid() {
		return nil, invalid("visibility_status", "must be between 1 and 4")
	}

	job, err := s.store.Jobs().UpdateVisibility(ctx, req.ID, req.VisibilityStatus, req.AdminComment)
	if err != nil {
		return nil, mapRepoError(err, "updating job status")
	}
	s.logger.Info("job status changed",
		zap.Int64("job_id", req.ID), zap.Int("visibility_status", int(req.VisibilityStatus)), zap.Int64("admin_id", req.UserID))
	return job, nil
}

// DeleteJob removes the job and its applications in one transaction.
func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		job, err := tx.Jobs().GetByID(ctx, req.ID)
		if err != nil {
			return mapRepoError(err, "fetching job for delete")
		}
		if !canManage(req.Caller, job.CreatedBy) {
			return fmt.Errorf("%w: only the creator or an admin can delete this job", ErrForbidden)
		}

		removed, err := tx.Applications().DeleteByJob(ctx, req.ID)
		if err != nil {
			return mapRepoError(err, "deleting job applications")
		}
		if err := tx.Jobs().Delete(ctx, req.ID); err != nil {
			return mapRepoError(err, "deleting job")
		}
		s.logger.Info("job deleted", zap.Int64("job_id", req.ID), zap.Int64("applications_removed", removed))
		return nil
	})
	if err != nil {
		return s.wrapTxError(err, "deleting job")
	}
	return nil
}

func (s *jobService) DeleteAllJobs(ctx context.Context, caller dto.Caller) (int64, error) {
	if caller.Role != models.RoleAdmin {
		return 0, fmt.Errorf("%w: only admins can delete all jobs", ErrForbidden)
	}

	var deleted int64
	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		if _, err := tx.Applications().DeleteAll(ctx); err != nil {
			return mapRepoError(err, "deleting all applications")
		}
		n, err := tx.Jobs().DeleteAll(ctx)
		if err != nil {
			return mapRepoError(err, "deleting all jobs")
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, s.wrapTxError(err, "deleting all jobs")
	}

	s.logger.Warn("all jobs deleted", zap.Int64("count", deleted), zap.Int64("admin_id", caller.UserID))
	return deleted, nil
}

// wrapTxError passes service errors through and marks transaction failures as internal.
func (s *jobService) wrapTxError(err error, operation string) error {
	if isServiceError(err) {
		return err
	}
	s.logger.Error("transaction failed", zap.String("op", operation), zap.Error(err))
	return fmt.Errorf("%w: %s: %w", ErrInternal, operation, err)
}
