package services

import (
	"context"
	"fmt"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"go.uber.org/zap"
)

type jobApplicationService struct {
	store  storage.Store
	logger *zap.Logger
}

// NewJobApplicationService creates a new instance of JobApplicationService.
func NewJobApplicationService(store storage.Store, logger *zap.Logger) JobApplicationService {
	return &jobApplicationService{
		store:  store,
		logger: logger.Named("application_service"),
	}
}

// ApplyToJob creates a pending application for the calling candidate.
func (s *jobApplicationService) ApplyToJob(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Application, error) {
	if req.Role != models.RoleCandidate {
		return nil, fmt.Errorf("%w: only candidates can apply to jobs", ErrForbidden)
	}

	job, err := s.store.Jobs().GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %d for application", req.JobID))
	}
	if !VisibilityFor(req.Caller).Allows(job) {
		return nil, fmt.Errorf("%w: fetching job %d for application", ErrNotFound, req.JobID)
	}

	app, err := s.store.Applications().Create(ctx, &models.Application{
		JobID:       req.JobID,
		ApplicantID: req.UserID,
		Status:      models.JobStatusPending,
	})
	if err != nil {
		s.logger.Warn("application rejected", zap.Int64("job_id", req.JobID), zap.Int64("user_id", req.UserID), zap.Error(err))
		return nil, mapRepoError(err, "applying to job")
	}
	return app, nil
}

// GetApplication is visible to the applicant, the job's creator and admins.
func (s *jobApplicationService) GetApplication(ctx context.Context, req *dto.GetApplicationRequest) (*models.Application, error) {
	app, err := s.store.Applications().GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "getting application")
	}
	if req.Role == models.RoleAdmin || app.ApplicantID == req.UserID {
		return app, nil
	}

	job, err := s.store.Jobs().GetByID(ctx, app.JobID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job of application")
	}
	if job.CreatedBy != req.UserID {
		return nil, fmt.Errorf("%w: not allowed to view this application", ErrForbidden)
	}
	return app, nil
}

func (s *jobApplicationService) ListJobApplications(ctx context.Context, req *dto.ListJobApplicationsRequest) (*ApplicationPage, error) {
	job, err := s.store.Jobs().GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for applications")
	}
	if !canManage(req.Caller, job.CreatedBy) {
		return nil, fmt.Errorf("%w: only the creator or an admin can list applications", ErrForbidden)
	}

	apps, err := s.store.Applications().ListByJob(ctx, req.JobID, req.Limit, req.Offset())
	if err != nil {
		s.logger.Error("listing applications failed", zap.Int64("job_id", req.JobID), zap.Error(err))
		return nil, mapRepoError(err, "listing applications")
	}
	total, err := s.store.Applications().CountByJob(ctx, req.JobID)
	if err != nil {
		s.logger.Error("counting applications failed", zap.Int64("job_id", req.JobID), zap.Error(err))
		return nil, mapRepoError(err, "counting applications")
	}

	return &ApplicationPage{
		Applications: apps,
		Total:        total,
		CurrentPage:  req.Page,
		PageCount:    pageCount(total, req.Limit),
	}, nil
}
