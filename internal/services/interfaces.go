package services

import (
	"context"

	"job-portal-api/internal/models"
	"job-portal-api/internal/transport/dto"
)

// JobPage is one page of a job listing.
type JobPage struct {
	Jobs        []models.Job
	TotalJobs   int
	CurrentPage int
	PageCount   int
}

// ApplicationPage is one page of a job's applications.
type ApplicationPage struct {
	Applications []models.Application
	Total        int
	CurrentPage  int
	PageCount    int
}

// JobService defines the interface for job-related business logic.
type JobService interface {
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) (*JobPage, error)
	GetJob(ctx context.Context, req *dto.GetJobRequest) (*models.Job, error)
	ListMyJobs(ctx context.Context, caller dto.Caller) ([]models.JobWithCreator, error)
	ListJobsForReview(ctx context.Context, caller dto.Caller) ([]models.JobWithCreator, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	UpdateJobStatus(ctx context.Context, req *dto.UpdateJobStatusRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
	DeleteAllJobs(ctx context.Context, caller dto.Caller) (int64, error)
}

// JobApplicationService defines the interface for job application business logic.
type JobApplicationService interface {
	ApplyToJob(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Application, error)
	GetApplication(ctx context.Context, req *dto.GetApplicationRequest) (*models.Application, error)
	ListJobApplications(ctx context.Context, req *dto.ListJobApplicationsRequest) (*ApplicationPage, error)
}
