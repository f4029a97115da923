package dto

import (
	"job-portal-api/internal/models"
)

// ApplyToJobRequest is built by the handler from the path and auth context.
type ApplyToJobRequest struct {
	Caller
	JobID int64
}

type GetApplicationRequest struct {
	Caller
	ID int64
}

// ListJobApplicationsQuery is the raw pagination query for a job's applications.
type ListJobApplicationsQuery struct {
	Page  string `form:"page"`
	Limit string `form:"limit"`
}

// ListJobApplicationsRequest defines parameters for listing applications by job.
type ListJobApplicationsRequest struct {
	Caller
	JobID int64
	Page  int
	Limit int
}

// ToRequest coerces the raw query for the given job and caller.
func (q ListJobApplicationsQuery) ToRequest(caller Caller, jobID int64) ListJobApplicationsRequest {
	page, limit := ResolvePagination(q.Page, q.Limit)
	return ListJobApplicationsRequest{Caller: caller, JobID: jobID, Page: page, Limit: limit}
}

func (r ListJobApplicationsRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

type ApplicationResponse struct {
	Status bool                `json:"status"`
	Result *models.Application `json:"result"`
}

// ListApplicationsResponse is the paginated envelope for a job's applications.
type ListApplicationsResponse struct {
	Status            bool                 `json:"status"`
	Result            []models.Application `json:"result"`
	TotalApplications int                  `json:"totalApplications"`
	CurrentPage       int                  `json:"currentPage"`
	PageCount         int                  `json:"pageCount"`
}
