// internal/transport/dto/job_dto.go
package dto

import (
	"strconv"
	"strings"

	"job-portal-api/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 5
	MaxLimit     = 100
)

// Caller identifies the authenticated user behind a request.
// Set internally by handlers from the auth context, never bound from the body.
type Caller struct {
	UserID int64
	Role   models.Role
}

// EligibilityFields is the flat wire form of the eligibility variant.
// Only the fields of the branch named by Eligibility are meaningful.
type EligibilityFields struct {
	Eligibility              *models.EligibilityKind `json:"eligibility,omitempty" validate:"omitempty,min=1,max=3"`
	StudentCurrentlyStudying *bool                   `json:"student_currently_studying,omitempty"`
	YearSelection            []string                `json:"year_selection,omitempty"`
	ExperienceMin            *float64                `json:"experience_min,omitempty" validate:"omitempty,gte=0"`
	ExperienceMax            *float64                `json:"experience_max,omitempty" validate:"omitempty,gte=0"`
}

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	Caller         `json:"-"`
	Company        string               `json:"company" validate:"required,max=100"`
	Position       string               `json:"position" validate:"required,max=200"`
	JobStatus      models.JobStatus     `json:"job_status" validate:"required,oneof=pending interview declined"`
	JobType        models.JobType       `json:"job_type" validate:"required,oneof=full-time part-time internship"`
	JobLocation    *string              `json:"job_location,omitempty"` // ignored for remote jobs
	WorkplaceType  models.WorkplaceType `json:"workplace_type" validate:"required,min=1,max=4"`
	Categories     []int64              `json:"categories" validate:"required,dive,gt=0"`
	JobVacancy     string               `json:"job_vacancy" validate:"required"`
	JobSalary      string               `json:"job_salary" validate:"required"`
	JobDeadline    string               `json:"job_deadline" validate:"required"`
	JobDescription string               `json:"job_description" validate:"required"`
	JobSkills      []string             `json:"job_skills" validate:"required,dive,required"`
	JobFacilities  []int64              `json:"job_facilities" validate:"required,dive,gt=0"`
	JobContact     string               `json:"job_contact" validate:"required"`
	EligibilityFields
}

// GetJobRequest defines the structure for getting a job by ID.
type GetJobRequest struct {
	Caller
	ID int64
}

// UpdateJobRequest is a partial update: nil fields keep their stored values.
type UpdateJobRequest struct {
	Caller         `json:"-"`
	ID             int64                 `json:"-"` // From URL path
	Company        *string               `json:"company,omitempty" validate:"omitempty,min=1,max=100"`
	Position       *string               `json:"position,omitempty" validate:"omitempty,min=1,max=200"`
	JobStatus      *models.JobStatus     `json:"job_status,omitempty" validate:"omitempty,oneof=pending interview declined"`
	JobType        *models.JobType       `json:"job_type,omitempty" validate:"omitempty,oneof=full-time part-time internship"`
	JobLocation    *string               `json:"job_location,omitempty"`
	WorkplaceType  *models.WorkplaceType `json:"workplace_type,omitempty" validate:"omitempty,min=1,max=4"`
	Categories     []int64               `json:"categories,omitempty" validate:"omitempty,dive,gt=0"`
	JobVacancy     *string               `json:"job_vacancy,omitempty" validate:"omitempty,min=1"`
	JobSalary      *string               `json:"job_salary,omitempty" validate:"omitempty,min=1"`
	JobDeadline    *string               `json:"job_deadline,omitempty" validate:"omitempty,min=1"`
	JobDescription *string               `json:"job_description,omitempty" validate:"omitempty,min=1"`
	JobSkills      []string              `json:"job_skills,omitempty" validate:"omitempty,dive,required"`
	JobFacilities  []int64               `json:"job_facilities,omitempty" validate:"omitempty,dive,gt=0"`
	JobContact     *string               `json:"job_contact,omitempty" validate:"omitempty,min=1"`
	EligibilityFields
}

// UpdateJobStatusRequest sets the moderation state of a job.
type UpdateJobStatusRequest struct {
	Caller           `json:"-"`
	ID               int64                   `json:"-"` // From URL path
	VisibilityStatus models.VisibilityStatus `json:"visibility_status" validate:"required,min=1,max=4"`
	AdminComment     *string                 `json:"admin_comment,omitempty" validate:"omitempty,max=1000"`
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	Caller
	ID int64
}

// ListJobsQuery is the raw listing query string. Page and limit stay strings so
// malformed values fall back to defaults instead of failing the bind.
type ListJobsQuery struct {
	Search string `form:"search"`
	Sort   string `form:"sort"`
	Page   string `form:"page"`
	Limit  string `form:"limit"`
}

// ListJobsRequest is a coerced listing query.
type ListJobsRequest struct {
	Caller
	Search string
	Sort   models.JobSort
	Page   int
	Limit  int
}

// ToRequest coerces the raw query into a ListJobsRequest for caller.
func (q ListJobsQuery) ToRequest(caller Caller) ListJobsRequest {
	page, limit := ResolvePagination(q.Page, q.Limit)
	return ListJobsRequest{
		Caller: caller,
		Search: strings.TrimSpace(q.Search),
		Sort:   models.JobSort(strings.ToLower(strings.TrimSpace(q.Sort))),
		Page:   page,
		Limit:  limit,
	}
}

// ResolvePagination parses page and limit. Unparseable or non-positive values
// become the defaults; limit is capped at MaxLimit.
func ResolvePagination(pageStr, limitStr string) (page, limit int) {
	page, err := strconv.Atoi(strings.TrimSpace(pageStr))
	if err != nil || page < 1 {
		page = DefaultPage
	}
	limit, err = strconv.Atoi(strings.TrimSpace(limitStr))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Offset returns the number of rows skipped before the requested page.
func (r ListJobsRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// --- Job Response DTOs ---

// ListJobsResponse is the paginated listing envelope.
type ListJobsResponse struct {
	Status      bool         `json:"status"`
	Result      []models.Job `json:"result"`
	TotalJobs   int          `json:"totalJobs"`
	CurrentPage int          `json:"currentPage"`
	PageCount   int          `json:"pageCount"`
}

// JobResponse wraps a single job.
type JobResponse struct {
	Status bool        `json:"status"`
	Result *models.Job `json:"result"`
}

// JobsWithCreatorResponse wraps jobs joined with their creators.
type JobsWithCreatorResponse struct {
	Status bool                    `json:"status"`
	Result []models.JobWithCreator `json:"result"`
}

// DeleteAllJobsResponse reports how many jobs were removed.
type DeleteAllJobsResponse struct {
	Status  bool  `json:"status"`
	Deleted int64 `json:"deleted"`
}

// MessageResponse is a success envelope carrying only a message.
type MessageResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope returned by every endpoint.
type ErrorResponse struct {
	Status  bool              `json:"status"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
