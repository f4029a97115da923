package models

import (
	"time"
)

// --- Role ---
type Role int

const (
	RoleAdmin     Role = 1
	RoleRecruiter Role = 2
	RoleCandidate Role = 3
	RoleCompany   Role = 4
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleCompany
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleRecruiter:
		return "recruiter"
	case RoleCandidate:
		return "candidate"
	case RoleCompany:
		return "company"
	default:
		return "unknown"
	}
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
)

// --- Job Status Enum ---
// Shared by jobs and applications.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusInterview JobStatus = "interview"
	JobStatusDeclined  JobStatus = "declined"
)

// --- Workplace Type Enum ---
type WorkplaceType int

const (
	WorkplaceRemote   WorkplaceType = 1
	WorkplaceInOffice WorkplaceType = 2
	WorkplaceOnField  WorkplaceType = 3
	WorkplaceHybrid   WorkplaceType = 4
)

// --- Visibility Status Enum ---
type VisibilityStatus int

const (
	VisibilityUnderReview VisibilityStatus = 1
	VisibilityAccepted    VisibilityStatus = 2
	VisibilityHold        VisibilityStatus = 3
	VisibilityRejected    VisibilityStatus = 4
)

// Valid reports whether v is a known moderation state.
func (v VisibilityStatus) Valid() bool {
	return v >= VisibilityUnderReview && v <= VisibilityRejected
}

// --- Job Sort Keys ---
type JobSort string

const (
	SortNewest JobSort = "newest"
	SortOldest JobSort = "oldest"
	SortAZ     JobSort = "a-z"
	SortZA     JobSort = "z-a"
)

// Job represents a job posting row.
type Job struct {
	ID             int64         `json:"id" db:"id"`
	Company        string        `json:"company" db:"company"`
	Position       string        `json:"position" db:"position"`
	JobStatus      JobStatus     `json:"job_status" db:"job_status"`
	JobType        JobType       `json:"job_type" db:"job_type"`
	JobLocation    *string       `json:"job_location" db:"job_location"` // NULL for remote jobs
	WorkplaceType  WorkplaceType `json:"workplace_type" db:"workplace_type"`
	Categories     []int64       `json:"categories" db:"categories"`
	JobVacancy     string        `json:"job_vacancy" db:"job_vacancy"`
	JobSalary      string        `json:"job_salary" db:"job_salary"`
	JobDeadline    string        `json:"job_deadline" db:"job_deadline"`
	JobDescription string        `json:"job_description" db:"job_description"`
	JobSkills      []string      `json:"job_skills" db:"job_skills"`
	JobFacilities  []int64       `json:"job_facilities" db:"job_facilities"`
	JobContact     string        `json:"job_contact" db:"job_contact"`

	Eligibility              EligibilityKind `json:"eligibility" db:"eligibility"`
	StudentCurrentlyStudying *bool           `json:"student_currently_studying" db:"student_currently_studying"`
	YearSelection            []string        `json:"year_selection" db:"year_selection"`
	ExperienceMin            *float64        `json:"experience_min" db:"experience_min"`
	ExperienceMax            *float64        `json:"experience_max" db:"experience_max"`

	VisibilityStatus VisibilityStatus `json:"visibility_status" db:"visibility_status"`
	AdminComment     *string          `json:"admin_comment" db:"admin_comment"`
	CreatedBy        int64            `json:"created_by" db:"created_by"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// JobWithCreator is a Job joined with the creating user's public details.
type JobWithCreator struct {
	Job
	Username *string `json:"username" db:"username"`
	Email    string  `json:"email" db:"email"`
}

// Application is a candidate's application to a job.
type Application struct {
	ID          int64     `json:"id" db:"id"`
	JobID       int64     `json:"job_id" db:"job_id"`
	ApplicantID int64     `json:"applicant_id" db:"applicant_id"`
	Status      JobStatus `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// User is the subset of the users table this service reads.
type User struct {
	ID       int64   `json:"id" db:"id"`
	Username *string `json:"username" db:"username"`
	Email    string  `json:"email" db:"email"`
	Role     Role    `json:"role" db:"role"`
}
