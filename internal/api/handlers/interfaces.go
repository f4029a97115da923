package handlers

import "github.com/gin-gonic/gin"

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetJob(c *gin.Context)
	ListMyJobs(c *gin.Context)
	ListJobsForReview(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	UpdateJobStatus(c *gin.Context)
	DeleteJob(c *gin.Context)
	DeleteAllJobs(c *gin.Context)
}

// JobApplicationHandlerInterface defines the methods needed by the application routes.
type JobApplicationHandlerInterface interface {
	ApplyToJob(c *gin.Context)
	GetApplication(c *gin.Context)
	ListJobApplications(c *gin.Context)
}

// Ensure handlers implements the interface (compile-time check)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ JobApplicationHandlerInterface = (*JobApplicationHandler)(nil)
