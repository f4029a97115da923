package routes

import (
	"job-portal-api/internal/api/handlers"
	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobApplicationRoutes registers all routes related to job applications.
func RegisterJobApplicationRoutes(
	rg *gin.RouterGroup,
	jobAppHandler handlers.JobApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	// Applications nested under a job
	jobsGroup := rg.Group("/jobs")
	jobsGroup.Use(authMiddleware)
	{
		jobsGroup.POST("/:id/applications", middleware.RequireRoles(models.RoleCandidate), jobAppHandler.ApplyToJob)
		// Creator or admin; checked by the service against the job owner
		jobsGroup.GET("/:id/applications", jobAppHandler.ListJobApplications)
	}

	appsGroup := rg.Group("/applications")
	appsGroup.Use(authMiddleware)
	{
		appsGroup.GET("/:id", jobAppHandler.GetApplication)
	}
}
