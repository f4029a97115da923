package routes

import (
	"job-portal-api/internal/api/handlers"
	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs.
// It applies the provided authentication middleware to all job routes.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	posters := middleware.RequireRoles(models.RoleRecruiter, models.RoleCompany)
	owners := middleware.RequireRoles(models.RoleRecruiter, models.RoleCompany, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	jobs := rg.Group("/jobs")
	jobs.Use(authMiddleware)
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.POST("", posters, jobHandler.CreateJob)
		jobs.DELETE("", adminOnly, jobHandler.DeleteAllJobs)
		jobs.GET("/my", owners, jobHandler.ListMyJobs)
		jobs.GET("/review", adminOnly, jobHandler.ListJobsForReview)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PATCH("/:id", owners, jobHandler.UpdateJob)
		jobs.PATCH("/:id/status", adminOnly, jobHandler.UpdateJobStatus)
		jobs.DELETE("/:id", owners, jobHandler.DeleteJob)
	}
}
