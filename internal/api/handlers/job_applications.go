package handlers

import (
	"net/http"

	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobApplicationHandler handles HTTP requests related to job applications.
type JobApplicationHandler struct {
	service services.JobApplicationService
	logger  *zap.Logger
}

// NewJobApplicationHandler creates a new JobApplicationHandler.
func NewJobApplicationHandler(service services.JobApplicationService, logger *zap.Logger) *JobApplicationHandler {
	return &JobApplicationHandler{service: service, logger: logger.Named("application_handler")}
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Candidates only. The job must be accepted; applying twice is a conflict.
// @Tags         applications
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      201 {object}  dto.ApplicationResponse
// @Failure      400 {object}  dto.ErrorResponse "Invalid ID format"
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      404 {object}  dto.ErrorResponse "Job not found"
// @Failure      409 {object}  dto.ErrorResponse "Already applied"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /jobs/{id}/applications [post]
// @Security     BearerAuth
func (h *JobApplicationHandler) ApplyToJob(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	app, err := h.service.ApplyToJob(c.Request.Context(), &dto.ApplyToJobRequest{Caller: caller, JobID: jobID})
	if err != nil {
		respondError(c, h.logger, err, "Job not found")
		return
	}
	c.JSON(http.StatusCreated, dto.ApplicationResponse{Status: true, Result: app})
}

// GetApplication godoc
// @Summary      Get an application
// @Description  Visible to the applicant, the job's creator and admins.
// @Tags         applications
// @Produce      json
// @Param        id path int true "Application ID"
// @Success      200 {object}  dto.ApplicationResponse
// @Failure      400 {object}  dto.ErrorResponse "Invalid ID format"
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      404 {object}  dto.ErrorResponse "Application not found"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *JobApplicationHandler) GetApplication(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	app, err := h.service.GetApplication(c.Request.Context(), &dto.GetApplicationRequest{Caller: caller, ID: id})
	if err != nil {
		respondError(c, h.logger, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, dto.ApplicationResponse{Status: true, Result: app})
}

// ListJobApplications godoc
// @Summary      List applications of a job
// @Description  Job creator or admin. Newest first.
// @Tags         applications
// @Produce      json
// @Param        id    path  int true  "Job ID"
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Page size (max 100)" default(5)
// @Success      200 {object}  dto.ListApplicationsResponse
// @Failure      400 {object}  dto.ErrorResponse "Invalid ID format"
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      404 {object}  dto.ErrorResponse "Job not found"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *JobApplicationHandler) ListJobApplications(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var query dto.ListJobApplicationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	req := query.ToRequest(caller, jobID)

	page, err := h.service.ListJobApplications(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, dto.ListApplicationsResponse{
		Status:            true,
		Result:            page.Applications,
		TotalApplications: page.Total,
		CurrentPage:       page.CurrentPage,
		PageCount:         page.PageCount,
	})
}
