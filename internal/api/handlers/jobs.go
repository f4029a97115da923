package handlers

import (
	"net/http"

	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
		logger:    logger.Named("job_handler"),
	}
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Lists jobs visible to the caller: candidates see accepted jobs, recruiters and companies also see their own, admins see everything.
// @Tags         jobs
// @Produce      json
// @Param        search query string false "Case-insensitive match on company, position, status, type or location"
// @Param        sort   query string false "Sort order" Enums(newest, oldest, a-z, z-a) default(newest)
// @Param        page   query int    false "Page number" default(1)
// @Param        limit  query int    false "Page size (max 100)" default(5)
// @Success      200 {object}  dto.ListJobsResponse
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      404 {object}  dto.ErrorResponse "No jobs found"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListJobs(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var query dto.ListJobsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	req := query.ToRequest(caller)

	page, err := h.service.ListJobs(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "No jobs found")
		return
	}

	c.JSON(http.StatusOK, dto.ListJobsResponse{
		Status:      true,
		Result:      page.Jobs,
		TotalJobs:   page.TotalJobs,
		CurrentPage: page.CurrentPage,
		PageCount:   page.PageCount,
	})
}

// GetJob godoc
// @Summary      Get a job by ID
// @Description  Returns one job if the caller may see it.
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object}  dto.JobResponse
// @Failure      400 {object}  dto.ErrorResponse "Invalid ID format"
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      404 {object}  dto.ErrorResponse "Job not found"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetJob(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.service.GetJob(c.Request.Context(), &dto.GetJobRequest{Caller: caller, ID: id})
	if err != nil {
		respondError(c, h.logger, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, dto.JobResponse{Status: true, Result: job})
}

// ListMyJobs godoc
// @Summary      List my jobs
// @Description  Lists jobs created by the caller, newest first, with creator details.
// @Tags         jobs
// @Produce      json
// @Success      200 {object}  dto.JobsWithCreatorResponse
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /jobs/my [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	jobs, err := h.service.ListMyJobs(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.logger, err, "No jobs found")
		return
	}
	c.JSON(http.StatusOK, dto.JobsWithCreatorResponse{Status: true, Result: jobs})
}

// ListJobsForReview godoc
// @Summary      List jobs for review
// @Description  Admin only. Lists every job with creator details, newest first.
// @Tags         jobs
// @Produce      json
// @Success      200 {object}  dto.JobsWithCreatorResponse
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /jobs/review [get]
// @Security     BearerAuth
func (h *JobHandler) ListJobsForReview(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	jobs, err := h.service.ListJobsForReview(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.logger, err, "No jobs found")
		return
	}
	c.JSON(http.StatusOK, dto.JobsWithCreatorResponse{Status: true, Result: jobs})
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Recruiters and companies only. The job starts under review; the creator is taken from the auth context.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  dto.JobResponse "Job created successfully"
// @Failure      400 {object}  dto.ErrorResponse "Bad Request - Invalid input"
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      409 {object}  dto.ErrorResponse "Job already exists"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.Caller = caller

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Job not found")
		return
	}
	c.JSON(http.StatusCreated, dto.JobResponse{Status: true, Result: job})
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Partial update by the creator or an admin. Omitted fields keep their stored values; the moderation status cannot be changed here.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id  path int                  true "Job ID"
// @Param        job body dto.UpdateJobRequest true "Fields to change"
// @Success      200 {object}  dto.JobResponse
// @Failure      400 {object}  dto.ErrorResponse "Bad Request - Invalid input"
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      404 {object}  dto.ErrorResponse "Job not found"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /jobs/{id} [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.Caller = caller
	req.ID = id

	job, err := h.service.UpdateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, dto.JobResponse{Status: true, Result: job})
}

// UpdateJobStatus godoc
// @Summary      Moderate a job
// @Description  Admin only. Sets the visibility status (1 under review, 2 accepted, 3 hold, 4 rejected) and an optional comment.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id     path int                        true "Job ID"
// @Param        status body dto.UpdateJobStatusRequest true "New status"
// @Success      200 {object}  dto.JobResponse
// @Failure      400 {object}  dto.ErrorResponse "Bad Request - Invalid input"
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      404 {object}  dto.ErrorResponse "Job not found"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /jobs/{id}/status [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.Caller = caller
	req.ID = id

	job, err := h.service.UpdateJobStatus(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, dto.JobResponse{Status: true, Result: job})
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Creator or admin. Removes the job and all of its applications.
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object}  dto.MessageResponse
// @Failure      400 {object}  dto.ErrorResponse "Invalid ID format"
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      404 {object}  dto.ErrorResponse "Job not found"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), &dto.DeleteJobRequest{Caller: caller, ID: id}); err != nil {
		respondError(c, h.logger, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Status: true, Message: "Job deleted"})
}

// DeleteAllJobs godoc
// @Summary      Delete all jobs
// @Description  Admin only. Removes every job and application.
// @Tags         jobs
// @Produce      json
// @Success      200 {object}  dto.DeleteAllJobsResponse
// @Failure      401 {object}  dto.ErrorResponse "Unauthorized"
// @Failure      403 {object}  dto.ErrorResponse "Forbidden"
// @Failure      500 {object}  dto.ErrorResponse "Internal Server Error"
// @Router       /jobs [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteAllJobs(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteAllJobs(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.logger, err, "No jobs found")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteAllJobsResponse{Status: true, Deleted: deleted})
}
