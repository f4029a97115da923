package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of [%s]", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("Invalid %s format", name)})
		return 0, false
	}
	return id, true
}

// bindJSON decodes and validates the request body, writing a 400 on failure.
func bindJSON(c *gin.Context, validate *validator.Validate, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: FormatValidationErrors(err)})
		return false
	}
	return true
}

// respondError maps service errors to status codes. notFoundMsg is used for ErrNotFound.
func respondError(c *gin.Context, logger *zap.Logger, err error, notFoundMsg string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: map[string]string{verr.Field: verr.Message}})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFoundMsg})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "You are not allowed to perform this action"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		logger.Error("request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}

// callerOrAbort reads the authenticated caller, writing a 401 when absent.
func callerOrAbort(c *gin.Context) (dto.Caller, bool) {
	caller, err := middleware.GetCallerFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return dto.Caller{}, false
	}
	return caller, true
}
