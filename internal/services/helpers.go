package services

import (
	"errors"
	"fmt"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"
)

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrInternal, operation, err)
}

// VisibilityFor derives the listing scope of a caller. Company accounts post jobs
// like recruiters and share their scope.
func VisibilityFor(caller dto.Caller) storage.JobVisibility {
	switch caller.Role {
	case models.RoleAdmin:
		return storage.JobVisibility{Unrestricted: true}
	case models.RoleRecruiter, models.RoleCompany:
		return storage.JobVisibility{OwnerID: caller.UserID}
	default:
		return storage.JobVisibility{}
	}
}

// canManage reports whether caller may mutate a job created by creatorID.
func canManage(caller dto.Caller, creatorID int64) bool {
	return caller.Role == models.RoleAdmin || caller.UserID == creatorID
}

func hasRole(caller dto.Caller, roles ...models.Role) bool {
	for _, r := range roles {
		if caller.Role == r {
			return true
		}
	}
	return false
}

// pageCount returns ceil(total/limit).
func pageCount(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// isServiceError reports whether err already carries one of the service sentinels.
func isServiceError(err error) bool {
	for _, target := range []error{ErrNotFound, ErrForbidden, ErrConflict, ErrValidation, ErrInternal} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
