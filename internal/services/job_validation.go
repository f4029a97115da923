package services

import (
	"strconv"
	"strings"

	"job-portal-api/internal/models"
	"job-portal-api/internal/transport/dto"
)

const (
	maxCategories     = 10
	minLocationLength = 3
	maxLocationLength = 100
	firstYear         = 2023
	lastYear          = 2035
)

// resolveEligibility turns the wire fields into an eligibility variant.
// stored is nil on create. On update, a payload that keeps the stored branch
// falls back to stored values for every omitted branch field; a payload that
// switches branch must supply the new branch in full.
func resolveEligibility(f dto.EligibilityFields, stored *models.Job) (models.Eligibility, error) {
	var kind models.EligibilityKind
	switch {
	case f.Eligibility != nil:
		kind = *f.Eligibility
	case stored != nil:
		kind = stored.Eligibility
	default:
		return nil, invalid("eligibility", "eligibility is required")
	}
	sameBranch := stored != nil && stored.Eligibility == kind

	switch kind {
	case models.EligibilityStudent:
		studying := f.StudentCurrentlyStudying
		if studying == nil && sameBranch {
			studying = stored.StudentCurrentlyStudying
		}
		if studying == nil {
			return nil, invalid("student_currently_studying", "required for student eligibility")
		}
		return models.StudentEligibility{CurrentlyStudying: *studying}, nil

	case models.EligibilityFresher:
		years := f.YearSelection
		if years == nil && sameBranch {
			years = stored.YearSelection
		}
		if err := validateYearSelection(years); err != nil {
			return nil, err
		}
		return models.FresherEligibility{YearSelection: years}, nil

	case models.EligibilityExperienced:
		lo, hi := f.ExperienceMin, f.ExperienceMax
		if sameBranch {
			if lo == nil {
				lo = stored.ExperienceMin
			}
			if hi == nil {
				hi = stored.ExperienceMax
			}
		}
		if lo == nil {
			return nil, invalid("experience_min", "required for experienced eligibility")
		}
		if hi == nil {
			return nil, invalid("experience_max", "required for experienced eligibility")
		}
		if *lo < 0 {
			return nil, invalid("experience_min", "must not be negative")
		}
		if *hi < *lo {
			return nil, invalid("experience_max", "must be greater than or equal to experience_min")
		}
		return models.ExperiencedEligibility{Min: *lo, Max: *hi}, nil

	default:
		return nil, invalid("eligibility", "must be 1 (student), 2 (fresher) or 3 (experienced)")
	}
}

func validateYearSelection(years []string) error {
	if len(years) == 0 {
		return invalid("year_selection", "at least one year is required for fresher eligibility")
	}
	seen := make(map[string]bool, len(years))
	for _, y := range years {
		if y == models.YearAll {
			if len(years) > 1 {
				return invalid("year_selection", "%q cannot be combined with specific years", models.YearAll)
			}
			continue
		}
		n, err := strconv.Atoi(y)
		if err != nil || n < firstYear || n > lastYear {
			return invalid("year_selection", "%q is not %s or a year between %d and %d", y, models.YearAll, firstYear, lastYear)
		}
		if seen[y] {
			return invalid("year_selection", "year %s listed twice", y)
		}
		seen[y] = true
	}
	return nil
}

// normalizeLocation clears the location of remote jobs and trims the rest.
func normalizeLocation(job *models.Job) {
	if job.WorkplaceType == models.WorkplaceRemote || job.JobLocation == nil {
		job.JobLocation = nil
		return
	}
	loc := strings.TrimSpace(*job.JobLocation)
	job.JobLocation = &loc
}

// validateJob checks the invariants shared by create and update.
func validateJob(job *models.Job) error {
	if strings.TrimSpace(job.Company) == "" {
		return invalid("company", "is required")
	}
	if strings.TrimSpace(job.Position) == "" {
		return invalid("position", "is required")
	}
	if len(job.Categories) == 0 {
		return invalid("categories", "at least one category is required")
	}
	if len(job.Categories) > maxCategories {
		return invalid("categories", "at most %d categories are allowed, got %d", maxCategories, len(job.Categories))
	}
	if len(job.JobFacilities) == 0 {
		return invalid("job_facilities", "at least one facility is required")
	}
	if len(job.JobSkills) == 0 {
		return invalid("job_skills", "at least one skill is required")
	}
	if job.WorkplaceType < models.WorkplaceRemote || job.WorkplaceType > models.WorkplaceHybrid {
		return invalid("workplace_type", "must be between 1 and 4")
	}
	if job.WorkplaceType != models.WorkplaceRemote {
		if job.JobLocation == nil {
			return invalid("job_location", "is required unless the job is remote")
		}
		if n := len([]rune(*job.JobLocation)); n < minLocationLength || n > maxLocationLength {
			return invalid("job_location", "must be between %d and %d characters", minLocationLength, maxLocationLength)
		}
	}
	return nil
}
