package models

// EligibilityKind tags which applicant-qualification branch a job uses.
type EligibilityKind int

const (
	EligibilityStudent     EligibilityKind = 1
	EligibilityFresher     EligibilityKind = 2
	EligibilityExperienced EligibilityKind = 3
)

// YearAll selects every graduation year and may not be combined with specific years.
const YearAll = "All"

// Eligibility is one of StudentEligibility, FresherEligibility or ExperiencedEligibility.
type Eligibility interface {
	Kind() EligibilityKind
}

type StudentEligibility struct {
	CurrentlyStudying bool
}

type FresherEligibility struct {
	YearSelection []string
}

type ExperiencedEligibility struct {
	Min float64
	Max float64
}

func (StudentEligibility) Kind() EligibilityKind     { return EligibilityStudent }
func (FresherEligibility) Kind() EligibilityKind     { return EligibilityFresher }
func (ExperiencedEligibility) Kind() EligibilityKind { return EligibilityExperienced }

// ApplyEligibility writes e onto the job columns and nulls the fields of every other branch.
func (j *Job) ApplyEligibility(e Eligibility) {
	j.StudentCurrentlyStudying = nil
	j.YearSelection = nil
	j.ExperienceMin = nil
	j.ExperienceMax = nil
	j.Eligibility = e.Kind()

	switch v := e.(type) {
	case StudentEligibility:
		studying := v.CurrentlyStudying
		j.StudentCurrentlyStudying = &studying
	case FresherEligibility:
		j.YearSelection = append([]string(nil), v.YearSelection...)
	case ExperiencedEligibility:
		lo, hi := v.Min, v.Max
		j.ExperienceMin = &lo
		j.ExperienceMax = &hi
	}
}

// StoredEligibility rebuilds the tagged variant from the job columns.
// ok is false when the columns of the tagged branch are incomplete.
func (j *Job) StoredEligibility() (e Eligibility, ok bool) {
	switch j.Eligibility {
	case EligibilityStudent:
		if j.StudentCurrentlyStudying == nil {
			return StudentEligibility{}, false
		}
		return StudentEligibility{CurrentlyStudying: *j.StudentCurrentlyStudying}, true
	case EligibilityFresher:
		return FresherEligibility{YearSelection: j.YearSelection}, len(j.YearSelection) > 0
	case EligibilityExperienced:
		if j.ExperienceMin == nil || j.ExperienceMax == nil {
			return ExperiencedEligibility{}, false
		}
		return ExperiencedEligibility{Min: *j.ExperienceMin, Max: *j.ExperienceMax}, true
	default:
		return nil, false
	}
}
